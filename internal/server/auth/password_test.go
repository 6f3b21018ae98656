package auth

import "testing"

func TestHashPassword_NeverStoresPlaintext(t *testing.T) {
	hash, err := HashPassword("Pw1!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if hash == "Pw1!" {
		t.Fatal("hash equals plaintext")
	}
	if !CheckPassword(hash, "Pw1!") {
		t.Fatal("CheckPassword rejected original plaintext")
	}
}

func TestCheckPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("Pw1!")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if CheckPassword(hash, "wrong") {
		t.Fatal("CheckPassword accepted wrong password")
	}
}

func TestHashPassword_SaltedPerHash(t *testing.T) {
	h1, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	h2, err := HashPassword("same-password")
	if err != nil {
		t.Fatalf("HashPassword error: %v", err)
	}
	if h1 == h2 {
		t.Fatal("equal plaintexts produced identical hashes")
	}
}
