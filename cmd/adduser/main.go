// Command adduser registers an account directly against the configured
// database. Useful for bootstrapping an instance before the public
// registration endpoint is exposed.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"

	"github.com/rs/zerolog"

	"github.com/dmitrijs2005/linkhub/internal/logging"
	"github.com/dmitrijs2005/linkhub/internal/server/config"
	"github.com/dmitrijs2005/linkhub/internal/server/shared/db"
	"github.com/dmitrijs2005/linkhub/internal/server/users"
	"github.com/dmitrijs2005/linkhub/internal/termx"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	if cfg.DatabaseDSN == "" {
		log.Fatal("database DSN is required")
	}

	manager, err := db.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("db init error: %v", err)
	}
	defer manager.Close()

	reader := bufio.NewReader(os.Stdin)

	username, err := termx.GetSimpleText(reader, "Username", os.Stdout)
	if err != nil {
		log.Fatalf("error reading username: %v", err)
	}

	email, err := termx.GetSimpleText(reader, "Email", os.Stdout)
	if err != nil {
		log.Fatalf("error reading email: %v", err)
	}

	password, err := termx.GetPassword(os.Stdout)
	if err != nil {
		log.Fatalf("error reading password: %v", err)
	}

	logger := logging.NewZerologLogger(zerolog.New(os.Stderr))
	svc := users.NewService(manager.Users(), logger, cfg)

	user, err := svc.Register(ctx, username, email, string(password))
	if err != nil {
		log.Fatalf("error registering user: %v", err)
	}

	fmt.Printf("user %s created (id %s)\n", user.Username, user.ID)
}
