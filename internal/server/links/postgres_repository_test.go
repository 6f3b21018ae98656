package links

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/linkhub/internal/common"
)

func TestPostgresRepository_MaxOrder_NoLinks(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	repo, _ := NewPostgresRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COALESCE(MAX(sort_order), -1) FROM links")).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(-1))

	max, err := repo.MaxOrder(context.Background(), "u1")
	if err != nil {
		t.Fatalf("MaxOrder error: %v", err)
	}
	if max != -1 {
		t.Fatalf("max %d, want -1", max)
	}
}

func TestPostgresRepository_ReplaceOrders_CommitsAllWrites(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	repo, _ := NewPostgresRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("UPDATE links SET sort_order = $1, updated_at = $2")).
		WithArgs(0, now, "l2", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("UPDATE links SET sort_order = $1, updated_at = $2")).
		WithArgs(1, now, "l1", "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	if err := repo.ReplaceOrders(context.Background(), "u1", []string{"l2", "l1"}, now); err != nil {
		t.Fatalf("ReplaceOrders error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}

func TestPostgresRepository_ReplaceOrders_RollsBackOnForeignID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	defer db.Close()

	repo, _ := NewPostgresRepository(db)
	now := time.Now()

	mock.ExpectBegin()
	// A foreign id matches zero rows, which must abort the batch.
	mock.ExpectExec(regexp.QuoteMeta("UPDATE links SET sort_order = $1, updated_at = $2")).
		WithArgs(0, now, "foreign", "u1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err = repo.ReplaceOrders(context.Background(), "u1", []string{"foreign", "l1"}, now)
	if !errors.Is(err, common.ErrorForbidden) {
		t.Fatalf("want ErrorForbidden, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("sql expectations: %v", err)
	}
}
