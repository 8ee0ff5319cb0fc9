package seed

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func TestEnsureSchema_CreatesAllTablesInOrder(t *testing.T) {
	db, mock := newMockDB(t)

	for _, table := range []string{"Airlines", "Airports", "Aircraft", "Flights", "Users", "Passengers", "Bookings", "Tickets"} {
		mock.ExpectExec("CREATE TABLE IF NOT EXISTS `" + table + "`").
			WillReturnResult(sqlmock.NewResult(0, 0))
	}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestClearTables_TogglesForeignKeyChecks(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("SET FOREIGN_KEY_CHECKS = 0").WillReturnResult(sqlmock.NewResult(0, 0))
	for _, table := range truncateOrder {
		mock.ExpectExec("TRUNCATE TABLE " + table).WillReturnResult(sqlmock.NewResult(0, 0))
	}
	mock.ExpectExec("SET FOREIGN_KEY_CHECKS = 1").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := ClearTables(context.Background(), db); err != nil {
		t.Fatalf("ClearTables: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestClearTables_RestoresChecksAfterFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectExec("SET FOREIGN_KEY_CHECKS = 0").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("TRUNCATE TABLE Tickets").WillReturnError(errors.New("table is locked"))
	mock.ExpectExec("SET FOREIGN_KEY_CHECKS = 1").WillReturnResult(sqlmock.NewResult(0, 0))

	err := ClearTables(context.Background(), db)
	if err == nil {
		t.Fatal("ClearTables succeeded despite a failed truncation")
	}
	if !strings.Contains(err.Error(), "truncate Tickets") {
		t.Errorf("error %q does not name the failed table", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
