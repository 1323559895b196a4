package test_helpers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v4"
)

// ConnectWithValidation connects to the test server. It skips the test if
// the server is not configured and finishes the test with an error if the
// connection fails. The connection is closed on test cleanup.
func ConnectWithValidation(t testing.TB) *pgx.Conn {
	t.Helper()

	dsn, ok := GetDSN()
	if !ok {
		t.Skipf("Skipping test without PostgreSQL server, set %s to run it", DSNEnv)
	}

	ctx, cancel := GetConnectContext()
	defer cancel()

	conn, err := Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("Failed to connect: %s", err.Error())
	}
	if conn == nil {
		t.Fatalf("conn is nil after Connect")
	}
	t.Cleanup(func() {
		if err := conn.Close(context.Background()); err != nil {
			t.Log(err)
		}
	})
	return conn
}

// CreateTempTable creates a temporary table with the given column
// definitions and returns its unique name. The table lives until the
// connection is closed.
func CreateTempTable(t testing.TB, conn *pgx.Conn, columns string) string {
	t.Helper()

	name := "pginterval_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := GetConnectContext()
	defer cancel()

	if _, err := conn.Exec(ctx, "CREATE TEMPORARY TABLE "+name+" ("+columns+")"); err != nil {
		t.Fatalf("Failed to create table %s: %s", name, err.Error())
	}
	return name
}
