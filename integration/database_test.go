//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestTonelabWithMySQL tests the tonelab CLI with a MySQL backend.
func TestTonelabWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "tonelab",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/tonelab?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("TONELAB_CACHE_BACKEND", "mysql")
	_ = os.Setenv("TONELAB_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("TONELAB_STORE_BACKEND", "mysql")
	_ = os.Setenv("TONELAB_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("TONELAB_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("TONELAB_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("TONELAB_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("TONELAB_STORE_DB_CONNECT") }()

	// Run tonelab store clear
	err = runTonelabCommand(t, "store", "clear")
	require.NoError(t, err)

	// Run tonelab store migrate
	err = runTonelabCommand(t, "store", "migrate")
	require.NoError(t, err)

	// Run tonelab emotion
	err = runTonelabCommand(t, "emotion", "오늘은 행복한 하루였다", "--user", "dbtest")
	require.NoError(t, err)

	// Run tonelab weekly
	err = runTonelabCommand(t, "weekly", "--user", "dbtest")
	require.NoError(t, err)

	// Run tonelab store status
	err = runTonelabCommand(t, "store", "status")
	require.NoError(t, err)
}

// TestTonelabWithPostgres tests the tonelab CLI with a PostgreSQL backend.
func TestTonelabWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("TONELAB_CACHE_BACKEND", "postgresql")
	_ = os.Setenv("TONELAB_CACHE_DB_CONNECT", connStr)
	_ = os.Setenv("TONELAB_STORE_BACKEND", "postgresql")
	_ = os.Setenv("TONELAB_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("TONELAB_CACHE_BACKEND") }()
	defer func() { _ = os.Unsetenv("TONELAB_CACHE_DB_CONNECT") }()
	defer func() { _ = os.Unsetenv("TONELAB_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("TONELAB_STORE_DB_CONNECT") }()

	// Run tonelab store clear
	err = runTonelabCommand(t, "store", "clear")
	require.NoError(t, err)

	// Run tonelab store migrate
	err = runTonelabCommand(t, "store", "migrate")
	require.NoError(t, err)

	// Run tonelab emotion
	err = runTonelabCommand(t, "emotion", "오늘은 행복한 하루였다", "--user", "dbtest")
	require.NoError(t, err)

	// Run tonelab weekly
	err = runTonelabCommand(t, "weekly", "--user", "dbtest")
	require.NoError(t, err)

	// Run tonelab store status
	err = runTonelabCommand(t, "store", "status")
	require.NoError(t, err)
}

func runTonelabCommand(t *testing.T, args ...string) error {
	tonelabPath := getTonelabBinary()
	cmd := exec.Command(tonelabPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
