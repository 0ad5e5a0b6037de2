package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DB_DRIVER", "")
	t.Setenv("MYSQL_DSN", "")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("API_EXPOSE_ERRORS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, ":50051", cfg.GRPCAddr)
	assert.Equal(t, DriverMySQL, cfg.Database.Driver)
	assert.False(t, cfg.ExposeErrors)
	assert.Equal(t, 5*time.Minute, cfg.Database.ConnMaxLifetime)

	mc, err := mysqldrv.ParseDSN(cfg.Database.DSN)
	require.NoError(t, err)
	assert.True(t, mc.ParseTime)
	assert.Equal(t, "inventory", mc.DBName)
}

func TestLoad_MySQLDSNForcesParseTime(t *testing.T) {
	t.Setenv("DB_DRIVER", "mysql")
	t.Setenv("MYSQL_DSN", "app:secret@tcp(db:3306)/catalog")

	cfg, err := Load()
	require.NoError(t, err)

	mc, err := mysqldrv.ParseDSN(cfg.Database.DSN)
	require.NoError(t, err)
	assert.True(t, mc.ParseTime)
	assert.Equal(t, "db:3306", mc.Addr)
	assert.Equal(t, "catalog", mc.DBName)
}

func TestLoad_SQLite(t *testing.T) {
	t.Setenv("DB_DRIVER", "SQLite")
	t.Setenv("SQLITE_PATH", "/tmp/catalog.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "/tmp/catalog.db", cfg.Database.DSN)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("DB_DRIVER", "oracle")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_MAX_OPEN_CONNS", "many")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("DB_MAX_OPEN_CONNS", "")
	t.Setenv("API_EXPOSE_ERRORS", "sometimes")
	_, err = Load()
	assert.Error(t, err)
}

func TestLoad_DotEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("DB_DRIVER", "sqlite")

		_, err := Load()
		require.NoError(t, err)
	})

	t.Run("values are applied", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("LOG_LEVEL=debug\n"), 0o600))
		chdir(t, dir)
		t.Setenv("DB_DRIVER", "sqlite")
		t.Setenv("LOG_LEVEL", "")
		require.NoError(t, os.Unsetenv("LOG_LEVEL"))

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("unreadable file is reported", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))
		chdir(t, dir)
		t.Setenv("DB_DRIVER", "sqlite")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "load .env")
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"http://a", "http://b"}, splitList(" http://a, ,http://b "))
	assert.Nil(t, splitList(""))
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
