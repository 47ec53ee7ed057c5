package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, DriverPostgres, cfg.DB.Driver)
	assert.True(t, cfg.DB.Migrate)
	assert.Equal(t, 24*time.Hour, cfg.Auth.Jwt.Expiry)
	assert.Equal(t, 5, cfg.Auth.MaxAttempts)
	assert.Equal(t, 15*time.Minute, cfg.Auth.Lockout)
	assert.Empty(t, cfg.Redis.URL)
	assert.Equal(t, "10000.00", cfg.Ledger.DepositLimit.StringFixed(2))
	assert.Equal(t, 10, cfg.Ledger.HistoryLimit)
	assert.Equal(t, "customers.csv", cfg.Export.Path)
	assert.True(t, cfg.Export.OnRegister)
	assert.Equal(t, 3000, cfg.Server.Port)
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PATH", "/usr/local/bin:/usr/bin")
	t.Setenv("HOST", "example.internal")
	t.Setenv("PORT", "9999")
	t.Setenv("URL", "postgres://elsewhere")
	t.Setenv("SECRET", "leaked")
	t.Setenv("LEVEL", "-4")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "customers.csv", cfg.Export.Path)
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Empty(t, cfg.DB.Url)
	assert.Empty(t, cfg.Redis.URL)
	assert.Empty(t, cfg.Auth.Jwt.Secret)
	assert.Equal(t, 0, cfg.Log.Level)
}

func TestLoad_SplitWordKeys(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("EXPORT_ON_REGISTER", "false")
	t.Setenv("EXPORT_ADMIN_TOKEN", "admin-token")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("AUTH_MAX_ATTEMPTS", "3")
	t.Setenv("LOG_TIME_FORMAT", "15:04")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "7")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.Export.OnRegister)
	assert.Equal(t, "admin-token", cfg.Export.AdminToken)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, 3, cfg.Auth.MaxAttempts)
	assert.Equal(t, "15:04", cfg.Log.TimeFormat)
	assert.Equal(t, 7, cfg.RateLimit.MaxRequests)
}

func TestLoad_Overrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("APP_ENV", "test")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:bank.db")
	t.Setenv("AUTH_JWT_SECRET", "super-secret-value")
	t.Setenv("AUTH_PIN_COST", "4")
	t.Setenv("LEDGER_DEPOSIT_LIMIT", "2500.50")
	t.Setenv("LEDGER_HISTORY_LIMIT", "25")
	t.Setenv("EXPORT_PATH", "out/customers.csv")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test", cfg.Env)
	assert.Equal(t, DriverSQLite, cfg.DB.Driver)
	assert.Equal(t, "file:bank.db", cfg.DB.Url)
	assert.Equal(t, "super-secret-value", cfg.Auth.Jwt.Secret)
	assert.Equal(t, 4, cfg.Auth.PinCost)
	assert.Equal(t, "2500.50", cfg.Ledger.DepositLimit.StringFixed(2))
	assert.Equal(t, 25, cfg.Ledger.HistoryLimit)
	assert.Equal(t, "out/customers.csv", cfg.Export.Path)
}

func TestLoad_RejectsUnknownDriver(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("DATABASE_DRIVER", "mysql")

	_, err := Load()
	assert.ErrorContains(t, err, "unsupported DATABASE_DRIVER")
}

func TestLoad_FromEnvFileInParentDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(
		filepath.Join(root, ".env.test"),
		[]byte("LEDGER_HISTORY_LIMIT=42\n"),
		0o600,
	))
	child := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(child, 0o755))
	chdir(t, child)
	// godotenv never overrides variables that are already set
	t.Setenv("LEDGER_HISTORY_LIMIT", "")
	require.NoError(t, os.Unsetenv("LEDGER_HISTORY_LIMIT"))

	cfg, err := Load(".env.test")
	require.NoError(t, err)
	assert.Equal(t, 42, cfg.Ledger.HistoryLimit)
}

func TestFindEnvFile(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "pkg", "service")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	chdir(t, nested)

	_, err := FindEnvFile(".env.missing")
	assert.ErrorIs(t, err, os.ErrNotExist)

	require.NoError(t, os.WriteFile(filepath.Join(root, ".env"), nil, 0o600))
	path, err := FindEnvFile("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, ".env"), path)

	abs := filepath.Join(root, ".env")
	path, err = FindEnvFile(abs)
	require.NoError(t, err)
	assert.Equal(t, abs, path)
}

func TestFindEnvFile_StopsAtModuleRoot(t *testing.T) {
	outer := t.TempDir()
	module := filepath.Join(outer, "banking")
	require.NoError(t, os.MkdirAll(module, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(outer, ".env"), nil, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(module, "go.mod"), []byte("module x\n"), 0o600))
	chdir(t, module)

	_, err := FindEnvFile("")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMaskValue(t *testing.T) {
	assert.Equal(t, "****", maskValue(""))
	assert.Equal(t, "****", maskValue("abc"))
	assert.Equal(t, "po****able", maskValue("postgres://user:pw@host/db?sslmode=disable"))
}
