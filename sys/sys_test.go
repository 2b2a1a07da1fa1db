package sys

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoadDatabase(t *testing.T) {
	log := zap.NewNop().Sugar()
	t.Setenv("DATABASE_DRIVER", DriverSQLite)
	t.Setenv("DATABASE_CONNECTION_URL", "file:test.db")
	t.Setenv("DATABASE_OPERATION_TIMEOUT", "")

	var cfg Config
	cfg.LoadDatabase(log)

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "file:test.db", cfg.Database.ConnectionURL)
	assert.Equal(t, 5*time.Second, cfg.Database.OperationTimeout)
}

func TestLoadHttp(t *testing.T) {
	log := zap.NewNop().Sugar()
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("HTTP_READ_TIMEOUT", "1s")
	t.Setenv("SWAGGER_HOST", "")

	var cfg Config
	cfg.LoadHttp(log)

	assert.Equal(t, "9090", cfg.Http.Port)
	assert.Equal(t, time.Second, cfg.Http.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Http.ShutdownTimeout)
	assert.Equal(t, "localhost:9090", cfg.Swagger.Host)
}

func TestLoadAuthDefaults(t *testing.T) {
	log := zap.NewNop().Sugar()
	t.Setenv("AUTH_ENABLED", "")
	t.Setenv("AUTH_USER", "")
	t.Setenv("AUTH_PASS", "")

	var cfg Config
	cfg.LoadAuth(log)

	assert.True(t, cfg.Auth.Enabled)
	assert.Equal(t, "admin", cfg.Auth.User)
	assert.Equal(t, "admin", cfg.Auth.Pass)
}
