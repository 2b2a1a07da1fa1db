package sys

import (
	"github.com/ribgsilva/notesvault/platform/env"
	"go.uber.org/zap"
	"time"
)

// Supported values for Config.Database.Driver
const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
	DriverBadger = "badger"
)

// Config contains all the configs gathered from env vars. It is built once in main and handed to whoever needs it.
type Config struct {
	Http struct {
		Port            string
		ShutdownTimeout time.Duration
		ReadTimeout     time.Duration
		WriteTimeout    time.Duration
		IdleTimeout     time.Duration
	}
	Swagger struct {
		Protocol string
		Host     string
	}
	Auth struct {
		Enabled bool
		User    string
		Pass    string
	}
	Database struct {
		Driver           string
		ConnectionURL    string
		KVPath           string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
	}
	Cache struct {
		Enabled          bool
		ConnectionURL    string
		User             string
		Pass             string
		PingTimeout      time.Duration
		OperationTimeout time.Duration
		CacheTTL         time.Duration
	}
	Messaging struct {
		TopicName       string
		MaxWorkers      int
		WaitTime        time.Duration
		ShutdownTimeout time.Duration
	}
	NewRelic struct {
		AppName           string
		Licence           string
		Enabled           bool
		ConnectionTimeout time.Duration
		ShutdownTimeout   time.Duration
	}
}

// LoadHttp fills the http server and swagger configs
func (c *Config) LoadHttp(log *zap.SugaredLogger) {
	c.Http.Port = env.OrDefault(log, "HTTP_PORT", "8080")
	c.Http.ReadTimeout = env.DurationDefault(log, "HTTP_READ_TIMEOUT", "5s")
	c.Http.IdleTimeout = env.DurationDefault(log, "HTTP_IDLE_TIMEOUT", "120s")
	c.Http.WriteTimeout = env.DurationDefault(log, "HTTP_WRITE_TIMEOUT", "10s")
	c.Http.ShutdownTimeout = env.DurationDefault(log, "HTTP_SHUTDOWN_TIMEOUT", "60s")
	c.Swagger.Protocol = env.OrDefault(log, "SWAGGER_PROTOCOL", "http")
	c.Swagger.Host = env.OrDefault(log, "SWAGGER_HOST", "localhost:"+c.Http.Port)
}

// LoadAuth fills the basic auth configs
func (c *Config) LoadAuth(log *zap.SugaredLogger) {
	c.Auth.Enabled = env.BoolDefault(log, "AUTH_ENABLED", "t")
	c.Auth.User = env.OrDefault(log, "AUTH_USER", "admin")
	c.Auth.Pass = env.OrDefault(log, "AUTH_PASS", "admin")
}

// LoadDatabase fills the storage configs
func (c *Config) LoadDatabase(log *zap.SugaredLogger) {
	c.Database.Driver = env.OrDefault(log, "DATABASE_DRIVER", DriverMySQL)
	c.Database.ConnectionURL = env.OrDefault(log, "DATABASE_CONNECTION_URL", "root:admin@tcp(localhost:3306)/notesvault?parseTime=true")
	c.Database.KVPath = env.OrDefault(log, "DATABASE_KV_PATH", "notesvault.kv")
	c.Database.PingTimeout = env.DurationDefault(log, "DATABASE_PING_TIMEOUT", "2s")
	c.Database.OperationTimeout = env.DurationDefault(log, "DATABASE_OPERATION_TIMEOUT", "5s")
}

// LoadCache fills the redis configs
func (c *Config) LoadCache(log *zap.SugaredLogger) {
	c.Cache.Enabled = env.BoolDefault(log, "CACHE_ENABLED", "t")
	c.Cache.ConnectionURL = env.OrDefault(log, "CACHE_CONNECTION_URL", "localhost:6379")
	c.Cache.User = env.OrDefault(log, "CACHE_USER", "")
	c.Cache.Pass = env.OrDefault(log, "CACHE_PASS", "")
	c.Cache.PingTimeout = env.DurationDefault(log, "CACHE_PING_TIMEOUT", "2s")
	c.Cache.OperationTimeout = env.DurationDefault(log, "CACHE_OPERATION_TIMEOUT", "10s")
	c.Cache.CacheTTL = env.DurationDefault(log, "CACHE_CACHE_TTL", "24h")
}

// LoadMessaging fills the subscription configs, MESSAGING_TOPIC_NAME is required
func (c *Config) LoadMessaging(log *zap.SugaredLogger) {
	c.Messaging.TopicName = env.Must(log, "MESSAGING_TOPIC_NAME")
	c.Messaging.MaxWorkers = env.IntDefault(log, "MESSAGING_MAX_WORKERS", "1")
	c.Messaging.WaitTime = env.DurationDefault(log, "MESSAGING_WAIT_TIME", "10s")
	c.Messaging.ShutdownTimeout = env.DurationDefault(log, "MESSAGING_SHUTDOWN_TIMEOUT", "10s")
}

// LoadNewRelic fills the apm configs
func (c *Config) LoadNewRelic(log *zap.SugaredLogger) {
	c.NewRelic.AppName = env.OrDefault(log, "NEW_RELIC_APP_NAME", "notesvault")
	c.NewRelic.Licence = env.OrDefault(log, "NEW_RELIC_LICENCE", "")
	c.NewRelic.Enabled = env.BoolDefault(log, "NEW_RELIC_ENABLED", "f")
	c.NewRelic.ConnectionTimeout = env.DurationDefault(log, "NEW_RELIC_CONNECTION_TIMEOUT", "10s")
	c.NewRelic.ShutdownTimeout = env.DurationDefault(log, "NEW_RELIC_SHUTDOWN_TIMEOUT", "10s")
}
