package storage

import (
	"database/sql"
	"fmt"
	"github.com/go-redis/redis/v8"
	business "github.com/ribgsilva/notesvault/business/v1/note"
	"github.com/ribgsilva/notesvault/persistence/v1/kv"
	"github.com/ribgsilva/notesvault/persistence/v1/note"
	"github.com/ribgsilva/notesvault/platform/database"
	"github.com/ribgsilva/notesvault/sys"
	"go.uber.org/zap"

	_ "github.com/go-sql-driver/mysql"
	_ "modernc.org/sqlite"
)

// Storage is the note store picked by Config.Database.Driver plus the resources it owns
type Storage struct {
	Notes business.Storer
	// DB is nil for the badger driver
	DB *sql.DB
	// Dialect names the schema to use with DB
	Dialect string

	closers []func() error
}

// Open builds the configured backend. Sql backends get the redis cache when Config.Cache.Enabled.
func Open(log *zap.SugaredLogger, cfg sys.Config) (*Storage, error) {
	switch cfg.Database.Driver {
	case sys.DriverBadger:
		store, err := kv.Open(cfg.Database.KVPath)
		if err != nil {
			return nil, err
		}
		return &Storage{Notes: store, closers: []func() error{store.Close}}, nil

	case sys.DriverMySQL, sys.DriverSQLite:
		db, err := database.Open(cfg.Database.Driver, cfg.Database.ConnectionURL, cfg.Database.PingTimeout)
		if err != nil {
			return nil, err
		}
		s := &Storage{DB: db, Dialect: cfg.Database.Driver, closers: []func() error{db.Close}}

		var rdb *redis.Client
		if cfg.Cache.Enabled {
			rdb, err = database.OpenCache(cfg.Cache.ConnectionURL, cfg.Cache.User, cfg.Cache.Pass, cfg.Cache.PingTimeout)
			if err != nil {
				_ = s.Close()
				return nil, err
			}
			s.closers = append(s.closers, rdb.Close)
		}

		s.Notes = note.NewStore(log, db, rdb, cfg)
		return s, nil

	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Database.Driver)
	}
}

// Close releases everything Open acquired, in reverse order
func (s *Storage) Close() error {
	var first error
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	return first
}
