package note

import (
	"context"
	"database/sql"
	"encoding/json"
	"github.com/go-redis/redis/v8"
	"github.com/ribgsilva/notesvault/sys"
	"go.uber.org/zap"
)

// Store keeps notes in a sql database, with redis as an optional read-through cache
type Store struct {
	log   *zap.SugaredLogger
	db    *sql.DB
	cache *redis.Client
	cfg   sys.Config
}

// NewStore builds a Store, a nil cache disables caching
func NewStore(log *zap.SugaredLogger, db *sql.DB, cache *redis.Client, cfg sys.Config) *Store {
	return &Store{
		log:   log,
		db:    db,
		cache: cache,
		cfg:   cfg,
	}
}

func (s *Store) fromCache(ctx context.Context, key string) (Note, bool) {
	if s.cache == nil {
		return Note{}, false
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
	defer tcCancel()
	get, err := s.cache.Get(tcCtx, key).Result()
	if err != nil {
		if err != redis.Nil {
			s.log.Errorw("cache", "key", key, "ERROR", err)
		}
		return Note{}, false
	}

	var n Note
	if err := json.Unmarshal([]byte(get), &n); err != nil {
		s.log.Errorw("cache", "key", key, "status", "error parsing cached value", "ERROR", err)
		return Note{}, false
	}
	return n, true
}

func (s *Store) toCache(ctx context.Context, key string, n Note) {
	if s.cache == nil {
		return
	}

	data, err := json.Marshal(n)
	if err != nil {
		s.log.Errorw("cache", "key", key, "status", "error parsing value to cache", "ERROR", err)
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
	defer tcCancel()
	if err := s.cache.Set(tcCtx, key, string(data), s.cfg.Cache.CacheTTL).Err(); err != nil {
		s.log.Errorw("cache", "key", key, "status", "failure to set value", "ERROR", err)
	}
}

func (s *Store) evict(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
	defer tcCancel()
	if err := s.cache.Del(tcCtx, key).Err(); err != nil {
		s.log.Errorw("cache", "key", key, "status", "failure to evict", "ERROR", err)
	}
}

func (s *Store) cached(ctx context.Context, key string) bool {
	if s.cache == nil {
		return false
	}

	tcCtx, tcCancel := context.WithTimeout(ctx, s.cfg.Cache.OperationTimeout)
	defer tcCancel()
	count, err := s.cache.Exists(tcCtx, key).Result()
	if err != nil {
		s.log.Errorw("cache", "key", key, "ERROR", err)
		return false
	}
	return count > 0
}
