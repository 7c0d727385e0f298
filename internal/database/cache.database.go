package database

import (
	"context"
	"fmt"

	"stillpoint/config"

	"github.com/valkey-io/valkey-go"
)

type CacheClient valkey.Client

// Valkey database index organization: each index provides logical separation
// for a cache category.
const (
	// GENERAL_CACHE_INDEX (DB 0) - general purpose caching, including the
	// precomputed daily session pick
	GENERAL_CACHE_INDEX = iota

	// USER_CACHE_INDEX (DB 1) - user rows keyed by id
	USER_CACHE_INDEX
)

type Cache struct {
	General CacheClient
	User    CacheClient
}

// initializeCacheDB connects the Valkey cache tier. The tier is optional:
// with no cache address configured the service runs straight against SQL.
func (s *DB) initializeCacheDB(config config.Config) error {
	log := s.log.Function("initializeCacheDB")

	address := config.DatabaseCacheAddress
	port := config.DatabaseCachePort
	if address == "" || port == 0 {
		log.Warn("cache address not configured, running without cache tier")
		return nil
	}

	initAddress := []string{fmt.Sprintf("%s:%d", address, port)}

	var cacheDB Cache
	var err error

	cacheDB.General, err = valkey.NewClient(valkey.ClientOption{
		InitAddress: initAddress,
		SelectDB:    GENERAL_CACHE_INDEX,
	})
	if err != nil {
		return log.Err("failed to create general cache client", err)
	}

	cacheDB.User, err = valkey.NewClient(valkey.ClientOption{
		InitAddress: initAddress,
		SelectDB:    USER_CACHE_INDEX,
	})
	if err != nil {
		return log.Err("failed to create user cache client", err)
	}

	log.Info("Successfully connected to cache database", "address", address, "port", port)
	s.Cache = cacheDB

	return nil
}

// FlushAllCaches empties every cache index. Used when reseeding so stale
// entries cannot shadow the fresh rows.
func (s *DB) FlushAllCaches() error {
	log := s.log.Function("FlushAllCaches")
	ctx := context.Background()

	caches := map[string]CacheClient{
		"general": s.Cache.General,
		"user":    s.Cache.User,
	}
	for name, client := range caches {
		if client == nil {
			continue
		}
		if err := client.Do(ctx, client.B().Flushdb().Build()).Error(); err != nil {
			return log.Err("failed to flush cache", err, "cache", name)
		}
	}

	return nil
}
