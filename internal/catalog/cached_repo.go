package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/coocood/freecache"
	log "github.com/sirupsen/logrus"
)

const listCacheKey = "exercises:all"

type exerciseSource interface {
	GetExercise(ctx context.Context, id int) (*Exercise, error)
	ListExercises(ctx context.Context) ([]Exercise, error)
}

// CachedRepo is a read-through cache in front of the catalog. The catalog
// changes rarely, so entries simply expire after ttlSeconds.
type CachedRepo struct {
	source     exerciseSource
	cache      *freecache.Cache
	ttlSeconds int
}

func NewCachedRepo(source exerciseSource, sizeMB, ttlSeconds int) *CachedRepo {
	return &CachedRepo{
		source:     source,
		cache:      freecache.NewCache(sizeMB * 1024 * 1024),
		ttlSeconds: ttlSeconds,
	}
}

func exerciseCacheKey(id int) []byte {
	return []byte("exercise:" + strconv.Itoa(id))
}

func (c *CachedRepo) GetExercise(ctx context.Context, id int) (*Exercise, error) {
	key := exerciseCacheKey(id)
	if cached, err := c.cache.Get(key); err == nil {
		var e Exercise
		if err := json.Unmarshal(cached, &e); err == nil {
			return &e, nil
		}
		log.Warnf("catalog cache: corrupted entry for exercise %d", id)
	} else if !errors.Is(err, freecache.ErrNotFound) {
		log.Warnf("catalog cache get %d: %s", id, err)
	}

	e, err := c.source.GetExercise(ctx, id)
	if err != nil {
		return nil, err
	}
	c.set(key, e)
	return e, nil
}

func (c *CachedRepo) ListExercises(ctx context.Context) ([]Exercise, error) {
	if cached, err := c.cache.Get([]byte(listCacheKey)); err == nil {
		var exercises []Exercise
		if err := json.Unmarshal(cached, &exercises); err == nil {
			return exercises, nil
		}
	}

	exercises, err := c.source.ListExercises(ctx)
	if err != nil {
		return nil, err
	}
	c.set([]byte(listCacheKey), exercises)
	return exercises, nil
}

func (c *CachedRepo) Invalidate() {
	c.cache.Clear()
}

func (c *CachedRepo) set(key []byte, v any) {
	valBytes, err := json.Marshal(v)
	if err != nil {
		log.Warnf("catalog cache marshal [%s]: %s", key, err)
		return
	}
	if err := c.cache.Set(key, valBytes, c.ttlSeconds); err != nil {
		log.Warnf("catalog cache set [%s]: %s", key, err)
	}
}
