package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"academic-hub/internal/domain/model"
	"academic-hub/internal/domain/ports/repository"
	"academic-hub/internal/infra/metrics"
	red "academic-hub/internal/infra/redis"
)

var _ repository.MaterialRepository = (*materialRepoCacheDecorator)(nil)

// materialRepoCacheDecorator caches material reads in Redis. The catalog is
// read-heavy (every student browse hits it) and admin writes are rare, so a
// short TTL plus invalidation on write keeps it honest.
type materialRepoCacheDecorator struct {
	inner repository.MaterialRepository
	cache red.RedisClient
	ttl   time.Duration
}

func NewMaterialRepoCacheDecorator(inner repository.MaterialRepository, cache red.RedisClient, ttl time.Duration) repository.MaterialRepository {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &materialRepoCacheDecorator{inner: inner, cache: cache, ttl: ttl}
}

func (d *materialRepoCacheDecorator) FindByID(ctx context.Context, tx repository.Tx, id string) (*model.StudyMaterial, error) {
	key := fmt.Sprintf("material:%s", id)
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		metrics.IncCacheRequest("material", "hit")
		var m model.StudyMaterial
		if json.Unmarshal([]byte(val), &m) == nil {
			return &m, nil
		}
	} else if err != red.ErrCacheMiss {
		metrics.IncCacheRequest("material", "error")
	}

	metrics.IncCacheRequest("material", "miss")
	m, err := d.inner.FindByID(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if m != nil {
		bytes, _ := json.Marshal(m)
		_ = d.cache.Set(ctx, key, bytes, d.ttl)
	}
	return m, nil
}

func (d *materialRepoCacheDecorator) ListAll(ctx context.Context, tx repository.Tx) ([]*model.StudyMaterial, error) {
	const key = "materials:all"
	val, err := d.cache.Get(ctx, key)
	if err == nil {
		metrics.IncCacheRequest("material_list", "hit")
		var ms []*model.StudyMaterial
		if json.Unmarshal([]byte(val), &ms) == nil {
			return ms, nil
		}
	}

	metrics.IncCacheRequest("material_list", "miss")
	ms, err := d.inner.ListAll(ctx, tx)
	if err != nil {
		return nil, err
	}
	bytes, _ := json.Marshal(ms)
	_ = d.cache.Set(ctx, key, bytes, d.ttl)
	return ms, nil
}

// Search results are not cached: the query space is unbounded.
func (d *materialRepoCacheDecorator) Search(ctx context.Context, tx repository.Tx, query string) ([]*model.StudyMaterial, error) {
	return d.inner.Search(ctx, tx, query)
}

// Write operations invalidate both the row and the list entry.
func (d *materialRepoCacheDecorator) Save(ctx context.Context, tx repository.Tx, m *model.StudyMaterial) error {
	_ = d.cache.Del(ctx, fmt.Sprintf("material:%s", m.ID), "materials:all")
	return d.inner.Save(ctx, tx, m)
}

func (d *materialRepoCacheDecorator) Delete(ctx context.Context, tx repository.Tx, id string) error {
	_ = d.cache.Del(ctx, fmt.Sprintf("material:%s", id), "materials:all")
	return d.inner.Delete(ctx, tx, id)
}

func (d *materialRepoCacheDecorator) CountMaterials(ctx context.Context, tx repository.Tx) (int, error) {
	return d.inner.CountMaterials(ctx, tx)
}
