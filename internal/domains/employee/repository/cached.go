package repository

import (
	"context"
	"fmt"
	"time"

	"employee-api/internal/domains/employee"
	"employee-api/pkg/cache"
	"employee-api/pkg/logger"
)

const cacheKeyPattern = "employee:*"

func cacheKey(id int64) string {
	return fmt.Sprintf("employee:%d", id)
}

// cachedRepository implement "Cache-Aside Pattern" cho single-record reads.
// Mọi mutation đều invalidate; lỗi cache chỉ log, không bao giờ fail request.
type cachedRepository struct {
	next  employee.Repository
	cache cache.Cache
	ttl   time.Duration
}

func NewCachedRepository(next employee.Repository, c cache.Cache, ttl time.Duration) employee.Repository {
	return &cachedRepository{next: next, cache: c, ttl: ttl}
}

func (r *cachedRepository) List(ctx context.Context) ([]employee.Employee, error) {
	return r.next.List(ctx)
}

func (r *cachedRepository) FindByID(ctx context.Context, id int64) (*employee.Employee, error) {
	// STEP 1: CHECK CACHE FIRST
	var e employee.Employee
	found, err := r.cache.Get(ctx, cacheKey(id), &e)
	if err == nil && found {
		logger.Debug("employee cache hit: " + cacheKey(id))
		return &e, nil
	}
	if err != nil {
		r.warn("cache get failed", id, err)
	}

	// STEP 2: CACHE MISS - QUERY STORE
	fromStore, err := r.next.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// STEP 3: POPULATE CACHE
	if err := r.cache.Set(ctx, cacheKey(id), fromStore, r.ttl); err != nil {
		r.warn("cache set failed", id, err)
	}
	return fromStore, nil
}

func (r *cachedRepository) Create(ctx context.Context, e *employee.Employee) error {
	return r.next.Create(ctx, e)
}

// Update/Delete xóa key trước và sau khi ghi: FindByID đọc store trước write
// có thể Set lại row cũ, lần xóa sau dọn entry đó.
func (r *cachedRepository) Update(ctx context.Context, e *employee.Employee) error {
	r.invalidate(ctx, e.ID)
	err := r.next.Update(ctx, e)
	r.invalidate(ctx, e.ID)
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id int64) error {
	r.invalidate(ctx, id)
	err := r.next.Delete(ctx, id)
	r.invalidate(ctx, id)
	return err
}

func (r *cachedRepository) Count(ctx context.Context) (int64, error) {
	return r.next.Count(ctx)
}

func (r *cachedRepository) CreateBatch(ctx context.Context, employees []employee.Employee) error {
	return r.next.CreateBatch(ctx, employees)
}

// ApplyIncrementRule đổi value của mọi record → xóa toàn bộ employee keys
func (r *cachedRepository) ApplyIncrementRule(ctx context.Context, rule employee.IncrementRule) (int64, error) {
	r.flush(ctx)
	rows, err := r.next.ApplyIncrementRule(ctx, rule)
	r.flush(ctx)
	return rows, err
}

func (r *cachedRepository) SumValuesByNamePrefix(ctx context.Context, prefixes []string) (int64, error) {
	return r.next.SumValuesByNamePrefix(ctx, prefixes)
}

func (r *cachedRepository) invalidate(ctx context.Context, id int64) {
	if err := r.cache.Delete(ctx, cacheKey(id)); err != nil {
		r.warn("cache delete failed", id, err)
	}
}

func (r *cachedRepository) flush(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cacheKeyPattern); err != nil {
		logger.Warn("employee cache flush failed", map[string]interface{}{
			"pattern": cacheKeyPattern,
			"error":   err.Error(),
		})
	}
}

func (r *cachedRepository) warn(msg string, id int64, err error) {
	logger.Warn(msg, map[string]interface{}{
		"key":   cacheKey(id),
		"error": err.Error(),
	})
}
