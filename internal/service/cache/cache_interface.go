package cache

import "github.com/guttosm/warehouse-service/internal/domain/model"

// Cache defines the interface for report cache operations. Keys identify a
// report type plus date (e.g. "picking:2024-07-07").
type Cache interface {
	Get(key string) (model.Report, bool)
	Set(key string, value model.Report)
	Invalidate(key string)
	Clear()
	Stop()
}

// Metrics provides cache performance metrics.
type Metrics struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Size      int
	Capacity  int
}

// CacheWithMetrics extends Cache with metrics reporting.
type CacheWithMetrics interface {
	Cache
	Metrics() Metrics
}
