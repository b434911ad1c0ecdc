package usecase

import (
	"strconv"
	"strings"
	"sync"

	"github.com/veritasbank/veritas/internal/pkg/models"
)

// AvailabilityCache memoizes asset availability answers per exact query.
// Keys are the ordered (codes, amounts) pair as supplied by the caller, so
// two logically equivalent but differently ordered queries occupy separate
// entries. Any inventory write drops every entry, not just the affected
// asset code.
type AvailabilityCache struct {
	mu      sync.RWMutex
	entries map[string][]models.AssetAvailability
}

// NewAvailabilityCache creates an empty availability cache
func NewAvailabilityCache() *AvailabilityCache {
	return &AvailabilityCache{
		entries: make(map[string][]models.AssetAvailability),
	}
}

func cacheKey(assetCodes []string, amounts []int) string {
	var b strings.Builder
	for _, code := range assetCodes {
		b.WriteString(code)
		b.WriteByte('|')
	}
	b.WriteByte(';')
	for _, amount := range amounts {
		b.WriteString(strconv.Itoa(amount))
		b.WriteByte('|')
	}
	return b.String()
}

// Get returns the memoized result for the exact query, if present
func (c *AvailabilityCache) Get(assetCodes []string, amounts []int) ([]models.AssetAvailability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result, ok := c.entries[cacheKey(assetCodes, amounts)]
	return result, ok
}

// Put stores the result for the exact query
func (c *AvailabilityCache) Put(assetCodes []string, amounts []int, result []models.AssetAvailability) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[cacheKey(assetCodes, amounts)] = result
}

// InvalidateAll drops every entry
func (c *AvailabilityCache) InvalidateAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string][]models.AssetAvailability)
}

// Len returns the number of memoized queries
func (c *AvailabilityCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
