package catalog_cache

import (
	"sync"
	"time"

	"github.com/Nautica-Marine/nautica-store-backend/models"
)

const TTL = 5 * time.Minute

// ── Product list cache ───────────────────────────────────────────────────────
// Stores the full catalog in display order. The cache is authoritative only
// immediately after a Set; any admin catalog write calls Invalidate.

type productEntry struct {
	data      []models.Product
	fetchedAt time.Time
}

var (
	productMu    sync.RWMutex
	productCache *productEntry
)

func GetProducts() ([]models.Product, bool) {
	productMu.RLock()
	defer productMu.RUnlock()
	if productCache != nil && time.Since(productCache.fetchedAt) < TTL {
		return productCache.data, true
	}
	return nil, false
}

func SetProducts(data []models.Product) {
	productMu.Lock()
	defer productMu.Unlock()
	productCache = &productEntry{data: data, fetchedAt: time.Now()}
}

// ── Brand list cache ─────────────────────────────────────────────────────────

type brandEntry struct {
	data      []models.Brand
	fetchedAt time.Time
}

var (
	brandMu    sync.RWMutex
	brandCache *brandEntry
)

func GetBrands() ([]models.Brand, bool) {
	brandMu.RLock()
	defer brandMu.RUnlock()
	if brandCache != nil && time.Since(brandCache.fetchedAt) < TTL {
		return brandCache.data, true
	}
	return nil, false
}

func SetBrands(data []models.Brand) {
	brandMu.Lock()
	defer brandMu.Unlock()
	brandCache = &brandEntry{data: data, fetchedAt: time.Now()}
}

// ── Invalidate everything (call on any product/brand create/update/delete) ───

func Invalidate() {
	productMu.Lock()
	productCache = nil
	productMu.Unlock()

	brandMu.Lock()
	brandCache = nil
	brandMu.Unlock()
}
