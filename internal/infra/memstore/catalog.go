package memstore

import (
	"context"
	"encoding/json"
	"os"
	"sort"
	"strings"
	"sync"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"

	"github.com/pkg/errors"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// CatalogStore implements repository.CatalogRepository in memory. The catalog
// is seeded at construction, either from a JSON file or from the built-in
// fixture set.
type CatalogStore struct {
	mu       sync.RWMutex
	products map[string]*entity.Product
	order    []string // insertion order for stable listings
}

// NewCatalogStore is the constructor for CatalogStore.
func NewCatalogStore(cfg *config.Config) (*CatalogStore, error) {
	seed := defaultCatalog
	if cfg.Catalog != nil && cfg.Catalog.SeedFile != "" {
		loaded, err := loadSeedFile(cfg.Catalog.SeedFile)
		if err != nil {
			return nil, err
		}
		seed = loaded
	}

	s := &CatalogStore{products: make(map[string]*entity.Product, len(seed))}
	for i := range seed {
		product := seed[i]
		s.products[product.ID] = &product
		s.order = append(s.order, product.ID)
	}

	return s, nil
}

func loadSeedFile(path string) ([]entity.Product, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read catalog seed file")
	}

	var products []entity.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, errors.Wrap(err, "parse catalog seed file")
	}

	return products, nil
}

// List returns one page of products matching the query.
func (s *CatalogStore) List(ctx context.Context, query entity.ProductQuery) (*entity.ProductPage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matched := make([]entity.Product, 0, len(s.order))
	search := strings.ToLower(query.Search)
	for _, id := range s.order {
		p := s.products[id]
		if query.Category != "" && !strings.EqualFold(p.Category, query.Category) {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		matched = append(matched, *p)
	}

	page := query.Page
	if page < 1 {
		page = 1
	}
	limit := query.Limit
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}

	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}

	return &entity.ProductPage{
		Products: matched[start:end],
		Page:     page,
		Limit:    limit,
		Total:    len(matched),
	}, nil
}

// FindByID returns a single product.
func (s *CatalogStore) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	product, ok := s.products[id]
	if !ok {
		return nil, repository.ErrProductNotFound
	}
	copied := *product

	return &copied, nil
}

// Featured returns the featured product selection in a stable order.
func (s *CatalogStore) Featured(ctx context.Context) ([]entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := make([]entity.Product, 0)
	for _, id := range s.order {
		if s.products[id].Featured {
			featured = append(featured, *s.products[id])
		}
	}
	sort.SliceStable(featured, func(i, j int) bool { return featured[i].Name < featured[j].Name })

	return featured, nil
}

// AdjustStock changes a product's stock by delta. Reservations that would
// take stock negative fail with ErrInsufficientStock.
func (s *CatalogStore) AdjustStock(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	product, ok := s.products[id]
	if !ok {
		return repository.ErrProductNotFound
	}
	if product.Stock+delta < 0 {
		return repository.ErrInsufficientStock
	}
	product.Stock += delta

	return nil
}
