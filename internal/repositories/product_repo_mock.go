package repositories

import (
	"sort"
	"strings"
	"sync"

	"catalog/internal/models"
)

// MockProductRepository is an in-memory implementation of ProductRepository.
type MockProductRepository struct {
	products map[uint]models.Product
	nextID   uint
	mu       sync.RWMutex
}

// NewMockProductRepository creates a new instance of MockProductRepository.
func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		products: make(map[uint]models.Product),
		nextID:   1,
	}
}

// FindByID returns a product by its ID.
func (r *MockProductRepository) FindByID(id uint) (*models.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}

// Save stores a product, assigning an ID when it has none.
func (r *MockProductRepository) Save(product *models.Product) (*models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == 0 {
		product.ID = r.nextID
		r.nextID++
	}
	r.products[product.ID] = *product
	return product, nil
}

// DeleteByID removes a product by its ID.
func (r *MockProductRepository) DeleteByID(id uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[id]; !ok {
		return ErrNotFound
	}
	delete(r.products, id)
	return nil
}

// FindAll returns one page of products sorted by name descending.
func (r *MockProductRepository) FindAll(page, size int) (*models.ProductPage, error) {
	return r.FindFiltered(nil, page, size)
}

// FindFiltered returns one page of products matching every condition,
// sorted by name descending.
func (r *MockProductRepository) FindFiltered(conditions []Condition, page, size int) (*models.ProductPage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]models.Product, 0, len(r.products))
	for _, p := range r.products {
		ok := true
		for _, c := range conditions {
			if !MatchesProduct(p, c) {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, p)
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name > matched[j].Name
	})

	total := int64(len(matched))
	start := page * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	return models.NewProductPage(matched[start:end], page, size, total), nil
}

// ExistsByNameIgnoreCase reports whether a product with the given name
// is already stored, ignoring case.
func (r *MockProductRepository) ExistsByNameIgnoreCase(name string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.products {
		if strings.EqualFold(p.Name, name) {
			return true, nil
		}
	}
	return false, nil
}
