package repositories

import (
	"errors"

	"catalog/internal/models"
)

// ErrNotFound is returned by repositories when no row exists for the
// requested identity.
var ErrNotFound = errors.New("record not found")

// ProductRepository defines the interface for product data access.
// FindAll and FindFiltered return pages sorted by name descending.
type ProductRepository interface {
	FindByID(id uint) (*models.Product, error)
	Save(product *models.Product) (*models.Product, error)
	DeleteByID(id uint) error
	FindAll(page, size int) (*models.ProductPage, error)
	FindFiltered(conditions []Condition, page, size int) (*models.ProductPage, error)
	ExistsByNameIgnoreCase(name string) (bool, error)
}
