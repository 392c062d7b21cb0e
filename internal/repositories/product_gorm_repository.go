package repositories

import (
	"fmt"
	"strings"

	"catalog/internal/models"

	"gorm.io/gorm"
)

// GORMProductRepository is a GORM implementation of ProductRepository.
type GORMProductRepository struct {
	db *gorm.DB
}

// NewGORMProductRepository creates a new instance of GORMProductRepository.
func NewGORMProductRepository(db *gorm.DB) *GORMProductRepository {
	return &GORMProductRepository{
		db: db,
	}
}

// FindByID retrieves a single product by its ID from the database.
func (r *GORMProductRepository) FindByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := r.db.First(&product, "id = ?", id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return &product, nil
}

// Save persists a product, inserting it when the ID is unset and
// updating the existing row otherwise.
func (r *GORMProductRepository) Save(product *models.Product) (*models.Product, error) {
	if err := r.db.Save(product).Error; err != nil {
		return nil, fmt.Errorf("failed to save product: %w", err)
	}
	return product, nil
}

// DeleteByID deletes a product by its ID from the database.
func (r *GORMProductRepository) DeleteByID(id uint) error {
	res := r.db.Delete(&models.Product{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete product: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindAll retrieves one page of products sorted by name descending.
func (r *GORMProductRepository) FindAll(page, size int) (*models.ProductPage, error) {
	return r.pagedQuery(r.db.Model(&models.Product{}), page, size)
}

// FindFiltered retrieves one page of products matching every condition,
// sorted by name descending.
func (r *GORMProductRepository) FindFiltered(conditions []Condition, page, size int) (*models.ProductPage, error) {
	query := r.db.Model(&models.Product{})
	for _, c := range conditions {
		switch c.Op {
		case OpContains:
			pattern := "%" + strings.ToLower(fmt.Sprintf("%v", c.Value)) + "%"
			query = query.Where(fmt.Sprintf("LOWER(%s) LIKE ?", c.Field), pattern)
		case OpGTE:
			query = query.Where(fmt.Sprintf("%s >= ?", c.Field), c.Value)
		case OpLTE:
			query = query.Where(fmt.Sprintf("%s <= ?", c.Field), c.Value)
		}
	}
	return r.pagedQuery(query, page, size)
}

// ExistsByNameIgnoreCase reports whether a product with the given name
// already exists, ignoring case.
func (r *GORMProductRepository) ExistsByNameIgnoreCase(name string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Product{}).
		Where("LOWER(name) = ?", strings.ToLower(name)).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check product name %q: %w", name, err)
	}
	return count > 0, nil
}

func (r *GORMProductRepository) pagedQuery(query *gorm.DB, page, size int) (*models.ProductPage, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	var products []models.Product
	err := query.Order("name DESC").
		Offset(page * size).
		Limit(size).
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}

	return models.NewProductPage(products, page, size, total), nil
}
