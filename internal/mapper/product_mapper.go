package mapper

import "catalog/internal/models"

// ProductMapper converts between product request/response payloads and
// the stored entity.
type ProductMapper struct{}

// NewProductMapper creates a new ProductMapper.
func NewProductMapper() *ProductMapper {
	return &ProductMapper{}
}

// ToEntity maps a validated create request to a product entity. The
// caller guarantees Price and Quantity are present.
func (m *ProductMapper) ToEntity(req *models.ProductRequest) *models.Product {
	return &models.Product{
		Name:         req.Name,
		Price:        *req.Price,
		Quantity:     *req.Quantity,
		Description:  req.Description,
		CategoryName: req.CategoryName,
	}
}

// ToResponse maps a product entity to its client-facing payload.
func (m *ProductMapper) ToResponse(product *models.Product) models.ProductResponse {
	return models.ProductResponse{
		ID:           product.ID,
		Name:         product.Name,
		Quantity:     product.Quantity,
		Price:        product.Price,
		Description:  product.Description,
		CategoryName: product.CategoryName,
	}
}
