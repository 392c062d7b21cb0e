package services

import (
	"errors"
	"fmt"
	"log"

	"catalog/internal/apperrors"
	"catalog/internal/mapper"
	"catalog/internal/models"
	"catalog/internal/repositories"
	"catalog/pkg/rabbitmq"
)

// ProductService handles business logic related to products.
type ProductService struct {
	repo     repositories.ProductRepository
	mapper   *mapper.ProductMapper
	mqClient *rabbitmq.Client // optional, may be nil
}

// NewProductService creates a new ProductService. The RabbitMQ client
// may be nil; event publication is then skipped.
func NewProductService(repo repositories.ProductRepository, productMapper *mapper.ProductMapper, mqClient *rabbitmq.Client) *ProductService {
	return &ProductService{
		repo:     repo,
		mapper:   productMapper,
		mqClient: mqClient,
	}
}

// GetAllProducts retrieves one page of products sorted by name descending.
func (s *ProductService) GetAllProducts(page, size int) (*models.PageResponse, error) {
	productPage, err := s.repo.FindAll(page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to get all products: %w", err)
	}
	return s.toPageResponse(productPage), nil
}

// GetProductByID retrieves a single product by its ID.
func (s *ProductService) GetProductByID(id uint) (*models.ProductResponse, error) {
	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}
	resp := s.mapper.ToResponse(product)
	return &resp, nil
}

// CreateProduct validates a create request, checks name uniqueness, and
// persists the new product.
func (s *ProductService) CreateProduct(req *models.ProductRequest) (*models.ProductResponse, error) {
	if err := validateProductRequest(req); err != nil {
		return nil, err
	}
	if err := validateCategory(req.CategoryName); err != nil {
		return nil, err
	}

	taken, err := s.repo.ExistsByNameIgnoreCase(req.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to check name uniqueness: %w", err)
	}
	if taken {
		return nil, &apperrors.DuplicateNameError{Name: req.Name}
	}

	product, err := s.repo.Save(s.mapper.ToEntity(req))
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	resp := s.mapper.ToResponse(product)
	s.publishEvent("product.created", resp)
	return &resp, nil
}

// UpdateProductByID applies a partial update to an existing product.
// Absent fields are left unchanged; an all-absent request is rejected
// before any store access.
func (s *ProductService) UpdateProductByID(id uint, req *models.UpdateProductRequest) (*models.ProductResponse, error) {
	if req == nil || req.IsEmpty() {
		return nil, &apperrors.EmptyUpdateError{}
	}

	product, err := s.findProduct(id)
	if err != nil {
		return nil, err
	}

	if err := mergeProductUpdate(product, req); err != nil {
		return nil, err
	}

	product, err = s.repo.Save(product)
	if err != nil {
		return nil, fmt.Errorf("failed to update product %d: %w", id, err)
	}

	resp := s.mapper.ToResponse(product)
	s.publishEvent("product.updated", resp)
	return &resp, nil
}

// DeleteProduct removes a product by its ID. The existence check runs
// first, so the store delete is never attempted for a missing product.
func (s *ProductService) DeleteProduct(id uint) error {
	if _, err := s.findProduct(id); err != nil {
		return err
	}
	if err := s.repo.DeleteByID(id); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", id, err)
	}
	s.publishEvent("product.deleted", map[string]interface{}{"id": id})
	return nil
}

// SearchProducts runs a filtered paged query built from the optional
// criteria, sorted by name descending.
func (s *ProductService) SearchProducts(req *models.SearchProductRequest, page, size int) (*models.PageResponse, error) {
	conditions := repositories.BuildSearchConditions(req)
	productPage, err := s.repo.FindFiltered(conditions, page, size)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return s.toPageResponse(productPage), nil
}

func (s *ProductService) findProduct(id uint) (*models.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.NewProductNotFound(id)
		}
		return nil, fmt.Errorf("failed to get product by ID %d: %w", id, err)
	}
	return product, nil
}

func (s *ProductService) toPageResponse(page *models.ProductPage) *models.PageResponse {
	content := make([]models.ProductResponse, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, s.mapper.ToResponse(&page.Content[i]))
	}
	return &models.PageResponse{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
	}
}

// publishEvent publishes a catalog event best-effort. Publication
// failures are logged, never surfaced to the caller.
func (s *ProductService) publishEvent(eventType string, payload interface{}) {
	if s.mqClient == nil {
		return
	}
	if err := s.mqClient.PublishProductEvent(eventType, payload); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", eventType, err)
	}
}
