package services

import (
	"strings"
	"unicode/utf8"

	"catalog/internal/apperrors"
	"catalog/internal/models"
)

const (
	maxNameLength        = 100
	minNameLength        = 3
	maxDescriptionLength = 500
	maxPrice             = 999_999_999
	maxQuantity          = 99_999
)

// validateProductRequest checks a create request against the full-object
// rule set. Field order: null-check, name, description, price, quantity.
// Category membership is checked separately, after these rules.
func validateProductRequest(req *models.ProductRequest) error {
	if req == nil {
		return &apperrors.ValidationError{Field: "request", Message: "Product request cannot be null"}
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return &apperrors.ValidationError{Field: "name", Message: "Product name cannot be blank"}
	}
	if utf8.RuneCountInString(name) < minNameLength || utf8.RuneCountInString(name) > maxNameLength {
		return &apperrors.ValidationError{Field: "name", Message: "Product name must be between 3 - 100 characters"}
	}

	if utf8.RuneCountInString(req.Description) > maxDescriptionLength {
		return &apperrors.ValidationError{Field: "description", Message: "Description must be <= 500 characters"}
	}

	if req.Price == nil {
		return &apperrors.ValidationError{Field: "price", Message: "Price cannot be null"}
	}
	if *req.Price <= 0 || *req.Price > maxPrice {
		return &apperrors.ValidationError{Field: "price", Message: "Price must be > 0 and <= 999,999,999"}
	}

	if req.Quantity == nil {
		return &apperrors.ValidationError{Field: "quantity", Message: "Quantity cannot be null"}
	}
	if *req.Quantity < 0 || *req.Quantity > maxQuantity {
		return &apperrors.ValidationError{Field: "quantity", Message: "Quantity must be >= 0 and <= 99,999"}
	}

	return nil
}

// validateCategory checks membership in the fixed category set.
func validateCategory(category string) error {
	if !models.CategoryExists(category) {
		return &apperrors.ValidationError{Field: "category_name", Message: "Category does not exist: " + category}
	}
	return nil
}

// mergeProductUpdate validates every present field of a partial update,
// then applies them all to the existing product. A failing request never
// mutates the product, so a rejected update cannot reach the store.
//
// Note the update-path price rule accepts zero while the create path
// rejects it. That asymmetry is long-standing observable behavior and is
// preserved as is.
func mergeProductUpdate(product *models.Product, req *models.UpdateProductRequest) error {
	if req == nil || req.IsEmpty() {
		return &apperrors.EmptyUpdateError{}
	}

	if req.Name != nil {
		n := utf8.RuneCountInString(*req.Name)
		if strings.TrimSpace(*req.Name) == "" || n < minNameLength || n > maxNameLength {
			return &apperrors.ValidationError{Field: "name", Message: "Name cannot be blank and must be between 3 - 100 characters"}
		}
	}
	if req.Description != nil {
		if utf8.RuneCountInString(*req.Description) > maxDescriptionLength {
			return &apperrors.ValidationError{Field: "description", Message: "Description must be valid"}
		}
	}
	if req.Price != nil {
		if *req.Price < 0 || *req.Price > maxPrice {
			return &apperrors.ValidationError{Field: "price", Message: "Invalid price"}
		}
	}
	if req.Quantity != nil {
		if *req.Quantity < 0 || *req.Quantity > maxQuantity {
			return &apperrors.ValidationError{Field: "quantity", Message: "Invalid quantity"}
		}
	}
	if req.CategoryName != nil {
		if !models.CategoryExists(*req.CategoryName) {
			return &apperrors.ValidationError{Field: "category_name", Message: "Category does not exist: " + *req.CategoryName}
		}
	}

	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.Quantity != nil {
		product.Quantity = *req.Quantity
	}
	if req.CategoryName != nil {
		product.CategoryName = *req.CategoryName
	}

	return nil
}
