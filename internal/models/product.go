package models

import "time"

// Product represents a product in the catalog.
type Product struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Name         string    `json:"name" gorm:"type:varchar(100)"`
	Quantity     int64     `json:"quantity"`
	Price        float64   `json:"price"`
	Description  string    `json:"description" gorm:"type:varchar(500)"`
	CategoryName string    `json:"category_name" gorm:"type:varchar(50)"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProductRequest is the request body for creating a product.
// Price and Quantity are pointers so a missing field can be told
// apart from a zero value during validation.
type ProductRequest struct {
	Name         string   `json:"name"`
	Price        *float64 `json:"price"`
	Quantity     *int64   `json:"quantity"`
	Description  string   `json:"description"`
	CategoryName string   `json:"category_name"`
}

// UpdateProductRequest is the request body for a partial product update.
// Each field is optional: nil means "leave unchanged", non-nil means
// "validate and apply". Clearing a field to empty is not supported.
type UpdateProductRequest struct {
	Name         *string  `json:"name"`
	Quantity     *int64   `json:"quantity"`
	Price        *float64 `json:"price"`
	Description  *string  `json:"description"`
	CategoryName *string  `json:"category_name"`
}

// IsEmpty reports whether no field of the update request is present.
func (r *UpdateProductRequest) IsEmpty() bool {
	return r.Name == nil &&
		r.Quantity == nil &&
		r.Price == nil &&
		r.Description == nil &&
		r.CategoryName == nil
}

// SearchProductRequest carries the optional filter criteria for a
// product search. Absent values impose no constraint; present values
// combine conjunctively.
type SearchProductRequest struct {
	Name         string   `json:"name"`
	QuantityMin  *int64   `json:"quantity_min"`
	QuantityMax  *int64   `json:"quantity_max"`
	PriceMin     *float64 `json:"price_min"`
	PriceMax     *float64 `json:"price_max"`
	CategoryName string   `json:"category_name"`
}

// ProductResponse is the product payload returned to clients.
type ProductResponse struct {
	ID           uint    `json:"id"`
	Name         string  `json:"name"`
	Quantity     int64   `json:"quantity"`
	Price        float64 `json:"price"`
	Description  string  `json:"description"`
	CategoryName string  `json:"category_name"`
}
