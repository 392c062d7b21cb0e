package apperrors

import "fmt"

// NotFoundError indicates that an entity does not exist for the
// requested identity.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NewProductNotFound creates a NotFoundError for a missing product.
func NewProductNotFound(id uint) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf("Product not found with id: %d", id)}
}

// ValidationError indicates a field-level business rule violation. The
// message text is part of the external contract and must stay literal.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// EmptyUpdateError indicates a partial update request with no fields
// present. It is rejected before any store access.
type EmptyUpdateError struct{}

func (e *EmptyUpdateError) Error() string {
	return "Update request cannot be empty"
}

// DuplicateNameError indicates a create request whose name collides
// (case-insensitively) with an existing product.
type DuplicateNameError struct {
	Name string
}

func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("Product with name '%s' already exists", e.Name)
}
