package models_test

import (
	"testing"

	"catalog/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestNewProductPage(t *testing.T) {
	rows := make([]models.Product, 5)

	// 10 total rows, size 5: two pages
	page := models.NewProductPage(rows, 0, 5, 10)
	assert.Equal(t, 5, len(page.Content))
	assert.Equal(t, int64(10), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)

	page = models.NewProductPage(rows, 1, 5, 10)
	assert.False(t, page.First)
	assert.True(t, page.Last)

	// A partial final page still counts as a page
	page = models.NewProductPage(rows[:1], 2, 5, 11)
	assert.Equal(t, 3, page.TotalPages)
	assert.True(t, page.Last)
}

func TestNewProductPage_Empty(t *testing.T) {
	page := models.NewProductPage(nil, 0, 10, 0)
	assert.Empty(t, page.Content)
	assert.Equal(t, int64(0), page.TotalElements)
	assert.Equal(t, 0, page.TotalPages)
	assert.True(t, page.First)
	assert.True(t, page.Last)
}
