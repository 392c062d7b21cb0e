package models

// ProductPage is one page of product rows as returned by the store,
// together with the paging metadata derived from the store's counts.
type ProductPage struct {
	Content       []Product
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
	First         bool
	Last          bool
}

// NewProductPage builds the paging metadata for a page of rows given the
// store's total row count. An empty result set yields zero total pages
// with both First and Last set.
func NewProductPage(content []Product, page, size int, total int64) *ProductPage {
	totalPages := 0
	if size > 0 {
		totalPages = int((total + int64(size) - 1) / int64(size))
	}
	return &ProductPage{
		Content:       content,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
		First:         page == 0,
		Last:          page >= totalPages-1,
	}
}

// PageResponse is the client-facing page of product responses. All
// metadata is carried over from the store page, never recomputed.
type PageResponse struct {
	Content       []ProductResponse `json:"content"`
	Page          int               `json:"page"`
	Size          int               `json:"size"`
	TotalElements int64             `json:"total_elements"`
	TotalPages    int               `json:"total_pages"`
	First         bool              `json:"first"`
	Last          bool              `json:"last"`
}
