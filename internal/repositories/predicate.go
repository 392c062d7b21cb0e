package repositories

import (
	"strings"

	"catalog/internal/models"
)

// Op is a filter operator applied to a single product column.
type Op string

const (
	// OpContains matches when the column contains the value as a
	// case-insensitive substring.
	OpContains Op = "contains"
	// OpGTE matches when the column is >= the value.
	OpGTE Op = "gte"
	// OpLTE matches when the column is <= the value.
	OpLTE Op = "lte"
)

// Condition is one (column, operator, value) filter term. A list of
// conditions forms a conjunction; an empty list matches every row.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// BuildSearchConditions turns the optional search criteria into the
// conjunctive condition list consumed by the paged query executors.
// Absent or blank criteria contribute nothing; numeric bounds are
// inclusive; name and category match as case-insensitive substrings.
func BuildSearchConditions(req *models.SearchProductRequest) []Condition {
	var conditions []Condition
	if req == nil {
		return conditions
	}

	if strings.TrimSpace(req.Name) != "" {
		conditions = append(conditions, Condition{Field: "name", Op: OpContains, Value: req.Name})
	}
	if req.QuantityMin != nil {
		conditions = append(conditions, Condition{Field: "quantity", Op: OpGTE, Value: *req.QuantityMin})
	}
	if req.QuantityMax != nil {
		conditions = append(conditions, Condition{Field: "quantity", Op: OpLTE, Value: *req.QuantityMax})
	}
	if req.PriceMin != nil {
		conditions = append(conditions, Condition{Field: "price", Op: OpGTE, Value: *req.PriceMin})
	}
	if req.PriceMax != nil {
		conditions = append(conditions, Condition{Field: "price", Op: OpLTE, Value: *req.PriceMax})
	}
	if strings.TrimSpace(req.CategoryName) != "" {
		conditions = append(conditions, Condition{Field: "category_name", Op: OpContains, Value: req.CategoryName})
	}

	return conditions
}

// MatchesProduct evaluates a single condition against a product in
// memory. It is the in-process counterpart of the SQL translation in
// the GORM repository and backs the mock repository's filtering.
func MatchesProduct(p models.Product, c Condition) bool {
	switch c.Field {
	case "name":
		return containsFold(p.Name, c.Value)
	case "category_name":
		return containsFold(p.CategoryName, c.Value)
	case "quantity":
		bound, ok := c.Value.(int64)
		if !ok {
			return false
		}
		return compareInRange(float64(p.Quantity), float64(bound), c.Op)
	case "price":
		bound, ok := c.Value.(float64)
		if !ok {
			return false
		}
		return compareInRange(p.Price, bound, c.Op)
	}
	return false
}

func containsFold(column string, value interface{}) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	return strings.Contains(strings.ToLower(column), strings.ToLower(s))
}

func compareInRange(column, bound float64, op Op) bool {
	switch op {
	case OpGTE:
		return column >= bound
	case OpLTE:
		return column <= bound
	}
	return false
}
