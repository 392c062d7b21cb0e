package repositories_test

import (
	"testing"

	"catalog/internal/models"
	"catalog/internal/repositories"

	"github.com/stretchr/testify/assert"
)

func i64(v int64) *int64 { return &v }

func f64(v float64) *float64 { return &v }

func TestBuildSearchConditions_Empty(t *testing.T) {
	assert.Empty(t, repositories.BuildSearchConditions(nil))
	assert.Empty(t, repositories.BuildSearchConditions(&models.SearchProductRequest{}))

	// Blank strings impose no constraint
	assert.Empty(t, repositories.BuildSearchConditions(&models.SearchProductRequest{
		Name:         "   ",
		CategoryName: "",
	}))
}

func TestBuildSearchConditions_AllFields(t *testing.T) {
	req := &models.SearchProductRequest{
		Name:         "lap",
		QuantityMin:  i64(1),
		QuantityMax:  i64(50),
		PriceMin:     f64(10),
		PriceMax:     f64(2000),
		CategoryName: "ELEC",
	}

	conditions := repositories.BuildSearchConditions(req)
	assert.Len(t, conditions, 6)

	assert.Equal(t, repositories.Condition{Field: "name", Op: repositories.OpContains, Value: "lap"}, conditions[0])
	assert.Equal(t, repositories.Condition{Field: "quantity", Op: repositories.OpGTE, Value: int64(1)}, conditions[1])
	assert.Equal(t, repositories.Condition{Field: "quantity", Op: repositories.OpLTE, Value: int64(50)}, conditions[2])
	assert.Equal(t, repositories.Condition{Field: "price", Op: repositories.OpGTE, Value: float64(10)}, conditions[3])
	assert.Equal(t, repositories.Condition{Field: "price", Op: repositories.OpLTE, Value: float64(2000)}, conditions[4])
	assert.Equal(t, repositories.Condition{Field: "category_name", Op: repositories.OpContains, Value: "ELEC"}, conditions[5])
}

func seedRepo(t *testing.T) *repositories.MockProductRepository {
	t.Helper()
	repo := repositories.NewMockProductRepository()
	products := []models.Product{
		{Name: "Laptop", Quantity: 10, Price: 1000, CategoryName: "ELECTRONICS"},
		{Name: "Lamp", Quantity: 3, Price: 25, CategoryName: "OTHER"},
		{Name: "Novel", Quantity: 100, Price: 12.5, CategoryName: "BOOKS"},
		{Name: "T-Shirt", Quantity: 40, Price: 9.99, CategoryName: "CLOTHING"},
		{Name: "Chocolate", Quantity: 500, Price: 3.5, CategoryName: "FOOD"},
	}
	for i := range products {
		_, err := repo.Save(&products[i])
		assert.NoError(t, err)
	}
	return repo
}

func TestFindFiltered_NoConditionsMatchesEverything(t *testing.T) {
	repo := seedRepo(t)

	page, err := repo.FindFiltered(nil, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), page.TotalElements)

	// Sorted by name descending
	assert.Equal(t, "T-Shirt", page.Content[0].Name)
	assert.Equal(t, "Chocolate", page.Content[len(page.Content)-1].Name)
}

func TestFindFiltered_NarrowsMonotonically(t *testing.T) {
	repo := seedRepo(t)

	base, err := repo.FindFiltered(nil, 0, 10)
	assert.NoError(t, err)

	// Adding any one bound narrows or preserves the result set
	bounds := [][]repositories.Condition{
		repositories.BuildSearchConditions(&models.SearchProductRequest{Name: "la"}),
		repositories.BuildSearchConditions(&models.SearchProductRequest{QuantityMin: i64(40)}),
		repositories.BuildSearchConditions(&models.SearchProductRequest{PriceMax: f64(100)}),
		repositories.BuildSearchConditions(&models.SearchProductRequest{CategoryName: "elect"}),
	}
	for _, conditions := range bounds {
		page, err := repo.FindFiltered(conditions, 0, 10)
		assert.NoError(t, err)
		assert.LessOrEqual(t, page.TotalElements, base.TotalElements)
	}
}

func TestFindFiltered_Conjunction(t *testing.T) {
	repo := seedRepo(t)

	conditions := repositories.BuildSearchConditions(&models.SearchProductRequest{
		Name:     "la",
		PriceMin: f64(100),
	})
	page, err := repo.FindFiltered(conditions, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "Laptop", page.Content[0].Name)
}

func TestFindFiltered_CategorySubstringIgnoresCase(t *testing.T) {
	repo := seedRepo(t)

	conditions := repositories.BuildSearchConditions(&models.SearchProductRequest{CategoryName: "oth"})
	page, err := repo.FindFiltered(conditions, 0, 10)
	assert.NoError(t, err)

	// "oth" matches both OTHER and CLOTHING: substring semantics are
	// intentionally looser than the create/update membership check.
	assert.Equal(t, int64(2), page.TotalElements)
}

func TestFindFiltered_InclusiveBounds(t *testing.T) {
	repo := seedRepo(t)

	conditions := repositories.BuildSearchConditions(&models.SearchProductRequest{
		QuantityMin: i64(10),
		QuantityMax: i64(10),
	})
	page, err := repo.FindFiltered(conditions, 0, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), page.TotalElements)
	assert.Equal(t, "Laptop", page.Content[0].Name)
}

func TestFindAll_Pagination(t *testing.T) {
	repo := repositories.NewMockProductRepository()
	names := []string{"A", "B", "C", "D", "E", "F", "G", "H", "I", "J"}
	for _, n := range names {
		_, err := repo.Save(&models.Product{Name: n + "-product", Quantity: 1, Price: 1, CategoryName: "OTHER"})
		assert.NoError(t, err)
	}

	page, err := repo.FindAll(0, 5)
	assert.NoError(t, err)
	assert.Len(t, page.Content, 5)
	assert.Equal(t, int64(10), page.TotalElements)
	assert.Equal(t, 2, page.TotalPages)
	assert.True(t, page.First)
	assert.False(t, page.Last)

	last, err := repo.FindAll(1, 5)
	assert.NoError(t, err)
	assert.Len(t, last.Content, 5)
	assert.False(t, last.First)
	assert.True(t, last.Last)

	// First item on page 0 is the highest name descending
	assert.Equal(t, "J-product", page.Content[0].Name)
}

func TestMockRepository_CRUD(t *testing.T) {
	repo := repositories.NewMockProductRepository()

	saved, err := repo.Save(&models.Product{Name: "Laptop", Quantity: 10, Price: 1000, CategoryName: "ELECTRONICS"})
	assert.NoError(t, err)
	assert.NotZero(t, saved.ID)

	found, err := repo.FindByID(saved.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Laptop", found.Name)

	_, err = repo.FindByID(999)
	assert.ErrorIs(t, err, repositories.ErrNotFound)

	exists, err := repo.ExistsByNameIgnoreCase("lApToP")
	assert.NoError(t, err)
	assert.True(t, exists)

	assert.NoError(t, repo.DeleteByID(saved.ID))
	assert.ErrorIs(t, repo.DeleteByID(saved.ID), repositories.ErrNotFound)
}
