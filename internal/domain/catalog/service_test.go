// internal/domain/catalog/service_test.go
package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSeed() []Product {
	return []Product{
		{
			ID:          "phone-1",
			Name:        "TechPhone Pro Max",
			Description: "Le smartphone le plus avancé",
			Price:       999.99,
			Category:    CategorySmartphone,
			Stock:       15,
			Specifications: []Specification{
				{Name: "Écran", Value: "6.7 pouces"},
			},
		},
		{
			ID:          "laptop-1",
			Name:        "TechBook Pro",
			Description: "Ordinateur portable pour professionnels",
			Price:       1999.99,
			Category:    CategoryLaptop,
			Stock:       8,
		},
		{
			ID:          "accessory-1",
			Name:        "TechPods Pro",
			Description: "Écouteurs sans fil",
			Price:       249.99,
			Category:    CategoryAccessory,
			Stock:       50,
		},
	}
}

func TestSeedProducts(t *testing.T) {
	products := SeedProducts()

	require.Len(t, products, 12)

	counts := make(map[Category]int)
	ids := make(map[string]bool)
	for _, p := range products {
		assert.True(t, p.Category.IsValid(), "category of %s", p.ID)
		assert.False(t, ids[p.ID], "duplicate id %s", p.ID)
		ids[p.ID] = true
		counts[p.Category]++
	}

	assert.Equal(t, 3, counts[CategorySmartphone])
	assert.Equal(t, 3, counts[CategoryLaptop])
	assert.Equal(t, 3, counts[CategoryTablet])
	assert.Equal(t, 3, counts[CategoryAccessory])
}

func TestService_GetByID(t *testing.T) {
	svc := NewService(testSeed())

	product, err := svc.GetByID("phone-1")
	require.NoError(t, err)
	assert.Equal(t, "TechPhone Pro Max", product.Name)

	_, err = svc.GetByID("missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_GetByCategory(t *testing.T) {
	svc := NewService(testSeed())

	phones := svc.GetByCategory(CategorySmartphone)
	require.Len(t, phones, 1)
	assert.Equal(t, "phone-1", phones[0].ID)

	tablets := svc.GetByCategory(CategoryTablet)
	assert.Empty(t, tablets)
}

func TestService_Search(t *testing.T) {
	svc := NewService(testSeed())

	t.Run("matches name case-insensitively", func(t *testing.T) {
		results := svc.Search("TECHPHONE")
		require.Len(t, results, 1)
		assert.Equal(t, "phone-1", results[0].ID)
	})

	t.Run("matches description", func(t *testing.T) {
		results := svc.Search("portable")
		require.Len(t, results, 1)
		assert.Equal(t, "laptop-1", results[0].ID)
	})

	t.Run("preserves catalog order", func(t *testing.T) {
		results := svc.Search("pro")
		require.Len(t, results, 3)
		assert.Equal(t, "phone-1", results[0].ID)
		assert.Equal(t, "laptop-1", results[1].ID)
		assert.Equal(t, "accessory-1", results[2].ID)
	})

	t.Run("empty query returns nothing", func(t *testing.T) {
		assert.Empty(t, svc.Search(""))
		assert.Empty(t, svc.Search("   "))
	})

	t.Run("no match returns nothing", func(t *testing.T) {
		assert.Empty(t, svc.Search("toaster"))
	})
}

func TestService_Add(t *testing.T) {
	svc := NewService(testSeed())

	product, err := svc.Add(&CreateRequest{
		Name:     "TechWatch",
		Price:    349.99,
		Category: CategoryAccessory,
		Stock:    20,
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(product.ID, "product-"))
	assert.False(t, product.CreatedAt.IsZero())
	assert.Len(t, svc.List(), 4)

	fetched, err := svc.GetByID(product.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechWatch", fetched.Name)
}

func TestService_Add_Invalid(t *testing.T) {
	svc := NewService(testSeed())

	_, err := svc.Add(&CreateRequest{Price: 10, Category: CategoryLaptop})
	assert.Error(t, err)

	_, err = svc.Add(&CreateRequest{Name: "X", Price: 10, Category: "furniture"})
	assert.Error(t, err)

	_, err = svc.Add(&CreateRequest{Name: "X", Price: -1, Category: CategoryLaptop})
	assert.Error(t, err)
}

func TestService_Update(t *testing.T) {
	svc := NewService(testSeed())

	newPrice := 899.99
	newStock := 3
	updated, err := svc.Update("phone-1", &UpdateRequest{
		Price: &newPrice,
		Stock: &newStock,
	})
	require.NoError(t, err)

	assert.Equal(t, 899.99, updated.Price)
	assert.Equal(t, 3, updated.Stock)
	// Untouched fields survive the merge
	assert.Equal(t, "TechPhone Pro Max", updated.Name)
	assert.Equal(t, CategorySmartphone, updated.Category)

	_, err = svc.Update("missing", &UpdateRequest{Price: &newPrice})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Update_RejectedLeavesProductUntouched(t *testing.T) {
	svc := NewService(testSeed())

	newName := "Renamed"
	badPrice := -5.0
	_, err := svc.Update("phone-1", &UpdateRequest{Name: &newName, Price: &badPrice})
	require.Error(t, err)

	badCategory := Category("furniture")
	_, err = svc.Update("phone-1", &UpdateRequest{Name: &newName, Category: &badCategory})
	require.Error(t, err)

	// A rejected update changes nothing, not even the valid fields
	product, err := svc.GetByID("phone-1")
	require.NoError(t, err)
	assert.Equal(t, "TechPhone Pro Max", product.Name)
	assert.Equal(t, 999.99, product.Price)
	assert.Equal(t, CategorySmartphone, product.Category)
}

func TestService_Remove(t *testing.T) {
	svc := NewService(testSeed())

	require.NoError(t, svc.Remove("laptop-1"))
	assert.Len(t, svc.List(), 2)

	_, err := svc.GetByID("laptop-1")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Remove("laptop-1"), ErrNotFound)
}

func TestProduct_Clone_Isolation(t *testing.T) {
	svc := NewService(testSeed())

	product, err := svc.GetByID("phone-1")
	require.NoError(t, err)
	product.Specifications[0].Value = "changed"

	fresh, err := svc.GetByID("phone-1")
	require.NoError(t, err)
	assert.Equal(t, "6.7 pouces", fresh.Specifications[0].Value)
}
