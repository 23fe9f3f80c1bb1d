package command

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

func TestCreateProduct(t *testing.T) {
	valid := CreateProductCommand{
		OwnerID:     10,
		Name:        "Copper Wire 2mm",
		Category:    "Electrical",
		Price:       decimal.NewFromFloat(12.90),
		Quantity:    40,
		ProductCode: "WIRE-CU-2",
	}

	testCases := []struct {
		name    string
		mutate  func(cmd *CreateProductCommand)
		wantErr string
	}{
		{
			name:    "missing owner",
			mutate:  func(cmd *CreateProductCommand) { cmd.OwnerID = 0 },
			wantErr: "owner id is required",
		},
		{
			name:    "missing name",
			mutate:  func(cmd *CreateProductCommand) { cmd.Name = "" },
			wantErr: "product name is required",
		},
		{
			name:    "negative price",
			mutate:  func(cmd *CreateProductCommand) { cmd.Price = decimal.NewFromFloat(-1) },
			wantErr: "price cannot be negative",
		},
		{
			name:    "negative quantity",
			mutate:  func(cmd *CreateProductCommand) { cmd.Quantity = -1 },
			wantErr: "quantity cannot be negative",
		},
		{
			name:    "missing product code",
			mutate:  func(cmd *CreateProductCommand) { cmd.ProductCode = "" },
			wantErr: "product code is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newMemoryRepo()
			handler := NewCreateProductHandler(repo)

			cmd := valid
			tc.mutate(&cmd)

			product, err := handler.Handle(cmd)
			assert.Nil(t, product)
			assert.EqualError(t, err, tc.wantErr)
		})
	}

	t.Run("creates an active product", func(t *testing.T) {
		repo := newMemoryRepo()
		handler := NewCreateProductHandler(repo)

		product, err := handler.Handle(valid)

		assert.NoError(t, err)
		assert.NotZero(t, product.ID)
		assert.Equal(t, uint(10), product.UserID)
		assert.True(t, product.IsActive)
		assert.False(t, product.CreatedAt.IsZero())
	})

	t.Run("rejects duplicate product code across owners", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(domain.Product{ID: 5, UserID: 77, ProductCode: "WIRE-CU-2"})
		handler := NewCreateProductHandler(repo)

		product, err := handler.Handle(valid)

		assert.Nil(t, product)
		assert.EqualError(t, err, "product code already exists")
	})
}

func TestUpdateProduct(t *testing.T) {
	t.Run("updates owned product fields", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(productFixture(1, 10))
		handler := NewUpdateProductHandler(repo)

		product, err := handler.Handle(UpdateProductCommand{
			ProductID: 1,
			OwnerID:   10,
			Name:      "Steel Bolt M10",
			Category:  "Hardware",
			Price:     decimal.NewFromFloat(3.10),
			Quantity:  80,
		})

		assert.NoError(t, err)
		assert.Equal(t, "Steel Bolt M10", product.Name)
		assert.Equal(t, 80, product.Quantity)
		// Business key survives updates.
		assert.Equal(t, "BOLT-M8", product.ProductCode)
	})

	t.Run("wrong owner behaves like not found", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(productFixture(1, 10))
		handler := NewUpdateProductHandler(repo)

		product, err := handler.Handle(UpdateProductCommand{
			ProductID: 1,
			OwnerID:   99,
			Name:      "Hijacked",
			Price:     decimal.NewFromFloat(1),
		})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, domain.ErrProductNotFound)
		assert.Equal(t, "Steel Bolt M8", repo.products[1].Name)
	})
}
