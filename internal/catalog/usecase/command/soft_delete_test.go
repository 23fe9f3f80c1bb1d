package command

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSoftDelete(t *testing.T) {
	t.Run("deactivates an owned product", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(productFixture(1, 10))
		handler := NewSoftDeleteHandler(repo)

		outcome := handler.Handle(SoftDeleteCommand{ProductID: 1, OwnerID: 10})

		assert.True(t, outcome.Success)
		assert.Equal(t, "Product deactivated successfully.", outcome.Message)
		assert.False(t, repo.products[1].IsActive)
	})

	t.Run("succeeds even when references exist", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(productFixture(1, 10))
		repo.addRefs("order_details", 1, 7)
		repo.addRefs("inventory_logs", 1, 12)
		handler := NewSoftDeleteHandler(repo)

		outcome := handler.Handle(SoftDeleteCommand{ProductID: 1, OwnerID: 10})

		assert.True(t, outcome.Success)
		// Nothing was removed, product row included.
		assert.Contains(t, repo.products, uint(1))
		assert.Equal(t, int64(7), repo.refs["order_details"][1])
		assert.Equal(t, int64(12), repo.refs["inventory_logs"][1])
	})

	t.Run("wrong owner behaves like not found", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(productFixture(1, 10))
		handler := NewSoftDeleteHandler(repo)

		outcome := handler.Handle(SoftDeleteCommand{ProductID: 1, OwnerID: 99})

		assert.False(t, outcome.Success)
		assert.Equal(t, "Product not found or access denied.", outcome.Message)
		assert.True(t, repo.products[1].IsActive)
	})

	t.Run("reports generic failure on store error", func(t *testing.T) {
		repo := newMemoryRepo()
		repo.addProduct(productFixture(1, 10))
		repo.deactivateErr = errors.New("deadlock detected")
		handler := NewSoftDeleteHandler(repo)

		outcome := handler.Handle(SoftDeleteCommand{ProductID: 1, OwnerID: 10})

		assert.False(t, outcome.Success)
		assert.Equal(t, "Database error occurred while deleting product.", outcome.Message)
	})
}
