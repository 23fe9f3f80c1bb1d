package repository

import (
	"time"

	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
)

type GormProductRepository struct {
	db *gorm.DB
}

func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(
		&domain.Product{},
		&domain.OrderDetail{},
		&domain.CartItem{},
		&domain.InventoryLog{},
	)
}

func (r *GormProductRepository) Create(product *domain.Product) error {
	return r.db.Create(product).Error
}

func (r *GormProductRepository) FindByID(id, ownerID uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("id = ? AND user_id = ?", id, ownerID).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindByCode(code string) (*domain.Product, error) {
	var product domain.Product
	err := r.db.Where("product_code = ?", code).First(&product).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *GormProductRepository) FindAll(ownerID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	var products []domain.Product

	query := r.db.Where("user_id = ?", ownerID)
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}

	err := query.Order("created_at DESC").Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Update(product *domain.Product) error {
	return r.db.Save(product).Error
}

func (r *GormProductRepository) Delete(id, ownerID uint) (int64, error) {
	result := r.db.Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Product{})
	return result.RowsAffected, result.Error
}

func (r *GormProductRepository) Deactivate(id, ownerID uint) (int64, error) {
	result := r.db.Model(&domain.Product{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now(),
		})
	return result.RowsAffected, result.Error
}

// cascadeTables are the dependent tables cleared by a force delete.
// Inventory logs are kept as an audit trail.
var cascadeTables = []string{"order_details", "cart_items"}

func (r *GormProductRepository) DeleteCascade(id, ownerID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, table := range cascadeTables {
			// A dependent table can be absent in a given deployment.
			if !tx.Migrator().HasTable(table) {
				continue
			}
			if err := tx.Exec("DELETE FROM "+table+" WHERE product_id = ?", id).Error; err != nil {
				return err
			}
		}

		result := tx.Where("id = ? AND user_id = ?", id, ownerID).Delete(&domain.Product{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			// Rolls back the dependent-row deletions above.
			return domain.ErrProductNotFound
		}
		return nil
	})
}

func (r *GormProductRepository) Count(ownerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).
		Where("user_id = ? AND is_active = ?", ownerID, true).
		Count(&count).Error
	return count, err
}

func (r *GormProductRepository) CountLowStock(ownerID uint, threshold int) (int64, error) {
	var count int64
	err := r.db.Model(&domain.Product{}).
		Where("user_id = ? AND is_active = ? AND quantity <= ?", ownerID, true, threshold).
		Count(&count).Error
	return count, err
}

func (r *GormProductRepository) FindLowStock(ownerID uint, threshold int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.
		Where("user_id = ? AND is_active = ? AND quantity <= ?", ownerID, true, threshold).
		Order("quantity ASC").
		Find(&products).Error
	return products, err
}

func (r *GormProductRepository) Categories(ownerID uint) ([]string, error) {
	var categories []string
	err := r.db.Model(&domain.Product{}).
		Where("user_id = ? AND category <> ''", ownerID).
		Distinct("category").
		Order("category").
		Pluck("category", &categories).Error
	return categories, err
}
