package command

import (
	"os"
	"sort"
	"testing"

	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("catalog-test", false)
	os.Exit(m.Run())
}

// refTable mirrors the dependent-table enumeration used in production.
type refTable struct {
	name        string
	description string
}

var refTables = []refTable{
	{"order_details", "order records"},
	{"cart_items", "shopping cart items"},
	{"inventory_logs", "inventory log entries"},
}

// memoryRepo is an in-memory double for domain.ProductRepository and
// domain.ReferenceChecker backed by plain maps.
type memoryRepo struct {
	products map[uint]*domain.Product
	// refs holds dependent-row counts per table per product id.
	refs map[string]map[uint]int64
	// absentTables simulates a deployment where a dependent table is missing.
	absentTables map[string]bool
	// hiddenRefs hides references from the checker while still enforcing
	// them on delete, simulating references appearing between the
	// evaluation and the delete statement.
	hiddenRefs bool

	deleteErr     error
	deactivateErr error
	cascadeErr    error
	createErr     error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		products:     make(map[uint]*domain.Product),
		refs:         make(map[string]map[uint]int64),
		absentTables: make(map[string]bool),
	}
}

func (m *memoryRepo) addProduct(p domain.Product) {
	cp := p
	m.products[p.ID] = &cp
}

func (m *memoryRepo) addRefs(table string, productID uint, count int64) {
	if m.refs[table] == nil {
		m.refs[table] = make(map[uint]int64)
	}
	m.refs[table][productID] = count
}

func (m *memoryRepo) refCount(productID uint) int64 {
	var total int64
	for _, t := range refTables {
		if m.absentTables[t.name] {
			continue
		}
		total += m.refs[t.name][productID]
	}
	return total
}

// ProductRepository

func (m *memoryRepo) Create(p *domain.Product) error {
	if m.createErr != nil {
		return m.createErr
	}
	if p.ID == 0 {
		p.ID = uint(len(m.products) + 1)
	}
	m.addProduct(*p)
	return nil
}

func (m *memoryRepo) FindByID(id, ownerID uint) (*domain.Product, error) {
	p, ok := m.products[id]
	if !ok || p.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryRepo) FindByCode(code string) (*domain.Product, error) {
	for _, p := range m.products {
		if p.ProductCode == code {
			cp := *p
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *memoryRepo) FindAll(ownerID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		if p.UserID != ownerID {
			continue
		}
		if !filter.IncludeInactive && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (m *memoryRepo) Update(p *domain.Product) error {
	m.addProduct(*p)
	return nil
}

func (m *memoryRepo) Delete(id, ownerID uint) (int64, error) {
	if m.deleteErr != nil {
		return 0, m.deleteErr
	}
	p, ok := m.products[id]
	if !ok || p.UserID != ownerID {
		return 0, nil
	}
	if m.refCount(id) > 0 {
		return 0, gorm.ErrForeignKeyViolated
	}
	delete(m.products, id)
	return 1, nil
}

func (m *memoryRepo) Deactivate(id, ownerID uint) (int64, error) {
	if m.deactivateErr != nil {
		return 0, m.deactivateErr
	}
	p, ok := m.products[id]
	if !ok || p.UserID != ownerID {
		return 0, nil
	}
	p.IsActive = false
	return 1, nil
}

func (m *memoryRepo) DeleteCascade(id, ownerID uint) error {
	if m.cascadeErr != nil {
		return m.cascadeErr
	}
	p, ok := m.products[id]
	if !ok || p.UserID != ownerID {
		// Nothing is removed: the transaction rolls back as a unit.
		return domain.ErrProductNotFound
	}
	for _, table := range []string{"order_details", "cart_items"} {
		if m.absentTables[table] {
			continue
		}
		if m.refs[table] != nil {
			delete(m.refs[table], p.ID)
		}
	}
	delete(m.products, id)
	return nil
}

func (m *memoryRepo) Count(ownerID uint) (int64, error) {
	var count int64
	for _, p := range m.products {
		if p.UserID == ownerID && p.IsActive {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) CountLowStock(ownerID uint, threshold int) (int64, error) {
	var count int64
	for _, p := range m.products {
		if p.UserID == ownerID && p.IsActive && p.Quantity <= threshold {
			count++
		}
	}
	return count, nil
}

func (m *memoryRepo) FindLowStock(ownerID uint, threshold int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range m.products {
		if p.UserID == ownerID && p.IsActive && p.Quantity <= threshold {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (m *memoryRepo) Categories(ownerID uint) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range m.products {
		if p.UserID == ownerID && p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// ReferenceChecker

func (m *memoryRepo) HasTable(name string) bool {
	return !m.absentTables[name]
}

func (m *memoryRepo) CheckReferences(productID uint) []domain.BlockingTable {
	if m.hiddenRefs {
		return nil
	}
	var blocking []domain.BlockingTable
	for _, t := range refTables {
		if m.absentTables[t.name] {
			continue
		}
		if count := m.refs[t.name][productID]; count > 0 {
			blocking = append(blocking, domain.BlockingTable{
				Table:       t.name,
				Count:       count,
				Description: t.description,
			})
		}
	}
	return blocking
}
