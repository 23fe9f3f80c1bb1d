package query

import (
	"os"
	"sort"
	"strings"
	"testing"

	"gorm.io/gorm"

	"github.com/stockwise/inventory-catalog/internal/catalog/domain"
	"github.com/stockwise/inventory-catalog/pkg/logger"
)

func TestMain(m *testing.M) {
	logger.Init("catalog-test", false)
	os.Exit(m.Run())
}

// stubRepo is an in-memory double for domain.ProductRepository.
type stubRepo struct {
	products map[uint]*domain.Product
	listErr  error
}

func newStubRepo(products ...domain.Product) *stubRepo {
	repo := &stubRepo{products: make(map[uint]*domain.Product)}
	for _, p := range products {
		cp := p
		repo.products[p.ID] = &cp
	}
	return repo
}

func (s *stubRepo) Create(p *domain.Product) error { return nil }

func (s *stubRepo) FindByID(id, ownerID uint) (*domain.Product, error) {
	p, ok := s.products[id]
	if !ok || p.UserID != ownerID {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *stubRepo) FindByCode(code string) (*domain.Product, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) FindAll(ownerID uint, filter domain.ProductFilter) ([]domain.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	var out []domain.Product
	for _, p := range s.products {
		if p.UserID != ownerID {
			continue
		}
		if !filter.IncludeInactive && !p.IsActive {
			continue
		}
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.Search != "" && !strings.Contains(p.Name, filter.Search) && !strings.Contains(p.Description, filter.Search) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *stubRepo) Update(p *domain.Product) error { return nil }

func (s *stubRepo) Delete(id, ownerID uint) (int64, error)     { return 0, nil }
func (s *stubRepo) Deactivate(id, ownerID uint) (int64, error) { return 0, nil }
func (s *stubRepo) DeleteCascade(id, ownerID uint) error       { return domain.ErrProductNotFound }

func (s *stubRepo) Count(ownerID uint) (int64, error) {
	var count int64
	for _, p := range s.products {
		if p.UserID == ownerID && p.IsActive {
			count++
		}
	}
	return count, nil
}

func (s *stubRepo) CountLowStock(ownerID uint, threshold int) (int64, error) {
	var count int64
	for _, p := range s.products {
		if p.UserID == ownerID && p.IsActive && p.Quantity <= threshold {
			count++
		}
	}
	return count, nil
}

func (s *stubRepo) FindLowStock(ownerID uint, threshold int) ([]domain.Product, error) {
	var out []domain.Product
	for _, p := range s.products {
		if p.UserID == ownerID && p.IsActive && p.Quantity <= threshold {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Quantity < out[j].Quantity })
	return out, nil
}

func (s *stubRepo) Categories(ownerID uint) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, p := range s.products {
		if p.UserID == ownerID && p.Category != "" && !seen[p.Category] {
			seen[p.Category] = true
			out = append(out, p.Category)
		}
	}
	sort.Strings(out)
	return out, nil
}

// stubChecker is a canned domain.ReferenceChecker.
type stubChecker struct {
	blocking map[uint][]domain.BlockingTable
}

func (s *stubChecker) HasTable(name string) bool { return true }

func (s *stubChecker) CheckReferences(productID uint) []domain.BlockingTable {
	return s.blocking[productID]
}
