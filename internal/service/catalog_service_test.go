package service

import (
	"errors"
	"testing"

	"github.com/stride-next/internal/config"
	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/repository"

	"gorm.io/gorm"
)

func newCatalogServiceForTest(t *testing.T, name string) (*CatalogService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t, name)
	repo := repository.NewProductRepository(db)
	svc := NewCatalogService(repo, config.CatalogConfig{DefaultPageSize: 2, MaxPageSize: 10})
	return svc, db
}

func TestCatalogListProductsExcludesInactive(t *testing.T) {
	svc, db := newCatalogServiceForTest(t, "catalog_inactive")
	createTestProduct(t, db, "Air Max 270 React", 12999)
	hidden := createTestProduct(t, db, "Retired Runner", 9999)
	if err := db.Model(hidden).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	products, total, err := svc.ListProducts(CatalogQuery{Filters: DefaultFilters()})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 || len(products) != 1 {
		t.Fatalf("expected only active product, got total=%d len=%d", total, len(products))
	}
	if products[0].Name != "Air Max 270 React" {
		t.Fatalf("unexpected product: %s", products[0].Name)
	}
}

func TestCatalogListProductsPagination(t *testing.T) {
	svc, db := newCatalogServiceForTest(t, "catalog_page")
	createTestProduct(t, db, "Alpha", 1000)
	createTestProduct(t, db, "Bravo", 2000)
	createTestProduct(t, db, "Charlie", 3000)

	query := CatalogQuery{Filters: DefaultFilters(), Page: 1}
	first, total, err := svc.ListProducts(query)
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected filtered total 3, got %d", total)
	}
	if len(first) != 2 {
		t.Fatalf("expected default page size 2, got %d", len(first))
	}

	query.Page = 2
	second, _, err := svc.ListProducts(query)
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(second) != 1 {
		t.Fatalf("expected 1 product on page 2, got %d", len(second))
	}

	query.Page = 5
	empty, _, err := svc.ListProducts(query)
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected empty page past the end, got %d", len(empty))
	}
}

func TestCatalogListProductsFlagFilters(t *testing.T) {
	svc, db := newCatalogServiceForTest(t, "catalog_flags")
	fresh := createTestProduct(t, db, "Fresh Drop", 5000)
	if err := db.Model(fresh).Update("is_new", true).Error; err != nil {
		t.Fatalf("flag update failed: %v", err)
	}
	createTestProduct(t, db, "Old Faithful", 4000)

	isNew := true
	products, total, err := svc.ListProducts(CatalogQuery{Filters: DefaultFilters(), IsNew: &isNew})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if total != 1 || len(products) != 1 || products[0].Name != "Fresh Drop" {
		t.Fatalf("expected only the new product, got total=%d products=%v", total, products)
	}
}

func TestCatalogGetProduct(t *testing.T) {
	svc, db := newCatalogServiceForTest(t, "catalog_get")
	product := createTestProduct(t, db, "Air Max 270 React", 12999)

	got, err := svc.GetProduct(product.ID)
	if err != nil {
		t.Fatalf("get product failed: %v", err)
	}
	if got.Name != product.Name {
		t.Fatalf("unexpected product: %s", got.Name)
	}

	if _, err := svc.GetProduct(9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing product, got %v", err)
	}

	if err := db.Model(product).Update("is_active", false).Error; err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, err := svc.GetProduct(product.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive product, got %v", err)
	}
}

func TestCatalogSortAppliedToListing(t *testing.T) {
	svc, db := newCatalogServiceForTest(t, "catalog_sort")
	createTestProduct(t, db, "Cheap", 1000)
	createTestProduct(t, db, "Pricey", 9000)
	createTestProduct(t, db, "Middle", 5000)

	filters := DefaultFilters()
	filters.SortBy = constants.SortByPriceHigh
	products, _, err := svc.ListProducts(CatalogQuery{Filters: filters, PageSize: 10})
	if err != nil {
		t.Fatalf("list products failed: %v", err)
	}
	if len(products) != 3 {
		t.Fatalf("expected 3 products, got %d", len(products))
	}
	if products[0].Name != "Pricey" || products[2].Name != "Cheap" {
		t.Fatalf("expected price-high ordering, got %s..%s", products[0].Name, products[2].Name)
	}
}
