package service

import (
	"context"
	"fmt"
	"time"

	"github.com/stride-next/internal/cache"
	"github.com/stride-next/internal/config"
	"github.com/stride-next/internal/logger"
	"github.com/stride-next/internal/models"
	"github.com/stride-next/internal/repository"
)

const (
	cacheKeyActiveCatalog = "catalog:active"
	cacheKeyProductFmt    = "catalog:product:%d"

	defaultCatalogPageSize = 24
	maxCatalogPageSize     = 100
)

// CatalogService 商品目录服务
// 目录由外部系统维护，这里是只读视图：仓库取上架商品，
// 过滤/排序管道在内存中执行，Redis 作为旁路缓存吸收重复读。
type CatalogService struct {
	repo            repository.ProductRepository
	cacheTTL        time.Duration
	defaultPageSize int
	maxPageSize     int
}

// NewCatalogService 创建目录服务
func NewCatalogService(repo repository.ProductRepository, cfg config.CatalogConfig) *CatalogService {
	ttl := time.Duration(cfg.CacheTTLSeconds) * time.Second
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	defaultPageSize := cfg.DefaultPageSize
	if defaultPageSize <= 0 {
		defaultPageSize = defaultCatalogPageSize
	}
	maxPageSize := cfg.MaxPageSize
	if maxPageSize <= 0 {
		maxPageSize = maxCatalogPageSize
	}
	return &CatalogService{
		repo:            repo,
		cacheTTL:        ttl,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// CatalogQuery 目录查询输入
type CatalogQuery struct {
	Filters    Filters
	Search     string
	IsNew      *bool
	IsTrending *bool
	Page       int
	PageSize   int
}

// ListProducts 获取上架商品列表
// 返回过滤排序后的当前页与过滤后的总数。
func (s *CatalogService) ListProducts(query CatalogQuery) ([]models.Product, int64, error) {
	products, err := s.loadActiveCatalog()
	if err != nil {
		return nil, 0, err
	}

	if query.IsNew != nil || query.IsTrending != nil {
		flagged := make([]models.Product, 0, len(products))
		for _, p := range products {
			if query.IsNew != nil && p.IsNew != *query.IsNew {
				continue
			}
			if query.IsTrending != nil && p.IsTrending != *query.IsTrending {
				continue
			}
			flagged = append(flagged, p)
		}
		products = flagged
	}

	filtered := FilterProducts(products, query.Filters, query.Search)
	SortProducts(filtered, query.Filters.SortBy)

	total := int64(len(filtered))
	page, pageSize := s.normalizePage(query.Page, query.PageSize)
	start := (page - 1) * pageSize
	if start >= len(filtered) {
		return []models.Product{}, total, nil
	}
	end := start + pageSize
	if end > len(filtered) {
		end = len(filtered)
	}
	return filtered[start:end], total, nil
}

// GetProduct 获取上架商品详情
func (s *CatalogService) GetProduct(id uint) (*models.Product, error) {
	if id == 0 {
		return nil, ErrNotFound
	}
	ctx := context.Background()
	key := fmt.Sprintf(cacheKeyProductFmt, id)

	var cached models.Product
	if hit, err := cache.GetJSON(ctx, key, &cached); err != nil {
		logger.Warnw("catalog_product_cache_read_failed", "product_id", id, "error", err)
	} else if hit {
		return &cached, nil
	}

	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil || !product.IsActive {
		return nil, ErrNotFound
	}
	if err := cache.SetJSON(ctx, key, product, s.cacheTTL); err != nil {
		logger.Warnw("catalog_product_cache_write_failed", "product_id", id, "error", err)
	}
	return product, nil
}

// loadActiveCatalog 读取全部上架商品，优先走缓存。
func (s *CatalogService) loadActiveCatalog() ([]models.Product, error) {
	ctx := context.Background()

	var cached []models.Product
	if hit, err := cache.GetJSON(ctx, cacheKeyActiveCatalog, &cached); err != nil {
		logger.Warnw("catalog_cache_read_failed", "error", err)
	} else if hit {
		return cached, nil
	}

	products, err := s.repo.List(repository.ProductListFilter{OnlyActive: true})
	if err != nil {
		return nil, err
	}
	if err := cache.SetJSON(ctx, cacheKeyActiveCatalog, products, s.cacheTTL); err != nil {
		logger.Warnw("catalog_cache_write_failed", "error", err)
	}
	return products, nil
}

func (s *CatalogService) normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = s.defaultPageSize
	}
	if pageSize > s.maxPageSize {
		pageSize = s.maxPageSize
	}
	return page, pageSize
}
