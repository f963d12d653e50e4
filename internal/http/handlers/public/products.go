package public

import (
	"errors"
	"strconv"
	"strings"

	"github.com/stride-next/internal/http/response"
	"github.com/stride-next/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ListProducts 商品列表
// 多选参数支持重复出现或逗号分隔，如 ?gender=men&gender=women 或 ?color=red,blue。
func (h *Handler) ListProducts(c *gin.Context) {
	filters := service.DefaultFilters()
	filters.Genders = parseMultiParam(c, "gender")
	filters.Sports = parseMultiParam(c, "sport")
	filters.Colors = parseMultiParam(c, "color")
	filters.Sizes = parseMultiParam(c, "size")

	if raw := strings.TrimSpace(c.Query("price_min")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil || v.IsNegative() {
			response.BadRequest(c, "invalid price_min")
			return
		}
		filters.PriceMin = v
	}
	if raw := strings.TrimSpace(c.Query("price_max")); raw != "" {
		v, err := decimal.NewFromString(raw)
		if err != nil || v.IsNegative() {
			response.BadRequest(c, "invalid price_max")
			return
		}
		filters.PriceMax = v
	}
	if filters.PriceMax.GreaterThan(decimal.Zero) && filters.PriceMax.LessThan(filters.PriceMin) {
		response.BadRequest(c, "invalid price range")
		return
	}
	if sortBy := strings.TrimSpace(c.Query("sort")); sortBy != "" {
		filters.SortBy = sortBy
	}

	query := service.CatalogQuery{
		Filters:    filters,
		Search:     c.Query("q"),
		IsNew:      parseBoolParam(c, "is_new"),
		IsTrending: parseBoolParam(c, "is_trending"),
		Page:       parseIntParam(c, "page", 1),
		PageSize:   parseIntParam(c, "page_size", 0),
	}

	products, total, err := h.CatalogService.ListProducts(query)
	if err != nil {
		response.Error(c, response.CodeInternal, "failed to list products")
		return
	}

	pageSize := query.PageSize
	if pageSize <= 0 {
		pageSize = h.Config.Catalog.DefaultPageSize
	}
	totalPage := int64(0)
	if pageSize > 0 {
		totalPage = (total + int64(pageSize) - 1) / int64(pageSize)
	}
	response.SuccessWithPage(c, gin.H{"products": products}, response.Pagination{
		Page:      query.Page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: totalPage,
	})
}

// GetProduct 商品详情
func (h *Handler) GetProduct(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		response.BadRequest(c, "invalid product id")
		return
	}
	product, err := h.CatalogService.GetProduct(uint(id))
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			response.NotFound(c, "product not found")
			return
		}
		response.Error(c, response.CodeInternal, "failed to get product")
		return
	}
	response.Success(c, gin.H{"product": product})
}

func parseMultiParam(c *gin.Context, key string) []string {
	values := make([]string, 0)
	for _, raw := range c.QueryArray(key) {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part != "" {
				values = append(values, part)
			}
		}
	}
	return values
}

func parseBoolParam(c *gin.Context, key string) *bool {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil
	}
	return &v
}

func parseIntParam(c *gin.Context, key string, fallback int) int {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return v
}
