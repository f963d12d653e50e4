package public

import (
	"net/http"
	"time"

	"github.com/stride-next/internal/logger"

	"github.com/gin-gonic/gin"
)

// LegacyCustomer legacy 客户列表条目
// 兼容旧版管理面板的消费端，字段与历史契约保持一致。
type LegacyCustomer struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

// ListCustomers legacy 客户列表接口
// 历史契约：成功时直接返回 JSON 数组（无统一包装），
// 查询失败时返回 500 与纯文本 "Database error"。
func (h *Handler) ListCustomers(c *gin.Context) {
	users, err := h.UserRepo.ListAll()
	if err != nil {
		logger.Errorw("legacy_customers_query_failed", "error", err)
		c.String(http.StatusInternalServerError, "Database error")
		return
	}

	customers := make([]LegacyCustomer, 0, len(users))
	for _, user := range users {
		customers = append(customers, LegacyCustomer{
			ID:        user.ID,
			Email:     user.Email,
			FirstName: user.FirstName,
			LastName:  user.LastName,
			CreatedAt: user.CreatedAt,
		})
	}
	c.JSON(http.StatusOK, customers)
}
