package public

import (
	"github.com/stride-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// getUserID 从上下文取认证中间件写入的用户 ID。
// 取不到说明请求未经认证，直接响应 401。
func getUserID(c *gin.Context) (uint, bool) {
	value, ok := c.Get("user_id")
	if !ok {
		response.Unauthorized(c, "unauthorized")
		return 0, false
	}
	uid, ok := value.(uint)
	if !ok || uid == 0 {
		response.Unauthorized(c, "unauthorized")
		return 0, false
	}
	return uid, true
}
