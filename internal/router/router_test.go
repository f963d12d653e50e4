package router

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stride-next/internal/config"
	"github.com/stride-next/internal/constants"
	"github.com/stride-next/internal/logger"
	"github.com/stride-next/internal/models"
	"github.com/stride-next/internal/provider"

	"github.com/gin-gonic/gin"
)

func setupTestRouter(t *testing.T, name string) (*gin.Engine, *provider.Container) {
	t.Helper()

	gin.SetMode(gin.TestMode)
	logger.Init("debug", logger.Options{})

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	if err := models.InitDB("sqlite", dsn, models.DBPoolConfig{MaxOpenConns: 1, MaxIdleConns: 1}); err != nil {
		t.Fatalf("init db failed: %v", err)
	}
	if err := models.AutoMigrate(); err != nil {
		t.Fatalf("auto migrate failed: %v", err)
	}

	cfg := &config.Config{
		Server: config.ServerConfig{Mode: "debug"},
		UserJWT: config.JWTConfig{
			SecretKey:   "router-test-secret-key-with-length-01",
			ExpireHours: 1,
		},
		Redis:       config.RedisConfig{Enabled: false},
		Queue:       config.QueueConfig{Enabled: false},
		Catalog:     config.CatalogConfig{DefaultPageSize: 24, MaxPageSize: 100},
		Fulfillment: config.FulfillmentConfig{WebhookSecret: "callback-secret"},
		Security: config.SecurityConfig{
			PasswordPolicy: config.PasswordPolicyConfig{MinLength: 8},
		},
	}
	container := provider.NewContainer(cfg)
	return SetupRouter(cfg, container), container
}

func seedRouterProduct(t *testing.T, name string) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:      name,
		Price:     models.NewMoneyFromInt(12999),
		Category:  "running",
		Gender:    constants.GenderUnisex,
		Sport:     "running",
		Colors:    models.StringArray{"black", "white"},
		Sizes:     models.StringArray{"8", "9"},
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := models.DB.Create(product).Error; err != nil {
		t.Fatalf("seed product failed: %v", err)
	}
	return product
}

func TestLegacyCustomersMethodNotAllowed(t *testing.T) {
	r, _ := setupTestRouter(t, "router_405")

	for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(method, "/api/customers", nil)
		r.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: expected 405, got %d", method, w.Code)
		}
		if w.Body.String() != "Method Not Allowed" {
			t.Fatalf("%s: expected plain body %q, got %q", method, "Method Not Allowed", w.Body.String())
		}
	}
}

func TestLegacyCustomersReturnsBareArray(t *testing.T) {
	r, _ := setupTestRouter(t, "router_customers")
	user := models.User{Email: "legacy@example.com", PasswordHash: "x", FirstName: "Lee", CreatedAt: time.Now()}
	if err := models.DB.Create(&user).Error; err != nil {
		t.Fatalf("seed user failed: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body := strings.TrimSpace(w.Body.String())
	if !strings.HasPrefix(body, "[") {
		t.Fatalf("expected bare JSON array response, got %q", body)
	}
	var customers []map[string]interface{}
	if err := json.Unmarshal([]byte(body), &customers); err != nil {
		t.Fatalf("unmarshal customers failed: %v", err)
	}
	if len(customers) != 1 {
		t.Fatalf("expected 1 customer, got %d", len(customers))
	}
	if customers[0]["email"] != "legacy@example.com" {
		t.Fatalf("unexpected customer payload: %v", customers[0])
	}
	if _, ok := customers[0]["password_hash"]; ok {
		t.Fatalf("password hash must not be exposed")
	}
}

func TestLegacyCustomersDatabaseError(t *testing.T) {
	r, _ := setupTestRouter(t, "router_dberr")
	if err := models.DB.Migrator().DropTable(&models.User{}); err != nil {
		t.Fatalf("drop table failed: %v", err)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/customers", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	if w.Body.String() != "Database error" {
		t.Fatalf("expected plain body %q, got %q", "Database error", w.Body.String())
	}
}

func TestPublicProductsListing(t *testing.T) {
	r, _ := setupTestRouter(t, "router_products")
	seedRouterProduct(t, "Air Max 270 React")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/public/products?gender=unisex&color=black", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			Products []models.Product `json:"products"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.StatusCode != 0 {
		t.Fatalf("expected status_code 0, got %d", resp.StatusCode)
	}
	if len(resp.Data.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(resp.Data.Products))
	}
}

func TestAuthenticatedCartFlow(t *testing.T) {
	r, _ := setupTestRouter(t, "router_cart")
	product := seedRouterProduct(t, "UltraBoost 22")

	// 注册拿 token
	registerBody := `{"email":"flow@example.com","password":"stride-pass1","first_name":"Flow"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(registerBody))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("register failed: %d %s", w.Code, w.Body.String())
	}
	var registerResp struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &registerResp); err != nil {
		t.Fatalf("unmarshal register response failed: %v", err)
	}
	token := registerResp.Data.Token
	if token == "" {
		t.Fatalf("expected token in register response")
	}

	// 未带 token 访问购物车
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	var unauthorized struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &unauthorized); err != nil {
		t.Fatalf("unmarshal unauthorized response failed: %v", err)
	}
	if unauthorized.StatusCode != 401 {
		t.Fatalf("expected business code 401 without token, got %d", unauthorized.StatusCode)
	}

	// 加购
	addBody := fmt.Sprintf(`{"product_id":%d,"size":"9","color":"black","quantity":2}`, product.ID)
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(addBody))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("add cart item failed: %d %s", w.Code, w.Body.String())
	}
	var cartResp struct {
		StatusCode int `json:"status_code"`
		Data       struct {
			ItemCount int `json:"item_count"`
		} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &cartResp); err != nil {
		t.Fatalf("unmarshal cart response failed: %v", err)
	}
	if cartResp.StatusCode != 0 || cartResp.Data.ItemCount != 2 {
		t.Fatalf("unexpected cart response: %s", w.Body.String())
	}
}

func TestFulfillmentCallbackRequiresSecret(t *testing.T) {
	r, _ := setupTestRouter(t, "router_fulfillment")

	body := `{"status":"shipped"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/fulfillment/orders/SN123/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	var resp struct {
		StatusCode int `json:"status_code"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.StatusCode != 401 {
		t.Fatalf("expected business code 401 without secret, got %d", resp.StatusCode)
	}

	// 正确密钥但订单不存在 → 404 业务码
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/v1/fulfillment/orders/SN123/status", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Fulfillment-Secret", "callback-secret")
	r.ServeHTTP(w, req)
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if resp.StatusCode != 404 {
		t.Fatalf("expected business code 404 for unknown order, got %d", resp.StatusCode)
	}
}
