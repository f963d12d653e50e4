package service

import "errors"

// 服务层错误定义，handler 按 errors.Is 映射为响应码。
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidCartItem     = errors.New("invalid cart item")
	ErrProductNotAvailable = errors.New("product not available")
	ErrSizeNotOffered      = errors.New("size not offered for product")
	ErrColorNotOffered     = errors.New("color not offered for product")
	ErrCartEmpty           = errors.New("cart is empty")
	ErrEmailExists         = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidEmail        = errors.New("invalid email address")
	ErrWeakPassword        = errors.New("password does not meet policy")
	ErrInvalidOrderStatus  = errors.New("invalid order status")

	ErrEmailServiceDisabled      = errors.New("email service disabled")
	ErrEmailServiceNotConfigured = errors.New("email service not configured")
)
