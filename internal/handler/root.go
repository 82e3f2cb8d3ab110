// File: internal/handler/root.go
package handler

import (
	"net/http"

	"product-crud/internal/api"

	"github.com/labstack/echo/v4"
)

const WelcomeMessage = "Welcome to the Product CRUD API"

// RootHandler 歡迎訊息
// @Summary     Root
// @Description 回傳歡迎訊息
// @Tags        health
// @Produce     json
// @Success     200 {object} api.MessageResponse
// @Router      / [get]
func RootHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.MessageResponse{Message: WelcomeMessage})
	}
}

// HealthHandler 健康檢查
// @Summary     Health Check
// @Description 服務存活即回傳 healthy
// @Tags        health
// @Produce     json
// @Success     200 {object} api.HealthResponse
// @Router      /health [get]
func HealthHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, api.HealthResponse{Status: "healthy"})
	}
}
