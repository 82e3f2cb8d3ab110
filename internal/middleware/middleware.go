package middleware

import (
	"time"

	"product-crud/internal/logger"

	"github.com/labstack/echo/v4"
)

// RequestLogger 記錄每個請求的方法、路徑、狀態碼與耗時；5xx 以 Error 記錄
func RequestLogger(log logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// 交給 Echo 的 HTTPErrorHandler 寫出回應，才能取得最終狀態碼
				c.Error(err)
			}

			req := c.Request()
			status := c.Response().Status
			kv := []any{
				"method", req.Method,
				"path", req.URL.Path,
				"status", status,
				"latency", time.Since(start).String(),
			}
			if status >= 500 {
				log.Error(err, "request failed", kv...)
			} else {
				log.Info("request", kv...)
			}
			return nil
		}
	}
}
