// File: internal/handler/respond.go
package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"product-crud/internal/api"

	"github.com/labstack/echo/v4"
)

// ParseID 解析路徑參數 id
func ParseID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", c.Param("id"))
	}
	return id, nil
}

// errBodyRequired 請求沒有 body
var errBodyRequired = errors.New("request body is required")

// BindAndValidate 解析 JSON body 並以 e.Validator 驗證；沒有 body 視為錯誤
func BindAndValidate(c echo.Context, req any) error {
	if c.Request().ContentLength == 0 {
		return errBodyRequired
	}
	if err := c.Bind(req); err != nil {
		var he *echo.HTTPError
		if errors.As(err, &he) {
			return fmt.Errorf("invalid request body: %v", he.Message)
		}
		return fmt.Errorf("invalid request body: %w", err)
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	return nil
}

// Detail 以 {"detail": ...} 格式回應
func Detail(c echo.Context, status int, detail string) error {
	return c.JSON(status, api.ErrorResponse{Detail: detail})
}

// Unprocessable 請求格式錯誤時回 422
func Unprocessable(c echo.Context, err error) error {
	return Detail(c, http.StatusUnprocessableEntity, err.Error())
}
