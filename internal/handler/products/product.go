package products

import (
	"errors"
	"net/http"

	"product-crud/internal/api"
	"product-crud/internal/event"
	"product-crud/internal/handler"
	"product-crud/internal/model"
	"product-crud/internal/store"

	"github.com/labstack/echo/v4"
)

const (
	notFoundDetail = "Product not found"
	deletedMessage = "Product deleted successfully"
)

// Store 商品 handler 需要的儲存操作
type Store interface {
	List() []model.Product
	Get(id int) (model.Product, error)
	Create(in model.ProductCreate) model.Product
	Update(id int, in model.ProductUpdate) (model.Product, error)
	Delete(id int) bool
}

// @Summary     List products
// @Description 依建立順序回傳所有商品
// @Tags        products
// @Produce     json
// @Success     200 {array} model.Product
// @Router      /products [get]
func ListProductsHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.List())
	}
}

// @Summary     Get a product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     int true "商品 ID"
// @Success     200 {object} model.Product
// @Failure     404 {object} api.ErrorResponse "商品不存在"
// @Failure     422 {object} api.ErrorResponse "參數錯誤"
// @Router      /products/{id} [get]
func GetProductHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return handler.Unprocessable(c, err)
		}
		p, err := s.Get(id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.Detail(c, http.StatusNotFound, notFoundDetail)
		}
		if err != nil {
			return handler.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, p)
	}
}

// @Summary     Create a new product
// @Description 未提供 tags 時為空陣列，未提供 in_stock 時為 true
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       product body     api.CreateProductRequest true "商品資料"
// @Success     200     {object} model.Product
// @Failure     422     {object} api.ErrorResponse
// @Router      /products [post]
func CreateProductHandler(s Store, n event.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateProductRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Unprocessable(c, err)
		}
		p := s.Create(req.ToModel())
		n.Notify(event.Event{Kind: event.KindProduct, Action: event.ActionCreated, ID: p.ID})
		return c.JSON(http.StatusOK, p)
	}
}

// @Summary     Update a product by ID
// @Description 只更新有提供的欄位，其餘維持原值
// @Tags        products
// @Accept      json
// @Produce     json
// @Param       id      path     int                       true "商品 ID"
// @Param       product body     api.UpdateProductRequest  true "要更新的欄位"
// @Success     200     {object} model.Product
// @Failure     404     {object} api.ErrorResponse
// @Failure     422     {object} api.ErrorResponse
// @Router      /products/{id} [put]
func UpdateProductHandler(s Store, n event.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return handler.Unprocessable(c, err)
		}
		var req api.UpdateProductRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Unprocessable(c, err)
		}
		p, err := s.Update(id, req.ToModel())
		if errors.Is(err, store.ErrNotFound) {
			return handler.Detail(c, http.StatusNotFound, notFoundDetail)
		}
		if err != nil {
			return handler.Detail(c, http.StatusInternalServerError, err.Error())
		}
		n.Notify(event.Event{Kind: event.KindProduct, Action: event.ActionUpdated, ID: p.ID})
		return c.JSON(http.StatusOK, p)
	}
}

// @Summary     Delete a product by ID
// @Tags        products
// @Produce     json
// @Param       id  path     int true "商品 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /products/{id} [delete]
func DeleteProductHandler(s Store, n event.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return handler.Unprocessable(c, err)
		}
		if !s.Delete(id) {
			return handler.Detail(c, http.StatusNotFound, notFoundDetail)
		}
		n.Notify(event.Event{Kind: event.KindProduct, Action: event.ActionDeleted, ID: id})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: deletedMessage})
	}
}
