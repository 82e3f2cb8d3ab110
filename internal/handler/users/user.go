package users

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
	notFoundDetail = "User not found"
	deletedMessage = "User deleted successfully"
)

// Store 使用者 handler 需要的儲存操作
type Store interface {
	List() []model.User
	Get(id int) (model.User, error)
	Create(in model.UserCreate) model.User
	Update(id int, in model.UserUpdate) (model.User, error)
	Delete(id int) bool
}

// @Summary     Create a new user
// @Description 建立使用者；密碼原樣保存並回傳
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       user body     api.CreateUserRequest true "使用者資料"
// @Success     200  {object} model.User
// @Failure     422  {object} api.ErrorResponse
// @Router      /users [post]
func CreateUserHandler(s Store, n event.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateUserRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Unprocessable(c, err)
		}
		u := s.Create(req.ToModel())
		n.Notify(event.Event{Kind: event.KindUser, Action: event.ActionCreated, ID: u.ID})
		return c.JSON(http.StatusOK, u)
	}
}

// @Summary     List users
// @Tags        users
// @Produce     json
// @Success     200 {array} model.User
// @Router      /users [get]
func ListUsersHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, s.List())
	}
}

// @Summary     Get a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} model.User
// @Failure     404 {object} api.ErrorResponse "使用者不存在"
// @Failure     422 {object} api.ErrorResponse "參數錯誤"
// @Router      /users/{id} [get]
func GetUserHandler(s Store) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return handler.Unprocessable(c, err)
		}
		u, err := s.Get(id)
		if errors.Is(err, store.ErrNotFound) {
			return handler.Detail(c, http.StatusNotFound, notFoundDetail)
		}
		if err != nil {
			return handler.Detail(c, http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, u)
	}
}

// @Summary     Update a user by ID
// @Description 只更新有提供的欄位
// @Tags        users
// @Accept      json
// @Produce     json
// @Param       id   path     int                    true "使用者 ID"
// @Param       user body     api.UpdateUserRequest  true "要更新的欄位"
// @Success     200  {object} model.User
// @Failure     404  {object} api.ErrorResponse
// @Failure     422  {object} api.ErrorResponse
// @Router      /users/{id} [put]
func UpdateUserHandler(s Store, n event.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return handler.Unprocessable(c, err)
		}
		var req api.UpdateUserRequest
		if err := handler.BindAndValidate(c, &req); err != nil {
			return handler.Unprocessable(c, err)
		}
		u, err := s.Update(id, req.ToModel())
		if errors.Is(err, store.ErrNotFound) {
			return handler.Detail(c, http.StatusNotFound, notFoundDetail)
		}
		if err != nil {
			return handler.Detail(c, http.StatusInternalServerError, err.Error())
		}
		n.Notify(event.Event{Kind: event.KindUser, Action: event.ActionUpdated, ID: u.ID})
		return c.JSON(http.StatusOK, u)
	}
}

// @Summary     Delete a user by ID
// @Tags        users
// @Produce     json
// @Param       id  path     int true "使用者 ID"
// @Success     200 {object} api.MessageResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     422 {object} api.ErrorResponse
// @Router      /users/{id} [delete]
func DeleteUserHandler(s Store, n event.Notifier) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := handler.ParseID(c)
		if err != nil {
			return handler.Unprocessable(c, err)
		}
		if !s.Delete(id) {
			return handler.Detail(c, http.StatusNotFound, notFoundDetail)
		}
		n.Notify(event.Event{Kind: event.KindUser, Action: event.ActionDeleted, ID: id})
		return c.JSON(http.StatusOK, api.MessageResponse{Message: deletedMessage})
	}
}
