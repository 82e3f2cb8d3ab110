package users

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"product-crud/internal/event"
	"product-crud/internal/model"
	"product-crud/internal/store"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type customValidator struct{ v *validator.Validate }

func (cv *customValidator) Validate(i interface{}) error { return cv.v.Struct(i) }

type recordingNotifier struct{ events []event.Event }

func (r *recordingNotifier) Notify(ev event.Event) { r.events = append(r.events, ev) }

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = &customValidator{v: validator.New()}
	return e
}

func newJSONCtx(e *echo.Echo, method, id, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, "/users/"+id, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if id != "" {
		c.SetPath("/users/:id")
		c.SetParamNames("id")
		c.SetParamValues(id)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &m))
	return m
}

func TestCreateUserHandler(t *testing.T) {
	e := newEcho()

	t.Run("success", func(t *testing.T) {
		s := store.NewUserStore()
		n := &recordingNotifier{}
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"Test User","email":"test@example.com","password":"password123"}`)
		require.NoError(t, CreateUserHandler(s, n)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)

		got := decode(t, rec)
		require.Equal(t, float64(1), got["id"])
		require.Equal(t, "Test User", got["name"])
		require.Equal(t, "test@example.com", got["email"])
		require.Equal(t, "password123", got["password"])
		require.Contains(t, got, "created_at")
		require.Equal(t, []event.Event{{Kind: event.KindUser, Action: event.ActionCreated, ID: 1}}, n.events)
	})

	t.Run("validate error", func(t *testing.T) {
		s := store.NewUserStore()
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `{"name":"Test User"}`)
		require.NoError(t, CreateUserHandler(s, event.Noop{})(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		require.Empty(t, s.List())
	})

	t.Run("bind error", func(t *testing.T) {
		ctx, rec := newJSONCtx(e, http.MethodPost, "", `[`)
		require.NoError(t, CreateUserHandler(store.NewUserStore(), event.Noop{})(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestListUsersHandler(t *testing.T) {
	e := newEcho()
	s := store.NewUserStore()

	ctx, rec := newJSONCtx(e, http.MethodGet, "", "")
	require.NoError(t, ListUsersHandler(s)(ctx))
	require.JSONEq(t, `[]`, rec.Body.String())

	s.Create(model.UserCreate{Name: "User One", Email: "user1@example.com", Password: "pass1"})
	s.Create(model.UserCreate{Name: "User Two", Email: "user2@example.com", Password: "pass2"})

	ctx, rec = newJSONCtx(e, http.MethodGet, "", "")
	require.NoError(t, ListUsersHandler(s)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	var list []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 2)
	require.Equal(t, float64(1), list[0]["id"])
	require.Equal(t, float64(2), list[1]["id"])
	require.Equal(t, "user1@example.com", list[0]["email"])
}

func TestGetUserHandler(t *testing.T) {
	e := newEcho()
	s := store.NewUserStore()
	s.Create(model.UserCreate{Name: "Test User", Email: "test@example.com", Password: "password123"})

	ctx, rec := newJSONCtx(e, http.MethodGet, "1", "")
	require.NoError(t, GetUserHandler(s)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode(t, rec)
	require.Equal(t, float64(1), got["id"])
	require.Equal(t, "test@example.com", got["email"])

	ctx, rec = newJSONCtx(e, http.MethodGet, "999", "")
	require.NoError(t, GetUserHandler(s)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail":"User not found"}`, rec.Body.String())

	ctx, rec = newJSONCtx(e, http.MethodGet, "x", "")
	require.NoError(t, GetUserHandler(s)(ctx))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestUpdateUserHandler(t *testing.T) {
	e := newEcho()

	t.Run("name and email", func(t *testing.T) {
		s := store.NewUserStore()
		n := &recordingNotifier{}
		s.Create(model.UserCreate{Name: "Original User", Email: "original@example.com", Password: "original123"})

		ctx, rec := newJSONCtx(e, http.MethodPut, "1", `{"name":"Updated User","email":"updated@example.com"}`)
		require.NoError(t, UpdateUserHandler(s, n)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode(t, rec)
		require.Equal(t, float64(1), got["id"])
		require.Equal(t, "Updated User", got["name"])
		require.Equal(t, "updated@example.com", got["email"])
		require.Equal(t, "original123", got["password"])
		require.Equal(t, []event.Event{{Kind: event.KindUser, Action: event.ActionUpdated, ID: 1}}, n.events)
	})

	t.Run("partial", func(t *testing.T) {
		s := store.NewUserStore()
		s.Create(model.UserCreate{Name: "Test User", Email: "test@example.com", Password: "password123"})

		ctx, rec := newJSONCtx(e, http.MethodPut, "1", `{"name":"New Name"}`)
		require.NoError(t, UpdateUserHandler(s, event.Noop{})(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		got := decode(t, rec)
		require.Equal(t, "New Name", got["name"])
		require.Equal(t, "test@example.com", got["email"])
		require.Equal(t, "password123", got["password"])
	})

	t.Run("not found", func(t *testing.T) {
		n := &recordingNotifier{}
		ctx, rec := newJSONCtx(e, http.MethodPut, "999", `{"name":"Updated User"}`)
		require.NoError(t, UpdateUserHandler(store.NewUserStore(), n)(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
		require.JSONEq(t, `{"detail":"User not found"}`, rec.Body.String())
		require.Empty(t, n.events)
	})

	t.Run("bad input", func(t *testing.T) {
		s := store.NewUserStore()
		s.Create(model.UserCreate{Name: "n"})
		ctx, rec := newJSONCtx(e, http.MethodPut, "1", `{"name":1}`)
		require.NoError(t, UpdateUserHandler(s, event.Noop{})(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		ctx, rec = newJSONCtx(e, http.MethodPut, "one", `{}`)
		require.NoError(t, UpdateUserHandler(s, event.Noop{})(ctx))
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})
}

func TestDeleteUserHandler(t *testing.T) {
	e := newEcho()
	s := store.NewUserStore()
	n := &recordingNotifier{}
	s.Create(model.UserCreate{Name: "User to Delete", Email: "delete@example.com", Password: "password123"})

	ctx, rec := newJSONCtx(e, http.MethodDelete, "1", "")
	require.NoError(t, DeleteUserHandler(s, n)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"message":"User deleted successfully"}`, rec.Body.String())

	ctx, rec = newJSONCtx(e, http.MethodGet, "1", "")
	require.NoError(t, GetUserHandler(s)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)

	ctx, rec = newJSONCtx(e, http.MethodDelete, "999", "")
	require.NoError(t, DeleteUserHandler(s, n)(ctx))
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.JSONEq(t, `{"detail":"User not found"}`, rec.Body.String())
	require.Equal(t, []event.Event{{Kind: event.KindUser, Action: event.ActionDeleted, ID: 1}}, n.events)

	ctx, rec = newJSONCtx(e, http.MethodDelete, "x", "")
	require.NoError(t, DeleteUserHandler(s, n)(ctx))
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}
