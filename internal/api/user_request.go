// File: internal/api/user_request.go
package api

import "product-crud/internal/model"

// swagger:model api.CreateUserRequest
type CreateUserRequest struct {
	Name     string `json:"name" validate:"required" example:"Alice"`
	Email    string `json:"email" validate:"required" example:"alice@example.com"`
	Password string `json:"password" validate:"required" example:"password123"`
}

func (r CreateUserRequest) ToModel() model.UserCreate {
	return model.UserCreate{Name: r.Name, Email: r.Email, Password: r.Password}
}

// swagger:model api.UpdateUserRequest
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" example:"Alice"`
	Email    *string `json:"email,omitempty" example:"alice@example.com"`
	Password *string `json:"password,omitempty" example:"password123"`
}

func (r UpdateUserRequest) ToModel() model.UserUpdate {
	return model.UserUpdate{Name: r.Name, Email: r.Email, Password: r.Password}
}
