// File: internal/api/product_request.go
package api

import "product-crud/internal/model"

// swagger:model api.CreateProductRequest
type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required" example:"Test Product"`
	Description string   `json:"description" validate:"required" example:"A test product"`
	Price       *float64 `json:"price" validate:"required" example:"99.99"`
	Category    string   `json:"category" validate:"required" example:"Test"`
	Tags        []string `json:"tags,omitempty" example:"test,sample"`
	InStock     *bool    `json:"in_stock,omitempty" example:"true"`
}

// ToModel 轉換為儲存層輸入；呼叫前須已通過驗證
func (r CreateProductRequest) ToModel() model.ProductCreate {
	in := model.ProductCreate{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Tags:        r.Tags,
		InStock:     r.InStock,
	}
	if r.Price != nil {
		in.Price = *r.Price
	}
	return in
}

// UpdateProductRequest 所有欄位皆可省略，省略的欄位維持原值
// swagger:model api.UpdateProductRequest
type UpdateProductRequest struct {
	Name        *string   `json:"name,omitempty" example:"Updated Product"`
	Description *string   `json:"description,omitempty" example:"Updated description"`
	Price       *float64  `json:"price,omitempty" example:"75"`
	Category    *string   `json:"category,omitempty" example:"Test"`
	Tags        *[]string `json:"tags,omitempty"`
	InStock     *bool     `json:"in_stock,omitempty" example:"false"`
}

func (r UpdateProductRequest) ToModel() model.ProductUpdate {
	return model.ProductUpdate{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Category:    r.Category,
		Tags:        r.Tags,
		InStock:     r.InStock,
	}
}
