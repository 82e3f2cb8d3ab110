// File: internal/store/product.go
package store

import (
	"fmt"
	"slices"
	"time"

	"product-crud/internal/model"
)

// ProductStore 商品的記憶體儲存
type ProductStore struct {
	t *table[model.Product]
}

func NewProductStore() *ProductStore {
	return &ProductStore{t: newTable(model.Product.Clone)}
}

// Create 配發 ID、標記建立時間並套用預設值（Tags 為空、InStock 為 true）
func (s *ProductStore) Create(in model.ProductCreate) model.Product {
	return s.t.insert(func(id int, createdAt time.Time) model.Product {
		p := model.Product{
			ID:          id,
			Name:        in.Name,
			Description: in.Description,
			Price:       in.Price,
			Category:    in.Category,
			Tags:        slices.Clone(in.Tags),
			InStock:     true,
			CreatedAt:   createdAt,
		}
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if in.InStock != nil {
			p.InStock = *in.InStock
		}
		return p
	})
}

func (s *ProductStore) Get(id int) (model.Product, error) {
	p, ok := s.t.get(id)
	if !ok {
		return model.Product{}, fmt.Errorf("GetProduct %d: %w", id, ErrNotFound)
	}
	return p, nil
}

func (s *ProductStore) List() []model.Product {
	return s.t.list()
}

// Update 只覆寫有提供的欄位，ID 與 CreatedAt 不變
func (s *ProductStore) Update(id int, in model.ProductUpdate) (model.Product, error) {
	p, ok := s.t.update(id, func(p *model.Product) {
		if in.Name != nil {
			p.Name = *in.Name
		}
		if in.Description != nil {
			p.Description = *in.Description
		}
		if in.Price != nil {
			p.Price = *in.Price
		}
		if in.Category != nil {
			p.Category = *in.Category
		}
		if in.Tags != nil {
			p.Tags = slices.Clone(*in.Tags)
			if p.Tags == nil {
				p.Tags = []string{}
			}
		}
		if in.InStock != nil {
			p.InStock = *in.InStock
		}
	})
	if !ok {
		return model.Product{}, fmt.Errorf("UpdateProduct %d: %w", id, ErrNotFound)
	}
	return p, nil
}

// Delete 回傳是否真的刪除了紀錄
func (s *ProductStore) Delete(id int) bool {
	return s.t.remove(id)
}

func (s *ProductStore) Len() int {
	return s.t.len()
}
