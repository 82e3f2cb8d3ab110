// File: internal/model/input.go
package model

// ProductCreate 建立商品所需欄位，Tags 與 InStock 為 nil 時套用預設值
type ProductCreate struct {
	Name        string
	Description string
	Price       float64
	Category    string
	Tags        []string
	InStock     *bool
}

// ProductUpdate 部分更新；nil 代表未提供，保留原值
type ProductUpdate struct {
	Name        *string
	Description *string
	Price       *float64
	Category    *string
	Tags        *[]string
	InStock     *bool
}

// UserCreate 建立使用者所需欄位
type UserCreate struct {
	Name     string
	Email    string
	Password string
}

// UserUpdate 部分更新；nil 代表未提供，保留原值
type UserUpdate struct {
	Name     *string
	Email    *string
	Password *string
}
