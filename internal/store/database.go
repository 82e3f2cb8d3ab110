// File: internal/store/database.go
package store

import "product-crud/internal/model"

// Database 聚合商品與使用者兩個彼此獨立的儲存，各自擁有 ID 計數器
type Database struct {
	Products *ProductStore
	Users    *UserStore
}

// Option 設定 NewDatabase
type Option func(*Database)

// WithSampleData 啟動時寫入示範資料
func WithSampleData() Option {
	return func(db *Database) {
		for _, p := range sampleProducts {
			db.Products.Create(p)
		}
		for _, u := range sampleUsers {
			db.Users.Create(u)
		}
	}
}

// NewDatabase 建立一個空的資料庫實例，由呼叫端持有並注入到路由層
func NewDatabase(opts ...Option) *Database {
	db := &Database{
		Products: NewProductStore(),
		Users:    NewUserStore(),
	}
	for _, opt := range opts {
		opt(db)
	}
	return db
}

var sampleProducts = []model.ProductCreate{
	{
		Name:        "Laptop",
		Description: "High-performance laptop for work and gaming",
		Price:       1299.99,
		Category:    "Electronics",
		Tags:        []string{"computer", "portable"},
	},
	{
		Name:        "Coffee Mug",
		Description: "Ceramic mug that holds 350ml",
		Price:       12.5,
		Category:    "Kitchen",
		Tags:        []string{"ceramic"},
	},
	{
		Name:        "Desk Lamp",
		Description: "Adjustable LED desk lamp",
		Price:       39.9,
		Category:    "Home",
		InStock:     new(bool),
	},
}

var sampleUsers = []model.UserCreate{
	{Name: "Alice", Email: "alice@example.com", Password: "alice123"},
	{Name: "Bob", Email: "bob@example.com", Password: "bob123"},
}
