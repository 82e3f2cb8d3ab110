// File: internal/model/user.go
package model

import "time"

// User 使用者紀錄
// Password 以明文保存並原樣回傳（示範用途，不做雜湊）
type User struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
