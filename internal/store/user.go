// File: internal/store/user.go
package store

import (
	"fmt"
	"time"

	"product-crud/internal/model"
)

// UserStore 使用者的記憶體儲存，行為與 ProductStore 相同
type UserStore struct {
	t *table[model.User]
}

func NewUserStore() *UserStore {
	return &UserStore{t: newTable[model.User](nil)}
}

func (s *UserStore) Create(in model.UserCreate) model.User {
	return s.t.insert(func(id int, createdAt time.Time) model.User {
		return model.User{
			ID:        id,
			Name:      in.Name,
			Email:     in.Email,
			Password:  in.Password,
			CreatedAt: createdAt,
		}
	})
}

func (s *UserStore) Get(id int) (model.User, error) {
	u, ok := s.t.get(id)
	if !ok {
		return model.User{}, fmt.Errorf("GetUser %d: %w", id, ErrNotFound)
	}
	return u, nil
}

func (s *UserStore) List() []model.User {
	return s.t.list()
}

func (s *UserStore) Update(id int, in model.UserUpdate) (model.User, error) {
	u, ok := s.t.update(id, func(u *model.User) {
		if in.Name != nil {
			u.Name = *in.Name
		}
		if in.Email != nil {
			u.Email = *in.Email
		}
		if in.Password != nil {
			u.Password = *in.Password
		}
	})
	if !ok {
		return model.User{}, fmt.Errorf("UpdateUser %d: %w", id, ErrNotFound)
	}
	return u, nil
}

func (s *UserStore) Delete(id int) bool {
	return s.t.remove(id)
}

func (s *UserStore) Len() int {
	return s.t.len()
}
