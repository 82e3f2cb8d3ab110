package store

import (
	"sync"
	"testing"

	"product-crud/internal/model"

	"github.com/stretchr/testify/require"
)

func TestUserStoreCRUD(t *testing.T) {
	s := NewUserStore()
	require.Empty(t, s.List())

	u1 := s.Create(model.UserCreate{Name: "User One", Email: "user1@example.com", Password: "pass1"})
	u2 := s.Create(model.UserCreate{Name: "User Two", Email: "user2@example.com", Password: "pass2"})
	require.Equal(t, 1, u1.ID)
	require.Equal(t, 2, u2.ID)
	require.Equal(t, "pass1", u1.Password)
	require.False(t, u1.CreatedAt.IsZero())

	list := s.List()
	require.Len(t, list, 2)
	require.Equal(t, 1, list[0].ID)
	require.Equal(t, 2, list[1].ID)

	got, err := s.Update(u1.ID, model.UserUpdate{Name: ptr("New Name")})
	require.NoError(t, err)
	require.Equal(t, "New Name", got.Name)
	require.Equal(t, "user1@example.com", got.Email)
	require.Equal(t, "pass1", got.Password)
	require.Equal(t, u1.CreatedAt, got.CreatedAt)

	require.True(t, s.Delete(u1.ID))
	_, err = s.Get(u1.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUserStoreMissing(t *testing.T) {
	s := NewUserStore()
	_, err := s.Get(999)
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Update(999, model.UserUpdate{Name: ptr("x")})
	require.ErrorIs(t, err, ErrNotFound)
	require.False(t, s.Delete(999))
	require.Equal(t, 0, s.Len())
	require.Equal(t, 1, s.Create(model.UserCreate{Name: "first"}).ID)
}

func TestConcurrentCreateUniqueIDs(t *testing.T) {
	s := NewUserStore()
	const n = 200
	var wg sync.WaitGroup
	ids := make(chan int, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids <- s.Create(model.UserCreate{Name: "u"}).ID
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[int]bool, n)
	for id := range ids {
		require.False(t, seen[id], "duplicate id %d", id)
		seen[id] = true
	}
	require.Len(t, seen, n)
	for id := 1; id <= n; id++ {
		require.True(t, seen[id])
	}
}
