// File: internal/store/table.go
package store

import (
	"errors"
	"maps"
	"slices"
	"sync"
	"time"
)

// ErrNotFound 指定 ID 的紀錄不存在
var ErrNotFound = errors.New("record not found")

// timeNow 供測試替換建立時間
var timeNow = func() time.Time { return time.Now().UTC() }

// table 是單一資料種類的記憶體儲存：自增 ID 計數器加上 id→紀錄 映射。
// 計數器從 0 開始、先遞增再配發，刪除後不回收 ID。
// 所有讀寫都經由同一把鎖，配發 ID 與寫入在同一個臨界區內完成。
type table[R any] struct {
	mu     sync.RWMutex
	nextID int
	rows   map[int]R
	clone  func(R) R
}

func newTable[R any](clone func(R) R) *table[R] {
	if clone == nil {
		clone = func(r R) R { return r }
	}
	return &table[R]{rows: make(map[int]R), clone: clone}
}

// insert 配發下一個 ID 並以 build 產生紀錄後寫入
func (t *table[R]) insert(build func(id int, createdAt time.Time) R) R {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nextID++
	r := build(t.nextID, timeNow())
	t.rows[t.nextID] = r
	return t.clone(r)
}

func (t *table[R]) get(id int) (R, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	if !ok {
		return r, false
	}
	return t.clone(r), true
}

// list 依 ID 遞增（即建立順序）回傳快照
func (t *table[R]) list() []R {
	t.mu.RLock()
	defer t.mu.RUnlock()

	ids := slices.Sorted(maps.Keys(t.rows))
	out := make([]R, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.clone(t.rows[id]))
	}
	return out
}

// update 就地合併；apply 只能修改可變欄位
func (t *table[R]) update(id int, apply func(*R)) (R, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		return r, false
	}
	apply(&r)
	t.rows[id] = r
	return t.clone(r), true
}

func (t *table[R]) remove(id int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	return true
}

func (t *table[R]) len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
