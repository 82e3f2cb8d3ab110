package cache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// Cache 定義本服務使用到的 Redis 操作
// 目前只用於發佈資料異動事件，方便測試時替換 FakeCache 實作
type Cache interface {
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
	Ping(ctx context.Context) *redis.StatusCmd
	Close() error
}

type FakeCache struct {
	PublishFn func(ctx context.Context, channel string, message any) *redis.IntCmd
	PingFn    func(ctx context.Context) *redis.StatusCmd
	CloseFn   func() error
}

// Publish 執行 Fake 設定或 panic
func (f *FakeCache) Publish(ctx context.Context, channel string, message any) *redis.IntCmd {
	if f.PublishFn != nil {
		return f.PublishFn(ctx, channel, message)
	}
	panic("unexpected Publish")
}

// Ping 執行 Fake 設定或回傳 PONG
func (f *FakeCache) Ping(ctx context.Context) *redis.StatusCmd {
	if f.PingFn != nil {
		return f.PingFn(ctx)
	}
	return redis.NewStatusResult("PONG", nil)
}

// Close 執行 Fake 設定或 no-op
func (f *FakeCache) Close() error {
	if f.CloseFn != nil {
		return f.CloseFn()
	}
	return nil
}
