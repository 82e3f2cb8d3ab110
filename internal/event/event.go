// Package event 在紀錄異動後非同步發佈通知
package event

import (
	"context"
	"encoding/json"
	"time"

	"product-crud/internal/cache"
	"product-crud/internal/logger"
	"product-crud/internal/worker"
)

type Kind string

const (
	KindProduct Kind = "product"
	KindUser    Kind = "user"
)

type Action string

const (
	ActionCreated Action = "created"
	ActionUpdated Action = "updated"
	ActionDeleted Action = "deleted"
)

// publishTimeout 單次 PUBLISH 的逾時
const publishTimeout = 3 * time.Second

// Event 一筆紀錄的異動
type Event struct {
	Kind   Kind      `json:"kind"`
	Action Action    `json:"action"`
	ID     int       `json:"id"`
	At     time.Time `json:"at"`
}

// Notifier 接收異動事件；實作不得阻塞或回傳錯誤給呼叫端。
// 事件不保證依異動順序送達，訂閱者應以 At 與 ID 自行判斷。
type Notifier interface {
	Notify(Event)
}

// Noop 不做任何事，Redis 未設定時使用
type Noop struct{}

func (Noop) Notify(Event) {}

var (
	jsonMarshal = json.Marshal
	timeNow     = func() time.Time { return time.Now().UTC() }
)

// Publisher 透過 worker pool 將事件發佈到 Redis channel
type Publisher struct {
	pool    worker.Pool
	client  cache.Cache
	channel string
	logger  logger.Logger
}

func NewPublisher(pool worker.Pool, client cache.Cache, channel string, log logger.Logger) *Publisher {
	return &Publisher{pool: pool, client: client, channel: channel, logger: log}
}

// Notify 補上時間戳記後排入 pool，不等待佇列空位；
// 佇列已滿或 pool 已停止時丟棄事件並記錄日誌。
// 單一 worker 時依 Notify 呼叫順序發佈，多個 worker 時不保證順序。
func (p *Publisher) Notify(ev Event) {
	if ev.At.IsZero() {
		ev.At = timeNow()
	}
	if err := p.pool.TrySubmit(func() { p.publish(ev) }); err != nil {
		p.logger.Error(err, "dropping event", "kind", ev.Kind, "action", ev.Action, "id", ev.ID)
	}
}

func (p *Publisher) publish(ev Event) {
	payload, err := jsonMarshal(ev)
	if err != nil {
		p.logger.Error(err, "encoding event", "kind", ev.Kind, "id", ev.ID)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		p.logger.Error(err, "publishing event", "channel", p.channel, "kind", ev.Kind, "id", ev.ID)
		return
	}
	p.logger.V(1).Info("published event", "channel", p.channel, "kind", ev.Kind, "action", ev.Action, "id", ev.ID)
}
