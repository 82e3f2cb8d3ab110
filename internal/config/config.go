// Package config 讀取服務設定：每個旗標的預設值來自對應的環境變數
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"product-crud/internal/logger"

	"github.com/spf13/pflag"
)

const (
	DefaultAddr         = ":8000"
	DefaultEventChannel = "crud.events"
)

// DefaultCORSOrigins 前端開發伺服器
var DefaultCORSOrigins = []string{"http://localhost:5173", "http://localhost:3000"}

type Config struct {
	Addr        string
	CORSOrigins []string
	SeedData    bool

	// RedisAddr 為空時不發佈異動事件
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	EventChannel  string

	WorkerCount int

	Logger logger.Config
}

// Load 解析 args；環境變數無法解析時回傳錯誤
func Load(flags *pflag.FlagSet, args []string) (Config, error) {
	var cfg Config

	seed, err := envBool("SEED_SAMPLE_DATA", true)
	if err != nil {
		return cfg, err
	}
	redisDB, err := envInt("REDIS_DB", 0)
	if err != nil {
		return cfg, err
	}
	workers, err := envInt("WORKER_COUNT", 1)
	if err != nil {
		return cfg, err
	}
	origins := DefaultCORSOrigins
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		origins = splitList(v)
	}

	flags.StringVar(&cfg.Addr, "addr", envString("ADDR", DefaultAddr), "Listening address")
	flags.StringSliceVar(&cfg.CORSOrigins, "cors-origins", origins, "Allowed CORS origins")
	flags.BoolVar(&cfg.SeedData, "seed", seed, "Seed the store with sample records")
	flags.StringVar(&cfg.RedisAddr, "redis-addr", os.Getenv("REDIS_ADDR"), "Redis address for change events; empty disables publishing")
	flags.StringVar(&cfg.RedisPassword, "redis-password", os.Getenv("REDIS_PASSWORD"), "Redis password")
	flags.IntVar(&cfg.RedisDB, "redis-db", redisDB, "Redis database index")
	flags.StringVar(&cfg.EventChannel, "event-channel", envString("EVENT_CHANNEL", DefaultEventChannel), "Redis channel for change events")
	flags.IntVar(&cfg.WorkerCount, "workers", workers, "Number of event publishing workers")
	logger.AddFlags(flags, &cfg.Logger)

	if err := flags.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.WorkerCount <= 0 {
		return cfg, fmt.Errorf("無效的 WORKER_COUNT: %d", cfg.WorkerCount)
	}
	return cfg, nil
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("無效的 %s: %w", key, err)
	}
	return n, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %w", key, err)
	}
	return b, nil
}

func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
