// @title        Product CRUD API
// @version      1.0.0
// @description  A simple CRUD API for managing products
// @BasePath     /
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-crud/internal/cache"
	"product-crud/internal/config"
	"product-crud/internal/event"
	"product-crud/internal/logger"
	reqlog "product-crud/internal/middleware"
	"product-crud/internal/router"
	"product-crud/internal/store"
	"product-crud/internal/worker"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"

	_ "product-crud/docs" // 引入 swag 產出的 docs

	echoSwagger "github.com/swaggo/echo-swagger"
)

// CustomValidator wraps go-playground/validator for Echo
// swagger:ignore
type CustomValidator struct {
	validator *validator.Validate
}

// Validate calls the underlying validator
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

const shutdownTimeout = 10 * time.Second

var (
	newRedisClient = cache.NewRedisClient
	newWorkerPool  = worker.NewPool
	startServer    = serve
	exitFunc       = os.Exit
)

// serve 啟動服務直到 ctx 結束，再於逾時內優雅關閉
func serve(ctx context.Context, e *echo.Echo, addr string) error {
	errc := make(chan error, 1)
	go func() { errc <- e.Start(addr) }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(sctx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// newEcho 建立 Echo 實例、中介層與路由
func newEcho(cfg config.Config, lg logger.Logger, db *store.Database, n event.Notifier) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = &CustomValidator{validator: validator.New()}
	e.Use(reqlog.RequestLogger(lg))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{
			http.MethodGet, http.MethodHead, http.MethodPut, http.MethodPatch,
			http.MethodPost, http.MethodDelete, http.MethodOptions,
		},
		AllowCredentials: true,
	}))

	router.Setup(e, db, n)

	e.GET("/swagger/*", echoSwagger.WrapHandler)
	return e
}

func run(ctx context.Context, args []string) error {
	cfg, err := config.Load(pflag.NewFlagSet("service", pflag.ContinueOnError), args)
	if err != nil {
		return fmt.Errorf("設定載入失敗: %w", err)
	}

	lg, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}

	var opts []store.Option
	if cfg.SeedData {
		opts = append(opts, store.WithSampleData())
	}
	db := store.NewDatabase(opts...)

	var notifier event.Notifier = event.Noop{}
	if cfg.RedisAddr != "" {
		rdb, err := newRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			return fmt.Errorf("Redis 連線失敗: %w", err)
		}
		defer rdb.Close()

		wp := newWorkerPool(cfg.WorkerCount)
		defer wp.Stop()

		notifier = event.NewPublisher(wp, rdb, cfg.EventChannel, lg.WithName("events"))
		lg.Info("publishing change events", "redis", cfg.RedisAddr, "channel", cfg.EventChannel)
	}

	e := newEcho(cfg, lg, db, notifier)
	lg.Info("starting server", "addr", cfg.Addr, "products", db.Products.Len(), "users", db.Users.Len())
	return startServer(ctx, e, cfg.Addr)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, os.Args[1:])
	stop()
	if err != nil {
		log.Print(err)
		exitFunc(1)
	}
}
