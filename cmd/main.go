package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	allocationapp "github.com/muhammadheryan/stock-ledger/application/allocation"
	orderapp "github.com/muhammadheryan/stock-ledger/application/order"
	productapp "github.com/muhammadheryan/stock-ledger/application/product"
	reservationapp "github.com/muhammadheryan/stock-ledger/application/reservation"
	stockapp "github.com/muhammadheryan/stock-ledger/application/stock"
	"github.com/muhammadheryan/stock-ledger/cmd/config"
	redisclient "github.com/muhammadheryan/stock-ledger/cmd/redis"
	_ "github.com/muhammadheryan/stock-ledger/docs"
	orderRepo "github.com/muhammadheryan/stock-ledger/repository/order"
	productRepo "github.com/muhammadheryan/stock-ledger/repository/product"
	redisRepo "github.com/muhammadheryan/stock-ledger/repository/redis"
	reservationRepo "github.com/muhammadheryan/stock-ledger/repository/reservation"
	stockRepo "github.com/muhammadheryan/stock-ledger/repository/stock"
	txRepo "github.com/muhammadheryan/stock-ledger/repository/tx"
	"github.com/muhammadheryan/stock-ledger/thirdparty/rabbitmq"
	"github.com/muhammadheryan/stock-ledger/transport"
	"github.com/muhammadheryan/stock-ledger/utils/logger"
	validatorx "github.com/muhammadheryan/stock-ledger/utils/validator"
	goredis "github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// @title STOCK LEDGER API
// @version 1.0
// @description Warehouse stock ledger: stock locations, sales-order demand, allocation previews and reservations
// @host localhost:8080
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment, cfg.LogLevel); err != nil {
		panic(err)
	}
	defer logger.Close()

	validatorx.Init()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Redis only backs the report cache, the ledger keeps working without it
	var redisClient *goredis.Client
	if c, err := redisclient.New(cfg); err != nil {
		logger.Warn("redis unavailable, report cache disabled", zap.Error(err))
	} else {
		redisClient = c
		defer func() {
			_ = redisClient.Close()
		}()
	}

	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq publisher", zap.Error(err))
		}
		defer publisher.Close()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	StockRepo := stockRepo.NewStockRepository(db)
	OrderRepo := orderRepo.NewOrderRepository(db)
	ReservationRepo := reservationRepo.NewReservationRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	StockApp := stockapp.NewStockApp(cfg, TxRepo, StockRepo, ProductRepo, publisher)
	OrderApp := orderapp.NewOrderApp(cfg, TxRepo, OrderRepo, ReservationRepo, RedisRepo)
	AllocationApp := allocationapp.NewAllocationApp(TxRepo, StockRepo, OrderRepo)
	ReservationApp := reservationapp.NewReservationApp(cfg, TxRepo, StockRepo, OrderRepo, ReservationRepo, RedisRepo, publisher)

	ProductApp := productapp.NewProductApp(ProductRepo)

	httpTransport := transport.NewTransport(StockApp, OrderApp, AllocationApp, ReservationApp, ProductApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	if cfg.RabbitMQ.Enabled {
		consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, StockApp)
		if err != nil {
			logger.Fatal("err connect rabbitmq consumer", zap.Error(err))
		}
		defer consumer.Close()

		g.Go(func() error {
			logger.Info("stock receipt consumer running")
			return consumer.Run(gctx)
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped", zap.Error(err))
		return
	}
	logger.Info("Server exited properly")
}
