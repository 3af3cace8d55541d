package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	estimateapp "ccw_query/internal/application/estimate"
	orderapp "ccw_query/internal/application/order"
	"ccw_query/internal/config"
	"ccw_query/internal/infrastructure/http/ccw"
	ginserver "ccw_query/internal/infrastructure/http/gin"
	kafkainfra "ccw_query/internal/infrastructure/messaging/kafka"
	"ccw_query/internal/interfaces/http/handler"
	"ccw_query/internal/interfaces/http/router"
	"ccw_query/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLog, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("create logger failed: %v", err)
	}
	defer appLog.Sync()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	session, err := ccw.NewSession(ctx, cfg.CCW, nil)
	if err != nil {
		appLog.Fatal("[Main] CCW login failed", logger.Error(err))
	}
	client := ccw.NewClient(session, cfg.CCW.BaseURL, appLog)

	producer, err := kafkainfra.NewOrderLineProducer(cfg.Kafka, appLog)
	if err != nil {
		appLog.Fatal("[Main] Kafka producer failed", logger.Error(err))
	}
	defer producer.Close(context.Background())

	orderService := orderapp.NewService(client, producer, appLog)
	estimateService := estimateapp.NewService(client, appLog)

	consumer := kafkainfra.NewLookupConsumer(cfg.Kafka, orderService, appLog)
	go func() {
		if err := consumer.Start(ctx); err != nil {
			appLog.Error("[Main] Kafka consumer stopped", logger.Error(err))
		}
	}()
	defer consumer.Close()

	engine := ginserver.NewEngine(appLog)
	router.RegisterRoutes(engine,
		handler.NewOrderHandler(orderService),
		handler.NewEstimateHandler(estimateService),
		handler.NewHelloHandler(client),
	)

	server := ginserver.NewServer(cfg.Server, engine)
	go func() {
		<-ctx.Done()
		shutdownCtx, done := context.WithTimeout(context.Background(), 10*time.Second)
		defer done()
		if err := server.Shutdown(shutdownCtx); err != nil {
			appLog.Warn("[Main] Server shutdown", logger.Error(err))
		}
	}()

	appLog.Info("[Main] Listening", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		appLog.Fatal("[Main] server run failed", logger.Error(err))
	}
}
