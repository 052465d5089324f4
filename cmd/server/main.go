package main

import (
	"context"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"google.golang.org/grpc"

	"crux/api/grpcserver"
	"crux/api/pb"
	"crux/config"
	"crux/domain/book"
	"crux/infra/kafka"
	"crux/infra/ring"
	"crux/infra/sequence"
	"crux/jobs/broadcaster"
	"crux/jobs/matcher"
	"crux/jobs/simulator"
	"crux/service"
)

func main() {
	cfg := config.Load()

	logger := zap.Must(zap.NewProduction())
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// ---------------- Domain ----------------

	obs := service.NewBookObserver(logger)
	b := book.NewOrderBookWith(cfg.TickerCapacity, obs)

	// ---------------- Infra ----------------

	seq := sequence.New(0)
	exec := ring.New[book.MatchResult](cfg.RingSize)

	// ---------------- Service ----------------

	svc := service.NewEngine(b, seq, exec, logger)

	// ---------------- Background jobs ----------------

	go matcher.New(svc, cfg.MatchInterval, logger).Run(ctx)

	if len(cfg.KafkaBrokers) > 0 {
		producer := kafka.NewProducer(cfg.KafkaBrokers, cfg.ExecutionsTopic)
		defer producer.Close()
		go broadcaster.New(exec, producer, cfg.MatchInterval, logger).Run(ctx)

		consumer, err := kafka.NewConsumer(cfg.KafkaBrokers, cfg.ConsumerGroup, cfg.OrdersTopic, svc, logger)
		if err != nil {
			logger.Fatal("kafka consumer init failed", zap.Error(err))
		}
		defer consumer.Close()
		go func() {
			if err := consumer.Run(ctx); err != nil && ctx.Err() == nil {
				logger.Error("kafka consumer exited", zap.Error(err))
			}
		}()
	}

	if cfg.SimEnabled {
		go simulator.New(svc, cfg.SimWorkers, cfg.SimInterval, logger).Run(ctx)
	}

	// ---------------- Metrics ----------------

	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
			logger.Error("metrics server exited", zap.Error(err))
		}
	}()

	// ---------------- gRPC ----------------

	lis, err := net.Listen("tcp", cfg.GRPCAddr)
	if err != nil {
		logger.Fatal("listen failed", zap.String("addr", cfg.GRPCAddr), zap.Error(err))
	}

	grpcSrv := grpc.NewServer()
	pb.RegisterMatchingEngineServer(grpcSrv, grpcserver.NewServer(svc))

	go func() {
		<-ctx.Done()
		grpcSrv.GracefulStop()
	}()

	logger.Info("engine running",
		zap.String("grpc_addr", cfg.GRPCAddr),
		zap.String("metrics_addr", cfg.MetricsAddr),
	)
	if err := grpcSrv.Serve(lis); err != nil {
		logger.Fatal("grpc server exited", zap.Error(err))
	}
}
