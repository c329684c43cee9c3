package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/okoth/wabus/logger"
	"github.com/okoth/wabus/metrics"
	"github.com/okoth/wabus/middlewares"
	"github.com/okoth/wabus/pkg/config"
	"github.com/okoth/wabus/pkg/messenger"
	"github.com/okoth/wabus/pkg/monitor"
	"github.com/okoth/wabus/pkg/utils"
	"github.com/okoth/wabus/tracing"
)

func main() {
	_ = godotenv.Load()

	logr, err := logger.InitLogger()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer logr.Sync()

	cfg, err := config.Load(utils.GetEnv("CONFIG_PATH"))
	if err != nil {
		logr.Fatal("failed to load config", zap.Error(err))
	}

	metrics.InitHTTPMetrics()
	metrics.InitMessengerMetrics()

	shutdownTracer := tracing.InitTracer("whatsapp_app", cfg.OTLPAddr, logr)
	defer shutdownTracer()

	sender := config.BuildSender(cfg, logr)
	sink := monitor.NewLogSink(logr, "whatsapp_app")
	m := messenger.New(cfg, sender, logr, sink)

	logr.Info("starting WhatsApp application example")
	Run(context.Background(), cfg, m, logr)
	logr.Info("WhatsApp application example finished")

	// Without a metrics address the example is a one-shot run.
	if cfg.MetricsAddr != "" {
		serveMetrics(cfg.MetricsAddr, logr)
	}
}

func serveMetrics(addr string, logr *zap.Logger) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	go handleShutdown(logr)

	logr.Info("serving metrics", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, middlewares.MetricsMiddleware(mux)); err != nil {
		logr.Fatal("metrics server failed", zap.Error(err))
	}
}

func handleShutdown(logr *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	logr.Info("shutdown signal received", zap.String("signal", sig.String()))
	logr.Sync()
	os.Exit(0)
}
