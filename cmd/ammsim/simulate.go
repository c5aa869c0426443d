package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/imetandy/emission-testing/internal/config"
	"github.com/imetandy/emission-testing/internal/core/application"
	"github.com/imetandy/emission-testing/internal/core/ports"
	"github.com/imetandy/emission-testing/internal/infrastructure/metrics"
	webhookpubsub "github.com/imetandy/emission-testing/internal/infrastructure/pubsub/webhook"
	"github.com/imetandy/emission-testing/internal/infrastructure/report"
	signalfeederinfra "github.com/imetandy/emission-testing/internal/infrastructure/signal-feeder"
	"github.com/imetandy/emission-testing/pkg/stats"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
)

var simulate = cli.Command{
	Name:  "simulate",
	Usage: "run a simulation of random trades against the pool",
	Flags: []cli.Flag{
		&cli.IntFlag{
			Name:  "num-trades",
			Usage: "the number of trades to simulate",
		},
		&cli.Int64Flag{
			Name:  "seed",
			Usage: "the seed of the random trade sampler",
		},
		&cli.IntFlag{
			Name:  "refresh-interval",
			Usage: "the number of trades between two ratio refreshes, 0 to disable",
		},
		&cli.IntFlag{
			Name:  "trades-per-second",
			Usage: "pace the simulation, 0 means as fast as possible",
		},
		&cli.StringFlag{
			Name:  "signal-source",
			Usage: "the source of the signal, one of static, file, websocket",
		},
		&cli.StringFlag{
			Name:  "signal-file",
			Usage: "the JSON lines file read by the file signal source",
		},
		&cli.StringFlag{
			Name:  "signal-url",
			Usage: "the endpoint read by the websocket signal source",
		},
		&cli.IntFlag{
			Name:  "stats-interval",
			Usage: "log runtime statistics every given seconds, 0 to disable",
		},
		&cli.StringFlag{
			Name:  "metrics-addr",
			Usage: "serve Prometheus metrics at the given address during the run",
		},
	},
	Action: simulateAction,
}

// flagKeys maps the simulate command flags to the config keys they override.
var flagKeys = map[string]string{
	"num-trades":        config.NumTradesKey,
	"seed":              config.SeedKey,
	"refresh-interval":  config.RatioRefreshIntervalKey,
	"trades-per-second": config.TradesPerSecondKey,
	"signal-source":     config.SignalSourceKey,
	"signal-file":       config.SignalFileKey,
	"signal-url":        config.SignalURLKey,
	"stats-interval":    config.StatsIntervalKey,
	"metrics-addr":      config.MetricsAddrKey,
}

func simulateAction(ctx *cli.Context) error {
	if err := config.InitConfig(flagOverrides(ctx)); err != nil {
		return err
	}

	runCtx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	runID := uuid.New().String()
	stats.LogRuntimeStatistics(
		runCtx, time.Duration(config.GetInt(config.StatsIntervalKey))*time.Second,
	)

	source, err := signalfeederinfra.NewSource(
		runCtx, config.GetString(config.SignalSourceKey),
		config.GetSignalSourceOpts(),
	)
	if err != nil {
		return err
	}
	feeder, err := signalfeederinfra.NewService(source)
	if err != nil {
		return err
	}
	defer feeder.Close()

	sinks, err := newStepSinks(runID)
	if err != nil {
		return err
	}

	publisher, err := newPublisher()
	if err != nil {
		return err
	}

	poolMetrics := metrics.New()
	if addr := config.GetString(config.MetricsAddrKey); addr != "" {
		shutdown := serveMetrics(addr, poolMetrics.Handler())
		defer shutdown()
	}

	appConfig := &application.Config{
		ReserveA:     config.GetDecimal(config.ReserveAKey),
		ReserveB:     config.GetDecimal(config.ReserveBKey),
		SignalFeeder: feeder,
		Publisher:    publisher,
		PoolObserver: poolMetrics,
		StepSinks:    sinks,
		Simulation: application.SimulationConfig{
			RunID:           runID,
			NumTrades:       config.GetInt(config.NumTradesKey),
			MinTradeAmount:  config.GetInt64(config.MinTradeAmountKey),
			MaxTradeAmount:  config.GetInt64(config.MaxTradeAmountKey),
			RefreshInterval: config.GetInt(config.RatioRefreshIntervalKey),
			TradesPerSecond: config.GetInt(config.TradesPerSecondKey),
			Seed:            config.GetSeed(),
		},
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	result, err := appConfig.SimulationService().Run(runCtx)
	if err != nil {
		return err
	}

	statsPath := filepath.Join(config.GetStatsDir(), runID+".prom")
	if err := poolMetrics.DumpToFile(statsPath); err != nil {
		log.WithError(err).Warn("failed to dump pool stats")
	}

	printJSON(result)
	return nil
}

func flagOverrides(ctx *cli.Context) map[string]interface{} {
	overrides := make(map[string]interface{})
	for flag, key := range flagKeys {
		if ctx.IsSet(flag) {
			overrides[key] = ctx.Value(flag)
		}
	}
	return overrides
}

func newStepSinks(runID string) ([]ports.StepSink, error) {
	formats := config.GetStringSlice(config.ReportFormatsKey)
	sinks := make([]ports.StepSink, 0, len(formats))
	for _, format := range formats {
		path := filepath.Join(config.GetReportsDir(), fmt.Sprintf("%s.%s", runID, format))
		sink, err := report.NewSink(format, path)
		if err != nil {
			return nil, err
		}
		log.Debugf("writing %s report to %s", format, path)
		sinks = append(sinks, sink)
	}
	return sinks, nil
}

func newPublisher() (ports.Publisher, error) {
	endpoints := config.GetStringSlice(config.WebhookEndpointsKey)
	if len(endpoints) <= 0 {
		return nil, nil
	}

	publisher := webhookpubsub.NewService()
	secret := config.GetString(config.WebhookSecretKey)
	for _, endpoint := range endpoints {
		if _, err := publisher.Subscribe(ports.AnyTopic, endpoint, secret); err != nil {
			return nil, fmt.Errorf("invalid webhook endpoint %s: %w", endpoint, err)
		}
	}
	return publisher, nil
}

func serveMetrics(addr string, handler http.Handler) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)
	server := &http.Server{Addr: addr, Handler: mux}

	go func() {
		log.Infof("serving metrics at %s/metrics", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Warn("metrics server stopped")
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
}
