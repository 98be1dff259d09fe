package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/kv"
	"coachcore/internal/metrics"
	"coachcore/internal/store"
)

var watchMetricsAddr string

// watch keeps a process's collection stores live: it joins the Redis change
// feed when configured, reloads on signals and poll ticks, and serves
// Prometheus metrics. This is the long-running shape a UI process embeds.
var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the data layer, following changes from other processes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := openApp()
		if err != nil {
			return err
		}
		defer a.close()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		rec, err := newRecorder(watchMetricsAddr, prometheus.DefaultRegisterer)
		if err != nil {
			return err
		}
		a.guard = codec.NewGuard(kv.Instrument(a.ks, rec), a.log)
		stores := store.Open(ctx, a.guard, a.emitter, a.log, rec)
		stores.Watch(ctx, a.cfg.PollInterval)

		if a.cfg.RedisAddr != "" {
			feed, err := bus.NewFeed(ctx, a.cfg.RedisAddr, a.cfg.RedisPassword, a.cfg.RedisDB, a.emitter, a.log)
			if err != nil {
				return err
			}
			defer func() { _ = feed.Close() }()
			go func() {
				if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
					a.log.Error("change feed stopped", zap.Error(err))
				}
			}()
		}

		if watchMetricsAddr != "" {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.Handler())
			srv := &http.Server{Addr: watchMetricsAddr, Handler: mux}
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					a.log.Error("metrics server failed", zap.Error(err))
				}
			}()
			defer func() { _ = srv.Shutdown(context.Background()) }()
		}

		a.log.Info("watching collections",
			zap.String("storage", a.cfg.Storage),
			zap.Duration("poll", a.cfg.PollInterval),
			zap.Bool("feed", a.cfg.RedisAddr != ""))
		<-ctx.Done()
		return nil
	},
}

// newRecorder picks the metrics backend: Prometheus when an address will
// serve scrapes, expvar otherwise so observations stay inspectable
// in-process.
func newRecorder(metricsAddr string, reg prometheus.Registerer) (metrics.Recorder, error) {
	if metricsAddr == "" {
		// generated name: expvar.Publish panics on duplicates
		return metrics.NewExpvarRecorder(""), nil
	}
	return metrics.NewPrometheusRecorder(reg)
}

func init() {
	watchCmd.Flags().StringVar(&watchMetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9109)")
	rootCmd.AddCommand(watchCmd)
}
