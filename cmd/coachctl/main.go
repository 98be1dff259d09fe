// coachctl is the operational CLI for the coachcore data layer: snapshot
// export/import, program reports, and keyspace health checks.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"coachcore/internal/blob"
	"coachcore/internal/bus"
	"coachcore/internal/codec"
	"coachcore/internal/config"
	"coachcore/internal/kv"
	"coachcore/internal/logging"
	"coachcore/internal/store"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "coachctl",
	Short: "coachctl manages the coachcore trainer/student data layer",
	Long:  "coachctl is the operational CLI for coachcore: snapshot backup and restore, student program reports, and keyspace health checks.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Directory containing coachcore.yaml")
}

// app bundles the wired-up data layer for one command invocation.
type app struct {
	cfg     config.Config
	log     *zap.Logger
	ks      kv.Keyspace
	guard   *codec.Guard
	emitter *bus.Emitter
}

func openApp() (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	ks, err := kv.Open(kv.Options{
		Driver:      kv.Driver(cfg.Storage),
		SQLitePath:  cfg.SQLitePath,
		PostgresDSN: cfg.PostgresDSN,
	})
	if err != nil {
		return nil, err
	}
	return &app{
		cfg:     cfg,
		log:     log,
		ks:      ks,
		guard:   codec.NewGuard(ks, log),
		emitter: bus.NewEmitter(),
	}, nil
}

func (a *app) close() {
	_ = a.ks.Close()
	_ = a.log.Sync()
}

func (a *app) archiveStore(cmd *cobra.Command) (blob.Store, error) {
	return blob.Open(cmd.Context(), blob.Options{
		Driver: blob.Driver(a.cfg.Archive),
		FSRoot: a.cfg.ArchiveFSRoot,
		S3: blob.S3Config{
			Region:    a.cfg.S3Region,
			Bucket:    a.cfg.S3Bucket,
			Endpoint:  a.cfg.S3Endpoint,
			PathStyle: a.cfg.S3PathStyle,
		},
	})
}

func (a *app) openStores(cmd *cobra.Command) *store.Stores {
	return store.Open(cmd.Context(), a.guard, a.emitter, a.log, nil)
}
