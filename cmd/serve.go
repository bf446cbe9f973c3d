package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/uber-go/tally/v4"
	tallyprom "github.com/uber-go/tally/v4/prometheus"

	sim "github.com/inference-sim/cloudlet-sim/sim"
	"github.com/inference-sim/cloudlet-sim/server"
)

var (
	serveAddr            string        // Listen address
	serveStaticDir       string        // Static asset directory
	serveSeed            int64         // Base seed for per-request seeds
	serveLogLevel        string        // Log verbosity level
	serveMetricsInterval time.Duration // tally reporting interval
)

const metricsRootScope = "cloudlet_sim"

// serveCmd exposes the engine over HTTP
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve estimations over HTTP",
	Long:  "Accept JSON configurations on POST " + server.RunSimulationPath + " and answer with JSON results. Prometheus metrics are exposed on /metrics.",
	Run: func(cmd *cobra.Command, args []string) {
		setLogLevel(serveLogLevel)

		baseSeed := time.Now().UnixNano()
		if cmd.Flags().Changed("seed") {
			baseSeed = serveSeed
		}

		reporter := tallyprom.NewReporter(tallyprom.Options{})
		scope, closer := tally.NewRootScope(tally.ScopeOptions{
			Prefix:         metricsRootScope,
			Tags:           map[string]string{},
			CachedReporter: reporter,
			Separator:      tallyprom.DefaultSeparator,
		}, serveMetricsInterval)
		defer closer.Close()

		srv := server.New(sim.NewEngine(), server.NewSeedSource(baseSeed), scope, server.Config{StaticDir: serveStaticDir})
		mux := http.NewServeMux()
		mux.Handle("/metrics", reporter.HTTPHandler())
		mux.Handle("/", srv.Handler())

		httpServer := &http.Server{
			Addr:              serveAddr,
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		go func() {
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := httpServer.Shutdown(shutdownCtx); err != nil {
				logrus.Warnf("Shutdown: %v", err)
			}
		}()

		logrus.Infof("Backend server started on http://localhost%s", serveAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("Server failed: %v", err)
		}
		logrus.Info("Server stopped.")
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":7070", "Listen address")
	serveCmd.Flags().StringVar(&serveStaticDir, "static-dir", "static", "Directory of static assets served at / (skipped if absent)")
	serveCmd.Flags().Int64Var(&serveSeed, "seed", 0, "Base seed for per-request seeds (default: time-based)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	serveCmd.Flags().DurationVar(&serveMetricsInterval, "metrics-interval", time.Second, "Metrics reporting interval")

	rootCmd.AddCommand(serveCmd)
}
