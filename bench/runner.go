package bench

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

type RunConfig struct {
	// Logger defaults to slog.Default().
	Logger *slog.Logger
	// Registry receives the run's metrics; a fresh registry is used when nil.
	Registry *prometheus.Registry
}

// Run executes the benchmark command and logs any error.
func Run(cfg RunConfig) {
	cmd := NewCommand(cfg)
	if err := cmd.Execute(); err != nil {
		logger(cfg).Error("error running benchmarks", "error", err)
		os.Exit(1)
	}
}

func logger(cfg RunConfig) *slog.Logger {
	if cfg.Logger == nil {
		return slog.Default()
	}
	return cfg.Logger
}

func NewCommand(cfg RunConfig) *cobra.Command {
	opts := DefaultOptions()
	var rawOptions string
	var metricsAddr string
	var outFile string
	cmd := &cobra.Command{
		Use:          "aaset-bench",
		Short:        "Benchmarks and cross-checks the aaset ordered set against other ordered containers.",
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&rawOptions, "options", "", "JSON encoded Options; fields set here override the individual flags.")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", opts.Seed, "Seed for the workload generator.")
	cmd.Flags().IntVar(&opts.Ops, "ops", opts.Ops, "Operations per trial.")
	cmd.Flags().Uint32Var(&opts.KeySpace, "key-space", opts.KeySpace, "Keys are drawn from [0, key-space).")
	cmd.Flags().IntVar(&opts.Trials, "trials", opts.Trials, "Number of trials.")
	cmd.Flags().IntVar(&opts.Parallel, "parallel", opts.Parallel, "Number of trials to run concurrently.")
	cmd.Flags().StringSliceVar(&opts.Drivers, "drivers", opts.Drivers, "Drivers to run.")
	cmd.Flags().BoolVar(&opts.Check, "check", opts.Check, "Apply operations to all drivers in lockstep and fail on any disagreement.")
	cmd.Flags().BoolVar(&opts.Verify, "verify", opts.Verify, "Check aaset tree invariants after every trial.")
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "If set, serve prometheus metrics on this address while running.")
	cmd.Flags().StringVar(&outFile, "out", "", "If set, write per-trial results as JSON to this file.")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		logger := logger(cfg)
		opts, err := ParseOptions(opts, rawOptions)
		if err != nil {
			return err
		}
		if err := opts.Validate(); err != nil {
			return fmt.Errorf("invalid options: %w", err)
		}

		reg := cfg.Registry
		if reg == nil {
			reg = prometheus.NewRegistry()
		}
		metrics := NewMetrics(reg)
		if metricsAddr != "" {
			srv := serveMetrics(logger, metricsAddr, reg)
			defer srv.Close()
		}

		results, err := RunAll(logger, opts, metrics)
		if err != nil {
			return err
		}
		logSummary(logger, Summarize(results))

		if outFile != "" {
			if err := writeResults(outFile, results); err != nil {
				return err
			}
			logger.Info("wrote results", "file", outFile)
		}
		return nil
	}
	return cmd
}

// RunAll runs every trial on a pool of opts.Parallel workers and returns the
// results ordered by trial.
func RunAll(logger *slog.Logger, opts Options, metrics *Metrics) ([]TrialResult, error) {
	logger.Info("starting run",
		"trials", opts.Trials,
		"parallel", opts.Parallel,
		"ops", humanize.Comma(int64(opts.Ops)),
		"drivers", opts.Drivers,
		"check", opts.Check,
	)

	pool := pond.NewResultPool[TrialResult](opts.Parallel)
	defer pool.StopAndWait()

	group := pool.NewGroup()
	for trial := 0; trial < opts.Trials; trial++ {
		group.SubmitErr(func() (TrialResult, error) {
			startTime := time.Now()
			res, err := RunTrial(opts, trial, metrics)
			if err != nil {
				return res, err
			}
			logger.Debug("finished trial", "trial", trial, "duration", time.Since(startTime))
			return res, nil
		})
	}

	results, err := group.Wait()
	if err != nil {
		return nil, fmt.Errorf("error running trials: %w", err)
	}
	return results, nil
}

type DriverSummary struct {
	Driver   string
	Trials   int
	Ops      int64
	Duration time.Duration
}

func (s DriverSummary) OpsPerSec() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.Ops) / s.Duration.Seconds()
}

// Summarize totals results per driver, in the order drivers first appear.
func Summarize(results []TrialResult) []DriverSummary {
	var summaries []DriverSummary
	index := map[string]int{}
	for _, trial := range results {
		for _, res := range trial.Drivers {
			i, ok := index[res.Driver]
			if !ok {
				i = len(summaries)
				index[res.Driver] = i
				summaries = append(summaries, DriverSummary{Driver: res.Driver})
			}
			summaries[i].Trials++
			summaries[i].Ops += int64(res.Ops)
			summaries[i].Duration += res.Duration
		}
	}
	return summaries
}

func logSummary(logger *slog.Logger, summaries []DriverSummary) {
	for _, s := range summaries {
		logger.Info(
			"driver summary",
			"driver", s.Driver,
			"trials", s.Trials,
			"ops", humanize.Comma(s.Ops),
			"duration", s.Duration,
			"ops_per_sec", humanize.CommafWithDigits(s.OpsPerSec(), 0),
		)
	}
	var memStats runtime.MemStats
	runtime.ReadMemStats(&memStats)
	logger.Info(
		"memory",
		"mem_allocs", humanize.Bytes(memStats.Alloc),
		"mem_sys", humanize.Bytes(memStats.Sys),
		"mem_num_gc", humanize.Comma(int64(memStats.NumGC)),
	)
}

func serveMetrics(logger *slog.Logger, addr string, reg *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Info("serving metrics", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", "error", err)
		}
	}()
	return srv
}
