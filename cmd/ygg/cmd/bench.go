/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/mythicalcodelabs/yggdrasil/pkg/workload"
)

// benchCmd represents the bench command
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a dictionary comparison benchmark",
	Long: `Run a benchmark workload against the ordered tree and the configured
baseline dictionaries (Go map, pebble), printing an elapsed-time table
per phase.

Example:
  ygg bench --size 1000000 --keys int
  ygg bench --config workload.yaml --metrics-addr 127.0.0.1:9095`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := benchConfig(cmd)
		if err != nil {
			return err
		}

		runner, err := workload.NewRunner(cfg)
		if err != nil {
			return err
		}

		metricsAddr, _ := cmd.Flags().GetString("metrics-addr")
		if metricsAddr != "" {
			registry := prometheus.NewRegistry()
			runner.Registry = registry

			router := chi.NewRouter()
			router.Use(middleware.Recoverer)
			router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			go func() {
				log.Printf("serving metrics on http://%s/metrics", metricsAddr)
				if err := http.ListenAndServe(metricsAddr, router); err != nil {
					log.Printf("metrics server stopped: %v", err)
				}
			}()
		}

		results, err := runner.Run()
		if err != nil {
			return fmt.Errorf("benchmark failed: %w", err)
		}
		fmt.Print(workload.FormatTable(results))
		return nil
	},
}

func benchConfig(cmd *cobra.Command) (*workload.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath != "" {
		return workload.LoadConfig(configPath)
	}

	cfg := workload.DefaultConfig()
	if size, _ := cmd.Flags().GetInt("size"); size > 0 {
		cfg.Size = size
	}
	if keys, _ := cmd.Flags().GetString("keys"); keys != "" {
		cfg.Keys = keys
	}
	if seed, _ := cmd.Flags().GetInt64("seed"); seed != 0 {
		cfg.Seed = seed
	}
	if order, _ := cmd.Flags().GetInt("order"); order != 0 {
		cfg.Order = order
	}
	if targets, _ := cmd.Flags().GetStringSlice("targets"); len(targets) > 0 {
		cfg.Targets = targets
	}
	return cfg, nil
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().String("config", "", "Workload yaml file (overrides the other flags)")
	benchCmd.Flags().Int("size", 0, "Records per phase")
	benchCmd.Flags().String("keys", "", "Key generator: int or ksuid")
	benchCmd.Flags().Int64("seed", 0, "Key generator seed")
	benchCmd.Flags().Int("order", 0, "Tree branching factor")
	benchCmd.Flags().StringSlice("targets", nil, "Targets to compare: btree, gomap, pebble")
	benchCmd.Flags().String("metrics-addr", "", "Serve Prometheus metrics on this address during the run")
}
