package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/pavanmanishd/vector"
	"github.com/pavanmanishd/vector/internal/config"
	"github.com/pavanmanishd/vector/internal/demo"
)

var (
	configFile string
	allocator  string
	growth     float64
	logLevel   string
	appends    int
)

var headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))

func heading(s string) string {
	return headingStyle.Render(s)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd registers the commands; the root command runs the demo scenario.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vecdemo",
		Short:        "walk a dynamic array through its operations",
		SilenceUsage: true,
		RunE:         runDemo,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&allocator, "allocator", "", "backing allocator: heap or manual")
	rootCmd.PersistentFlags().Float64Var(&growth, "growth", 0, "capacity growth factor")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	growthCmd := &cobra.Command{
		Use:   "growth",
		Short: "plot capacity against number of appends",
		Args:  cobra.NoArgs,
		RunE:  plotGrowth,
	}
	growthCmd.Flags().IntVar(&appends, "appends", 0, "number of appends to plot")

	rootCmd.AddCommand(growthCmd)
	return rootCmd
}

// loadConfig reads the config file when given and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("allocator") {
		cfg.Allocator = allocator
	}
	if flags.Changed("growth") {
		cfg.GrowthFactor = growth
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = logLevel
	}
	if flags.Changed("appends") {
		cfg.Appends = appends
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	return zc.Build()
}

// setup builds the vector options described by cfg. The returned cleanup
// flushes the logger and releases the allocator.
func setup(cfg *config.Config) ([]vector.Option, func(), error) {
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	alloc, closeAlloc := cfg.NewAllocator()
	logger.Info("vector configured",
		zap.String("allocator", cfg.Allocator),
		zap.Float64("growth_factor", cfg.GrowthFactor))

	opts := []vector.Option{
		vector.WithAllocator(alloc),
		vector.WithGrowthFactor(cfg.GrowthFactor),
		vector.WithLogger(logger.Named("vector")),
	}
	cleanup := func() {
		if err := closeAlloc(); err != nil {
			logger.Error("release allocator", zap.Error(err))
		}
		_ = logger.Sync()
	}
	return opts, cleanup, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, cleanup, err := setup(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	_, err = demo.Run(cmd.OutOrStdout(), heading, opts...)
	return err
}

func plotGrowth(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, cleanup, err := setup(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	caps, err := demo.GrowthSeries(cfg.Appends, opts...)
	if err != nil {
		return err
	}
	graph := asciigraph.Plot(caps,
		asciigraph.Height(15),
		asciigraph.Caption(fmt.Sprintf("capacity over %d appends (growth factor %.4f)", cfg.Appends, cfg.GrowthFactor)))
	fmt.Fprintln(cmd.OutOrStdout(), heading("Capacity growth"))
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}
