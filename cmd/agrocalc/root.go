package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/agrocalc"
	"github.com/aretw0/agrocalc/internal/cli"
	"github.com/aretw0/agrocalc/internal/config"
	"github.com/aretw0/agrocalc/internal/logging"
	"github.com/aretw0/agrocalc/pkg/observability"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	verbose bool

	v      = viper.New()
	cfg    *config.Config
	logger = logging.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "agrocalc",
	Short: "Calculadoras agronômicas",
	Long: `agrocalc reúne calculadoras agronômicas (calagem, semeadura, pulverização,
colheita) com validação de entradas e números no formato pt-BR.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := config.Load(v, cfgFile)
		if err != nil {
			return err
		}
		cfg = loaded
		return setupLogging()
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.agrocalc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Version = agrocalc.Version
}

func setupLogging() error {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	if verbose {
		level = slog.LevelDebug
	}
	logger = logging.NewWithWriter(os.Stderr, level, cfg.Log.JSON)
	slog.SetDefault(logger)
	return nil
}

// newEngine builds the engine with logging hooks and, when given, metrics.
func newEngine(metrics *observability.Metrics) (*agrocalc.Engine, error) {
	return cli.NewEngine(logger, metrics)
}
