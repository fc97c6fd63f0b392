package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/infrastructure/config"
	"precifica_ti/internal/infrastructure/logger"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// rates are the pricing rates loaded from configuration before any command runs.
var rates = pricing.DefaultRates()

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:               "precifica",
		Short:             "Offline pricing and edital analysis",
		Long:              `precifica prices sales, rental, services and telephony offers and analyzes editais without the API.`,
		SilenceUsage:      true,
		PersistentPreRunE: initConfig,
	}

	root.PersistentFlags().StringP("output", "o", outputText, "output format (text, json)")
	root.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	_ = viper.BindPFlag("output", root.PersistentFlags().Lookup("output"))
	_ = viper.BindPFlag("log.level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(analyzeCmd())
	root.AddCommand(priceCmd())
	root.AddCommand(telephonyCmd())
	return root
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(cmd *cobra.Command, _ []string) error {
	_ = godotenv.Load()
	viper.SetEnvPrefix("PRECIFICA")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logCfg := cfg.Log
	logCfg.Level = viper.GetString("log.level")
	logger.Setup(logCfg)
	logrus.SetOutput(cmd.ErrOrStderr())

	switch viper.GetString("output") {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("invalid output format: %s", viper.GetString("output"))
	}

	rates = pricing.Rates{
		SalesTaxRate:     cfg.Pricing.SalesTaxRate,
		RentalTaxRate:    cfg.Pricing.RentalTaxRate,
		ServiceTaxRate:   cfg.Pricing.ServiceTaxRate,
		OriginICMSRate:   cfg.Pricing.OriginICMSRate,
		FallbackICMSRate: cfg.Pricing.FallbackICMSRate,
	}
	return nil
}
