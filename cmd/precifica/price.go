package main

import (
	"errors"
	"fmt"
	"strings"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/domain/taxtable"

	"github.com/spf13/cobra"
)

var (
	errNegativeInput         = errors.New("values must not be negative")
	errInvalidContractPeriod = errors.New("contract period must be greater than zero")
	errMissingDestinationUF  = errors.New("destination UF is required")
)

func priceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "price",
		Short: "Run the pricing calculators",
	}

	cmd.AddCommand(priceSalesCmd())
	cmd.AddCommand(priceRentalCmd())
	cmd.AddCommand(priceServiceCmd())
	cmd.AddCommand(priceDIFALCmd())
	return cmd
}

func priceSalesCmd() *cobra.Command {
	var unitCost, quantity, margin float64
	cmd := &cobra.Command{
		Use:   "sales",
		Short: "Price a sale from unit cost and quantity",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if unitCost < 0 || quantity < 0 {
				return errNegativeInput
			}
			calc := pricing.NewEngine(rates).CalculateSalesPrice(unitCost, quantity, margin)
			return renderCalculation(cmd, calc)
		},
	}
	cmd.Flags().Float64Var(&unitCost, "unit-cost", 0, "unit cost")
	cmd.Flags().Float64Var(&quantity, "quantity", 1, "quantity")
	cmd.Flags().Float64Var(&margin, "margin", 0, "margin percent")
	_ = cmd.MarkFlagRequired("unit-cost")
	return cmd
}

func priceRentalCmd() *cobra.Command {
	var unitValue, quantity, months, margin float64
	cmd := &cobra.Command{
		Use:   "rental",
		Short: "Price a rental from equipment value and contract period",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if unitValue < 0 || quantity < 0 {
				return errNegativeInput
			}
			if months <= 0 {
				return errInvalidContractPeriod
			}
			calc := pricing.NewEngine(rates).CalculateRentalPrice(unitValue, quantity, months, margin)
			return renderCalculation(cmd, calc)
		},
	}
	cmd.Flags().Float64Var(&unitValue, "unit-value", 0, "equipment value")
	cmd.Flags().Float64Var(&quantity, "quantity", 1, "quantity")
	cmd.Flags().Float64Var(&months, "months", 12, "contract period in months")
	cmd.Flags().Float64Var(&margin, "margin", 0, "margin percent")
	_ = cmd.MarkFlagRequired("unit-value")
	return cmd
}

func priceServiceCmd() *cobra.Command {
	var hourlyRate, hours, margin float64
	cmd := &cobra.Command{
		Use:   "service",
		Short: "Price a service from hourly rate and hours",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if hourlyRate < 0 || hours < 0 {
				return errNegativeInput
			}
			calc := pricing.NewEngine(rates).CalculateServicePrice(hourlyRate, hours, margin)
			return renderCalculation(cmd, calc)
		},
	}
	cmd.Flags().Float64Var(&hourlyRate, "hourly-rate", 0, "hourly rate")
	cmd.Flags().Float64Var(&hours, "hours", 0, "total hours")
	cmd.Flags().Float64Var(&margin, "margin", 0, "margin percent")
	_ = cmd.MarkFlagRequired("hourly-rate")
	_ = cmd.MarkFlagRequired("hours")
	return cmd
}

type difalOutput struct {
	TotalCost       float64 `json:"total_cost"`
	DestinationUF   string  `json:"destination_uf"`
	DestinationRate float64 `json:"destination_rate"`
	OriginRate      float64 `json:"origin_rate"`
	DIFAL           float64 `json:"difal"`
}

func priceDIFALCmd() *cobra.Command {
	var totalCost float64
	var uf string
	cmd := &cobra.Command{
		Use:   "difal",
		Short: "Compute the ICMS rate differential for a destination state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			uf = strings.ToUpper(strings.TrimSpace(uf))
			if uf == "" {
				return errMissingDestinationUF
			}
			if totalCost < 0 {
				return errNegativeInput
			}
			engine := pricing.NewEngine(rates)
			table := taxtable.DefaultICMSRates()
			out := difalOutput{
				TotalCost:       totalCost,
				DestinationUF:   uf,
				DestinationRate: engine.DestinationRate(uf, table),
				OriginRate:      rates.OriginICMSRate,
				DIFAL:           engine.CalculateDIFAL(totalCost, uf, table),
			}
			return render(cmd.OutOrStdout(), out, []row{
				{"Destination", uf},
				{"Destination rate", fmt.Sprintf("%.2f%%", out.DestinationRate)},
				{"Origin rate", fmt.Sprintf("%.2f%%", out.OriginRate)},
				{"DIFAL", pricing.FormatCurrency(out.DIFAL)},
			})
		},
	}
	cmd.Flags().Float64Var(&totalCost, "total-cost", 0, "total cost")
	cmd.Flags().StringVar(&uf, "uf", "", "destination state code")
	_ = cmd.MarkFlagRequired("total-cost")
	return cmd
}

func renderCalculation(cmd *cobra.Command, calc entities.PricingCalculation) error {
	return render(cmd.OutOrStdout(), calc, []row{
		{"Base cost", pricing.FormatCurrency(calc.BaseCost)},
		{"Margin", pricing.FormatCurrency(calc.MarginCommission)},
		{"Taxes", pricing.FormatCurrency(calc.Taxes)},
		{"Final price", pricing.FormatCurrency(calc.FinalPrice)},
	})
}
