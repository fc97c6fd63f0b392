package main

import (
	"fmt"
	"strings"

	"precifica_ti/internal/domain/pricing"
	"precifica_ti/internal/domain/taxtable"
	"precifica_ti/internal/domain/telephony"
	"precifica_ti/internal/usecase"

	"github.com/spf13/cobra"
)

func telephonyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "telephony",
		Short: "Quote cloud PABX and SIP trunk plans",
	}

	cmd.PersistentFlags().String("client", "", "client name")
	cmd.PersistentFlags().String("manager", "", "account manager")

	cmd.AddCommand(telephonyPABXCmd())
	cmd.AddCommand(telephonySIPCmd())
	return cmd
}

func newTelephonyUseCase() usecase.ITelephonyUseCase {
	return usecase.NewTelephonyUseCase(telephony.NewCalculator(telephony.TablesFrom(taxtable.Default())))
}

func quoteOwner(cmd *cobra.Command) usecase.QuoteOwner {
	client, _ := cmd.Flags().GetString("client")
	manager, _ := cmd.Flags().GetString("manager")
	return usecase.QuoteOwner{ClientName: strings.TrimSpace(client), AccountManager: strings.TrimSpace(manager)}
}

func telephonyPABXCmd() *cobra.Command {
	var in telephony.PABXInput
	cmd := &cobra.Command{
		Use:   "pabx",
		Short: "Quote a cloud PABX by extension count",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.Extensions < 0 || in.DeviceQuantity < 0 {
				return errNegativeInput
			}
			in.AIAgent = in.AIAgentPlan != ""
			res := newTelephonyUseCase().QuotePABX(quoteOwner(cmd), in)
			return renderTelephonyQuote(cmd, res)
		},
	}
	cmd.Flags().IntVar(&in.Extensions, "extensions", 0, "number of extensions")
	cmd.Flags().BoolVar(&in.DeviceRental, "device-rental", false, "rent devices")
	cmd.Flags().IntVar(&in.DeviceQuantity, "devices", 0, "number of rented devices")
	cmd.Flags().StringVar(&in.AIAgentPlan, "ai-agent", "", "AI agent plan key (20k, 40k, 60k, 100k, 150k, 200k)")
	_ = cmd.MarkFlagRequired("extensions")
	return cmd
}

func telephonySIPCmd() *cobra.Command {
	var in telephony.SIPInput
	cmd := &cobra.Command{
		Use:   "sip",
		Short: "Quote a SIP trunk plan",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if in.AdditionalChannels < 0 {
				return errNegativeInput
			}
			in.PlanKey = strings.ToLower(strings.TrimSpace(in.PlanKey))
			res := newTelephonyUseCase().QuoteSIP(quoteOwner(cmd), in)
			return renderTelephonyQuote(cmd, res)
		},
	}
	cmd.Flags().StringVar(&in.PlanKey, "plan", "", "plan key (plano1, plano2, plano3)")
	cmd.Flags().IntVar(&in.AdditionalChannels, "additional-channels", 0, "additional channels")
	cmd.Flags().BoolVar(&in.EquipmentRental, "equipment-rental", false, "rent equipment per channel")
	_ = cmd.MarkFlagRequired("plan")
	return cmd
}

func renderTelephonyQuote(cmd *cobra.Command, res usecase.TelephonyQuoteResult) error {
	if !res.Priced {
		return render(cmd.OutOrStdout(), res, []row{{"Priced", "no"}})
	}
	rows := []row{}
	if res.Quote != nil {
		for _, line := range res.Quote.Products {
			rows = append(rows, row{line.Description, fmt.Sprintf("%s setup / %s monthly",
				pricing.FormatCurrency(line.Setup), pricing.FormatCurrency(line.Monthly))})
		}
	}
	rows = append(rows,
		row{"Total setup", pricing.FormatCurrency(res.TotalSetup)},
		row{"Total monthly", pricing.FormatCurrency(res.TotalMonthly)},
	)
	return render(cmd.OutOrStdout(), res, rows)
}
