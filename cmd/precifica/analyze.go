package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"precifica_ti/internal/domain/entities"
	"precifica_ti/internal/domain/extraction"
	"precifica_ti/internal/infrastructure/textdecode"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func analyzeCmd() *cobra.Command {
	var analysisType string
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze an edital text file",
		Long:  `Extract requirements, deadlines, values, risks and product items from an edital saved as text.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind := entities.AnalysisType(strings.ToLower(strings.TrimSpace(analysisType)))
			if !kind.Valid() {
				return fmt.Errorf("invalid analysis type: %s", analysisType)
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read edital: %w", err)
			}
			fileName := filepath.Base(args[0])
			text, err := textdecode.NewPlainTextExtractor().Extract(fileName, data)
			if err != nil {
				return err
			}

			logrus.WithField("file", fileName).Debug("[analyze] extracting")
			result := extraction.NewAnalyzer().Analyze(text, kind, fileName)
			return render(cmd.OutOrStdout(), result, analysisRows(result))
		},
	}
	cmd.Flags().StringVarP(&analysisType, "type", "t", string(entities.AnalysisTypeGeneral), "analysis type (geral, tdr, documentacao, produtos)")
	return cmd
}

func analysisRows(result entities.AnalysisResult) []row {
	rows := []row{
		{"File", result.FileName},
		{"Type", string(result.AnalysisType)},
		{"Summary", result.Summary},
		{"Confidence", fmt.Sprintf("%d%%", result.Confidence)},
	}
	rows = appendList(rows, "Requirement", result.Requirements)
	rows = appendList(rows, "Deadline", result.Deadlines)
	rows = appendList(rows, "Value", result.Values)
	rows = appendList(rows, "Risk", result.Risks)
	for _, p := range result.Products {
		rows = append(rows, row{"Product", fmt.Sprintf("%s (%d %s)", p.Description, p.Quantity, p.Unit)})
	}
	return rows
}

func appendList(rows []row, label string, values []string) []row {
	for _, v := range values {
		rows = append(rows, row{label, v})
	}
	return rows
}
