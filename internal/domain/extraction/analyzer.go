package extraction

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"precifica_ti/internal/domain/entities"
)

const (
	baseConfidence = 70
	maxConfidence  = 99
)

var (
	valuePatterns = []*regexp.Regexp{
		regexp.MustCompile(`R\$\s*([\d.,]+)`),
		regexp.MustCompile(`(?i)(?:valor|total).*?R\$\s*([\d.,]+)`),
	}
	deadlinePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:entrega|prazo|instalação).*?(\d{1,2}/\d{1,2}/\d{4})`),
		regexp.MustCompile(`(?i)(?:entrega|prazo).*?(\d+)\s*dias?\s*(?:úteis?)?`),
	}
)

// Analyzer combines both extractors into a full edital analysis.
type Analyzer struct {
	documents *DocumentExtractor
	technical *TechnicalExtractor
	now       func() time.Time
}

func NewAnalyzer() *Analyzer {
	return &Analyzer{
		documents: NewDocumentExtractor(StandardDocumentRules()),
		technical: NewTechnicalExtractor(StandardItemRules()),
		now:       time.Now,
	}
}

// WithClock replaces the time source used for ids and dates.
func (a *Analyzer) WithClock(now func() time.Time) *Analyzer {
	a.now = now
	return a
}

// Analyze runs the extractors selected by analysisType over text.
func (a *Analyzer) Analyze(text string, analysisType entities.AnalysisType, fileName string) entities.AnalysisResult {
	started := a.now()

	products := make([]entities.ExtractedProductItem, 0)
	if analysisType.ExtractsProducts() {
		products = a.technical.Extract(text)
	}
	var documents []entities.DocumentRequirement
	if analysisType.ExtractsDocuments() {
		documents = a.documents.Extract(text)
	}

	values := ExtractValues(text)
	deadlines := ExtractDeadlines(text)

	// The key point reports the raw score; only the result field is capped.
	score := baseConfidence
	if len(products) > 0 {
		score += 15
	}
	if len(values) > 0 {
		score += 10
	}
	if len(deadlines) > 0 {
		score += 5
	}
	confidence := min(score, maxConfidence)

	if len(values) == 0 {
		values = []string{"Valores conforme orçamento do edital"}
	}
	if len(deadlines) == 0 {
		deadlines = []string{"Prazos conforme documento original"}
	}

	finished := a.now()
	elapsed := math.Round(finished.Sub(started).Seconds()*10) / 10

	return entities.AnalysisResult{
		ID:           fmt.Sprintf("analysis-%d", finished.UnixMilli()),
		FileName:     fileName,
		AnalysisType: analysisType,
		AnalysisDate: finished,
		Summary: fmt.Sprintf("Análise realizada do arquivo \"%s\". Identificados %d itens técnicos com especificações extraídas do documento real.",
			fileName, len(products)),
		KeyPoints: []string{
			fmt.Sprintf("%d produtos identificados automaticamente", len(products)),
			fmt.Sprintf("Análise baseada em %d caracteres de texto real", length(text)),
			fmt.Sprintf("Confiança da extração: %d%%", score),
			fmt.Sprintf("Tempo de processamento: %.1fs", elapsed),
		},
		Requirements: []string{
			"Equipamentos conforme especificações extraídas do edital",
			"Certificações técnicas obrigatórias",
			"Garantia e suporte técnico conforme especificado",
		},
		Documents: documents,
		Deadlines: deadlines,
		Values:    values,
		Risks: []string{
			"Especificações podem limitar fornecedores",
			"Prazos de entrega desafiadores",
			"Necessidade de certificações específicas",
		},
		Opportunities: []string{
			"Fornecimento de equipamentos de qualidade",
			"Relacionamento de longo prazo",
			"Contratos de manutenção futuros",
		},
		Recommendations: []string{
			"Verificar disponibilidade dos itens identificados",
			"Confirmar certificações necessárias",
			"Preparar documentação técnica completa",
		},
		Confidence:     confidence,
		ProcessingTime: elapsed,
		Products:       products,
	}
}

// ExtractValues lists the R$ amounts mentioned in text.
func ExtractValues(text string) []string {
	var out []string
	for _, re := range valuePatterns {
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			value := m[1]
			if containsSubstring(out, value) {
				continue
			}
			out = append(out, "Valor identificado: R$ "+value)
		}
	}
	return out
}

// ExtractDeadlines lists delivery dates and day counts mentioned in text.
func ExtractDeadlines(text string) []string {
	var out []string
	for _, re := range deadlinePatterns {
		for _, m := range re.FindAllString(text, -1) {
			deadline := strings.TrimSpace(m)
			if containsSubstring(out, deadline) {
				continue
			}
			out = append(out, deadline)
		}
	}
	return out
}

func containsSubstring(list []string, s string) bool {
	for _, v := range list {
		if strings.Contains(v, s) {
			return true
		}
	}
	return false
}
