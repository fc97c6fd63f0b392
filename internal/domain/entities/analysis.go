package entities

import "time"

// AnalysisType selects which extractors run over an edital.
type AnalysisType string

const (
	AnalysisTypeGeneral       AnalysisType = "geral"
	AnalysisTypeTDR           AnalysisType = "tdr"
	AnalysisTypeDocumentation AnalysisType = "documentacao"
	AnalysisTypeProducts      AnalysisType = "produtos"
)

// Valid reports whether t is a known analysis type.
func (t AnalysisType) Valid() bool {
	switch t {
	case AnalysisTypeGeneral, AnalysisTypeTDR, AnalysisTypeDocumentation, AnalysisTypeProducts:
		return true
	}
	return false
}

// ExtractsProducts reports whether the technical extractor runs for t.
func (t AnalysisType) ExtractsProducts() bool {
	return t == AnalysisTypeGeneral || t == AnalysisTypeTDR || t == AnalysisTypeProducts
}

// ExtractsDocuments reports whether the document extractor runs for t.
func (t AnalysisType) ExtractsDocuments() bool {
	return t == AnalysisTypeGeneral || t == AnalysisTypeDocumentation
}

type Priority string

const (
	PriorityCritical  Priority = "Crítico"
	PriorityImportant Priority = "Importante"
	PriorityDesirable Priority = "Desejável"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Baixo"
	RiskMedium RiskLevel = "Médio"
	RiskHigh   RiskLevel = "Alto"
)

type ComplianceLevel string

const (
	ComplianceFull    ComplianceLevel = "Total"
	CompliancePartial ComplianceLevel = "Parcial"
	ComplianceNone    ComplianceLevel = "Não Atende"
)

// DocumentRequirement is a compliance document required by an edital.
type DocumentRequirement struct {
	Type        string `json:"type"`
	Description string `json:"description"`
	Mandatory   bool   `json:"mandatory"`
	Deadline    string `json:"deadline,omitempty"`
	Notes       string `json:"notes,omitempty"`
}

// ExtractedProductItem is a line item found in an edital with its derived
// classification.
type ExtractedProductItem struct {
	Item                   string          `json:"item"`
	Description            string          `json:"description"`
	Quantity               int             `json:"quantity"`
	Unit                   string          `json:"unit"`
	EstimatedValue         float64         `json:"estimated_value"`
	Specifications         []string        `json:"specifications"`
	Category               string          `json:"category"`
	Priority               Priority        `json:"priority"`
	ComplianceLevel        ComplianceLevel `json:"compliance_level"`
	RiskLevel              RiskLevel       `json:"risk_level"`
	TechnicalJustification string          `json:"technical_justification"`
	MarketAnalysis         string          `json:"market_analysis"`
	AlternativeOptions     []string        `json:"alternative_options"`
}

// AnalysisResult is the immutable outcome of analyzing one document.
type AnalysisResult struct {
	ID              string                 `json:"id"`
	RequestID       uint64                 `json:"request_id"`
	Session         string                 `json:"session,omitempty"`
	FileName        string                 `json:"file_name"`
	StoredObject    string                 `json:"stored_object,omitempty"`
	AnalysisType    AnalysisType           `json:"analysis_type"`
	AnalysisDate    time.Time              `json:"analysis_date"`
	Summary         string                 `json:"summary"`
	KeyPoints       []string               `json:"key_points"`
	Requirements    []string               `json:"requirements"`
	Documents       []DocumentRequirement  `json:"documents,omitempty"`
	Deadlines       []string               `json:"deadlines"`
	Values          []string               `json:"values"`
	Risks           []string               `json:"risks"`
	Opportunities   []string               `json:"opportunities"`
	Recommendations []string               `json:"recommendations"`
	Confidence      int                    `json:"confidence"`
	ProcessingTime  float64                `json:"processing_time"`
	Products        []ExtractedProductItem `json:"products,omitempty"`
}
