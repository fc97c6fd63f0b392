package extraction

import (
	"regexp"
	"strconv"
	"strings"

	"precifica_ti/internal/domain/entities"
)

// DocumentRule fires when any of its patterns matches a documentation section.
type DocumentRule struct {
	Rank        int
	Name        string
	Patterns    []*regexp.Regexp
	Requirement entities.DocumentRequirement
}

// Matches reports whether the rule fires for section.
func (r DocumentRule) Matches(section string) bool {
	for _, re := range r.Patterns {
		if re.MatchString(section) {
			return true
		}
	}
	return false
}

func docRule(rank int, name string, req entities.DocumentRequirement, patterns ...string) DocumentRule {
	return DocumentRule{Rank: rank, Name: name, Patterns: compileAll(patterns...), Requirement: req}
}

func compileAll(patterns ...string) []*regexp.Regexp {
	out := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		out = append(out, regexp.MustCompile("(?i)"+p))
	}
	return out
}

const (
	deadline90  = "Máximo 90 dias da data de emissão"
	deadlineCur = "Certificado deve estar vigente"
)

// StandardDocumentRules returns the catalog of standard habilitação documents
// in evaluation order.
func StandardDocumentRules() []DocumentRule {
	return []DocumentRule{
		docRule(1, "contrato_social", entities.DocumentRequirement{
			Type:        "Habilitação Jurídica",
			Description: "Contrato social, estatuto ou ato constitutivo da empresa devidamente registrado",
			Mandatory:   true,
			Deadline:    "Documento deve estar vigente",
			Notes:       "Para sociedades por ações, incluir ata de eleição da diretoria atual",
		}, `ato\s+constitutivo`, `contrato\s+social`, `estatuto`, `requerimento\s+de\s+empresário`),
		docRule(2, "procuracao", entities.DocumentRequirement{
			Type:        "Habilitação Jurídica",
			Description: "Procuração para representação legal nos atos da licitação",
			Mandatory:   false,
			Deadline:    "Válida por 1 ano da data de emissão",
			Notes:       "Necessária apenas se representado por procurador",
		}, `procuração`, `representação\s+legal`, `mandato`),
		docRule(3, "cnd_federal", entities.DocumentRequirement{
			Type:        "Regularidade Fiscal",
			Description: "Certidão Negativa de Débitos Relativos aos Tributos Federais e à Dívida Ativa da União",
			Mandatory:   true,
			Deadline:    deadline90,
			Notes:       "Pode ser positiva com efeitos de negativa",
		}, `cnd\s+federal`, `certidão.*federal`, `tributos\s+federais`, `receita\s+federal`),
		docRule(4, "cnd_estadual", entities.DocumentRequirement{
			Type:        "Regularidade Fiscal",
			Description: "Certidão Negativa de Débitos Estaduais (ICMS)",
			Mandatory:   true,
			Deadline:    deadline90,
		}, `cnd\s+estadual`, `certidão.*estadual`, `icms`, `fazenda\s+estadual`),
		docRule(5, "cnd_municipal", entities.DocumentRequirement{
			Type:        "Regularidade Fiscal",
			Description: "Certidão Negativa de Débitos Municipais (ISS)",
			Mandatory:   true,
			Deadline:    deadline90,
		}, `cnd\s+municipal`, `certidão.*municipal`, `iss`, `prefeitura`),
		docRule(6, "crf_fgts", entities.DocumentRequirement{
			Type:        "Regularidade Fiscal",
			Description: "Certificado de Regularidade do FGTS (CRF)",
			Mandatory:   true,
			Deadline:    deadline90,
		}, `fgts`, `fundo.*garantia`, `caixa\s+econômica`),
		docRule(7, "cndt", entities.DocumentRequirement{
			Type:        "Regularidade Trabalhista",
			Description: "Certidão Negativa de Débitos Trabalhistas",
			Mandatory:   true,
			Deadline:    "Máximo 180 dias da data de emissão",
		}, `cndt`, `trabalhista`, `débitos.*trabalhistas`, `justiça.*trabalho`),
		docRule(8, "balanco", entities.DocumentRequirement{
			Type:        "Qualificação Econômico-Financeira",
			Description: "Balanço patrimonial e demonstrações contábeis dos últimos exercícios",
			Mandatory:   true,
			Notes:       "Dos últimos 3 exercícios sociais, assinados por contador registrado no CRC",
		}, `balanço`, `demonstrações.*contábeis`, `dre`, `demonstração.*resultado`),
		docRule(9, "atestados", entities.DocumentRequirement{
			Type:        "Qualificação Técnica",
			Description: "Atestados de execução de serviços similares ao objeto da licitação",
			Mandatory:   true,
			Notes:       "Mínimo de 3 atestados emitidos por órgãos públicos ou empresas privadas",
		}, `atestado.*capacidade`, `atestado.*técnica`, `comprovação.*experiência`),
		docRule(10, "registro_profissional", entities.DocumentRequirement{
			Type:        "Qualificação Técnica",
			Description: "Registro no CREA, CAU ou conselho profissional competente",
			Mandatory:   true,
			Deadline:    "Deve estar em dia com as anuidades",
		}, `crea`, `cau`, `registro.*profissional`, `conselho.*classe`),
		docRule(11, "iso27001", entities.DocumentRequirement{
			Type:        "Certificações",
			Description: "Certificação de Sistema de Gestão de Segurança da Informação",
			Mandatory:   true,
			Deadline:    deadlineCur,
			Notes:       "Emitida por organismo acreditado pelo INMETRO",
		}, `iso\s*27001`, `segurança.*informação`),
		docRule(12, "iso9001", entities.DocumentRequirement{
			Type:        "Certificações",
			Description: "Certificação de Sistema de Gestão da Qualidade",
			Mandatory:   false,
			Deadline:    deadlineCur,
		}, `iso\s*9001`, `gestão.*qualidade`, `qualidade`),
		docRule(13, "anatel", entities.DocumentRequirement{
			Type:        "Certificações Técnicas",
			Description: "Certificação ANATEL para equipamentos de telecomunicações",
			Mandatory:   true,
			Notes:       "Para equipamentos que emitem radiofrequência ou operam em espectro regulamentado",
		}, `anatel`, `homologação.*anatel`, `certificação.*anatel`),
		docRule(14, "inmetro", entities.DocumentRequirement{
			Type:        "Certificações Técnicas",
			Description: "Certificação de conformidade INMETRO para equipamentos",
			Mandatory:   true,
			Notes:       "Conforme regulamentação técnica aplicável ao produto",
		}, `inmetro`, `certificação.*inmetro`, `conformidade`),
		docRule(15, "declaracao_menor", entities.DocumentRequirement{
			Type:        "Outros Documentos",
			Description: "Declaração de que não emprega menor de 18 anos em trabalho noturno, perigoso ou insalubre",
			Mandatory:   true,
		}, `declaração.*menor`, `trabalho.*menor`, `menor.*idade`),
		docRule(16, "declaracao_independente", entities.DocumentRequirement{
			Type:        "Outros Documentos",
			Description: "Declaração de que a proposta foi elaborada de forma independente",
			Mandatory:   true,
		}, `declaração.*independente`, `elaboração.*independente`),
	}
}

// captureLayout tells an ItemRule how its capture groups map to fields.
type captureLayout int

const (
	// number, name and quantity in groups 1..3
	layoutNumbered captureLayout = iota
	// three groups read as number/name/quantity, two groups as name/quantity
	layoutFlexible
)

// ItemRule is one shape of item listing the technical extractor recognizes.
// Rules overlap: the same listing can be matched by more than one rule.
type ItemRule struct {
	Rank    int
	Name    string
	Pattern *regexp.Regexp
	layout  captureLayout
}

// ItemCandidate is a raw item listing found by an ItemRule.
type ItemCandidate struct {
	Rule       string
	ItemNumber string
	Name       string
	Quantity   int
	Offset     int
}

// FindAll returns every acceptable listing of this shape in text.
func (r ItemRule) FindAll(text string) []ItemCandidate {
	var out []ItemCandidate
	for _, loc := range r.Pattern.FindAllStringSubmatchIndex(text, -1) {
		groups := make([]string, len(loc)/2)
		for i := range groups {
			if loc[2*i] >= 0 {
				groups[i] = text[loc[2*i]:loc[2*i+1]]
			}
		}
		c := ItemCandidate{Rule: r.Name, Offset: loc[0]}
		switch {
		case r.layout == layoutNumbered:
			c.ItemNumber = groups[1]
			c.Name = strings.TrimSpace(groups[2])
			c.Quantity = atoi(groups[3])
		case len(groups) > 3 && groups[1] != "" && groups[2] != "" && groups[3] != "":
			c.ItemNumber = groups[1]
			c.Name = strings.TrimSpace(groups[2])
			c.Quantity = atoi(groups[3])
		case groups[1] != "" && groups[2] != "":
			c.Name = strings.TrimSpace(groups[1])
			c.Quantity = atoi(groups[2])
		}
		if c.Name != "" && length(c.Name) > 5 && c.Quantity > 0 && c.Quantity < 10000 {
			out = append(out, c)
		}
	}
	return out
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

// StandardItemRules returns the item listing shapes in evaluation order.
func StandardItemRules() []ItemRule {
	rule := func(rank int, name, pattern string, layout captureLayout) ItemRule {
		return ItemRule{Rank: rank, Name: name, Pattern: regexp.MustCompile("(?i)" + pattern), layout: layout}
	}
	return []ItemRule{
		rule(1, "item_qtd", `ITEM\s+(\d+(?:\.\d+)?)\s*[-–]\s*([^(]+?)\s*\((?:Qtd?:?\s*)?(\d+)(?:\s+(?:unidades?|un|pcs?|peças?))?\)`, layoutNumbered),
		rule(2, "lote_qtd", `LOTE\s+(\d+)\s*[-–]\s*([^(]+?)\s*\((?:Qtd?:?\s*)?(\d+)(?:\s+(?:unidades?|un|pcs?))?\)`, layoutNumbered),
		rule(3, "subitem_qtd", `(\d+\.\d+)\s+([^(]+?)\s*\((?:Quantidade:?\s*)?(\d+)(?:\s+(?:unidades?|un|pcs?))?\)`, layoutNumbered),
		rule(4, "name_units_parens", `([A-ZÁÊÇÕ][A-Za-záêçõ\s]{10,80}?)\s*\((\d+)\s+(?:unidades?|un|pcs?)\)`, layoutFlexible),
		rule(5, "subitem_units", `(\d+\.\d+)\s+([^0-9\n()]{10,100}?)\s+(\d+)\s+(?:unidades?|un|pcs?|peças?)`, layoutFlexible),
		rule(6, "name_units", `([A-Z][A-Za-záêçõ\s]{10,100}?)\s+(\d+)\s+(?:unidades?|un|pcs?|peças?)`, layoutFlexible),
		rule(7, "item_loose", `(?:Item|Lote)\s+(\d+)\s*[-–]\s*([^0-9\n()]{10,100}?)\s+(\d+)`, layoutFlexible),
		rule(8, "subitem_qtd_units", `ITEM\s+(\d+\.\d+)\s*[-–]\s*([^(]+?)\s*\(Qtd:\s*(\d+)\s+unidades?\)`, layoutNumbered),
	}
}
