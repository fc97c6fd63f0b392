package extraction

import (
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"

	"precifica_ti/internal/domain/entities"
)

const (
	MaxProducts       = 25
	MaxSpecifications = 20

	contextBefore = 500
	contextAfter  = 2000
)

var (
	labeledBullet = regexp.MustCompile(`[-•]\s*([^:\n]+):\s*([^\n]+)`)
	plainBullet   = regexp.MustCompile(`[-•]\s*([A-Za-z][^:\n]{5,80})`)

	attributeLabels = compileAll(
		`(?:Processador|CPU|Processor):\s*([^\n]+)`,
		`(?:Memória|Memory|RAM):\s*([^\n]+)`,
		`(?:Armazenamento|Storage|Disco|HD|SSD):\s*([^\n]+)`,
		`(?:Rede|Network|Ethernet|Conectividade):\s*([^\n]+)`,
		`(?:Fonte|Power|Alimentação):\s*([^\n]+)`,
		`(?:Garantia|Warranty):\s*([^\n]+)`,
		`(?:Sistema|OS|Operacional):\s*([^\n]+)`,
		`(?:Monitor|Display|Tela):\s*([^\n]+)`,
		`(?:Placa|Video|Gráfica):\s*([^\n]+)`,
	)
)

// TechnicalExtractor finds equipment line items and their specifications.
type TechnicalExtractor struct {
	rules []ItemRule
}

func NewTechnicalExtractor(rules []ItemRule) *TechnicalExtractor {
	sorted := append([]ItemRule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	return &TechnicalExtractor{rules: sorted}
}

// Candidates runs every item rule in rank order without deduplication.
func (e *TechnicalExtractor) Candidates(text string) []ItemCandidate {
	var out []ItemCandidate
	for _, rule := range e.rules {
		out = append(out, rule.FindAll(text)...)
	}
	return out
}

// Extract returns the classified items in discovery order, capped at MaxProducts.
func (e *TechnicalExtractor) Extract(text string) []entities.ExtractedProductItem {
	items := make([]entities.ExtractedProductItem, 0)
	for _, c := range e.Candidates(text) {
		ctx := window(text, c.Offset, contextBefore, contextAfter)
		items = append(items, buildItem(c, Specifications(ctx, c.Name)))
	}
	if len(items) > MaxProducts {
		items = items[:MaxProducts]
	}
	return items
}

// Specifications collects technical attributes from an item's surrounding text.
func Specifications(ctx, itemName string) []string {
	specs := make([]string, 0)
	nameKey := prefix(strings.ToLower(itemName), 10)

	add := func(spec string) {
		if len(specs) >= MaxSpecifications {
			return
		}
		if n := length(spec); n <= 15 || n >= 250 {
			return
		}
		lower := strings.ToLower(spec)
		if strings.Contains(lower, nameKey) {
			return
		}
		key := prefix(lower, 30)
		for _, s := range specs {
			if strings.Contains(strings.ToLower(s), key) {
				return
			}
		}
		specs = append(specs, spec)
	}

	for _, m := range labeledBullet.FindAllStringSubmatch(ctx, -1) {
		add(strings.TrimSpace(m[1]) + ": " + strings.TrimSpace(m[2]))
	}
	for _, m := range plainBullet.FindAllStringSubmatch(ctx, -1) {
		add(strings.TrimSpace(m[1]))
	}
	for _, re := range attributeLabels {
		for _, m := range re.FindAllStringSubmatch(ctx, -1) {
			add(strings.TrimSpace(m[1]))
		}
	}
	return specs
}

func buildItem(c ItemCandidate, specs []string) entities.ExtractedProductItem {
	category := Categorize(c.Name)
	description := c.Name + " conforme especificações técnicas detalhadas no edital"
	if c.ItemNumber != "" {
		description += " (Item " + c.ItemNumber + ")"
	}
	return entities.ExtractedProductItem{
		Item:                   c.Name,
		Description:            description,
		Quantity:               c.Quantity,
		Unit:                   "unidade",
		EstimatedValue:         EstimateValue(c.Name, specs, c.Quantity),
		Specifications:         specs,
		Category:               category,
		Priority:               ClassifyPriority(c.Name, category),
		ComplianceLevel:        entities.ComplianceFull,
		RiskLevel:              ClassifyRisk(c.Name, specs),
		TechnicalJustification: justification(c.Name, specs, category),
		MarketAnalysis:         marketAnalysis(c.Name, category),
		AlternativeOptions:     alternatives(c.Name),
	}
}

var categories = []struct {
	label string
	terms []string
}{
	{"Infraestrutura Computacional", []string{"servidor", "server", "blade"}},
	{"Armazenamento", []string{"storage", "san", "nas", "backup"}},
	{"Rede e Conectividade", []string{"switch", "roteador", "router", "firewall", "access point", "wifi"}},
	{"Equipamentos de Usuário", []string{"workstation", "desktop", "computador"}},
	{"Equipamentos Móveis", []string{"notebook", "laptop", "tablet"}},
	{"Periféricos", []string{"impressora", "scanner", "multifuncional"}},
	{"Dispositivos de Exibição", []string{"monitor", "display", "projetor"}},
	{"Software e Licenças", []string{"software", "licença", "sistema"}},
}

const (
	CategoryCompute = "Infraestrutura Computacional"
	CategoryNetwork = "Rede e Conectividade"
	CategoryOther   = "Outros Equipamentos"
)

// Categorize maps an item name to its equipment category; the first match wins.
func Categorize(name string) string {
	lower := strings.ToLower(name)
	for _, c := range categories {
		if containsAny(lower, c.terms...) {
			return c.label
		}
	}
	return CategoryOther
}

// EstimateValue prices an item from keywords in its name and specifications.
func EstimateValue(name string, specs []string, quantity int) float64 {
	lower := strings.ToLower(name)
	specText := strings.ToLower(strings.Join(specs, " "))

	value := 5000.0
	switch {
	case containsAny(lower, "servidor", "server"):
		switch {
		case strings.Contains(lower, "blade"):
			value = 120000
		case quantity > 10:
			value = 45000
		default:
			value = 85000
		}
	case containsAny(lower, "storage", "san"):
		value = 450000
	case strings.Contains(lower, "switch"):
		value = 35000
		if strings.Contains(lower, "core") || strings.Contains(specText, "10gbe") {
			value = 180000
		}
	case strings.Contains(lower, "firewall"):
		value = 80000
		if containsAny(specText, "utm", "next generation") {
			value = 120000
		}
	case strings.Contains(lower, "workstation"):
		value = 12000
		if containsAny(specText, "xeon", "quadro") {
			value = 18000
		}
	case strings.Contains(lower, "notebook"):
		value = 4500
		if containsAny(specText, "i7", "ryzen 7") {
			value = 6000
		}
	case strings.Contains(lower, "impressora"):
		value = 12000
		if strings.Contains(specText, "laser") {
			value = 18000
		}
	}

	if containsAny(specText, "xeon", "epyc") {
		value *= 1.6
	}
	if strings.Contains(specText, "ssd") && strings.Contains(specText, "nvme") {
		value *= 1.3
	}
	if containsAny(specText, "10gbe", "25gbe", "40gbe") {
		value *= 1.4
	}
	if containsAny(specText, "redundante", "redundancy") {
		value *= 1.2
	}
	if containsAny(specText, "enterprise", "datacenter") {
		value *= 1.3
	}
	return math.Round(value)
}

func ClassifyPriority(name, category string) entities.Priority {
	lower := strings.ToLower(name)
	if containsAny(lower, "servidor", "storage", "firewall", "core") {
		return entities.PriorityCritical
	}
	if category == CategoryNetwork || category == CategoryCompute || containsAny(lower, "switch", "backup") {
		return entities.PriorityImportant
	}
	return entities.PriorityDesirable
}

func ClassifyRisk(name string, specs []string) entities.RiskLevel {
	specText := strings.ToLower(strings.Join(specs, " "))
	if containsAny(specText, "específico", "proprietário", "exclusivo") || len(specs) < 3 {
		return entities.RiskHigh
	}
	if containsAny(specText, "certificação", "homologação", "enterprise") ||
		containsAny(strings.ToLower(name), "servidor", "storage") {
		return entities.RiskMedium
	}
	return entities.RiskLow
}

func justification(name string, specs []string, category string) string {
	detail := "Equipamento essencial para o funcionamento da infraestrutura conforme descrito no documento."
	if len(specs) > 5 {
		detail = fmt.Sprintf("Identificadas %d especificações técnicas detalhadas incluindo requisitos de performance, conectividade, compatibilidade e certificações necessárias.", len(specs))
	}
	return fmt.Sprintf("Especificações técnicas para %s extraídas diretamente do edital. %s Categoria: %s.", name, detail, category)
}

func marketAnalysis(name, category string) string {
	lower := strings.ToLower(name)
	var text string
	switch {
	case strings.Contains(lower, "servidor"):
		text = "Mercado de servidores aquecido com boa disponibilidade de fornecedores nacionais e internacionais. Dell, HPE e Lenovo lideram o segmento."
	case strings.Contains(lower, "storage"):
		text = "Mercado de storage em crescimento com foco em soluções all-flash. NetApp, Dell EMC e HPE são os principais players."
	case strings.Contains(lower, "switch"):
		text = "Mercado de switching dominado por Cisco, com crescimento de Arista e Juniper no segmento datacenter."
	default:
		text = fmt.Sprintf("Categoria %s possui boa disponibilidade no mercado nacional com diversos fornecedores homologados.", category)
	}
	return text + " Recomenda-se verificar prazos de entrega (60-120 dias típicos) e condições comerciais específicas."
}

func alternatives(name string) []string {
	lower := strings.ToLower(name)
	out := []string{
		"Verificar modelos equivalentes de outros fabricantes homologados no CATSER",
		"Considerar configurações que atendam aos requisitos mínimos especificados",
	}
	switch {
	case strings.Contains(lower, "servidor"):
		out = append(out,
			"Avaliar servidores rack como alternativa a blade servers",
			"Considerar processadores de geração anterior para redução de custos")
	case strings.Contains(lower, "storage"):
		out = append(out,
			"Avaliar storage híbrido (SSD+HDD) para redução de custos",
			"Considerar soluções de software-defined storage")
	case strings.Contains(lower, "switch"):
		out = append(out,
			"Avaliar switches de menor capacidade com possibilidade de upgrade",
			"Considerar arquitetura leaf-spine para maior flexibilidade")
	}
	return append(out, "Analisar possibilidade de parcerias estratégicas com integradores locais")
}
