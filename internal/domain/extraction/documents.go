package extraction

import (
	"sort"
	"strings"

	"precifica_ti/internal/domain/entities"
)

const (
	MaxDocuments = 30

	sectionBefore = 300
	sectionAfter  = 3000
)

var sectionAnchors = compileAll(
	`(?:documentação|documentos?)\s+(?:necessária?s?|exigida?s?|obrigatória?s?)`,
	`(?:habilitação|qualificação)\s+(?:jurídica|técnica|econômica)`,
	`(?:regularidade|certidões?)\s+(?:fiscal|trabalhista)`,
	`(?:anexos?|documentos?)\s+(?:para|de)\s+(?:habilitação|participação)`,
	`(?:comprovação|comprovantes?)\s+(?:de|da)`,
)

var additionalDocumentPatterns = compileAll(
	`[-•]\s*([^:\n]*(?:certidão|certificado|atestado|declaração|comprovante)[^:\n]*)`,
	`[-•]\s*([^:\n]*(?:registro|licença|autorização|alvará)[^:\n]*)`,
	`(?:apresentar|entregar|fornecer)\s+([^,\n]*(?:certidão|certificado|atestado|declaração)[^,\n]*)`,
)

// DocumentExtractor finds habilitação documents required by an edital.
type DocumentExtractor struct {
	rules []DocumentRule
}

// NewDocumentExtractor evaluates rules by ascending rank; equal ranks keep
// their given order.
func NewDocumentExtractor(rules []DocumentRule) *DocumentExtractor {
	sorted := append([]DocumentRule(nil), rules...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Rank < sorted[j].Rank })
	return &DocumentExtractor{rules: sorted}
}

// Extract returns catalog matches first, in catalog order, followed by
// documents mentioned in bullet or verb phrases, capped at MaxDocuments.
func (e *DocumentExtractor) Extract(text string) []entities.DocumentRequirement {
	sections := documentSections(text)

	docs := make([]entities.DocumentRequirement, 0)
	seen := make(map[string]bool)
	for _, section := range sections {
		for _, rule := range e.rules {
			if seen[rule.Requirement.Description] || !rule.Matches(section) {
				continue
			}
			seen[rule.Requirement.Description] = true
			docs = append(docs, rule.Requirement)
		}
	}

	docs = append(docs, additionalDocuments(sections, docs)...)
	if len(docs) > MaxDocuments {
		docs = docs[:MaxDocuments]
	}
	return docs
}

func documentSections(text string) []string {
	var sections []string
	for _, re := range sectionAnchors {
		for _, loc := range re.FindAllStringIndex(text, -1) {
			sections = append(sections, window(text, loc[0], sectionBefore, sectionAfter))
		}
	}
	if len(sections) == 0 {
		return []string{text}
	}
	return sections
}

func additionalDocuments(sections []string, known []entities.DocumentRequirement) []entities.DocumentRequirement {
	var out []entities.DocumentRequirement
	represented := func(name string) bool {
		key := prefix(strings.ToLower(name), 25)
		for _, d := range known {
			if strings.Contains(strings.ToLower(d.Description), key) {
				return true
			}
		}
		for _, d := range out {
			if strings.Contains(strings.ToLower(d.Description), key) {
				return true
			}
		}
		return false
	}

	for _, section := range sections {
		for _, re := range additionalDocumentPatterns {
			for _, m := range re.FindAllStringSubmatch(section, -1) {
				name := strings.TrimSpace(m[1])
				if n := length(name); n <= 15 || n >= 120 || represented(name) {
					continue
				}
				out = append(out, entities.DocumentRequirement{
					Type:        "Documento Adicional",
					Description: "Documento identificado no edital: " + name,
					Mandatory:   true,
				})
			}
		}
	}
	return out
}
