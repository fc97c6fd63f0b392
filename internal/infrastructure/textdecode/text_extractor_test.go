package textdecode

import (
	"errors"
	"strings"
	"testing"

	"precifica_ti/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const sample = "EDITAL DE LICITAÇÃO\r\nCertidão Negativa de Débitos Trabalhistas e prova de regularidade com o FGTS."

func TestPlainTextExtractor_UTF8(t *testing.T) {
	e := NewPlainTextExtractor()

	text, err := e.Extract("edital.txt", append([]byte{0xEF, 0xBB, 0xBF}, sample...))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "EDITAL DE LICITAÇÃO\nCertidão"))
	assert.NotContains(t, text, "\r")
}

func TestPlainTextExtractor_Windows1252(t *testing.T) {
	encoded, _, err := transform.Bytes(charmap.Windows1252.NewEncoder(), []byte(sample))
	require.NoError(t, err)

	text, err := NewPlainTextExtractor().Extract("edital.txt", encoded)
	require.NoError(t, err)
	assert.Contains(t, text, "LICITAÇÃO")
	assert.Contains(t, text, "Débitos")
}

func TestPlainTextExtractor_Rejects(t *testing.T) {
	e := NewPlainTextExtractor()

	for _, name := range []string{"edital.pdf", "EDITAL.DOCX", "anexo.doc"} {
		_, err := e.Extract(name, []byte(sample))
		assert.True(t, errors.Is(err, interfaces.ErrUnsupportedDocumentFormat), name)
	}

	_, err := e.Extract("curto.txt", []byte("   apenas um texto curto   "))
	assert.True(t, errors.Is(err, interfaces.ErrTextExtractionFailed))
}
