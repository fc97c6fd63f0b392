// Package textdecode turns uploaded edital files into UTF-8 text.
package textdecode

import (
	"bytes"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"precifica_ti/internal/usecase/interfaces"

	"golang.org/x/net/html/charset"
)

// MinTextLength is the shortest decoded text worth analyzing, in characters.
const MinTextLength = 50

// Legacy editais are usually saved by Windows tools in cp1252.
const legacyCharset = "windows-1252"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var binaryFormats = map[string]string{
	".pdf":  "PDF",
	".doc":  "DOC",
	".docx": "DOCX",
}

type PlainTextExtractor struct{}

var _ interfaces.ITextExtractor = (*PlainTextExtractor)(nil)

func NewPlainTextExtractor() *PlainTextExtractor {
	return &PlainTextExtractor{}
}

// Extract decodes data as UTF-8, or as Windows-1252 when it is not valid
// UTF-8. Binary office formats are rejected.
func (e *PlainTextExtractor) Extract(fileName string, data []byte) (string, error) {
	if format, ok := binaryFormats[strings.ToLower(filepath.Ext(fileName))]; ok {
		return "", fmt.Errorf("%w: %s", interfaces.ErrUnsupportedDocumentFormat, format)
	}

	text, err := ToUTF8(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", interfaces.ErrTextExtractionFailed, err)
	}
	if utf8.RuneCountInString(strings.TrimSpace(text)) < MinTextLength {
		return "", fmt.Errorf("%w: text shorter than %d characters", interfaces.ErrTextExtractionFailed, MinTextLength)
	}
	return text, nil
}

func ToUTF8(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		r, err := charset.NewReaderLabel(legacyCharset, bytes.NewReader(data))
		if err != nil {
			return "", err
		}
		if data, err = io.ReadAll(r); err != nil {
			return "", err
		}
	}
	return strings.ReplaceAll(string(data), "\r\n", "\n"), nil
}
