package interfaces

import "errors"

var (
	ErrUnsupportedDocumentFormat = errors.New("unsupported document format")
	ErrTextExtractionFailed      = errors.New("text extraction failed")
)

// ITextExtractor turns an uploaded file into plain UTF-8 text.
type ITextExtractor interface {
	Extract(fileName string, data []byte) (string, error)
}
