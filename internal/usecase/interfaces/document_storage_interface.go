package interfaces

import "context"

// IDocumentStorage keeps the uploaded edital files.
type IDocumentStorage interface {
	Upload(ctx context.Context, fileName, contentType string, data []byte) (objectName string, err error)
	Delete(ctx context.Context, objectName string) error
}
