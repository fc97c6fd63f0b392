package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestObjectName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"edital.txt", "editais/abc-edital.txt"},
		{"pasta/edital 12.txt", "editais/abc-edital_12.txt"},
		{`C:\docs\edital.txt`, "editais/abc-edital.txt"},
		{"", "editais/abc-edital"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, ObjectName("abc", tc.in), tc.in)
	}
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/plain", ContentType("EDITAL.TXT"))
	assert.Equal(t, "application/pdf", ContentType("a.pdf"))
	assert.Equal(t, "application/octet-stream", ContentType("a.bin"))
}
