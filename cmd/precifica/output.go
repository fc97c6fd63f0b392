package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/viper"
)

type row struct {
	label string
	value string
}

// render writes v as indented JSON, or the rows as aligned label/value lines.
func render(w io.Writer, v any, rows []row) error {
	if viper.GetString("output") == outputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}

	width := 0
	for _, r := range rows {
		if len(r.label) > width {
			width = len(r.label)
		}
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, r.label, r.value); err != nil {
			return err
		}
	}
	return nil
}
