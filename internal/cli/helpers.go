package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/emiliopalmerini/themestudio/internal/color"
	"github.com/emiliopalmerini/themestudio/internal/palette"
	"github.com/emiliopalmerini/themestudio/internal/tokens"
)

// parseDataColors splits a comma separated color list and validates each entry.
// An empty string returns nil.
func parseDataColors(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for i, p := range parts {
		hex, err := color.Normalize(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("data color %d: %w", i+1, err)
		}
		out = append(out, hex)
	}
	return out, nil
}

// buildPalettes generates the neutral ramp when neutralHex is set.
func buildPalettes(neutralHex, dataColors string) (tokens.Palettes, error) {
	var p tokens.Palettes
	if neutralHex != "" {
		named, err := palette.GenerateNeutral(neutralHex)
		if err != nil {
			return p, err
		}
		p.Neutral = named.Palette
	}
	dc, err := parseDataColors(dataColors)
	if err != nil {
		return p, err
	}
	p.DataColors = dc
	return p, nil
}

// writeJSON writes v as indented JSON to path, or to w when path is empty or "-".
func writeJSON(w io.Writer, path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		_, err = w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
