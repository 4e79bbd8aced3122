package main

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// parseMatrix reads rows separated by ';' with entries separated by ','.
// Rows may differ in length; shape is checked by the model.
func parseMatrix(s string) ([][]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var rows [][]float64
	for i, line := range strings.Split(s, ";") {
		line = strings.TrimSpace(line)
		row := []float64{}
		if line != "" {
			for j, cell := range strings.Split(line, ",") {
				v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
				if err != nil {
					return nil, fmt.Errorf("row %d, column %d: %w", i, j, err)
				}
				row = append(row, v)
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// splitWords splits on whitespace and commas.
func splitWords(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}

func parseWords(words []string) ([]string, error) {
	return words, nil
}

func parseFloats(words []string) ([]float64, error) {
	values := make([]float64, len(words))
	for i, w := range words {
		v, err := strconv.ParseFloat(w, 64)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}
