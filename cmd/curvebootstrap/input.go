package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/meenmo/discountcurve/bootstrap"
)

// inputFile is the on-disk shape of a bootstrap request: tenor/rate pairs
// grouped by instrument source, plus the currency and method to run.
type inputFile struct {
	Currency string        `json:"currency"`
	Method   string        `json:"method"`
	Swaps    []rawPointDTO `json:"swaps"`
	Futures  []rawPointDTO `json:"futures"`
	Bonds    []rawPointDTO `json:"bonds"`
}

type rawPointDTO struct {
	Tenor float64 `json:"tenor"`
	Rate  float64 `json:"rate"`
}

func readInput(path string) (inputFile, error) {
	var r io.Reader
	if path == "" || path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return inputFile{}, fmt.Errorf("opening input file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in inputFile
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return inputFile{}, fmt.Errorf("decoding input JSON: %w", err)
	}
	return in, nil
}

func toRawPoints(dtos []rawPointDTO, source bootstrap.Source) []bootstrap.RawPoint {
	points := make([]bootstrap.RawPoint, len(dtos))
	for i, d := range dtos {
		points[i] = bootstrap.RawPoint{Tenor: d.Tenor, Rate: d.Rate, Source: source}
	}
	return points
}
