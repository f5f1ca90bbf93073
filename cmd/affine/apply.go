package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/akeil/affine"
)

type stateJSON struct {
	Step        int          `json:"step"`
	Spec        string       `json:"spec,omitempty"`
	Description string       `json:"description"`
	Points      [][2]float64 `json:"points"`
}

func doApply(w io.Writer, in input, format string) error {
	states, err := in.compose()
	if err != nil {
		return err
	}
	norm, err := affine.Normalize(in.specs)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		return writeText(w, states, norm)
	case "json":
		return writeJSON(w, states, norm)
	default:
		return fmt.Errorf("unsupported format, choose one of 'text', 'json'")
	}
}

func describeState(i int, specs []affine.Spec) string {
	if i == 0 {
		return "original"
	}
	return specs[i-1].Describe()
}

func writeText(w io.Writer, states affine.Series, specs []affine.Spec) error {
	for i, m := range states {
		_, err := fmt.Fprintf(w, "Step %d: %v\n", i, describeState(i, specs))
		if err != nil {
			return err
		}
		for _, p := range m.Points() {
			_, err = fmt.Fprintf(w, "  %v\n", p)
			if err != nil {
				return err
			}
		}
	}
	return nil
}

func writeJSON(w io.Writer, states affine.Series, specs []affine.Spec) error {
	out := make([]stateJSON, states.Len())
	for i, m := range states {
		s := stateJSON{
			Step:        i,
			Description: describeState(i, specs),
			Points:      make([][2]float64, m.Len()),
		}
		if i > 0 {
			s.Spec = specs[i-1].String()
		}
		for j, p := range m.Points() {
			s.Points[j] = [2]float64{p.X, p.Y}
		}
		out[i] = s
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
