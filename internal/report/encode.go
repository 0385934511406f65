package report

import (
	"encoding/csv"
	"encoding/json"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/cfmt/internal/cases"
)

func writeCSV(w io.Writer, results []cases.Result) error {
	if len(results) == 0 {
		return nil
	}
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range results {
		if err := cw.Write(row(r)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func writeJSON(w io.Writer, results []cases.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if results == nil {
		results = []cases.Result{}
	}
	return enc.Encode(results)
}

func writeJSONL(w io.Writer, results []cases.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, r := range results {
		if err := enc.Encode(r); err != nil {
			return err
		}
	}
	return nil
}

func writeYAML(w io.Writer, results []cases.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(results); err != nil {
		return err
	}
	return enc.Close()
}
