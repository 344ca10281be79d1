package cmd

import (
	"fmt"
	"io"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// render writes rows in the configured output format. line formats a single
// row for text output.
func render[T any](cmd *cobra.Command, rows []T, line func(T) string) error {
	w := cmd.OutOrStdout()

	switch cfg.Output {
	case "json":
		data, err := jsonAPI.MarshalIndent(rows, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding json: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		return renderText(w, rows, line)
	}
}

func renderText[T any](w io.Writer, rows []T, line func(T) string) error {
	for _, row := range rows {
		if _, err := fmt.Fprintln(w, line(row)); err != nil {
			return err
		}
	}
	return nil
}
