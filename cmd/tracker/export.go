package main

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newExportCmd(c *cli) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the persisted state to stdout",
		Long: `Writes the full state in the same envelope that is persisted:
{"state": {"items": [...], "activities": [...]}, "version": 0}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			data, err := c.store().Export()
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			out := cmd.OutOrStdout()
			switch format {
			case "json":
				var buf bytes.Buffer
				if err := json.Indent(&buf, data, "", "  "); err != nil {
					return fmt.Errorf("export: %w", err)
				}
				buf.WriteByte('\n')
				_, err = buf.WriteTo(out)
				return err

			case "yaml":
				var doc yaml.Node
				if err := yaml.Unmarshal(data, &doc); err != nil {
					return fmt.Errorf("export: %w", err)
				}
				restyle(&doc)
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(&doc); err != nil {
					return fmt.Errorf("export: %w", err)
				}
				return enc.Close()

			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")

	return cmd
}

// restyle switches JSON flow style to block style and keeps key order.
func restyle(n *yaml.Node) {
	n.Style &^= yaml.FlowStyle
	if n.Kind == yaml.ScalarNode && n.Tag == "!!str" {
		n.Style &^= yaml.DoubleQuotedStyle
	}
	for _, child := range n.Content {
		restyle(child)
	}
}
