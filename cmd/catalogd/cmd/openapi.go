package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/donaldgifford/catalog-browser/internal/api/server"
)

func openapiCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "openapi",
		Short: "Print the OpenAPI document of the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg, newLogger(cfg))
			if err != nil {
				return err
			}

			doc := server.New(cfg.Server, engine, Version, nil).API().OpenAPI()

			switch format {
			case "json":
				return writeJSON(cmd.OutOrStdout(), doc)
			case "yaml":
				out, err := toYAML(doc)
				if err != nil {
					return fmt.Errorf("encoding OpenAPI document: %w", err)
				}
				_, err = cmd.OutOrStdout().Write(out)
				return err
			default:
				return fmt.Errorf("unknown format %q (want json or yaml)", format)
			}
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format (json, yaml)")
	return cmd
}

// toYAML re-encodes v's JSON form as YAML.
func toYAML(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, err
	}
	return yaml.Marshal(tree)
}
