package commands

import (
	"encoding/json"
	"fmt"

	"github.com/invopop/jsonschema"
	"github.com/spf13/cobra"

	"github.com/alexhholmes/bitlayout/internal/output"
	"github.com/alexhholmes/bitlayout/internal/parser"
)

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema [file]",
		Short: "Print the JSON schema of the YAML schema format",
		Long: `Print a JSON schema describing mkstructs YAML schema documents, for
editor completion and validation. With a file argument the schema is
written there instead of stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := documentSchema()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				if err := output.WriteBytes(args[0], data); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "JSON schema written to %s\n", args[0])
				return nil
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func documentSchema() ([]byte, error) {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		FieldNameTag:              "yaml",
	}

	schema := reflector.Reflect(&parser.Document{})
	schema.Version = "https://json-schema.org/draft/2020-12/schema"
	schema.Title = "mkstructs schema"
	schema.Description = "Fixed-size bit-level structure layouts compiled by mkstructs"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to generate schema: %w", err)
	}
	return append(data, '\n'), nil
}
