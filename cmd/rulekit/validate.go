package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/schemes"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

func newValidateCmd(a *app) *cobra.Command {
	var schemeFile, schemeName, dataFile string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a record file against a scheme",
		Long: `Validate reads a record from a JSON or YAML file ("-" for stdin) and checks it
against a scheme. The result is printed as JSON. The command exits with
status 2 when the record is invalid.`,
		Example: `  rulekit validate --scheme schemes.yaml --name signup --data user.json`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			set, err := schemes.LoadFile(ctx, schemeFile)
			if err != nil {
				return err
			}
			scheme, err := pickScheme(set, schemeName)
			if err != nil {
				return err
			}

			data, err := readRecord(cmd.InOrStdin(), dataFile)
			if err != nil {
				return err
			}

			client, err := a.connectRedis(ctx)
			if err != nil {
				return err
			}
			if client != nil {
				defer client.Close()
			}
			v, err := a.newValidator(ctx, client)
			if err != nil {
				return err
			}

			res, err := v.Validate(data, scheme)
			if err != nil {
				return err
			}
			a.log.DebugContext(ctx, "record validated", logger.Scheme(schemeName), logger.Count(len(res.Fields())))

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(res); err != nil {
				return err
			}
			if res.HasError() {
				return errInvalidRecord
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&schemeFile, "scheme", "", "scheme file (YAML or JSON)")
	cmd.Flags().StringVar(&schemeName, "name", "", "scheme name, optional when the file holds one scheme")
	cmd.Flags().StringVar(&dataFile, "data", "-", `record file, "-" reads stdin`)
	_ = cmd.MarkFlagRequired("scheme")
	return cmd
}

func pickScheme(set schemes.Set, name string) (validator.OrderedScheme, error) {
	if name == "" {
		names := set.Names()
		if len(names) != 1 {
			return nil, fmt.Errorf("--name is required, the file defines %d schemes", len(names))
		}
		name = names[0]
	}
	scheme, ok := set.Get(name)
	if !ok {
		return nil, fmt.Errorf("unknown scheme %q", name)
	}
	return scheme, nil
}

// readRecord decodes a record with the YAML decoder, which also accepts JSON.
// Files with a .json extension are decoded as JSON so numbers stay float64
// like in HTTP requests.
func readRecord(stdin io.Reader, path string) (map[string]any, error) {
	var (
		content []byte
		err     error
	)
	if path == "-" {
		content, err = io.ReadAll(stdin)
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read record: %w", err)
	}

	record := make(map[string]any)
	if filepath.Ext(path) == ".json" {
		err = json.Unmarshal(content, &record)
	} else {
		err = yaml.Unmarshal(content, &record)
	}
	if err != nil {
		return nil, fmt.Errorf("decode record: %w", err)
	}
	return record, nil
}
