package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitconv/internal/converter"
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

type convertOptions struct {
	category   string
	jsonOutput bool
}

func newConvertCmd(app *appContext) *cobra.Command {
	opts := &convertOptions{}

	cmd := &cobra.Command{
		Use:   "convert VALUE FROM TO",
		Short: "Convert a value between two units of the same category",
		Long: `Convert a value between two units of the same category.

The category defaults to the one set in the preferences file. Use -- before
negative values so they are not read as flags.`,
		Example: `  unitconv convert 1 km m
  unitconv convert -c temperature -- -40 C F
  unitconv convert --json 2.5 l ml -c volume`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd, app, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.category, "category", "c", "", "Unit category (length, weight, temperature, area, volume)")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runConvert(cmd *cobra.Command, app *appContext, opts *convertOptions, args []string) error {
	text := strings.TrimSpace(args[0])
	from, to := args[1], args[2]

	value, err := parseValue(text)
	if err != nil {
		return newCommandError("convert", fmt.Sprintf("parsing value %q", text), err,
			"Pass a plain decimal number such as 12.5, or -- -3 for negatives.")
	}

	category := app.cfg.Category()
	if opts.category != "" {
		category, err = units.ParseCategory(opts.category)
		if err != nil {
			return newCommandError("convert", "resolving category", err,
				"Run 'unitconv categories' to list supported categories.")
		}
	}

	log := app.log.WithFields(map[string]any{
		"category": category.String(),
		"from":     from,
		"to":       to,
	})

	result, err := converter.Run(converter.Request{Value: value, From: from, To: to, Category: category})
	if err != nil {
		log.Error(err, "conversion failed")
		return newCommandError("convert", fmt.Sprintf("converting %s to %s", from, to), err,
			fmt.Sprintf("Run 'unitconv categories %s' to list its units.", category))
	}
	log.Debug("conversion complete")

	if opts.jsonOutput {
		return renderConvertJSON(cmd, category, from, to, text, result)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s %s = %s %s\n",
		text, unitSymbol(from, category), result.Formatted, unitSymbol(to, category))
	return nil
}

// parseValue accepts complete numeric input only. Partial input such as "-"
// passes validation but is not a number.
func parseValue(text string) (float64, error) {
	if check := converter.ValidateNumericInput(text); !check.Valid {
		return 0, errors.New(check.Message)
	}
	value, ok := converter.ParseInput(text)
	if !ok {
		return 0, errors.New(converter.MsgInvalidNumber)
	}
	return value, nil
}

func unitSymbol(id string, category units.Category) string {
	if u, ok := units.UnitByID(id, category.String()); ok {
		return u.Symbol
	}
	return id
}

type convertJSONPayload struct {
	Category  string   `json:"category"`
	From      string   `json:"from"`
	To        string   `json:"to"`
	Input     string   `json:"input"`
	Value     *float64 `json:"value,omitempty"`
	Formatted string   `json:"formatted"`
}

func renderConvertJSON(cmd *cobra.Command, category units.Category, from, to, input string, result converter.Result) error {
	payload := convertJSONPayload{
		Category:  category.String(),
		From:      from,
		To:        to,
		Input:     input,
		Formatted: result.Formatted,
	}
	// JSON has no encoding for overflowed results; formatted says "Invalid".
	if !math.IsInf(result.Value, 0) && !math.IsNaN(result.Value) {
		value := result.Value
		payload.Value = &value
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
