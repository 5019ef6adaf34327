package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

type categoriesOptions struct {
	jsonOutput bool
}

func newCategoriesCmd(app *appContext) *cobra.Command {
	opts := &categoriesOptions{}

	cmd := &cobra.Command{
		Use:   "categories [CATEGORY]",
		Short: "List unit categories, or the units of one category",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				return runCategoryUnits(cmd, app, opts, args[0])
			}
			return runCategories(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runCategories(cmd *cobra.Command, opts *categoriesOptions) error {
	categories := units.Categories()

	if opts.jsonOutput {
		return writeJSON(cmd, categoriesJSONPayload{
			Version:    "1.0",
			Count:      len(categories),
			Categories: categories,
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tUNITS")

	useUnicode := isTerminal(cmd.OutOrStdout())
	for _, c := range categories {
		ids := make([]string, len(c.Units))
		for i, u := range c.Units {
			ids[i] = u.ID
		}
		fmt.Fprintf(writer, "%s\t%s %s\t%s\n", c.ID, c.Icon(useUnicode), c.Name, strings.Join(ids, ", "))
	}

	return writer.Flush()
}

func runCategoryUnits(cmd *cobra.Command, app *appContext, opts *categoriesOptions, name string) error {
	category, err := units.ParseCategory(name)
	if err != nil {
		return newCommandError("list units", fmt.Sprintf("looking up %q", name), err,
			"Run 'unitconv categories' to list supported categories.")
	}

	info, _ := units.CategoryByID(category.String())
	app.log.With("category", category.String()).Debug("listing units")

	if opts.jsonOutput {
		return writeJSON(cmd, unitsJSONPayload{
			Version:  "1.0",
			Category: category.String(),
			Count:    len(info.Units),
			Units:    info.Units,
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tSYMBOL")
	for _, u := range info.Units {
		fmt.Fprintf(writer, "%s\t%s\t%s\n", u.ID, u.Name, u.Symbol)
	}

	return writer.Flush()
}

type categoriesJSONPayload struct {
	Version    string               `json:"version"`
	Count      int                  `json:"count"`
	Categories []units.CategoryInfo `json:"categories"`
}

type unitsJSONPayload struct {
	Version  string       `json:"version"`
	Category string       `json:"category"`
	Count    int          `json:"count"`
	Units    []units.Unit `json:"units"`
}

func writeJSON(cmd *cobra.Command, payload any) error {
	encoder := json.NewEncoder(cmd.OutOrStdout())
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
