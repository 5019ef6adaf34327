package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitconv/internal/tui"
	"github.com/alexisbeaulieu97/unitconv/internal/units"
)

func newTUICmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui [CATEGORY]",
		Short: "Launch the interactive converter",
		Long:  `Launch the interactive converter, optionally opened on a category.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			return runTUI(app, name)
		},
	}

	return cmd
}

func runTUI(app *appContext, name string) error {
	var category units.Category
	if name != "" {
		parsed, err := units.ParseCategory(name)
		if err != nil {
			return newCommandError("launch converter", fmt.Sprintf("opening %q", name), err,
				"Run 'unitconv categories' to list supported categories.")
		}
		category = parsed
	}

	log := app.interactiveLogger()
	log.Info("launching tui")

	err := tui.Run(tui.Options{Config: app.cfg, Logger: log, Category: category})
	if err != nil {
		log.Error(err, "tui failed")
		return fmt.Errorf("failed to run converter: %w", err)
	}

	log.Info("tui closed")
	return nil
}
