package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/unitconv/internal/converter"
)

func newValidateCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate TEXT",
		Short: "Check whether text is acceptable numeric input",
		Long: `Check whether text is acceptable numeric input, the same way the
interactive converter checks each keystroke. In-progress input such as "-"
or "3." is accepted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := args[0]
			check := converter.ValidateNumericInput(text)
			app.log.WithFields(map[string]any{"input": text, "valid": check.Valid}).Debug("input validated")

			if !check.Valid {
				return newCommandError("validate input", fmt.Sprintf("checking %q", text), errors.New(check.Message),
					"Use digits with at most one decimal point and an optional leading minus sign.")
			}

			fmt.Fprintln(cmd.OutOrStdout(), "valid")
			return nil
		},
	}

	return cmd
}
