package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ClearReport is the success payload for the clear command.
type ClearReport struct {
	Cleared int `json:"cleared"`
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored facts",
		Long: `Remove every fact from the store.

Example:
  triad clear --db ./triad.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(rootOpts, cmd)
		},
	}

	return cmd
}

func runClear(opts *RootOptions, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	// Count first so the report can say how much went away.
	facts, err := eng.Facts(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "listing facts failed", err)
	}

	if err := eng.Clear(cmd.Context()); err != nil {
		return WrapExitError(ExitCommandError, "clear failed", err)
	}

	report := ClearReport{Cleared: len(facts)}
	if opts.Format == "json" {
		return newFormatter(cmd, opts).Success(report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d fact(s)\n", report.Cleared)
	return nil
}
