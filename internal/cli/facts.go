package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// FactsReport is the success payload for the facts command.
type FactsReport struct {
	Facts []string `json:"facts"`
	Count int      `json:"count"`
}

// NewFactsCommand creates the facts command.
func NewFactsCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "facts",
		Short: "List all stored facts",
		Long: `List every stored fact in deterministic order.

Example:
  triad facts --db ./triad.db`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFacts(rootOpts, cmd)
		},
	}

	return cmd
}

func runFacts(opts *RootOptions, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	facts, err := eng.Facts(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "listing facts failed", err)
	}

	report := FactsReport{Facts: factLines(facts), Count: len(facts)}
	if opts.Format == "json" {
		return newFormatter(cmd, opts).Success(report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d fact(s)\n", report.Count)
	for _, line := range report.Facts {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
	}
	return nil
}
