package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RetractReport is the success payload for the retract command.
type RetractReport struct {
	Removed []string `json:"removed"`
	Count   int      `json:"count"`
}

// NewRetractCommand creates the retract command.
func NewRetractCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "retract <pattern>",
		Short: "Remove matching facts",
		Long: `Remove every stored fact matched by a pattern conjunction.

Variables are "?"-prefixed tokens. Concrete clauses remove themselves when
present; a pattern that matches nothing removes nothing and succeeds.

Example:
  triad retract --db ./triad.db "?x likes cake"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRetract(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runRetract(opts *RootOptions, text string, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	f := newFormatter(cmd, opts)
	f.VerboseLog("retracting %q against %s", text, opts.Database)

	removed, err := eng.Retract(cmd.Context(), text)
	if err != nil {
		return WrapExitError(exitCodeFor(err), "retract failed", err)
	}

	report := RetractReport{Removed: factLines(removed), Count: len(removed)}
	if opts.Format == "json" {
		return f.Success(report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d fact(s)\n", report.Count)
	for _, line := range report.Removed {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
	}
	return nil
}
