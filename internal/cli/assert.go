package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/triad/internal/triple"
)

// AssertReport is the success payload for the assert command.
type AssertReport struct {
	Inserted []string `json:"inserted"`
	Count    int      `json:"count"`
}

// NewAssertCommand creates the assert command.
func NewAssertCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assert <facts>",
		Short: "Insert concrete facts",
		Long: `Insert a conjunction of concrete facts into the store.

Clauses are separated by " . " and each clause is three primitives. A clause
containing a variable fails the whole operation before anything is written.

Example:
  triad assert --db ./triad.db "alice likes bob . bob likes cake"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssert(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runAssert(opts *RootOptions, text string, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	f := newFormatter(cmd, opts)
	f.VerboseLog("asserting %q against %s", text, opts.Database)

	inserted, err := eng.Assert(cmd.Context(), text)
	if err != nil {
		return WrapExitError(exitCodeFor(err), "assert failed", err)
	}

	report := AssertReport{Inserted: factLines(inserted), Count: len(inserted)}
	if opts.Format == "json" {
		return f.Success(report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Inserted %d fact(s)\n", report.Count)
	for _, line := range report.Inserted {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", line)
	}
	return nil
}

// exitCodeFor distinguishes malformed input (failure) from backend trouble
// (command error).
func exitCodeFor(err error) int {
	if triple.IsFormatError(err) || triple.IsMissingArgument(err) {
		return ExitFailure
	}
	return ExitCommandError
}

// factLines renders facts in "id predicate object" form.
func factLines(facts []triple.Triple) []string {
	out := make([]string, len(facts))
	for i, f := range facts {
		out[i] = f.String()
	}
	return out
}
