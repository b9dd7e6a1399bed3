package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/triad/internal/engine"
)

// QueryReport is the success payload for the query command.
type QueryReport struct {
	Solutions []map[string]string `json:"solutions"`
	Count     int                 `json:"count"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "query <pattern>",
		Short: "Enumerate satisfying binding sets",
		Long: `Enumerate every binding set satisfying a pattern conjunction.

Clauses are separated by " . "; a variable repeated across clauses joins
them. A fully concrete conjunction acts as an existence check: one empty
binding set when every clause is stored, none otherwise.

Example:
  triad query --db ./triad.db "?a likes ?b . ?b likes cake"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runQuery(opts *RootOptions, text string, cmd *cobra.Command) error {
	eng, st, err := openEngine(opts)
	if err != nil {
		return err
	}
	defer st.Close()

	f := newFormatter(cmd, opts)
	f.VerboseLog("querying %q against %s", text, opts.Database)

	solutions, err := eng.Query(cmd.Context(), text)
	if err != nil {
		return WrapExitError(exitCodeFor(err), "query failed", err)
	}

	report := QueryReport{Solutions: solutionList(solutions), Count: len(solutions)}
	if opts.Format == "json" {
		return f.Success(report)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d solution(s)\n", report.Count)
	for _, sol := range solutions {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", bindingLine(sol))
	}
	return nil
}

// solutionList renders solutions as binding maps in enumeration order.
// Always a slice, never nil: an empty result serializes as [].
func solutionList(solutions []engine.Solution) []map[string]string {
	out := make([]map[string]string, len(solutions))
	for i, sol := range solutions {
		out[i] = sol.Bindings.Map()
	}
	return out
}

// bindingLine renders one solution as "?a=alice ?b=bob" with names sorted.
// A solution with no variables renders as "{}".
func bindingLine(sol engine.Solution) string {
	names := sol.Bindings.Names()
	if len(names) == 0 {
		return "{}"
	}

	pairs := make([]string, len(names))
	for i, name := range names {
		value, _ := sol.Bindings.Lookup(name)
		pairs[i] = fmt.Sprintf("%s=%s", name, value)
	}
	return strings.Join(pairs, " ")
}
