package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// ValidateReport is the success payload for the validate command.
type ValidateReport struct {
	Datasets []string        `json:"datasets"`
	Files    int             `json:"files"`
	Errors   []ValidateError `json:"errors,omitempty"`
}

// ValidateError is one validation failure in the JSON report.
type ValidateError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Pos     string `json:"pos,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <dataset-dir>",
		Short: "Validate CUE datasets without writing",
		Long: `Compile CUE dataset definitions and report every error found.

Nothing is written to the store; the command does not need --db. Exit code
is 1 when any dataset is invalid.

Example:
  triad validate ./datasets`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, dir string, cmd *cobra.Command) error {
	result, loadErrors := LoadDatasets(dir, LoadModeCollectAll)
	if result == nil {
		return WrapExitError(ExitCommandError, "failed to load datasets", loadErrors[0])
	}

	report := ValidateReport{Files: result.FileCount}
	for _, ds := range result.Datasets {
		report.Datasets = append(report.Datasets, ds.Name)
	}
	for _, err := range loadErrors {
		report.Errors = append(report.Errors, toValidateError(err))
	}

	f := newFormatter(cmd, opts)
	if opts.Format == "json" {
		if err := f.Success(report); err != nil {
			return err
		}
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "%d dataset(s) in %d file(s)\n", len(report.Datasets), report.Files)
		for _, name := range report.Datasets {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: ok\n", name)
		}
		for _, ve := range report.Errors {
			fmt.Fprintf(cmd.OutOrStdout(), "  error [%s]: %s\n", ve.Code, ve.Message)
		}
	}

	if len(loadErrors) > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d validation error(s)", len(loadErrors)))
	}
	return nil
}

// toValidateError flattens a load error for the JSON report.
func toValidateError(err error) ValidateError {
	var loadErr *LoadError
	if errors.As(err, &loadErr) {
		ve := ValidateError{Code: loadErr.Code, Message: loadErr.Message}
		if loadErr.Pos.IsValid() {
			ve.Pos = fmt.Sprintf("%s:%d:%d", loadErr.Pos.Filename(), loadErr.Pos.Line(), loadErr.Pos.Column())
		}
		return ve
	}
	return ValidateError{Code: ErrCodeGeneric, Message: err.Error()}
}
