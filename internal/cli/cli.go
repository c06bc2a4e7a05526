// Package cli implements the statcmp command-line interface.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/AndreyAkinshin/statcmp/internal/comparator"
	"github.com/AndreyAkinshin/statcmp/internal/errors"
	"github.com/AndreyAkinshin/statcmp/internal/logging"
	"github.com/AndreyAkinshin/statcmp/internal/output"
)

// Version is set at build time.
var Version = "dev"

// Help column width for positional arguments and flags.
const widthArg = 32

// Run executes the CLI with the given arguments and returns the exit code.
func Run(args []string) int {
	return run(args, output.New(), os.Stderr)
}

// run is Run with injectable output and log destinations.
func run(args []string, w *output.Writer, logw io.Writer) int {
	if args == nil {
		args = []string{}
	}

	cmd := newRootCmd(w, logw)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		w.ErrorPrefix("%v", err)
		if errors.Is(err, errors.KindUsage) {
			w.Hint("Run 'statcmp --help' for usage.")
		}
		return errors.GetExitCode(err)
	}
	return errors.ExitSuccess
}

func newRootCmd(w *output.Writer, logw io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "statcmp <ground_truth_statistics_path> <test_statistics_path>",
		Short:         "Compare alignment statistics against a ground truth",
		Args:          exactPaths,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, args []string) error {
			logging.Init(slog.LevelInfo, "text", logw)
			return compare(w, comparator.New(comparator.DefaultOptions()), args[0], args[1])
		},
	}

	cmd.SetOut(w.Out())
	cmd.SetVersionTemplate("statcmp {{.Version}}\n")
	cmd.SetHelpFunc(func(*cobra.Command, []string) {
		printUsage(w)
	})
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return errors.Usage(err.Error())
	})
	return cmd
}

// exactPaths requires exactly the two statistics paths.
func exactPaths(cmd *cobra.Command, args []string) error {
	if err := cobra.ExactArgs(2)(cmd, args); err != nil {
		return errors.Usage(err.Error())
	}
	return nil
}

// compare runs the comparator and prints the per-criterion summary whenever
// both reports were loaded and a verdict was reached.
func compare(w *output.Writer, c *comparator.Comparator, groundTruthPath, testPath string) error {
	v, err := c.Run(groundTruthPath, testPath)
	if err != nil && !errors.Is(err, errors.KindVerdictMismatch) {
		return err
	}

	printVerdict(w, v)
	if err != nil {
		return err
	}
	w.FinalSuccess("Test statistics reproduce the ground truth.")
	return nil
}

func printVerdict(w *output.Writer, v comparator.Verdict) {
	title := cases.Title(language.English)

	w.SummaryHeader("Verdict")
	criteria := []struct {
		name  string
		match bool
	}{
		{"alignments", v.AlignmentsMatch},
		{"costs", v.CostsMatch},
	}
	for _, c := range criteria {
		if c.match {
			w.SummaryPassed(title.String(c.name), "same")
		} else {
			w.SummaryFailed(title.String(c.name), "NOT the same")
		}
	}
}

func printUsage(w *output.Writer) {
	w.HelpTitle("statcmp - verify alignment statistics against a ground truth")

	w.HelpSection("Usage:")
	w.HelpUsage("statcmp <ground_truth_statistics_path> <test_statistics_path>")

	w.HelpSection("Arguments:")
	w.HelpFlag("<ground_truth_statistics_path>", "Statistics file produced by the reference run", widthArg)
	w.HelpFlag("<test_statistics_path>", "Statistics file produced by the run under test", widthArg)

	w.HelpSection("Flags:")
	w.HelpFlag("-h, --help", "Show this help", widthArg)
	w.HelpFlag("--version", "Show version", widthArg)

	w.HelpSection("Formats:")
	w.Println("  Files ending in .yaml or .yml are read as YAML, all others as TOML.")

	w.HelpSection("Exit Codes:")
	w.HelpFlag("0", "Alignments and costs are the same", widthArg)
	w.HelpFlag("1", "Alignments or costs differ", widthArg)
	w.HelpFlag("2", "Malformed input, missing alignment or bad usage", widthArg)
	w.HelpFlag("3", "A statistics file could not be read", widthArg)

	w.HelpSection("Examples:")
	w.HelpExample("statcmp gt.toml test.toml", "Compare a test run against the reference run")
	w.HelpExample("statcmp gt.toml test.yaml", "Mix TOML and YAML reports")
}
