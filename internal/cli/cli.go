// Package cli implements the cbctl command-line interface.
package cli

import (
	"fmt"
	"os"

	goflags "github.com/jessevdk/go-flags"
)

// commands holds references to all subcommand structs for inspection/testing.
type commands struct {
	Report   *ReportCommand
	Insights *InsightsCommand
	Validate *ValidateCommand
}

// buildParser constructs the go-flags parser with all subcommands registered.
func buildParser(version string) (*goflags.Parser, *GlobalFlags, *commands) {
	var globals GlobalFlags

	parser := goflags.NewParser(&globals, goflags.Default)
	parser.Name = "cbctl"
	parser.LongDescription = "Render clarityboard analytics reports from a session export without running the server."

	cmds := &commands{
		Report:   &ReportCommand{globals: &globals},
		Insights: &InsightsCommand{globals: &globals},
		Validate: &ValidateCommand{globals: &globals},
	}

	parser.AddCommand("report", "Render the Overview KPI report", "Compute the seven Overview KPIs with period-over-period comparison and print them.", cmds.Report)
	parser.AddCommand("insights", "Render the User Insights report", "Compute the top-users and new-users tables and the session time series.", cmds.Insights)
	parser.AddCommand("validate", "Validate a session export", "Check a session export for mandatory columns and report which optional columns are missing.", cmds.Validate)

	return parser, &globals, cmds
}

// Run is the main entry point for the cbctl CLI using os.Args.
func Run(version string) error {
	return RunWithArgs(version, nil)
}

// RunWithArgs parses the given args (or os.Args if nil) and executes the
// matched subcommand.
func RunWithArgs(version string, args []string) error {
	checkArgs := args
	if checkArgs == nil {
		checkArgs = os.Args[1:]
	}
	for _, arg := range checkArgs {
		if arg == "--version" {
			fmt.Printf("cbctl %s\n", version)
			return nil
		}
		if arg == "--" {
			break
		}
	}

	parser, _, _ := buildParser(version)

	var err error
	if args != nil {
		_, err = parser.ParseArgs(args)
	} else {
		_, err = parser.Parse()
	}
	if err != nil {
		if flagsErr, ok := err.(*goflags.Error); ok && flagsErr.Type == goflags.ErrHelp {
			return nil
		}
		return err
	}
	return nil
}
