// Command worktrackage takes one snapshot of the name, class, title
// and focus properties of all currently open windows, together with
// the current time and the time since the last user interaction, and
// writes it to an SQLite database for the sake of tracking what you
// worked on. Run it from a scheduler at the interval you pass to -s.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/hartenfels/worktrackage/internal/config"
	"github.com/hartenfels/worktrackage/internal/snapshot"
)

const prog = "worktrackage"

const usageText = `
worktrackage - takes a snapshot of the name, class, title and focus
properties of all currently open windows, the current time and the
time since the last user interaction and writes it to an SQLite
database for the sake of tracking what you worked on.

Usage: worktrackage [OPTIONS]

Available options:

    -b, -B
        Include (-b) or exclude (-B) "blank" windows, i.e. without a
        name, class or title, from being inserted. If you don't need
        the full window tree with all parent relationships intact,
        you can exclude these, since they don't carry any useful
        information. Default is to include them.

    -d DISPLAY
        Name of the X display to open.
        Default is '', the default display.

    -f DATABASE_FILE
        Path to the SQLite database file to write to.
        Default is ~/.worktrackage.db

    -s SAMPLE_TIME
        The time your snapshot encompasses in seconds. Set this to
        the interval that you're taking snapshots.
        Default is 60.

    -h
        Shows this help.

Environment Variables:
  WORKTRACKAGE_DB_PATH         Database file path
  WORKTRACKAGE_DISPLAY         X display name
  WORKTRACKAGE_SAMPLE_TIME     Sample time in seconds
  WORKTRACKAGE_EXCLUDE_BLANKS  Exclude blank windows (true/false)
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run is the whole process minus os.Exit: parse arguments, take the
// snapshot, map the outcome to an exit code. Usage errors are 2,
// fatal runtime failures are 1.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, code, done := parseArgs(args, stdout, stderr)
	if done {
		return code
	}

	if err := snapshot.Execute(cfg); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return 1
	}

	return 0
}

// parseArgs layers the command line over the environment-derived
// configuration. done is true when the process should exit with code
// instead of taking a snapshot (help or a usage error).
func parseArgs(args []string, stdout, stderr io.Writer) (cfg *config.Config, code int, done bool) {
	cfg = config.New()

	fs := flag.NewFlagSet(prog, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // errors and usage are printed here, not by pflag

	includeBlanks := fs.BoolP("include-blanks", "b", false, "include blank windows")
	excludeBlanks := fs.BoolP("exclude-blanks", "B", false, "exclude blank windows")
	display := fs.StringP("display", "d", cfg.Display, "name of the X display to open")
	dbPath := fs.StringP("file", "f", cfg.DBPath, "path to the SQLite database file")
	sampleTime := fs.IntP("sample-time", "s", cfg.SampleTime, "seconds this snapshot encompasses")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(stdout, usageText)
			return nil, 0, true
		}
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return nil, 2, true
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(stderr, "%s: trailing arguments -- %s\n", prog, strings.Join(fs.Args(), " "))
		return nil, 2, true
	}

	if fs.Changed("display") {
		cfg.Display = *display
	}
	if fs.Changed("file") {
		cfg.DBPath = *dbPath
	}
	if fs.Changed("sample-time") {
		cfg.SampleTime = *sampleTime
	}

	// -B beats -b when both are given.
	if *excludeBlanks {
		cfg.ExcludeBlanks = true
	} else if *includeBlanks {
		cfg.ExcludeBlanks = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(stderr, "%s: %v\n", prog, err)
		return nil, 2, true
	}

	return cfg, 0, false
}
