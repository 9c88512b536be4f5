// okapi collects every regex match from many files into one buffer, opens it
// in your editor, and writes your line edits back to the source files.
//
// Usage:
//
//	okapi [flags] PATTERN [PATHS...]
//	okapi undo [-session ID] [-list]
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/nk9/okapi/internal/editor"
	"github.com/nk9/okapi/internal/journal"
	"github.com/nk9/okapi/internal/search"
)

// stringList collects a repeatable string flag.
type stringList []string

func (s *stringList) String() string { return strings.Join(*s, ",") }

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

var (
	editorCmd  = flag.String("editor", "", "Editor command (default: $EDITOR, then vim)")
	maxCount   = flag.Int("max-count", 1000, "Maximum number of total matches to include")
	ignoreCase = flag.Bool("ignore-case", false, "Case insensitive search")
	workingDir = flag.String("working-directory", "", "Prepend this to all paths before searching")
	columns    = flag.String("columns", "", `Column range filter (e.g. "..35", "3..20", "15..")`)
	listFile   = flag.String("list", "", "Read path:lineno entries from this file instead of searching")
	noJournal  = flag.Bool("no-journal", false, "Skip recording pre-edit snapshots")
	dbPath     = flag.String("journal-db", journal.DefaultPath, "Journal database path")
	verbose    = flag.Bool("v", false, "Enable debug logging")
	excludes   stringList
)

func main() {
	log.SetFlags(0)

	if len(os.Args) > 1 && os.Args[1] == "undo" {
		runUndo(os.Args[2:])
		return
	}

	flag.Var(&excludes, "exclude", "Drop matches that also match this pattern (repeatable)")
	flag.Parse()
	setupLogging(*verbose)

	matches, label, err := gatherMatches()
	if err != nil {
		log.Fatal(err)
	}
	if len(matches) == 0 {
		fmt.Fprintln(os.Stderr, "No matches found.")
		return
	}

	files, lines, err := editor.Collect(matches, *workingDir)
	if err != nil {
		log.Fatal(err)
	}
	if len(lines) == 0 {
		fmt.Println("No matches to edit.")
		return
	}

	var j *journal.Journal
	if !*noJournal {
		j, err = journal.Open(*dbPath)
		if err != nil {
			log.Fatal(err)
		}
		defer j.Close()
	}

	sess := editor.NewSession(label, *editorCmd, j)
	if err := sess.Run(lines, files); err != nil {
		log.Fatal(err)
	}
}

func gatherMatches() ([]search.Match, string, error) {
	if *listFile != "" {
		matches, err := search.FromList(*listFile, *workingDir)
		return matches, "File: " + *listFile, err
	}

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}
	pattern := flag.Arg(0)

	opts := search.Options{
		Pattern:    pattern,
		Paths:      flag.Args()[1:],
		IgnoreCase: *ignoreCase,
		Exclude:    excludes,
		MaxCount:   *maxCount,
		WorkingDir: *workingDir,
	}
	if *columns != "" {
		set, err := search.ParseColumns(*columns)
		if err != nil {
			return nil, "", err
		}
		opts.Columns = set
	}

	report, err := search.Run(opts)
	if err != nil {
		return nil, "", err
	}
	if report.Total > len(report.Matches) {
		fmt.Fprintf(os.Stderr, "Truncating %d matches to %d (use -max-count to adjust)\n",
			report.Total, len(report.Matches))
	} else if report.Total > 0 {
		fmt.Printf("Showing %d matches\n", report.Total)
	}
	return report.Matches, "Regex: " + pattern, nil
}

func setupLogging(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
}
