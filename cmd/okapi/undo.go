package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/mitchellh/colorstring"

	"github.com/nk9/okapi/internal/journal"
)

// runUndo restores the pre-edit snapshots of a recorded session, the most
// recent one by default.
func runUndo(args []string) {
	fs := flag.NewFlagSet("undo", flag.ExitOnError)
	sessionID := fs.String("session", "", "Session ID to restore (default: most recent)")
	list := fs.Bool("list", false, "List recorded sessions and exit")
	dbPath := fs.String("journal-db", journal.DefaultPath, "Journal database path")
	fs.Parse(args)

	j, err := journal.Open(*dbPath)
	if err != nil {
		log.Fatal(err)
	}
	defer j.Close()

	if *list {
		listSessions(j)
		return
	}

	id := *sessionID
	if id == "" {
		latest, err := j.Latest()
		if errors.Is(err, journal.ErrNoSessions) {
			fmt.Fprintln(os.Stderr, "Nothing to undo: no recorded sessions.")
			return
		}
		if err != nil {
			log.Fatal(err)
		}
		id = latest.ID
	}

	restored, err := j.Restore(id)
	if err != nil {
		log.Fatal(err)
	}
	for _, path := range restored {
		fmt.Println(colorstring.Color("[green]Restored[reset] " + path))
	}
	fmt.Printf("\nRestored %d file(s) from session %s\n", len(restored), id)
}

func listSessions(j *journal.Journal) {
	sessions, err := j.Sessions()
	if err != nil {
		log.Fatal(err)
	}
	if len(sessions) == 0 {
		fmt.Println("No recorded sessions.")
		return
	}

	fmt.Printf("%-36s %-20s %-8s %-10s %s\n", "SESSION ID", "STARTED", "FILES", "SIZE", "LABEL")
	for _, s := range sessions {
		size, err := j.SnapshotSize(s.ID)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%-36s %-20s %-8d %-10s %s\n",
			s.ID,
			s.StartedAt.Format("2006-01-02 15:04:05"),
			s.FileCount,
			humanize.Bytes(uint64(size)),
			s.Label)
	}
}
