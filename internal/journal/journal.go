// Package journal keeps pre-edit snapshots of every file okapi rewrites, so
// a whole editing session can be undone.
package journal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"
)

// DefaultPath is where the journal database lives, relative to the working
// directory okapi was invoked from.
const DefaultPath = ".okapi/journal.db"

var (
	bucketSessions  = []byte("sessions")
	bucketSnapshots = []byte("snapshots")

	ErrSessionNotFound = errors.New("session not found")
	ErrNoSessions      = errors.New("no recorded sessions")
)

// Session describes one recorded editing session.
type Session struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	StartedAt time.Time `json:"started_at"`
	FileCount int       `json:"file_count"`
}

// Journal is a bbolt-backed snapshot store.
type Journal struct {
	db *bolt.DB
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Journal, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("creating journal directory: %w", err)
	}
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening journal database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{bucketSessions, bucketSnapshots} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error { return j.db.Close() }

// Snapshot records a file's pre-edit content under a session. The session
// record is created on first snapshot and its file count kept current.
func (j *Journal) Snapshot(sess Session, path string, content []byte) error {
	return j.db.Update(func(tx *bolt.Tx) error {
		snaps := tx.Bucket(bucketSnapshots)
		if err := snaps.Put(snapshotKey(sess.ID, path), content); err != nil {
			return err
		}

		sessions := tx.Bucket(bucketSessions)
		if prev := sessions.Get([]byte(sess.ID)); prev != nil {
			var existing Session
			if err := json.Unmarshal(prev, &existing); err == nil {
				sess.FileCount = existing.FileCount
			}
		}
		sess.FileCount++
		data, err := json.Marshal(sess)
		if err != nil {
			return err
		}
		return sessions.Put([]byte(sess.ID), data)
	})
}

// Sessions returns all recorded sessions, most recent first.
func (j *Journal) Sessions() ([]Session, error) {
	var out []Session
	err := j.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketSessions).ForEach(func(k, v []byte) error {
			var s Session
			if err := json.Unmarshal(v, &s); err != nil {
				return fmt.Errorf("corrupt session record %q: %w", k, err)
			}
			out = append(out, s)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(out, func(i, j int) bool { return out[i].StartedAt.After(out[j].StartedAt) })
	return out, nil
}

// Latest returns the most recently started session.
func (j *Journal) Latest() (Session, error) {
	sessions, err := j.Sessions()
	if err != nil {
		return Session{}, err
	}
	if len(sessions) == 0 {
		return Session{}, ErrNoSessions
	}
	return sessions[0], nil
}

// Restore writes every snapshot from the session back to disk and returns
// the restored paths.
func (j *Journal) Restore(sessionID string) ([]string, error) {
	type snap struct {
		path    string
		content []byte
	}
	var snaps []snap
	err := j.db.View(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketSessions).Get([]byte(sessionID)) == nil {
			return ErrSessionNotFound
		}
		prefix := []byte(sessionID + "/")
		c := tx.Bucket(bucketSnapshots).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			content := make([]byte, len(v))
			copy(content, v)
			snaps = append(snaps, snap{path: string(k[len(prefix):]), content: content})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	var restored []string
	for _, s := range snaps {
		if err := os.WriteFile(s.path, s.content, 0644); err != nil {
			return restored, fmt.Errorf("restoring %s: %w", s.path, err)
		}
		restored = append(restored, s.path)
	}
	return restored, nil
}

// SnapshotSize returns the total snapshot bytes recorded for a session.
func (j *Journal) SnapshotSize(sessionID string) (int64, error) {
	var total int64
	err := j.db.View(func(tx *bolt.Tx) error {
		prefix := []byte(sessionID + "/")
		c := tx.Bucket(bucketSnapshots).Cursor()
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			total += int64(len(v))
		}
		return nil
	})
	return total, err
}

func snapshotKey(sessionID, path string) []byte {
	return []byte(sessionID + "/" + path)
}
