package store

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// Lock takes an exclusive advisory lock on the data directory. The
// engine assumes a single active process; the lock turns a second
// process interleaving whole-collection overwrites into an immediate
// error instead of silent data loss.
func (s *Store) Lock() error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	lockPath := filepath.Join(s.dir, ".lock")
	f, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("failed to open lock file: %w", err)
	}

	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return fmt.Errorf("failed to lock data directory %s: %w", s.dir, err)
	}

	s.lockFile = f
	return nil
}

// Unlock releases the data directory lock. Safe to call when no lock is
// held.
func (s *Store) Unlock() {
	if s.lockFile == nil {
		return
	}
	unix.Flock(int(s.lockFile.Fd()), unix.LOCK_UN)
	s.lockFile.Close()
	s.lockFile = nil
}
