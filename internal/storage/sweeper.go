package storage

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"imgconv/internal/logging"
)

// Sweeper periodically removes stored files older than the retention
// window. Conversions are synchronous and short-lived, so the sweep needs no
// coordination with in-flight requests.
type Sweeper struct {
	dirs      []string
	retention time.Duration
	interval  time.Duration
	logger    *logging.Logger

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(retention, interval time.Duration, dirs ...string) *Sweeper {
	return &Sweeper{
		dirs:      dirs,
		retention: retention,
		interval:  interval,
		logger:    logging.BuildLogger(),
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the background sweep loop. Stop it with Stop.
func (s *Sweeper) Start() {
	go func() {
		defer close(s.done)
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-s.stop:
				return
			case <-ticker.C:
				removed, err := s.Sweep()
				if err != nil {
					s.logger.WithError(err).Error("Retention sweep failed")
				} else if removed > 0 {
					s.logger.With("removed", removed).Info("Retention sweep removed expired files")
				}
			}
		}
	}()
}

func (s *Sweeper) Stop() {
	close(s.stop)
	<-s.done
}

// Sweep removes regular files older than the retention window from every
// swept directory and returns how many were removed. Dotfiles are skipped,
// in-progress atomic writes use dot-prefixed temp names.
func (s *Sweeper) Sweep() (int, error) {
	cutoff := time.Now().Add(-s.retention)

	var removed int
	for _, dir := range s.dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return removed, err
		}
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			info, err := entry.Info()
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			if info.ModTime().Before(cutoff) {
				if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
					s.logger.WithError(err).WithFile(entry.Name()).Error("Error removing expired file")
					continue
				}
				removed++
			}
		}
	}
	return removed, nil
}
