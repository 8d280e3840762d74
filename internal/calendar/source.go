package calendar

import (
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

const reloadDebounce = 200 * time.Millisecond

// RegistrySource owns the current holiday registry for a session. Reloads
// build a fresh registry and swap it in; registries already handed out
// are never modified.
type RegistrySource struct {
	filePath string
	logger   *zap.Logger
	current  atomic.Pointer[HolidayRegistry]
}

// NewRegistrySource creates a source backed by the holiday file at filePath.
// Until Load succeeds it serves an empty registry.
func NewRegistrySource(filePath string, logger *zap.Logger) *RegistrySource {
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &RegistrySource{
		filePath: filePath,
		logger:   logger,
	}
	s.current.Store(NewHolidayRegistry(nil, logger))
	return s
}

// Load reads the holiday file and swaps in a new registry. On failure
// the previous registry stays in place.
func (s *RegistrySource) Load() error {
	entries, err := ReadHolidayFile(s.filePath, s.logger)
	if err != nil {
		return fmt.Errorf("failed to load holidays: %w", err)
	}

	registry := NewHolidayRegistry(entries, s.logger)
	s.current.Store(registry)

	if registry.Skipped() > 0 {
		s.logger.Warn("Some holiday entries were skipped",
			zap.String("file", s.filePath),
			zap.Int("skipped", registry.Skipped()))
	}
	s.logger.Info("Holiday registry loaded",
		zap.String("file", s.filePath),
		zap.Int("rules", registry.Len()))

	return nil
}

// Registry returns the current registry
func (s *RegistrySource) Registry() *HolidayRegistry {
	return s.current.Load()
}

// IsHoliday checks the current registry
func (s *RegistrySource) IsHoliday(year int, month time.Month, day int) bool {
	return s.Registry().IsHoliday(year, month, day)
}

// FilePath returns the backing holiday file
func (s *RegistrySource) FilePath() string {
	return s.filePath
}

// Watch reloads the registry whenever the holiday file changes and then
// calls onReload with the new registry. The directory is watched rather
// than the file so editors that replace the file are still seen.
// The returned function stops watching.
func (s *RegistrySource) Watch(onReload func(*HolidayRegistry)) (func(), error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	target, err := filepath.Abs(s.filePath)
	if err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to resolve holiday file: %w", err)
	}
	if _, err := os.Stat(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch holiday directory: %w", err)
	}
	if err := watcher.Add(filepath.Dir(target)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch holiday directory: %w", err)
	}

	done := make(chan struct{})

	go func() {
		var debounceTimer *time.Timer

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				name, err := filepath.Abs(event.Name)
				if err != nil || name != target {
					continue
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
					continue
				}

				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(reloadDebounce, func() {
					if err := s.Load(); err != nil {
						s.logger.Warn("Holiday reload failed, keeping previous registry", zap.Error(err))
						return
					}
					if onReload != nil {
						onReload(s.Registry())
					}
				})

			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				s.logger.Warn("Holiday watcher error", zap.Error(err))

			case <-done:
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				return
			}
		}
	}()

	s.logger.Info("Watching holiday file", zap.String("file", target))

	cleanup := func() {
		close(done)
		watcher.Close()
	}

	return cleanup, nil
}
