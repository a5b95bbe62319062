// Package library holds named blink patterns: a set of built-in patterns,
// optionally extended from a TOML file, reloaded whenever the file changes.
package library

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/clambin/blinkq/pattern"
	"github.com/clambin/blinkq/pattern/morse"
	"github.com/fsnotify/fsnotify"
	"github.com/pelletier/go-toml"
	log "github.com/sirupsen/logrus"
)

// Library is a set of named blink patterns. Safe for concurrent use.
type Library struct {
	path     string
	lock     sync.RWMutex
	patterns map[string]pattern.Pattern
}

// pattern file layout:
//
//	[patterns]
//	double = "1010"
type patternFile struct {
	Patterns map[string]string `toml:"patterns"`
}

// New creates a Library holding the built-in patterns, merged with the
// definitions in path. If path is blank, only the built-ins are available.
func New(path string) (*Library, error) {
	l := Library{path: path}
	if err := l.Load(); err != nil {
		return nil, err
	}
	return &l, nil
}

func defaults() map[string]pattern.Pattern {
	return map[string]pattern.Pattern{
		"error":     morse.Error,
		"sos":       morse.SOS,
		"short":     pattern.ShortOnOff,
		"medium":    pattern.MediumOnOff,
		"long":      pattern.LongOnOff,
		"heartbeat": pattern.QuarterDuty,
	}
}

// Load (re)reads the pattern file. On failure the Library keeps its current
// patterns.
func (l *Library) Load() error {
	patterns := defaults()
	if l.path != "" {
		content, err := os.ReadFile(l.path)
		if err != nil {
			return fmt.Errorf("failed to read pattern file: %w", err)
		}
		var file patternFile
		if err = toml.Unmarshal(content, &file); err != nil {
			return fmt.Errorf("failed to parse pattern file: %w", err)
		}
		for name, steps := range file.Patterns {
			p, err := pattern.Parse(steps)
			if err != nil {
				return fmt.Errorf("invalid pattern %q: %w", name, err)
			}
			patterns[name] = p
		}
	}

	l.lock.Lock()
	defer l.lock.Unlock()
	l.patterns = patterns
	return nil
}

// Get returns the pattern registered under name
func (l *Library) Get(name string) (pattern.Pattern, bool) {
	l.lock.RLock()
	defer l.lock.RUnlock()
	p, ok := l.patterns[name]
	return p, ok
}

// Names returns the sorted names of all registered patterns
func (l *Library) Names() []string {
	l.lock.RLock()
	defer l.lock.RUnlock()
	names := make([]string, 0, len(l.patterns))
	for name := range l.patterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Watch reloads the pattern file whenever it changes. It returns when ctx
// is cancelled. If no pattern file was configured, it just waits for ctx.
func (l *Library) Watch(ctx context.Context) error {
	if l.path == "" {
		<-ctx.Done()
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	// watch the directory: editors replace the file rather than write to it
	if err = watcher.Add(filepath.Dir(l.path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", l.path, err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-watcher.Events:
			if event.Name != l.path || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if err = l.Load(); err != nil {
				log.WithError(err).WithField("file", l.path).Warning("failed to reload pattern file")
				continue
			}
			log.WithField("file", l.path).Info("pattern file reloaded")
		case err = <-watcher.Errors:
			log.WithError(err).Warning("pattern file watcher failed")
		}
	}
}
