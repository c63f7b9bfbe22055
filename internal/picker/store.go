package picker

import (
	"slices"
	"sync"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
)

// Store is a minimal owner for a picker: it keeps the formatted color string,
// the chosen format and the disabled flag, and notifies subscribers on writes.
type Store struct {
	mu          sync.RWMutex
	value       string
	format      color.Format
	disabled    bool
	writes      int
	subscribers []func(string)
}

// NewStore returns a Store holding initial.
func NewStore(initial string) *Store {
	return &Store{value: initial}
}

// Value returns the stored color string.
func (s *Store) Value() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the stored string and notifies subscribers.
func (s *Store) Set(value string) {
	s.mu.Lock()
	s.value = value
	s.writes++
	subscribers := slices.Clone(s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(value)
	}
}

// Writes counts calls to Set.
func (s *Store) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Format returns the last format reported by a bound Context.
func (s *Store) Format() color.Format {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.format
}

// Disabled reports whether widgets should ignore interaction.
func (s *Store) Disabled() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.disabled
}

// SetDisabled toggles the disabled flag.
func (s *Store) SetDisabled(disabled bool) {
	s.mu.Lock()
	s.disabled = disabled
	s.mu.Unlock()
}

// Subscribe registers fn to run after every Set.
func (s *Store) Subscribe(fn func(string)) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Bind builds a Context whose reads and writes go through s.
func (s *Store) Bind(format color.Format, log *logger.Logger) (*Context, error) {
	ctx, err := New(Options{
		Value:          s.Value,
		Format:         format,
		Disabled:       s.Disabled,
		OnChange:       s.Set,
		OnFormatChange: s.setFormat,
		Logger:         log,
	})
	if err != nil {
		return nil, err
	}
	s.setFormat(format)
	return ctx, nil
}

func (s *Store) setFormat(format color.Format) {
	s.mu.Lock()
	s.format = format
	s.mu.Unlock()
}
