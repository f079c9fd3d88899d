// Package document owns the full serialized text backing the
// visualization: the single source of truth, its observers, and the
// format-preserving patching used to edit it.
package document

import "sync"

// Service holds the process-wide document text. The only mutation is
// atomic whole-text replacement, so readers observe either the old or the
// fully-new text, never an intermediate state. Consumers that depend on
// the text (node-set rebuild, raw-buffer mirror) register as observers and
// are notified after each replacement, in registration order.
type Service struct {
	mu        sync.RWMutex
	text      string
	observers []func(string)
}

func NewService(text string) *Service {
	return &Service{text: text}
}

func (s *Service) ReadText() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.text
}

// ReplaceText swaps the document text and notifies observers. The swap
// completes before the first observer runs, so observers reading back
// through the service see the new text.
func (s *Service) ReplaceText(text string) {
	s.mu.Lock()
	s.text = text
	observers := s.observers
	s.mu.Unlock()

	for _, fn := range observers {
		fn(text)
	}
}

// Subscribe registers an observer for future replacements. Observers run
// synchronously on the replacing caller.
func (s *Service) Subscribe(fn func(string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, fn)
}

// Mirror keeps an independent raw text buffer in lockstep with the
// document, so any text view outside the graph reflects a rewrite
// immediately. Attach it with AttachMirror.
type Mirror struct {
	mu       sync.RWMutex
	contents string
	dirty    bool
}

func NewMirror(contents string) *Mirror {
	return &Mirror{contents: contents}
}

func (m *Mirror) SetContents(contents string, dirty bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.contents = contents
	m.dirty = dirty
}

func (m *Mirror) Contents() (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.contents, m.dirty
}

// AttachMirror subscribes a mirror to the service; every replacement
// lands in the mirror marked clean.
func AttachMirror(s *Service, m *Mirror) {
	m.SetContents(s.ReadText(), false)
	s.Subscribe(func(text string) {
		m.SetContents(text, false)
	})
}
