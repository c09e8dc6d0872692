package generation

import (
	"container/list"
	"context"
	"log/slog"
	"sync"
)

// MemoizingGenerator wraps a Generator and remembers successful results per
// prompt, so an identical request does not trigger a second paid call.
// Failures are never cached. The oldest entry is evicted once maxEntries is
// reached; a maxEntries of zero means unbounded.
type MemoizingGenerator struct {
	next       Generator
	logger     *slog.Logger
	maxEntries int

	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List
}

type memoEntry struct {
	prompt string
	text   string
}

// NewMemoizingGenerator creates a MemoizingGenerator in front of next.
func NewMemoizingGenerator(next Generator, maxEntries int, logger *slog.Logger) *MemoizingGenerator {
	if logger == nil {
		logger = slog.Default()
	}
	if maxEntries < 0 {
		maxEntries = 0
	}

	return &MemoizingGenerator{
		next:       next,
		logger:     logger,
		maxEntries: maxEntries,
		entries:    make(map[string]*list.Element),
		order:      list.New(),
	}
}

// Generate implements Generator.
func (m *MemoizingGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if text, ok := m.lookup(prompt); ok {
		m.logger.DebugContext(ctx, "serving generation from cache", "prompt_length", len(prompt))
		return text, nil
	}

	text, err := m.next.Generate(ctx, prompt)
	if err != nil {
		return "", err
	}

	m.store(prompt, text)
	return text, nil
}

// Len returns the number of cached prompts.
func (m *MemoizingGenerator) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.order.Len()
}

func (m *MemoizingGenerator) lookup(prompt string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.entries[prompt]
	if !ok {
		return "", false
	}
	m.order.MoveToFront(elem)
	return elem.Value.(*memoEntry).text, true
}

func (m *MemoizingGenerator) store(prompt, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if elem, ok := m.entries[prompt]; ok {
		elem.Value.(*memoEntry).text = text
		m.order.MoveToFront(elem)
		return
	}

	m.entries[prompt] = m.order.PushFront(&memoEntry{prompt: prompt, text: text})

	if m.maxEntries > 0 && m.order.Len() > m.maxEntries {
		oldest := m.order.Back()
		m.order.Remove(oldest)
		delete(m.entries, oldest.Value.(*memoEntry).prompt)
	}
}
