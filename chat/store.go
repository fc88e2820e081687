package chat

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"
	"unicode/utf8"
)

// Role says who produced a transcript entry.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Entry is one turn of a chat transcript.
type Entry struct {
	Role    Role      `json:"role"`
	Content string    `json:"content"`
	At      time.Time `json:"at"`
}

// ConversationStore keeps a transcript per chat session.
type ConversationStore interface {
	// Add appends an entry to the session's transcript.
	Add(ctx context.Context, sessionID string, e Entry) error
	// List returns the session's transcript, oldest first.
	List(ctx context.Context, sessionID string) ([]Entry, error)
	// Clear drops the session's transcript.
	Clear(ctx context.Context, sessionID string) error
}

const (
	// DefaultHistoryLimit is the number of entries kept per session.
	DefaultHistoryLimit = 20
	// maxContentLen caps the size of a stored entry.
	maxContentLen = 4000
)

// MemoryStore is an in-process ConversationStore. Each session keeps a
// sliding window of the most recent entries.
type MemoryStore struct {
	mu          sync.RWMutex
	sessions    map[string][]Entry
	maxMessages int
}

// NewMemoryStore creates a store keeping at most limit entries per session.
func NewMemoryStore(limit int) *MemoryStore {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &MemoryStore{
		sessions:    make(map[string][]Entry),
		maxMessages: limit,
	}
}

// Add appends e and drops the oldest entries beyond the window.
func (s *MemoryStore) Add(ctx context.Context, sessionID string, e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e = compact(e)
	msgs := append(s.sessions[sessionID], e)
	if len(msgs) > s.maxMessages {
		msgs = msgs[len(msgs)-s.maxMessages:]
	}
	s.sessions[sessionID] = msgs
	return nil
}

// List returns a copy of the session's transcript.
func (s *MemoryStore) List(ctx context.Context, sessionID string) ([]Entry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	msgs := s.sessions[sessionID]
	result := make([]Entry, len(msgs))
	copy(result, msgs)
	return result, nil
}

// Clear drops the session.
func (s *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	return nil
}

// compact truncates oversized content, preferring a sentence or line break
// in the second half of the kept text.
func compact(e Entry) Entry {
	if len(e.Content) <= maxContentLen {
		return e
	}

	originalLen := len(e.Content)
	cutoff := maxContentLen
	// never split a multi-byte rune
	for cutoff > 0 && !utf8.RuneStart(e.Content[cutoff]) {
		cutoff--
	}
	truncated := e.Content[:cutoff]
	for _, bp := range []string{".\n", ". ", "\n\n", "\n"} {
		if idx := strings.LastIndex(truncated, bp); idx > maxContentLen/2 {
			cutoff = idx + len(bp)
			break
		}
	}

	e.Content = e.Content[:cutoff] + fmt.Sprintf("\n\n[truncated: %d of %d chars kept]", cutoff, originalLen)
	return e
}
