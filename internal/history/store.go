// Package history persists conversation transcripts as a single JSON
// document on disk. The store is process-local and single-writer; a
// mutex serializes access from concurrent channel deliveries.
package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// DefaultMaxConversations bounds the store before FIFO eviction.
const DefaultMaxConversations = 10

// idFormat names saved conversations by wall-clock time.
const idFormat = "20060102_150405"

// ErrNotFound is returned by Load when no conversation has the id.
var ErrNotFound = errors.New("history: conversation not found")

// Turn is a single transcript entry.
type Turn struct {
	Role      string `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp,omitempty"`
}

// Conversation is one saved transcript.
type Conversation struct {
	ID        string `json:"id"`
	CreatedAt string `json:"timestamp"`
	Turns     []Turn `json:"messages"`
	Count     int    `json:"message_count"`
}

// Summary is the list-view projection of a conversation.
type Summary struct {
	ID        string `json:"id"`
	CreatedAt string `json:"timestamp"`
	Count     int    `json:"message_count"`
	Preview   string `json:"preview"`
}

type document struct {
	Conversations []Conversation `json:"conversations"`
}

// Store reads and writes the history document.
type Store struct {
	path string
	max  int
	mu   sync.Mutex
	now  func() time.Time
}

// NewStore builds a store at path. max <= 0 applies the default cap.
func NewStore(path string, max int) *Store {
	if max <= 0 {
		max = DefaultMaxConversations
	}
	return &Store{path: path, max: max, now: time.Now}
}

// Save appends the transcript as a new conversation, evicting the
// oldest entries beyond the cap. An empty id is replaced with a
// timestamp id, which is returned either way. Empty transcripts are
// ignored.
func (s *Store) Save(id string, turns []Turn) (string, error) {
	if len(turns) == 0 {
		return "", nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return "", err
	}

	now := s.now()
	if id == "" {
		id = now.Format(idFormat)
	}
	doc.Conversations = append(doc.Conversations, Conversation{
		ID:        id,
		CreatedAt: now.Format(time.RFC3339),
		Turns:     turns,
		Count:     len(turns),
	})
	if len(doc.Conversations) > s.max {
		doc.Conversations = doc.Conversations[len(doc.Conversations)-s.max:]
	}

	if err := s.write(doc); err != nil {
		return "", err
	}
	return id, nil
}

// LoadAll returns every saved conversation, oldest first.
func (s *Store) LoadAll() ([]Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	return doc.Conversations, nil
}

// Load returns the conversation with the given id.
func (s *Store) Load(id string) (Conversation, error) {
	conversations, err := s.LoadAll()
	if err != nil {
		return Conversation{}, err
	}
	for _, conv := range conversations {
		if conv.ID == id {
			return conv, nil
		}
	}
	return Conversation{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// Delete removes the conversation with the given id, reporting whether
// anything was removed.
func (s *Store) Delete(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return false, err
	}

	kept := doc.Conversations[:0]
	removed := false
	for _, conv := range doc.Conversations {
		if conv.ID == id {
			removed = true
			continue
		}
		kept = append(kept, conv)
	}
	if !removed {
		return false, nil
	}

	doc.Conversations = kept
	if err := s.write(doc); err != nil {
		return false, err
	}
	return true, nil
}

// ClearAll resets the store to an empty document.
func (s *Store) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(document{Conversations: []Conversation{}})
}

// Summaries projects every conversation into its list view, with a
// preview clipped from the first turn.
func (s *Store) Summaries() ([]Summary, error) {
	conversations, err := s.LoadAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(conversations))
	for _, conv := range conversations {
		preview := "Empty"
		if len(conv.Turns) > 0 {
			preview = clip(conv.Turns[0].Content, 50)
		}
		summaries = append(summaries, Summary{
			ID:        conv.ID,
			CreatedAt: conv.CreatedAt,
			Count:     conv.Count,
			Preview:   preview,
		})
	}
	return summaries, nil
}

// Prune drops conversations older than maxAge, returning how many were
// removed. Conversations with unparseable timestamps are kept.
func (s *Store) Prune(maxAge time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return 0, err
	}

	cutoff := s.now().Add(-maxAge)
	kept := doc.Conversations[:0]
	removed := 0
	for _, conv := range doc.Conversations {
		created, err := time.Parse(time.RFC3339, conv.CreatedAt)
		if err == nil && created.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, conv)
	}
	if removed == 0 {
		return 0, nil
	}

	doc.Conversations = kept
	if err := s.write(doc); err != nil {
		return 0, err
	}
	return removed, nil
}

func (s *Store) load() (document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return document{}, nil
		}
		return document{}, fmt.Errorf("read history: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return document{}, fmt.Errorf("parse history: %w", err)
	}
	return doc, nil
}

func (s *Store) write(doc document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create history dir: %w", err)
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode history: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return fmt.Errorf("write history: %w", err)
	}
	return nil
}

func clip(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
