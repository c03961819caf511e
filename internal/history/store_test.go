package history

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "chat_history.json"), 0)
}

func turns(contents ...string) []Turn {
	out := make([]Turn, 0, len(contents))
	for i, c := range contents {
		role := "user"
		if i%2 == 1 {
			role = "assistant"
		}
		out = append(out, Turn{Role: role, Content: c})
	}
	return out
}

func TestSaveAndLoad(t *testing.T) {
	store := newTestStore(t)

	id, err := store.Save("conv-1", turns("hello", "hi there"))
	if err != nil {
		t.Fatal(err)
	}
	if id != "conv-1" {
		t.Errorf("id = %q, want conv-1", id)
	}

	conv, err := store.Load("conv-1")
	if err != nil {
		t.Fatal(err)
	}
	if conv.Count != 2 || len(conv.Turns) != 2 {
		t.Errorf("count = %d, turns = %d, want 2", conv.Count, len(conv.Turns))
	}
	if conv.Turns[1].Content != "hi there" {
		t.Errorf("second turn = %q", conv.Turns[1].Content)
	}
}

func TestSaveGeneratesTimestampID(t *testing.T) {
	store := newTestStore(t)
	store.now = func() time.Time {
		return time.Date(2026, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	id, err := store.Save("", turns("hello"))
	if err != nil {
		t.Fatal(err)
	}
	if id != "20260314_150926" {
		t.Errorf("id = %q", id)
	}
}

func TestSaveEmptyTranscriptIgnored(t *testing.T) {
	store := newTestStore(t)

	if id, err := store.Save("x", nil); err != nil || id != "" {
		t.Errorf("Save(empty) = (%q, %v), want no-op", id, err)
	}
	all, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("stored %d conversations, want 0", len(all))
	}
}

func TestSaveEvictsOldestBeyondCap(t *testing.T) {
	store := newTestStore(t)

	for i := 0; i < 11; i++ {
		if _, err := store.Save(fmt.Sprintf("conv-%d", i), turns("msg")); err != nil {
			t.Fatal(err)
		}
	}

	all, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 10 {
		t.Fatalf("kept %d conversations, want 10", len(all))
	}
	if all[0].ID != "conv-1" {
		t.Errorf("oldest kept = %q, want conv-1 (conv-0 evicted)", all[0].ID)
	}
	if all[9].ID != "conv-10" {
		t.Errorf("newest = %q, want conv-10", all[9].ID)
	}
}

func TestLoadMissing(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.Load("nope"); !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	store.Save("a", turns("one"))
	store.Save("b", turns("two"))

	removed, err := store.Delete("a")
	if err != nil || !removed {
		t.Fatalf("Delete = (%v, %v), want (true, nil)", removed, err)
	}
	if removed, _ := store.Delete("a"); removed {
		t.Error("second delete should report false")
	}

	all, _ := store.LoadAll()
	if len(all) != 1 || all[0].ID != "b" {
		t.Errorf("remaining = %+v", all)
	}
}

func TestClearAll(t *testing.T) {
	store := newTestStore(t)
	store.Save("a", turns("one"))

	if err := store.ClearAll(); err != nil {
		t.Fatal(err)
	}
	all, err := store.LoadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("remaining = %d, want 0", len(all))
	}
}

func TestSummariesPreview(t *testing.T) {
	store := newTestStore(t)
	long := strings.Repeat("x", 80)
	store.Save("long", turns(long))
	store.Save("short", turns("hi"))

	summaries, err := store.Summaries()
	if err != nil {
		t.Fatal(err)
	}
	if len(summaries) != 2 {
		t.Fatalf("summaries = %d, want 2", len(summaries))
	}
	if want := strings.Repeat("x", 50) + "..."; summaries[0].Preview != want {
		t.Errorf("preview = %q, want clipped to 50", summaries[0].Preview)
	}
	if summaries[1].Preview != "hi" {
		t.Errorf("short preview = %q", summaries[1].Preview)
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)
	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	store.now = func() time.Time { return base.AddDate(0, 0, -40) }
	store.Save("old", turns("ancient"))
	store.now = func() time.Time { return base }
	store.Save("fresh", turns("recent"))

	removed, err := store.Prune(30 * 24 * time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	if removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	all, _ := store.LoadAll()
	if len(all) != 1 || all[0].ID != "fresh" {
		t.Errorf("remaining = %+v", all)
	}
}

func TestStoreFileIsValidJSONDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chat_history.json")
	store := NewStore(path, 0)
	store.Save("a", turns("one"))

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatal(err)
	}
	if _, ok := doc["conversations"]; !ok {
		t.Error("document missing conversations key")
	}
}
