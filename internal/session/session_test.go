package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/NiceTry3675/news-summarizer/internal/model"
)

func bookmark(title string) model.Bookmark {
	return model.Bookmark{Title: title, Summary: "s", Source: "src", URL: "https://example.com/" + title}
}

func TestSession_AddRemoveList(t *testing.T) {
	store := NewStore()
	s := store.Create()

	if s.ID == "" {
		t.Fatal("Expected session ID")
	}

	for _, title := range []string{"a", "b", "c"} {
		s.Add(bookmark(title))
	}

	if err := s.Remove(1); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	list := s.List()
	if len(list) != 2 || list[0].Title != "a" || list[1].Title != "c" {
		t.Errorf("Expected [a c], got %+v", list)
	}

	list[0].Title = "mutated"
	if s.List()[0].Title != "a" {
		t.Error("List must return a copy")
	}

	for _, index := range []int{-1, 2} {
		if err := s.Remove(index); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Remove(%d): expected ErrIndexOutOfRange, got %v", index, err)
		}
	}
}

func TestSession_NoCapacityLimit(t *testing.T) {
	s := NewStore().Create()
	for i := 0; i < 500; i++ {
		s.Add(bookmark("x"))
	}
	if got := len(s.List()); got != 500 {
		t.Errorf("Expected 500 bookmarks, got %d", got)
	}
}

func TestStore_GetAndEnd(t *testing.T) {
	store := NewStore()
	s := store.Create()
	s.Add(bookmark("a"))

	got, err := store.Get(s.ID)
	if err != nil || got != s {
		t.Fatalf("Expected to get session back, got %v, %v", got, err)
	}

	if err := store.End(s.ID); err != nil {
		t.Fatalf("End failed: %v", err)
	}
	if len(s.List()) != 0 {
		t.Error("Expected bookmarks cleared at session end")
	}
	if _, err := store.Get(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := store.End(s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second End, got %v", err)
	}
}

func TestStore_Sweep(t *testing.T) {
	now := time.Date(2024, 3, 5, 12, 0, 0, 0, time.UTC)
	store := NewStore()
	store.now = func() time.Time { return now }

	idle := store.Create()
	now = now.Add(90 * time.Minute)
	active := store.Create()

	ended := store.Sweep(context.Background(), time.Hour)

	if ended != 1 {
		t.Errorf("Expected 1 session swept, got %d", ended)
	}
	if _, err := store.Get(idle.ID); !errors.Is(err, ErrNotFound) {
		t.Error("Expected idle session to be ended")
	}
	if _, err := store.Get(active.ID); err != nil {
		t.Error("Expected active session to remain")
	}
	if store.Len() != 1 {
		t.Errorf("Expected 1 open session, got %d", store.Len())
	}
}
