package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	Counter int               `json:"counter"`
	Items   map[string]string `json:"items"`
}

func newTestStore(t *testing.T) *Store[testDoc] {
	t.Helper()

	path := filepath.Join(t.TempDir(), "doc.json")
	s, err := New(path, testDoc{Items: map[string]string{}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return s
}

func TestNewInitializesDefault(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.Counter != 0 {
		t.Errorf("Counter = %d, want 0", doc.Counter)
	}
	if doc.Items == nil {
		t.Error("Items should be initialized from the default document")
	}
}

func TestNewKeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "doc.json")
	if err := os.WriteFile(path, []byte(`{"counter": 7, "items": {}}`), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := New(path, testDoc{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.Counter != 7 {
		t.Errorf("Counter = %d, want 7 (default must not clobber existing data)", doc.Counter)
	}
}

func TestUpdatePersists(t *testing.T) {
	s := newTestStore(t)

	doc, err := s.Update(func(doc testDoc) (testDoc, error) {
		doc.Counter++
		doc.Items["a"] = "b"
		return doc, nil
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if doc.Counter != 1 {
		t.Errorf("returned Counter = %d, want 1", doc.Counter)
	}

	reread, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if reread.Counter != 1 || reread.Items["a"] != "b" {
		t.Errorf("persisted doc = %+v, want counter=1 items[a]=b", reread)
	}
}

func TestUpdateFailingCallbackWritesNothing(t *testing.T) {
	s := newTestStore(t)

	before, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}

	boom := errors.New("boom")
	if _, err := s.Update(func(doc testDoc) (testDoc, error) {
		doc.Counter = 99
		return doc, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("Update() error = %v, want boom", err)
	}

	after, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if string(before) != string(after) {
		t.Error("file changed although the update callback failed")
	}
}

func TestUpdateNoChangeSkipsWrite(t *testing.T) {
	s := newTestStore(t)

	info, err := os.Stat(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	mtime := info.ModTime()

	doc, err := s.Update(func(doc testDoc) (testDoc, error) {
		return doc, ErrNoChange
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if doc.Counter != 0 {
		t.Errorf("Counter = %d, want current document returned unchanged", doc.Counter)
	}

	info, err = os.Stat(s.Path())
	if err != nil {
		t.Fatal(err)
	}
	if !info.ModTime().Equal(mtime) {
		t.Error("file was rewritten for a no-op update")
	}
}

func TestReadCorruptFile(t *testing.T) {
	s := newTestStore(t)

	if err := os.WriteFile(s.Path(), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := s.Read(); !errors.Is(err, ErrCorruptData) {
		t.Errorf("Read() error = %v, want ErrCorruptData", err)
	}
}

func TestConcurrentUpdates(t *testing.T) {
	s := newTestStore(t)

	const workers = 16
	const perWorker = 10

	done := make(chan struct{})
	for i := 0; i < workers; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < perWorker; j++ {
				_, err := s.Update(func(doc testDoc) (testDoc, error) {
					doc.Counter++
					return doc, nil
				})
				if err != nil {
					t.Errorf("Update() error = %v", err)
					return
				}
			}
		}()
	}
	for i := 0; i < workers; i++ {
		<-done
	}

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if doc.Counter != workers*perWorker {
		t.Errorf("Counter = %d, want %d (lost updates)", doc.Counter, workers*perWorker)
	}
}
