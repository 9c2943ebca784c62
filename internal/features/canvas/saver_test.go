package canvas

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	common_models "go-canvas/internal/common/models"
	"go-canvas/internal/features/widget"

	"go.uber.org/zap"
)

type MockLayoutStore struct {
	mu      sync.Mutex
	Batches [][]widget.PositionUpdate

	Err   error
	Block chan struct{}
}

func (m *MockLayoutStore) BulkUpdatePositions(ctx context.Context, updates []widget.PositionUpdate) error {
	if m.Block != nil {
		<-m.Block
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Batches = append(m.Batches, updates)
	return nil
}

func (m *MockLayoutStore) BatchCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Batches)
}

func (m *MockLayoutStore) LastBatch() []widget.PositionUpdate {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.Batches) == 0 {
		return nil
	}
	return m.Batches[len(m.Batches)-1]
}

func layoutOf(ids ...string) []widget.PositionUpdate {
	var updates []widget.PositionUpdate
	for i, id := range ids {
		updates = append(updates, widget.PositionUpdate{
			ID:       id,
			Position: common_models.Position{X: i * 2, Y: 0, W: 2, H: 2},
		})
	}
	return updates
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("Condition not met within deadline")
}

func TestSubmitDebouncesAndDrops(t *testing.T) {
	store := &MockLayoutStore{}
	saver := NewLayoutSaver(store, 30*time.Millisecond, zap.NewNop())
	dashboardID := "68a0f00000000000000000aa"

	if !saver.Submit(dashboardID, layoutOf("w1")) {
		t.Fatalf("Expected first submission accepted")
	}
	// Arrives inside the debounce window and is discarded, not queued.
	if saver.Submit(dashboardID, layoutOf("w1-moved")) {
		t.Fatalf("Expected second submission dropped")
	}

	waitFor(t, func() bool { return saver.Saved() == 1 })

	if store.BatchCount() != 1 {
		t.Errorf("Expected exactly one save, got %d", store.BatchCount())
	}
	if batch := store.LastBatch(); len(batch) != 1 || batch[0].ID != "w1" {
		t.Errorf("Expected the first snapshot to win, got %+v", batch)
	}
	if saver.Dropped() != 1 {
		t.Errorf("Expected 1 dropped submission, got %d", saver.Dropped())
	}

	// The window is closed now, a new submission opens a fresh one.
	if !saver.Submit(dashboardID, layoutOf("w1-final")) {
		t.Fatalf("Expected submission after flush accepted")
	}
	waitFor(t, func() bool { return saver.Saved() == 2 })
	if batch := store.LastBatch(); batch[0].ID != "w1-final" {
		t.Errorf("Expected final snapshot persisted, got %+v", batch)
	}
}

func TestSubmitDropsWhileSaveInFlight(t *testing.T) {
	store := &MockLayoutStore{Block: make(chan struct{})}
	saver := NewLayoutSaver(store, 5*time.Millisecond, zap.NewNop())
	dashboardID := "68a0f00000000000000000ab"

	if !saver.Submit(dashboardID, layoutOf("w1")) {
		t.Fatalf("Expected first submission accepted")
	}

	// Let the timer fire so the save is blocked inside the store.
	time.Sleep(20 * time.Millisecond)

	if saver.Submit(dashboardID, layoutOf("w2")) {
		t.Errorf("Expected submission during in-flight save to be dropped")
	}

	close(store.Block)
	waitFor(t, func() bool { return saver.Saved() == 1 })

	if !saver.Submit(dashboardID, layoutOf("w3")) {
		t.Errorf("Expected submission after completed save to be accepted")
	}
}

func TestSubmitIndependentDashboards(t *testing.T) {
	store := &MockLayoutStore{}
	saver := NewLayoutSaver(store, 30*time.Millisecond, zap.NewNop())

	if !saver.Submit("dash-a", layoutOf("w1")) {
		t.Fatalf("Expected submission for first dashboard accepted")
	}
	// A busy slot on one dashboard never blocks another.
	if !saver.Submit("dash-b", layoutOf("w2")) {
		t.Errorf("Expected submission for second dashboard accepted")
	}

	waitFor(t, func() bool { return saver.Saved() == 2 })
}

func TestSubmitEmptyLayout(t *testing.T) {
	store := &MockLayoutStore{}
	saver := NewLayoutSaver(store, time.Millisecond, zap.NewNop())

	if saver.Submit("dash-a", nil) {
		t.Errorf("Expected empty submission rejected")
	}
	time.Sleep(20 * time.Millisecond)
	if store.BatchCount() != 0 {
		t.Errorf("Expected no save for empty submission")
	}
}

func TestSaveFailureFreesSlot(t *testing.T) {
	store := &MockLayoutStore{Err: errors.New("db unavailable")}
	saver := NewLayoutSaver(store, 5*time.Millisecond, zap.NewNop())
	dashboardID := "68a0f00000000000000000ac"

	if !saver.Submit(dashboardID, layoutOf("w1")) {
		t.Fatalf("Expected submission accepted")
	}

	// Failure is swallowed; the slot must still come free.
	waitFor(t, func() bool { return saver.Submit(dashboardID, layoutOf("w2")) })

	if saver.Saved() != 0 {
		t.Errorf("Expected no successful saves yet, got %d", saver.Saved())
	}
}

func TestFlushFiresPendingSaves(t *testing.T) {
	store := &MockLayoutStore{}
	saver := NewLayoutSaver(store, time.Hour, zap.NewNop())

	if !saver.Submit("dash-a", layoutOf("w1")) {
		t.Fatalf("Expected submission accepted")
	}
	if !saver.Submit("dash-b", layoutOf("w2")) {
		t.Fatalf("Expected submission accepted")
	}

	saver.Flush()

	if saver.Saved() != 2 {
		t.Errorf("Expected both pending saves flushed, got %d", saver.Saved())
	}
	if store.BatchCount() != 2 {
		t.Errorf("Expected 2 batches, got %d", store.BatchCount())
	}
}

func TestOnSavedCallback(t *testing.T) {
	store := &MockLayoutStore{}
	saver := NewLayoutSaver(store, 5*time.Millisecond, zap.NewNop())

	var mu sync.Mutex
	var notified []string
	saver.OnSaved(func(dashboardID string) {
		mu.Lock()
		notified = append(notified, dashboardID)
		mu.Unlock()
	})

	saver.Submit("dash-a", layoutOf("w1"))
	waitFor(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(notified) == 1
	})

	mu.Lock()
	defer mu.Unlock()
	if notified[0] != "dash-a" {
		t.Errorf("Expected callback for dash-a, got %v", notified)
	}
}
