package canvas

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go-canvas/internal/features/widget"

	"go.uber.org/zap"
)

// LayoutStore is the slice of the widget service the saver needs.
type LayoutStore interface {
	BulkUpdatePositions(ctx context.Context, updates []widget.PositionUpdate) error
}

// LayoutSaver rate-limits layout persistence per dashboard with a
// debounce-with-drop policy: the first submission for an idle dashboard is
// captured and flushed after a fixed delay; any submission arriving while a
// flush is scheduled or in flight is dropped, not queued. Only after the
// flush completes does the next submission open a new window.
//
// Dropped submissions are counted so the policy stays observable; whether
// it should coalesce instead is an open product question.
type LayoutSaver struct {
	mu      sync.Mutex
	slots   map[string]*saveSlot
	store   LayoutStore
	delay   time.Duration
	logger  *zap.Logger
	onSaved func(dashboardID string)

	dropped uint64
	saved   uint64
}

type saveSlot struct {
	updates []widget.PositionUpdate
	timer   *time.Timer
}

func NewLayoutSaver(store LayoutStore, delay time.Duration, logger *zap.Logger) *LayoutSaver {
	return &LayoutSaver{
		slots:  make(map[string]*saveSlot),
		store:  store,
		delay:  delay,
		logger: logger,
	}
}

// OnSaved registers a callback fired after each successful flush.
func (s *LayoutSaver) OnSaved(fn func(dashboardID string)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onSaved = fn
}

// Submit hands a layout snapshot to the saver. Returns true when the
// snapshot was captured and scheduled, false when it was dropped because a
// save for this dashboard is already scheduled or in flight.
func (s *LayoutSaver) Submit(dashboardID string, updates []widget.PositionUpdate) bool {
	if len(updates) == 0 {
		return false
	}

	s.mu.Lock()
	if _, busy := s.slots[dashboardID]; busy {
		s.mu.Unlock()
		atomic.AddUint64(&s.dropped, 1)
		s.logger.Debug("layout submission dropped",
			zap.String("dashboard_id", dashboardID))
		return false
	}

	slot := &saveSlot{updates: updates}
	slot.timer = time.AfterFunc(s.delay, func() {
		s.flush(dashboardID)
	})
	s.slots[dashboardID] = slot
	s.mu.Unlock()

	return true
}

// flush persists the captured snapshot. The slot stays occupied for the
// whole save so concurrent submissions keep getting dropped, and is freed
// whether the save succeeded or not.
func (s *LayoutSaver) flush(dashboardID string) {
	s.mu.Lock()
	slot, ok := s.slots[dashboardID]
	if !ok {
		s.mu.Unlock()
		return
	}
	updates := slot.updates
	onSaved := s.onSaved
	s.mu.Unlock()

	err := s.store.BulkUpdatePositions(context.Background(), updates)

	s.mu.Lock()
	delete(s.slots, dashboardID)
	s.mu.Unlock()

	if err != nil {
		// Layout-save failures are logged only; the canvas keeps its
		// optimistic local state regardless.
		s.logger.Error("layout save failed",
			zap.String("dashboard_id", dashboardID),
			zap.Error(err))
		return
	}

	atomic.AddUint64(&s.saved, 1)
	s.logger.Debug("layout saved",
		zap.String("dashboard_id", dashboardID),
		zap.Int("widgets", len(updates)))

	if onSaved != nil {
		onSaved(dashboardID)
	}
}

// Flush fires every scheduled save immediately, used on shutdown so a
// pending debounce window is not lost. Saves already in flight are left to
// finish on their own.
func (s *LayoutSaver) Flush() {
	s.mu.Lock()
	pending := make([]string, 0, len(s.slots))
	for id, slot := range s.slots {
		if slot.timer.Stop() {
			pending = append(pending, id)
		}
	}
	s.mu.Unlock()

	for _, id := range pending {
		s.flush(id)
	}
}

// Dropped reports how many submissions were discarded by the drop policy.
func (s *LayoutSaver) Dropped() uint64 {
	return atomic.LoadUint64(&s.dropped)
}

// Saved reports how many flushes completed successfully.
func (s *LayoutSaver) Saved() uint64 {
	return atomic.LoadUint64(&s.saved)
}
