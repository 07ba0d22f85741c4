package hubui

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"hubboard/internal/hubstore"
	"hubboard/internal/models"
)

var (
	ErrNotEditing     = errors.New("no hub is being edited")
	ErrAlreadyEditing = errors.New("a hub is already being edited")
	ErrHubNotFound    = errors.New("hub not found")
)

// Mode is either Browsing or Editing.
type Mode interface{ isMode() }

type Browsing struct{}

// Editing holds the hub the form was opened for and the uncommitted
// candidate built from the selector.
type Editing struct {
	Original  models.Hub
	Candidate models.Hub
}

func (Browsing) isMode() {}
func (Editing) isMode()  {}

// Clock returns the current time; tests swap it for a fake.
type Clock func() time.Time

// Board — состояние одной сессии: последовательность хабов и режим формы.
// Methods are safe for concurrent use; events are applied one at a time.
type Board struct {
	mu   sync.Mutex
	now  Clock
	hubs []models.Hub
	mode Mode
}

func NewBoard(now Clock) *Board {
	if now == nil {
		now = time.Now
	}
	return &Board{now: now, hubs: hubstore.Seed(), mode: Browsing{}}
}

// Hubs returns a copy of the current sequence.
func (b *Board) Hubs() []models.Hub {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Hub(nil), b.hubs...)
}

func (b *Board) Mode() Mode {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.mode
}

// Snapshot returns the sequence and mode as observed by a single render.
func (b *Board) Snapshot() ([]models.Hub, Mode) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]models.Hub(nil), b.hubs...), b.mode
}

// Add prepends a fresh hub. The edit form, if open, stays open.
func (b *Board) Add() models.Hub {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.hubs = hubstore.AddAt(b.hubs, b.now())
	return b.hubs[0]
}

func (b *Board) Edit(serialNo string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.mode.(Editing); ok {
		return ErrAlreadyEditing
	}
	h, ok := hubstore.Find(b.hubs, serialNo)
	if !ok {
		return fmt.Errorf("%w: %s", ErrHubNotFound, serialNo)
	}
	b.mode = Editing{Original: h, Candidate: h}
	return nil
}

// Select rebuilds the candidate from the original hub. Nothing is committed.
func (b *Board) Select(st models.Status) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectLocked(st)
}

func (b *Board) selectLocked(st models.Status) error {
	ed, ok := b.mode.(Editing)
	if !ok {
		return ErrNotEditing
	}
	if !st.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownStatus, st)
	}
	ed.Candidate = ed.Original.WithStatus(st, b.now())
	b.mode = ed
	return nil
}

// Save commits the candidate and returns to browsing.
func (b *Board) Save() (models.Hub, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.saveLocked()
}

// SaveAs applies st to the candidate when it differs, then saves. It backs
// form submissions that carry the selector value.
func (b *Board) SaveAs(st models.Status) (models.Hub, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ed, ok := b.mode.(Editing)
	if !ok {
		return models.Hub{}, ErrNotEditing
	}
	if ed.Candidate.Status != st {
		if err := b.selectLocked(st); err != nil {
			return models.Hub{}, err
		}
	}
	return b.saveLocked()
}

func (b *Board) saveLocked() (models.Hub, error) {
	ed, ok := b.mode.(Editing)
	if !ok {
		return models.Hub{}, ErrNotEditing
	}
	b.hubs = hubstore.Update(b.hubs, ed.Candidate.SerialNo, ed.Candidate)
	b.mode = Browsing{}
	return ed.Candidate, nil
}

// Cancel drops the candidate; the sequence is left as it was.
func (b *Board) Cancel() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.mode.(Editing); !ok {
		return ErrNotEditing
	}
	b.mode = Browsing{}
	return nil
}
