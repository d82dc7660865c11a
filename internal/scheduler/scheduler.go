package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"dutchghostwriter/backend/internal/service"
	"dutchghostwriter/backend/pkg/logger"
)

var ErrStopped = errors.New("debouncer stopped")

// Edit is one pending change to a sentence field of a translation.
type Edit struct {
	TranslationID int64
	SentenceID    int
	Field         service.SentenceField
	Value         string
}

func (e Edit) key() string {
	return fmt.Sprintf("%d:%d:%s", e.TranslationID, e.SentenceID, e.Field)
}

type pendingEdit struct {
	edit  Edit
	seq   uint64
	timer *time.Timer
}

// Debouncer coalesces rapid edits to the same sentence field. Only the last
// value submitted within the delay is written.
type Debouncer struct {
	translations service.TranslationService
	delay        time.Duration

	mu      sync.Mutex
	pending map[string]*pendingEdit
	seq     uint64
	stopped bool

	// firing counts timer callbacks between leaving pending and finishing apply.
	firing int
	idle   *sync.Cond
}

func New(translations service.TranslationService, delay time.Duration) *Debouncer {
	d := &Debouncer{
		translations: translations,
		delay:        delay,
		pending:      make(map[string]*pendingEdit),
	}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Submit schedules edit, replacing any pending value for the same field.
// With a zero delay the edit is applied before Submit returns.
func (d *Debouncer) Submit(edit Edit) error {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return ErrStopped
	}
	if d.delay <= 0 {
		d.mu.Unlock()
		return d.apply(context.Background(), edit)
	}

	key := edit.key()
	if prev, ok := d.pending[key]; ok {
		prev.timer.Stop()
	}
	d.seq++
	p := &pendingEdit{edit: edit, seq: d.seq}
	p.timer = time.AfterFunc(d.delay, func() { d.fire(key, p) })
	d.pending[key] = p
	d.mu.Unlock()
	return nil
}

// Pending reports how many edits are waiting for their timer.
func (d *Debouncer) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Flush applies every pending edit now, in submission order.
func (d *Debouncer) Flush(ctx context.Context) {
	d.mu.Lock()
	edits := d.takeLocked()
	d.mu.Unlock()

	for _, edit := range edits {
		_ = d.apply(ctx, edit)
	}
	d.waitFiring()
}

// Stop rejects further edits and writes what is still pending.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	edits := d.takeLocked()
	d.mu.Unlock()

	for _, edit := range edits {
		_ = d.apply(context.Background(), edit)
	}
	d.waitFiring()
	logger.Info("edit debouncer stopped", "module", "scheduler", "action", "stop", "resource", "edit", "result", "ok", "flushed", len(edits))
}

func (d *Debouncer) takeLocked() []Edit {
	entries := make([]*pendingEdit, 0, len(d.pending))
	for key, p := range d.pending {
		p.timer.Stop()
		entries = append(entries, p)
		delete(d.pending, key)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].seq < entries[j].seq })

	edits := make([]Edit, len(entries))
	for i, p := range entries {
		edits[i] = p.edit
	}
	return edits
}

func (d *Debouncer) fire(key string, p *pendingEdit) {
	d.mu.Lock()
	if d.pending[key] != p {
		d.mu.Unlock()
		return
	}
	delete(d.pending, key)
	d.firing++
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.firing--
		if d.firing == 0 {
			d.idle.Broadcast()
		}
		d.mu.Unlock()
	}()
	_ = d.apply(context.Background(), p.edit)
}

// waitFiring blocks until no timer callback is applying an edit.
func (d *Debouncer) waitFiring() {
	d.mu.Lock()
	for d.firing > 0 {
		d.idle.Wait()
	}
	d.mu.Unlock()
}

// apply writes edit if its translation is still the open one.
func (d *Debouncer) apply(ctx context.Context, edit Edit) error {
	current, ok := d.translations.CurrentTranslation()
	if !ok || current.ID != edit.TranslationID {
		logger.Warn("drop edit for closed translation", "module", "scheduler", "action", "update", "resource", "sentence", "result", "skipped", "translation_id", edit.TranslationID, "sentence_id", edit.SentenceID)
		return service.ErrNoCurrentTranslation
	}
	if _, err := d.translations.UpdateSentence(ctx, edit.SentenceID, edit.Field, edit.Value); err != nil {
		logger.Error("apply edit", "module", "scheduler", "action", "update", "resource", "sentence", "result", "failed", "translation_id", edit.TranslationID, "sentence_id", edit.SentenceID, "error", err)
		return err
	}
	return nil
}
