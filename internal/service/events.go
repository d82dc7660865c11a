package service

import (
	"sync"

	"dutchghostwriter/backend/internal/model"
)

const (
	EventTranslations = "translations"
	EventCurrent      = "current"
	EventReview       = "review"
)

const subscriberBuffer = 32

// Event is a state-change notification. Exactly one payload field is set,
// matching Type; Current is nil when no translation is open.
type Event struct {
	Type         string
	Translations []model.Translation
	Current      *model.Translation
	Review       *ReviewState
}

// broadcaster fans events out to subscribers without ever blocking the
// publisher. A subscriber whose buffer is full misses the event.
type broadcaster struct {
	mu     sync.Mutex
	nextID int
	subs   map[int]chan Event
}

func newBroadcaster() *broadcaster {
	return &broadcaster{subs: make(map[int]chan Event)}
}

func (b *broadcaster) subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++
	ch := make(chan Event, subscriberBuffer)
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs, id)
			close(ch)
		})
	}
}

func (b *broadcaster) publish(event Event) {
	b.mu.Lock()
	defer b.mu.Unlock()

	for _, ch := range b.subs {
		select {
		case ch <- event:
		default:
		}
	}
}
