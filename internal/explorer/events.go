package explorer

import (
	"slices"
	"sync"
)

// Subscription is a live registration on an event source.
type Subscription interface {
	Unsubscribe()
}

// ViewportSource reports viewport width changes.
type ViewportSource interface {
	// Width returns the current width, or 0 when unknown.
	Width() int
	SubscribeViewport(fn func(width int)) Subscription
}

// KeySource reports global key presses, named as bubbletea names them
// ("esc", "q", "ctrl+c").
type KeySource interface {
	SubscribeKeys(fn func(key string)) Subscription
}

// feed is a synchronous broadcaster. Handlers run in subscription order on
// the publishing goroutine and may unsubscribe themselves while called.
type feed[T any] struct {
	subs map[int]func(T)
	mu   sync.Mutex
	next int
}

func (f *feed[T]) subscribe(fn func(T)) Subscription {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.subs == nil {
		f.subs = make(map[int]func(T))
	}
	id := f.next
	f.next++
	f.subs[id] = fn
	return unsubscribeFunc(func() {
		f.mu.Lock()
		delete(f.subs, id)
		f.mu.Unlock()
	})
}

func (f *feed[T]) publish(v T) {
	f.mu.Lock()
	ids := make([]int, 0, len(f.subs))
	for id := range f.subs {
		ids = append(ids, id)
	}
	f.mu.Unlock()
	slices.Sort(ids)

	for _, id := range ids {
		f.mu.Lock()
		fn, ok := f.subs[id]
		f.mu.Unlock()
		if ok {
			fn(v)
		}
	}
}

func (f *feed[T]) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

type unsubscribeFunc func()

func (u unsubscribeFunc) Unsubscribe() { u() }

// ViewportFeed is a ViewportSource fed by the host (terminal resize events,
// or synthetic widths in tests).
type ViewportFeed struct {
	feed  feed[int]
	width int
}

// NewViewportFeed returns a feed reporting width until the first Publish.
func NewViewportFeed(width int) *ViewportFeed {
	return &ViewportFeed{width: width}
}

// Width returns the last published width.
func (v *ViewportFeed) Width() int {
	v.feed.mu.Lock()
	defer v.feed.mu.Unlock()
	return v.width
}

// SubscribeViewport registers fn for width changes.
func (v *ViewportFeed) SubscribeViewport(fn func(width int)) Subscription {
	return v.feed.subscribe(fn)
}

// Publish records width and notifies subscribers.
func (v *ViewportFeed) Publish(width int) {
	v.feed.mu.Lock()
	v.width = width
	v.feed.mu.Unlock()
	v.feed.publish(width)
}

// Subscribers returns the number of live subscriptions.
func (v *ViewportFeed) Subscribers() int {
	return v.feed.count()
}

// KeyFeed is a KeySource fed by the host.
type KeyFeed struct {
	feed feed[string]
}

// NewKeyFeed returns an empty key feed.
func NewKeyFeed() *KeyFeed {
	return &KeyFeed{}
}

// SubscribeKeys registers fn for key presses.
func (k *KeyFeed) SubscribeKeys(fn func(key string)) Subscription {
	return k.feed.subscribe(fn)
}

// Publish notifies subscribers of a key press.
func (k *KeyFeed) Publish(key string) {
	k.feed.publish(key)
}

// Subscribers returns the number of live subscriptions.
func (k *KeyFeed) Subscribers() int {
	return k.feed.count()
}
