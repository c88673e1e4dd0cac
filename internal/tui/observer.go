package tui

import (
	"sync"

	"github.com/mmcdole/nefes/internal/catalog"
)

// CatalogObserver adapts catalog store events to a channel for Bubble Tea.
// Events are coalesced: a pending signal already tells the model to re-read
// the store, so later events are dropped until it is consumed.
type CatalogObserver struct {
	mount int
	ch    chan struct{}
	done  chan struct{}

	unsubscribe func()
	closeOnce   sync.Once
}

// NewCatalogObserver subscribes to store and tags its messages with mount
func NewCatalogObserver(store *catalog.Store, mount int) *CatalogObserver {
	o := &CatalogObserver{
		mount: mount,
		ch:    make(chan struct{}, 1),
		done:  make(chan struct{}),
	}
	o.unsubscribe = store.Subscribe(o.onEvent)
	return o
}

func (o *CatalogObserver) onEvent(catalog.Event) {
	select {
	case o.ch <- struct{}{}:
	default: // Signal already pending
	}
}

// Close unsubscribes and releases any waiting command
func (o *CatalogObserver) Close() {
	o.closeOnce.Do(func() {
		o.unsubscribe()
		close(o.done)
	})
}
