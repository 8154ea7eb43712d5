package motion

// Source delivers raw scroll fractions (0 = top of document, 1 = bottom).
// Subscribe returns the function that detaches the listener.
type Source interface {
	Subscribe(fn func(fraction float64)) (unsubscribe func())
}

// Feed is a Source driven by the owner of the scroll position.
// Like the rest of the UI it is single-threaded: Publish, Subscribe and
// unsubscribe must all be called from the same goroutine.
type Feed struct {
	nextID    int
	listeners map[int]func(float64)
	order     []int
	last      float64
	hasLast   bool
}

// NewFeed creates an empty feed
func NewFeed() *Feed {
	return &Feed{listeners: make(map[int]func(float64))}
}

// Subscribe registers fn. If a fraction was already published, fn receives it
// immediately so a late subscriber starts from the current scroll position.
func (f *Feed) Subscribe(fn func(float64)) func() {
	id := f.nextID
	f.nextID++
	f.listeners[id] = fn
	f.order = append(f.order, id)

	if f.hasLast {
		fn(f.last)
	}

	return func() {
		if _, ok := f.listeners[id]; !ok {
			return
		}
		delete(f.listeners, id)
		for i, v := range f.order {
			if v == id {
				f.order = append(f.order[:i], f.order[i+1:]...)
				break
			}
		}
	}
}

// Publish delivers a fraction to every listener in subscription order
func (f *Feed) Publish(fraction float64) {
	f.last = fraction
	f.hasLast = true

	// Snapshot: a listener may unsubscribe itself while being notified
	ids := append([]int(nil), f.order...)
	for _, id := range ids {
		if fn, ok := f.listeners[id]; ok {
			fn(fraction)
		}
	}
}

// Listeners returns the number of attached listeners
func (f *Feed) Listeners() int {
	return len(f.listeners)
}
