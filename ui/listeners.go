package ui

import "slices"

// Listener is a click callback.
type Listener func()

type listenerEntry struct {
	id      uint64
	fn      Listener
	removed bool
}

// Listeners is an ordered multicast list of callbacks. Registration order is
// invocation order and duplicates are allowed. Entries are addressed by the
// ListenerHandle returned from Add, so the list may be changed from inside
// its own dispatch.
type Listeners struct {
	entries []*listenerEntry
	nextID  uint64
}

// ListenerHandle identifies one registration in a Listeners list.
type ListenerHandle struct {
	id   uint64
	list *Listeners
}

// Remove unregisters the callback. Removing twice is a no-op.
func (h ListenerHandle) Remove() {
	if h.list == nil {
		return
	}
	h.list.Remove(h)
}

// Add appends fn and returns the handle needed to remove it.
func (l *Listeners) Add(fn Listener) ListenerHandle {
	l.nextID++
	l.entries = append(l.entries, &listenerEntry{id: l.nextID, fn: fn})
	return ListenerHandle{id: l.nextID, list: l}
}

// Remove unregisters h. Handles from another list, or already removed, are ignored.
func (l *Listeners) Remove(h ListenerHandle) {
	if h.list != l {
		return
	}
	i := slices.IndexFunc(l.entries, func(e *listenerEntry) bool { return e.id == h.id })
	if i < 0 {
		return
	}
	// A dispatch in flight holds its own copy of the slice and skips marked entries.
	l.entries[i].removed = true
	l.entries = slices.Delete(l.entries, i, i+1)
}

// Len returns the number of registered callbacks.
func (l *Listeners) Len() int {
	return len(l.entries)
}

// Clear unregisters every callback.
func (l *Listeners) Clear() {
	for _, e := range l.entries {
		e.removed = true
	}
	l.entries = nil
}

// Invoke calls every callback registered when Invoke began, in order.
// Callbacks added meanwhile wait for the next Invoke; callbacks removed
// meanwhile are skipped if not reached yet. Panics are not recovered.
func (l *Listeners) Invoke() {
	if len(l.entries) == 0 {
		return
	}
	snapshot := slices.Clone(l.entries)
	for _, e := range snapshot {
		if e.removed {
			continue
		}
		e.fn()
	}
}
