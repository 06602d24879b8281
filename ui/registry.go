package ui

import (
	"cmp"
	"log/slog"
	"slices"
)

// Registry is the ordered set of live widgets for one UI. The host owns a
// Registry and calls UpdateAll then RenderAll once per frame, on the frame
// loop goroutine. It is not safe for concurrent use.
type Registry struct {
	entries []registryEntry
	index   map[Widget]uint64
	seq     uint64
}

type registryEntry struct {
	widget Widget
	seq    uint64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		index: make(map[Widget]uint64),
	}
}

// Add registers w. Adding a widget that is already registered does nothing.
func (r *Registry) Add(w Widget) {
	if w == nil {
		return
	}
	if _, ok := r.index[w]; ok {
		return
	}
	r.seq++
	r.index[w] = r.seq
	r.entries = append(r.entries, registryEntry{widget: w, seq: r.seq})
	slog.Debug("ui: widget added", "layer", w.DrawLayer(), "count", len(r.entries))
}

// Remove unregisters w. Removing an unknown widget does nothing.
func (r *Registry) Remove(w Widget) {
	seq, ok := r.index[w]
	if !ok {
		return
	}
	delete(r.index, w)
	r.entries = slices.DeleteFunc(r.entries, func(e registryEntry) bool { return e.seq == seq })
	slog.Debug("ui: widget removed", "count", len(r.entries))
}

// Contains reports whether w is registered.
func (r *Registry) Contains(w Widget) bool {
	_, ok := r.index[w]
	return ok
}

// Len returns the number of registered widgets.
func (r *Registry) Len() int {
	return len(r.entries)
}

// Clear unregisters every widget.
func (r *Registry) Clear() {
	r.entries = nil
	clear(r.index)
}

// Widgets returns the registered widgets in paint order.
func (r *Registry) Widgets() []Widget {
	sorted := r.paintOrder()
	out := make([]Widget, len(sorted))
	for i, e := range sorted {
		out[i] = e.widget
	}
	return out
}

// UpdateAll runs one frame of pointer interaction. The topmost hit widget is
// picked first, then every interactable widget is updated so the rest fall
// back to StateNormal. The pass works on a snapshot: widgets added by a
// listener wait for the next frame, widgets removed by a listener are not
// updated again.
func (r *Registry) UpdateAll(p PointerState) {
	snapshot := slices.Clone(r.entries)
	target := frontMost(snapshot, p.Position)

	for _, e := range snapshot {
		w, ok := e.widget.(Interactable)
		if !ok {
			continue
		}
		if seq, live := r.index[e.widget]; !live || seq != e.seq {
			continue
		}
		w.Update(p, e.widget == target)
	}
}

// FrontMost returns the widget that would receive the pointer at p, or nil.
func (r *Registry) FrontMost(p Vector2) Widget {
	return frontMost(r.entries, p)
}

// RenderAll draws every visible widget, back to front.
func (r *Registry) RenderAll(rd Renderer) {
	for _, e := range r.paintOrder() {
		if !e.widget.Visible() {
			continue
		}
		e.widget.Draw(rd)
	}
}

// frontMost picks the hit interactable widget with the highest layer,
// preferring the most recently added on ties.
func frontMost(entries []registryEntry, p Vector2) Widget {
	var (
		best  Widget
		bestE registryEntry
	)
	for _, e := range entries {
		if _, ok := e.widget.(Interactable); !ok {
			continue
		}
		if !e.widget.Visible() || !e.widget.HitTest(p) {
			continue
		}
		if best == nil || compareEntries(e, bestE) > 0 {
			best, bestE = e.widget, e
		}
	}
	return best
}

func (r *Registry) paintOrder() []registryEntry {
	sorted := slices.Clone(r.entries)
	slices.SortStableFunc(sorted, compareEntries)
	return sorted
}

func compareEntries(a, b registryEntry) int {
	if c := cmp.Compare(a.widget.DrawLayer(), b.widget.DrawLayer()); c != 0 {
		return c
	}
	return cmp.Compare(a.seq, b.seq)
}
