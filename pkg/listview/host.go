// Package listview renders a list adapter into a fixed-size text viewport.
//
// [Host] plays the part a scrolling list widget plays on a device: it polls
// counts and view types from an [adapter.Mapper], creates and binds views for
// the visible window, draws the sticky header overlay and reacts to change
// notifications. Views must implement [Renderable] to be drawn and
// [Clickable] to receive clicks.
//
// Example:
//
//	host := listview.New(adapter.Mapper(), listview.Options{
//	    Height:        12,
//	    Width:         60,
//	    ItemExtent:    2,
//	    StickyHeaders: true,
//	})
//	defer host.Close()
//	fmt.Println(host.Frame())
package listview

import (
	"strings"

	"github.com/manjunathc23/zeta/pkg/adapter"
	"github.com/manjunathc23/zeta/pkg/errors"
)

// Renderable is implemented by views the host can draw.
type Renderable interface {
	// Lines returns the view's text, one entry per row. The host pads or
	// crops the result to exactly height rows of width cells.
	Lines(width, height int) []string
}

// Clickable is implemented by views that respond to clicks.
type Clickable interface {
	// Click dispatches a click and reports whether it was handled.
	Click() bool
}

// Options configures a Host.
type Options struct {
	// Height is the number of rows in the viewport.
	Height int
	// Width is the number of cells per row.
	Width int
	// ItemExtent is the fixed number of rows each item occupies.
	ItemExtent int
	// StickyHeaders draws the sticky header of the first visible item over
	// the top row.
	StickyHeaders bool
}

// Host drives a Mapper and draws its visible window.
type Host[V any] struct {
	mapper         *adapter.Mapper[V]
	opts           Options
	offset         int
	removeListener func()
}

// New attaches a host to mapper. Call Close to detach it.
func New[V any](mapper *adapter.Mapper[V], opts Options) *Host[V] {
	if opts.ItemExtent <= 0 {
		opts.ItemExtent = 1
	}
	h := &Host[V]{mapper: mapper, opts: opts}
	h.removeListener = mapper.AddListener(h.onChange)
	return h
}

// Close detaches the host from its mapper.
func (h *Host[V]) Close() {
	if h.removeListener != nil {
		h.removeListener()
		h.removeListener = nil
	}
}

// Offset returns the scroll offset in rows.
func (h *Host[V]) Offset() int {
	return h.offset
}

// ContentHeight returns the height of all items in rows.
func (h *Host[V]) ContentHeight() int {
	return h.mapper.TotalCount() * h.opts.ItemExtent
}

// ScrollTo moves the viewport to row offset, clamped to the content.
func (h *Host[V]) ScrollTo(offset int) {
	h.offset = offset
	h.clamp()
}

// ScrollBy moves the viewport by delta rows.
func (h *Host[V]) ScrollBy(delta int) {
	h.ScrollTo(h.offset + delta)
}

// ScrollToItem moves the viewport so flat is the first visible item.
func (h *Host[V]) ScrollToItem(flat int) {
	h.ScrollTo(flat * h.opts.ItemExtent)
}

// AtEnd reports whether the last item is visible.
func (h *Host[V]) AtEnd() bool {
	_, end := h.VisibleRange()
	return end >= h.mapper.TotalCount()
}

// VisibleRange returns the half-open range of flat indices intersecting the
// viewport.
func (h *Host[V]) VisibleRange() (int, int) {
	count := h.mapper.TotalCount()
	extent := h.opts.ItemExtent
	if count <= 0 {
		return 0, 0
	}
	if h.opts.Height <= 0 {
		return 0, count
	}
	startIndex := h.offset / extent
	endIndex := (h.offset + h.opts.Height + extent - 1) / extent
	if startIndex < 0 {
		startIndex = 0
	}
	if endIndex > count {
		endIndex = count
	}
	if endIndex < startIndex {
		endIndex = startIndex
	}
	return startIndex, endIndex
}

// Frame renders the viewport as Height rows joined by newlines.
func (h *Host[V]) Frame() string {
	extent := h.opts.ItemExtent
	start, end := h.VisibleRange()

	rows := make([]string, 0, (end-start)*extent)
	for flat := start; flat < end; flat++ {
		rows = append(rows, h.itemRows(flat)...)
	}
	skip := h.offset - start*extent
	if skip > 0 && skip <= len(rows) {
		rows = rows[skip:]
	}
	if h.opts.Height > 0 {
		rows = fitRows(rows, h.opts.Width, h.opts.Height)
	}

	// A group whose first item is fully visible at the top already shows
	// where it starts.
	if h.opts.StickyHeaders && len(rows) > 0 && start < end && (skip > 0 || !h.mapper.IsGroupStart(start)) {
		if row, ok := h.stickyRow(start); ok {
			rows[0] = row
		}
	}
	return strings.Join(rows, "\n")
}

// Click binds the item at flat and dispatches a click to its view. A panic
// in the click handler is reported and the click counts as unhandled.
func (h *Host[V]) Click(flat int) (handled bool) {
	defer errors.Recover("listview.Click")

	if flat < 0 || flat >= h.mapper.TotalCount() {
		return false
	}
	view, ok := h.mapper.CreateView(h.mapper.ViewType(flat))
	if !ok {
		return false
	}
	h.mapper.Render(view, flat)
	c, ok := any(view).(Clickable)
	if !ok {
		return false
	}
	return c.Click()
}

// itemRows renders the item at flat. A view that panics while binding or
// drawing is reported and leaves blank rows.
func (h *Host[V]) itemRows(flat int) (rows []string) {
	extent := h.opts.ItemExtent
	defer func() {
		if rows == nil {
			rows = fitRows(nil, h.opts.Width, extent)
		}
	}()
	defer errors.Recover("listview.Frame")

	view, ok := h.mapper.CreateView(h.mapper.ViewType(flat))
	if !ok {
		return fitRows(nil, h.opts.Width, extent)
	}
	h.mapper.Render(view, flat)
	r, ok := any(view).(Renderable)
	if !ok {
		return fitRows(nil, h.opts.Width, extent)
	}
	return fitRows(r.Lines(h.opts.Width, extent), h.opts.Width, extent)
}

func (h *Host[V]) stickyRow(flat int) (string, bool) {
	view, ok := h.mapper.CreateStickyHeaderView()
	if !ok {
		return "", false
	}
	if !h.mapper.RenderStickyHeader(view, flat) {
		return "", false
	}
	r, ok := any(view).(Renderable)
	if !ok {
		return "", false
	}
	return fitRows(r.Lines(h.opts.Width, 1), h.opts.Width, 1)[0], true
}

func (h *Host[V]) onChange(c adapter.Change) {
	if c.Kind == adapter.ChangeInserted && h.offset > 0 {
		first := h.offset / h.opts.ItemExtent
		if c.Start <= first {
			h.offset += c.Count * h.opts.ItemExtent
		}
	}
	h.clamp()
}

func (h *Host[V]) clamp() {
	maxOffset := h.ContentHeight() - h.opts.Height
	if maxOffset < 0 {
		maxOffset = 0
	}
	if h.offset > maxOffset {
		h.offset = maxOffset
	}
	if h.offset < 0 {
		h.offset = 0
	}
}

// fitRows pads or crops rows to exactly height rows. Missing rows are
// filled with width spaces.
func fitRows(rows []string, width, height int) []string {
	if len(rows) > height {
		return rows[:height]
	}
	blank := strings.Repeat(" ", max(width, 0))
	for len(rows) < height {
		rows = append(rows, blank)
	}
	return rows
}
