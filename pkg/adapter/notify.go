package adapter

import "fmt"

// ChangeKind identifies how the flat range changed.
type ChangeKind uint8

const (
	// ChangeReset means every position may have changed.
	ChangeReset ChangeKind = iota
	// ChangeInserted means Count positions were inserted at Start.
	ChangeInserted
	// ChangeItemChanged means Count positions at Start changed in place.
	ChangeItemChanged
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeInserted:
		return "inserted"
	case ChangeItemChanged:
		return "changed"
	default:
		return "reset"
	}
}

// Change describes a change to the host's flat positions.
// Start and Count are zero for ChangeReset.
type Change struct {
	Kind  ChangeKind
	Start int
	Count int
}

func (c Change) String() string {
	if c.Kind == ChangeReset {
		return "reset"
	}
	return fmt.Sprintf("%s[%d,%d)", c.Kind, c.Start, c.Start+c.Count)
}

type listenerEntry struct {
	id int
	fn func(Change)
}

// AddListener registers a callback for flat range changes and returns a
// function that removes it. Listeners run in registration order.
func (m *Mapper[V]) AddListener(listener func(Change)) func() {
	if listener == nil {
		return func() {}
	}
	id := m.nextListenerID
	m.nextListenerID++
	m.listeners = append(m.listeners, listenerEntry{id: id, fn: listener})
	return func() {
		for i, entry := range m.listeners {
			if entry.id == id {
				m.listeners = append(m.listeners[:i], m.listeners[i+1:]...)
				return
			}
		}
	}
}

func (m *Mapper[V]) notify(c Change) {
	// Copy so listeners may unsubscribe while being notified.
	listeners := append([]listenerEntry(nil), m.listeners...)
	for _, entry := range listeners {
		entry.fn(c)
	}
}

// NotifyReset announces that the content was replaced wholesale.
func (m *Mapper[V]) NotifyReset() {
	m.notify(Change{Kind: ChangeReset})
}

// NotifyAppended announces that added regular items were appended after
// previousCount existing ones. The inserted flat range starts after the
// header row, when there is one.
func (m *Mapper[V]) NotifyAppended(previousCount, added int) {
	if added <= 0 {
		return
	}
	m.notify(Change{
		Kind:  ChangeInserted,
		Start: previousCount + m.HeaderOffset(),
		Count: added,
	})
}

// OnContentReplaced announces new content given the regular counts before
// and after the swap. A previous count of zero is a reset; otherwise the
// difference is treated as an append. Shrinking content is not modelled as a
// removal and is announced as a reset.
func (m *Mapper[V]) OnContentReplaced(newCount, previousCount int) {
	switch {
	case previousCount == 0 || newCount < previousCount:
		m.NotifyReset()
	default:
		m.NotifyAppended(previousCount, newCount-previousCount)
	}
}

// NotifyHeaderChanged announces that the header row changed in place. It is
// a no-op while the header is hidden.
func (m *Mapper[V]) NotifyHeaderChanged() {
	if !m.provider.CanShowHeader() {
		return
	}
	m.notify(Change{Kind: ChangeItemChanged, Start: headerPosition, Count: 1})
}

// NotifyFooterChanged announces that the footer row changed in place. It is
// a no-op while the footer is hidden.
func (m *Mapper[V]) NotifyFooterChanged() {
	if !m.provider.CanShowFooter() {
		return
	}
	m.notify(Change{Kind: ChangeItemChanged, Start: m.TotalCount() - 1, Count: 1})
}
