package adapter

import "github.com/manjunathc23/zeta/pkg/errors"

// StickyID returns the sticky header group at flat.
//
// The header row, the footer row and any position whose regular index falls
// outside the current count resolve to NoStickyHeader. The last case happens
// when a decoration layer polls between a content change and the host's
// refresh; it is reported as a KindStaleIndex diagnostic and never panics,
// even in strict mode.
func (m *Mapper[V]) StickyID(flat int) HeaderID {
	if flat == headerPosition && m.provider.CanShowHeader() {
		return NoStickyHeader
	}
	if m.provider.CanShowFooter() && flat == m.TotalCount()-1 {
		return NoStickyHeader
	}

	regular := m.RegularIndex(flat)
	count := m.provider.RegularCount()
	if regular < 0 || regular >= count {
		errors.ReportTo(m.diagnostics, &errors.Error{
			Op:    "adapter.StickyID",
			Kind:  errors.KindStaleIndex,
			Err:   ErrIndexOutOfRange,
			Index: flat,
			Count: count,
		})
		return NoStickyHeader
	}
	return StickyHeaderID(m.provider.StickyIdentifierFor(regular))
}

// CreateStickyHeaderView asks the provider for a sticky header view. It
// returns false when the provider does not draw sticky headers.
func (m *Mapper[V]) CreateStickyHeaderView() (V, bool) {
	r, ok := m.provider.(StickyHeaderRenderer[V])
	if !ok {
		var zero V
		return zero, false
	}
	return r.CreateStickyHeaderView(), true
}

// RenderStickyHeader binds the sticky heading for the group at flat into
// view. It returns false, leaving view untouched, when flat has no sticky
// header or the provider does not draw them.
func (m *Mapper[V]) RenderStickyHeader(view V, flat int) bool {
	r, ok := m.provider.(StickyHeaderRenderer[V])
	if !ok {
		return false
	}
	if !m.StickyID(flat).Valid() {
		return false
	}
	r.RenderStickyHeader(view, m.RegularIndex(flat))
	return true
}

// IsGroupStart reports whether flat begins a new sticky header group, that is
// it has a sticky header that differs from the previous position's.
func (m *Mapper[V]) IsGroupStart(flat int) bool {
	id := m.StickyID(flat)
	if !id.Valid() {
		return false
	}
	if flat == 0 {
		return true
	}
	return !id.SameGroup(m.StickyID(flat - 1))
}
