package adapter

import (
	stderrors "errors"

	"github.com/manjunathc23/zeta/pkg/errors"
)

// ErrIndexOutOfRange is the cause of contract and stale-index diagnostics.
var ErrIndexOutOfRange = stderrors.New("flat index out of range")

// headerPosition is the flat index of the header row when it is shown.
const headerPosition = 0

// Options configures a Mapper.
type Options struct {
	// Diagnostics receives contract violations and stale sticky lookups.
	// Nil uses the package-level errors handler.
	Diagnostics errors.Handler
	// Strict makes contract violations panic instead of being reported.
	// Enable it in debug builds.
	Strict bool
}

// Mapper translates a host's flat positions into header, footer and regular
// slots of a ContentProvider.
//
// Counts and visibility are recomputed from the provider on every call; the
// mapper caches nothing besides its listeners.
type Mapper[V any] struct {
	provider    ContentProvider[V]
	diagnostics errors.Handler
	strict      bool

	listeners      []listenerEntry
	nextListenerID int
}

// New returns a Mapper over provider.
func New[V any](provider ContentProvider[V], opts Options) *Mapper[V] {
	return &Mapper[V]{
		provider:    provider,
		diagnostics: opts.Diagnostics,
		strict:      opts.Strict,
	}
}

// HeaderOffset returns 1 when the header is shown, else 0.
func (m *Mapper[V]) HeaderOffset() int {
	if m.provider.CanShowHeader() {
		return 1
	}
	return 0
}

// FooterOffset returns 1 when the footer is shown, else 0.
func (m *Mapper[V]) FooterOffset() int {
	if m.provider.CanShowFooter() {
		return 1
	}
	return 0
}

// RegularCount returns the provider's regular item count.
func (m *Mapper[V]) RegularCount() int {
	return m.provider.RegularCount()
}

// TotalCount returns header + regular items + footer.
func (m *Mapper[V]) TotalCount() int {
	return m.HeaderOffset() + m.provider.RegularCount() + m.FooterOffset()
}

// RegularIndex translates a flat position into a regular index.
// The result is only meaningful for positions in SlotRegular.
func (m *Mapper[V]) RegularIndex(flat int) int {
	return flat - m.HeaderOffset()
}

// FlatIndex translates a regular index into a flat position.
func (m *Mapper[V]) FlatIndex(regular int) int {
	return regular + m.HeaderOffset()
}

// ResolveSlot returns the slot at flat.
//
// The header wins over the footer when both are shown and there are no
// regular items. Positions outside [0, TotalCount()) are a contract
// violation: they panic in strict mode and otherwise report a diagnostic and
// return SlotNone.
func (m *Mapper[V]) ResolveSlot(flat int) Slot {
	if !m.checkRange("adapter.ResolveSlot", flat) {
		return SlotNone
	}
	return m.slotAt(flat)
}

// ViewType returns the view type at flat, or the invalid zero ViewType when
// flat is out of range in non-strict mode.
func (m *Mapper[V]) ViewType(flat int) ViewType {
	if !m.checkRange("adapter.ViewType", flat) {
		return ViewType{}
	}
	switch m.slotAt(flat) {
	case SlotHeader:
		return HeaderType
	case SlotFooter:
		return FooterType
	default:
		return RegularType(m.provider.RegularViewType(m.RegularIndex(flat)))
	}
}

// CreateView asks the provider to create a view for t. It returns false when
// the provider does not implement ViewFactory or t is invalid.
func (m *Mapper[V]) CreateView(t ViewType) (V, bool) {
	var zero V
	factory, ok := m.provider.(ViewFactory[V])
	if !ok {
		return zero, false
	}
	switch t.slot {
	case SlotHeader:
		return factory.CreateHeaderView(), true
	case SlotFooter:
		return factory.CreateFooterView(), true
	case SlotRegular:
		return factory.CreateRegularView(t.code), true
	default:
		return zero, false
	}
}

// Render binds the content at flat into view. Regular positions are
// translated to regular indices before reaching the provider.
func (m *Mapper[V]) Render(view V, flat int) {
	if !m.checkRange("adapter.Render", flat) {
		return
	}
	switch m.slotAt(flat) {
	case SlotHeader:
		m.provider.RenderHeader(view)
	case SlotFooter:
		m.provider.RenderFooter(view)
	default:
		m.provider.RenderRegular(view, m.RegularIndex(flat))
	}
}

func (m *Mapper[V]) slotAt(flat int) Slot {
	if flat == headerPosition && m.provider.CanShowHeader() {
		return SlotHeader
	}
	if flat == m.TotalCount()-1 && m.provider.CanShowFooter() {
		return SlotFooter
	}
	return SlotRegular
}

func (m *Mapper[V]) checkRange(op string, flat int) bool {
	total := m.TotalCount()
	if flat >= 0 && flat < total {
		return true
	}
	err := &errors.Error{
		Op:    op,
		Kind:  errors.KindContract,
		Err:   ErrIndexOutOfRange,
		Index: flat,
		Count: total,
	}
	if m.strict {
		err.StackTrace = errors.CaptureStack()
		panic(err)
	}
	errors.ReportTo(m.diagnostics, err)
	return false
}
