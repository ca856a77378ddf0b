package adapter

// ContentProvider supplies the regular items of a list and renders every slot.
//
// V is the host's view type: whatever the host hands back to be filled in
// (a widget, a terminal cell, a test recorder). The mapper passes it through
// without inspecting it.
//
// Regular indices passed to a provider are always in [0, RegularCount()).
type ContentProvider[V any] interface {
	// RegularCount returns the number of regular items.
	RegularCount() int
	// RegularViewType returns the template code of a regular item.
	RegularViewType(index int) int
	// CanShowHeader reports whether the header row is currently present.
	CanShowHeader() bool
	// CanShowFooter reports whether the footer row is currently present.
	CanShowFooter() bool
	// RenderHeader binds the header into view.
	RenderHeader(view V)
	// RenderFooter binds the footer into view.
	RenderFooter(view V)
	// RenderRegular binds the regular item at index into view.
	RenderRegular(view V, index int)
	// StickyIdentifierFor returns the sticky header group of a regular item.
	StickyIdentifierFor(index int) uint64
}

// ViewFactory is implemented by providers that create their own views.
type ViewFactory[V any] interface {
	CreateHeaderView() V
	CreateFooterView() V
	CreateRegularView(code int) V
}

// StickyHeaderRenderer is implemented by providers that draw sticky headers.
type StickyHeaderRenderer[V any] interface {
	CreateStickyHeaderView() V
	// RenderStickyHeader binds the heading of the group containing the
	// regular item at index.
	RenderStickyHeader(view V, index int)
}
