// Package home implements the content of the home screen list: a titled
// header, the photo feed grouped by day under sticky headers, and a footer
// that shows paging progress or a retry affordance.
package home

import (
	"github.com/cespare/xxhash/v2"

	"github.com/manjunathc23/zeta/pkg/adapter"
	"github.com/manjunathc23/zeta/pkg/flickr"
)

// Regular view type codes.
const (
	// TypeImage is a photo with a title.
	TypeImage = iota
	// TypeUntitled is a photo without a title, rendered more compactly.
	TypeUntitled
)

// FooterState selects what the footer row shows.
type FooterState uint8

const (
	// FooterHidden removes the footer row.
	FooterHidden FooterState = iota
	// FooterProgress shows that another page is loading.
	FooterProgress
	// FooterRetry offers to retry a failed load.
	FooterRetry
)

// String returns the state name.
func (s FooterState) String() string {
	switch s {
	case FooterProgress:
		return "progress"
	case FooterRetry:
		return "retry"
	default:
		return "hidden"
	}
}

// View is what the home adapter binds content into.
type View interface {
	BindHeader(title string, count int)
	// BindFooter binds the footer. onClick is nil unless the footer offers
	// a retry.
	BindFooter(state FooterState, onClick func())
	BindImage(img flickr.Image, onClick func())
	BindSection(title string)
}

// Adapter is the home screen's content provider. It owns its
// [adapter.Mapper] and announces every content change through it.
type Adapter struct {
	images     []flickr.Image
	title      string
	showHeader bool
	footer     FooterState
	listener   func(flickr.Image)
	retry      func()
	newView    func() View
	mapper     *adapter.Mapper[View]
}

// NewAdapter creates an empty home adapter. newView creates the host's views
// for every slot and sticky headers.
func NewAdapter(newView func() View, opts adapter.Options) *Adapter {
	a := &Adapter{newView: newView}
	a.mapper = adapter.New[View](a, opts)
	return a
}

// Mapper returns the mapper hosts should drive.
func (a *Adapter) Mapper() *adapter.Mapper[View] {
	return a.mapper
}

// SetClickListener sets the callback for image clicks. Nil disables clicks.
func (a *Adapter) SetClickListener(listener func(flickr.Image)) {
	a.listener = listener
}

// SetRetryListener sets the callback run when the retry footer is clicked.
// Nil makes the footer unclickable.
func (a *Adapter) SetRetryListener(listener func()) {
	a.retry = listener
}

// Images returns the current images.
func (a *Adapter) Images() []flickr.Image {
	return a.images
}

// SetHeader sets the header title and whether the header is shown.
// The header is only present when shown and titled.
func (a *Adapter) SetHeader(title string, show bool) {
	wasShown := a.CanShowHeader()
	a.title = title
	a.showHeader = show
	if wasShown != a.CanShowHeader() {
		a.mapper.NotifyReset()
		return
	}
	a.mapper.NotifyHeaderChanged()
}

// ReplaceImages swaps in a new feed.
func (a *Adapter) ReplaceImages(images []flickr.Image) {
	a.images = images
	a.mapper.NotifyReset()
}

// AppendImages adds a page of images after the current ones.
func (a *Adapter) AppendImages(images []flickr.Image) {
	if len(images) == 0 {
		return
	}
	prev := len(a.images)
	a.images = append(a.images[:prev:prev], images...)
	a.mapper.NotifyAppended(prev, len(images))
	a.mapper.NotifyHeaderChanged()
}

// UpdateImages replaces the images given the size of the previous list.
// A previous size of zero resets the list; otherwise the new images are
// assumed to extend the previous ones.
func (a *Adapter) UpdateImages(images []flickr.Image, previousSize int) {
	a.images = images
	a.mapper.OnContentReplaced(len(images), previousSize)
}

// ShowFooterProgress shows or hides the loading footer.
func (a *Adapter) ShowFooterProgress(show bool) {
	a.toggleFooter(FooterProgress, show)
}

// ShowFooterRetry shows or hides the retry footer.
func (a *Adapter) ShowFooterRetry(show bool) {
	a.toggleFooter(FooterRetry, show)
}

// Footer returns the current footer state.
func (a *Adapter) Footer() FooterState {
	return a.footer
}

func (a *Adapter) toggleFooter(state FooterState, show bool) {
	next := a.footer
	switch {
	case show:
		next = state
	case a.footer == state:
		next = FooterHidden
	}
	if next == a.footer {
		return
	}
	prev := a.footer
	a.footer = next
	if prev != FooterHidden && next != FooterHidden {
		a.mapper.NotifyFooterChanged()
		return
	}
	a.mapper.NotifyReset()
}

// RegularCount returns the number of images.
func (a *Adapter) RegularCount() int {
	return len(a.images)
}

// RegularViewType returns TypeImage, or TypeUntitled for images without a
// title.
func (a *Adapter) RegularViewType(index int) int {
	if a.images[index].HasTitle() {
		return TypeImage
	}
	return TypeUntitled
}

// CanShowHeader reports whether the header is shown and has a title.
func (a *Adapter) CanShowHeader() bool {
	return a.showHeader && a.title != ""
}

// CanShowFooter reports whether a footer state is active.
func (a *Adapter) CanShowFooter() bool {
	return a.footer != FooterHidden
}

// RenderHeader binds the title and the image count.
func (a *Adapter) RenderHeader(view View) {
	view.BindHeader(a.title, len(a.images))
}

// RenderFooter binds the footer state. Only the retry footer is clickable,
// and only while a retry listener is set.
func (a *Adapter) RenderFooter(view View) {
	var onClick func()
	if a.footer == FooterRetry && a.retry != nil {
		retry := a.retry
		onClick = func() { retry() }
	}
	view.BindFooter(a.footer, onClick)
}

// RenderRegular binds the image at index with a click handler that calls
// the click listener, if any.
func (a *Adapter) RenderRegular(view View, index int) {
	img := a.images[index]
	view.BindImage(img, func() {
		if a.listener == nil {
			return
		}
		a.listener(img)
	})
}

// StickyIdentifierFor groups images by the day they were taken.
func (a *Adapter) StickyIdentifierFor(index int) uint64 {
	return xxhash.Sum64String(a.images[index].SectionKey())
}

// CreateHeaderView returns a new view. Every slot uses the same view type,
// rebound on render.
func (a *Adapter) CreateHeaderView() View { return a.newView() }

// CreateFooterView returns a new view.
func (a *Adapter) CreateFooterView() View { return a.newView() }

// CreateRegularView returns a new view for either image type.
func (a *Adapter) CreateRegularView(_ int) View { return a.newView() }

// CreateStickyHeaderView returns a new view for section headings.
func (a *Adapter) CreateStickyHeaderView() View { return a.newView() }

// RenderStickyHeader binds the title of the day the image at index was
// taken.
func (a *Adapter) RenderStickyHeader(view View, index int) {
	view.BindSection(a.images[index].SectionTitle())
}

var (
	_ adapter.ContentProvider[View]      = (*Adapter)(nil)
	_ adapter.ViewFactory[View]          = (*Adapter)(nil)
	_ adapter.StickyHeaderRenderer[View] = (*Adapter)(nil)
)
