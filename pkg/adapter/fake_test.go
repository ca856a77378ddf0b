package adapter

import (
	"fmt"

	"github.com/manjunathc23/zeta/pkg/errors"
)

// fakeView records what a provider bound into it.
type fakeView struct {
	kind  string
	bound []string
}

// fakeProvider is a scriptable ContentProvider that records every call.
type fakeProvider struct {
	count  int
	header bool
	footer bool
	types  func(int) int
	groups func(int) uint64

	calls []string
}

func (p *fakeProvider) RegularCount() int   { return p.count }
func (p *fakeProvider) CanShowHeader() bool { return p.header }
func (p *fakeProvider) CanShowFooter() bool { return p.footer }

func (p *fakeProvider) RegularViewType(index int) int {
	p.calls = append(p.calls, fmt.Sprintf("type(%d)", index))
	if p.types != nil {
		return p.types(index)
	}
	return 0
}

func (p *fakeProvider) RenderHeader(view *fakeView) {
	p.calls = append(p.calls, "header")
	view.bound = append(view.bound, "header")
}

func (p *fakeProvider) RenderFooter(view *fakeView) {
	p.calls = append(p.calls, "footer")
	view.bound = append(view.bound, "footer")
}

func (p *fakeProvider) RenderRegular(view *fakeView, index int) {
	p.calls = append(p.calls, fmt.Sprintf("regular(%d)", index))
	view.bound = append(view.bound, fmt.Sprintf("item %d", index))
}

func (p *fakeProvider) StickyIdentifierFor(index int) uint64 {
	p.calls = append(p.calls, fmt.Sprintf("sticky(%d)", index))
	if p.groups != nil {
		return p.groups(index)
	}
	return uint64(index)
}

// fullProvider adds the optional view factory and sticky header capabilities.
type fullProvider struct {
	fakeProvider
}

func (p *fullProvider) CreateHeaderView() *fakeView { return &fakeView{kind: "header"} }
func (p *fullProvider) CreateFooterView() *fakeView { return &fakeView{kind: "footer"} }
func (p *fullProvider) CreateRegularView(code int) *fakeView {
	return &fakeView{kind: fmt.Sprintf("regular:%d", code)}
}
func (p *fullProvider) CreateStickyHeaderView() *fakeView { return &fakeView{kind: "sticky"} }
func (p *fullProvider) RenderStickyHeader(view *fakeView, index int) {
	view.bound = append(view.bound, fmt.Sprintf("group of %d", index))
}

type recordingHandler struct {
	errs []*errors.Error
}

func (h *recordingHandler) HandleError(err *errors.Error)      { h.errs = append(h.errs, err) }
func (h *recordingHandler) HandlePanic(err *errors.PanicError) {}

func newTestMapper(p ContentProvider[*fakeView]) (*Mapper[*fakeView], *recordingHandler) {
	h := &recordingHandler{}
	return New(p, Options{Diagnostics: h}), h
}
