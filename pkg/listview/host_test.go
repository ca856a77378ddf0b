package listview

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manjunathc23/zeta/pkg/adapter"
	"github.com/manjunathc23/zeta/pkg/errors"
	"github.com/manjunathc23/zeta/pkg/flickr"
	"github.com/manjunathc23/zeta/pkg/home"
)

var (
	may1 = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	may2 = time.Date(2024, 5, 2, 9, 0, 0, 0, time.UTC)
)

func testImages() []flickr.Image {
	return []flickr.Image{
		{ID: "1", Title: "Bridge", Author: "alice", Taken: may1},
		{ID: "2", Title: "Harbor", Author: "bob", Taken: may1},
		{ID: "3", Title: "", Author: "carol", Tags: []string{"fog"}, Taken: may2},
	}
}

func newTestHost(t *testing.T, opts Options) (*home.Adapter, *Host[home.View]) {
	t.Helper()
	a := home.NewAdapter(func() home.View { return NewCell(PlainStyles()) }, adapter.Options{})
	a.SetHeader("Explore", true)
	a.ReplaceImages(testImages())
	h := New(a.Mapper(), opts)
	t.Cleanup(h.Close)
	return a, h
}

func trimmed(frame string) []string {
	rows := strings.Split(frame, "\n")
	for i, row := range rows {
		rows[i] = strings.TrimRight(row, " ")
	}
	return rows
}

func TestFrameFromTop(t *testing.T) {
	_, h := newTestHost(t, Options{Height: 6, Width: 30, ItemExtent: 2})

	require.Equal(t, []string{
		"Explore",
		"3 photos",
		"Bridge",
		"by alice",
		"Harbor",
		"by bob",
	}, trimmed(h.Frame()))
}

func TestFrameRowsHaveViewportWidth(t *testing.T) {
	_, h := newTestHost(t, Options{Height: 10, Width: 12, ItemExtent: 2})
	for _, row := range strings.Split(h.Frame(), "\n") {
		assert.Equal(t, 12, len([]rune(row)), "row %q", row)
	}
}

func TestFrameFooterAndPadding(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 12, Width: 50, ItemExtent: 2})
	a.ShowFooterRetry(true)

	rows := trimmed(h.Frame())
	require.Len(t, rows, 12)
	assert.Equal(t, "(untitled 3)", rows[6])
	assert.Equal(t, "by carol  #fog", rows[7])
	assert.Equal(t, "Couldn't load more photos. Click to retry.", rows[8])
	assert.Equal(t, "", rows[11])
}

func TestStickyHeaderOverlay(t *testing.T) {
	_, h := newTestHost(t, Options{Height: 2, Width: 30, ItemExtent: 2, StickyHeaders: true})

	// The header row never gets a sticky header.
	require.Equal(t, "Explore", trimmed(h.Frame())[0])

	h.ScrollToItem(2)
	rows := trimmed(h.Frame())
	assert.Equal(t, "Wed, 01 May 2024", rows[0])
	assert.Equal(t, "by bob", rows[1])

	// Half way through the last image of the first day.
	h.ScrollTo(5)
	assert.Equal(t, "Wed, 01 May 2024", trimmed(h.Frame())[0])

	// A group's first item at the top is not covered.
	h.ScrollToItem(1)
	assert.Equal(t, "Bridge", trimmed(h.Frame())[0])
	h.ScrollToItem(3)
	assert.Equal(t, "(untitled 3)", trimmed(h.Frame())[0])

	// Once the group start scrolls partly out, the overlay returns.
	h.ScrollTo(3)
	rows = trimmed(h.Frame())
	assert.Equal(t, "Wed, 01 May 2024", rows[0])
	assert.Equal(t, "Harbor", rows[1])
}

func TestVisibleRange(t *testing.T) {
	_, h := newTestHost(t, Options{Height: 3, Width: 10, ItemExtent: 2})

	start, end := h.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 2, end)

	h.ScrollTo(3)
	start, end = h.VisibleRange()
	assert.Equal(t, 1, start)
	assert.Equal(t, 3, end)
	assert.Equal(t, []string{"by alice", "Harbor", "by bob"}, trimmed(h.Frame()))
}

func TestScrollClamps(t *testing.T) {
	_, h := newTestHost(t, Options{Height: 4, Width: 10, ItemExtent: 2})

	h.ScrollTo(100)
	assert.Equal(t, 4, h.Offset())
	assert.True(t, h.AtEnd())

	h.ScrollBy(-100)
	assert.Equal(t, 0, h.Offset())
	assert.False(t, h.AtEnd())
}

func TestAppendKeepsScrolledPosition(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 2, Width: 20, ItemExtent: 2})

	h.ScrollToItem(3)
	require.Equal(t, "(untitled 3)", trimmed(h.Frame())[0])

	a.AppendImages([]flickr.Image{{ID: "4", Title: "Pier", Taken: may2}})
	assert.Equal(t, 6, h.Offset())
	assert.Equal(t, "(untitled 3)", trimmed(h.Frame())[0])
}

func TestInsertBeforeViewportShiftsOffset(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 2, Width: 20, ItemExtent: 2})
	a.AppendImages([]flickr.Image{{ID: "4", Title: "Pier"}})
	h.ScrollToItem(3)

	a.Mapper().NotifyAppended(0, 1)
	assert.Equal(t, 8, h.Offset())
}

func TestAppendAtTopDoesNotScroll(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 2, Width: 20, ItemExtent: 2})
	a.AppendImages([]flickr.Image{{ID: "4", Title: "Pier"}})
	assert.Equal(t, 0, h.Offset())
}

func TestResetClampsOffset(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 2, Width: 20, ItemExtent: 2})
	h.ScrollToItem(3)

	a.ReplaceImages(testImages()[:1])
	assert.Equal(t, 2, h.Offset())
}

func TestCloseDetaches(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 2, Width: 20, ItemExtent: 2})
	h.ScrollToItem(3)
	h.Close()

	a.Mapper().NotifyAppended(0, 1)
	assert.Equal(t, 6, h.Offset())
}

func TestClick(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 4, Width: 20, ItemExtent: 2})

	var clicked []string
	a.SetClickListener(func(img flickr.Image) { clicked = append(clicked, img.ID) })

	assert.True(t, h.Click(2))
	assert.False(t, h.Click(0), "header is not clickable")
	assert.False(t, h.Click(99))
	assert.Equal(t, []string{"2"}, clicked)
}

func TestFit(t *testing.T) {
	assert.Equal(t, "abc  ", fit("abc", 5))
	assert.Equal(t, "abcd…", fit("abcdefgh", 5))
	assert.Equal(t, "", fit("abc", 0))
}

func TestEmptyList(t *testing.T) {
	a := home.NewAdapter(func() home.View { return NewCell(PlainStyles()) }, adapter.Options{})
	h := New(a.Mapper(), Options{Height: 2, Width: 4, ItemExtent: 1, StickyHeaders: true})
	defer h.Close()

	start, end := h.VisibleRange()
	assert.Equal(t, 0, start)
	assert.Equal(t, 0, end)
	assert.Equal(t, "    \n    ", h.Frame())
}

func TestClickRetryFooter(t *testing.T) {
	a, h := newTestHost(t, Options{Height: 12, Width: 50, ItemExtent: 2})
	a.ShowFooterRetry(true)
	last := a.Mapper().TotalCount() - 1

	assert.False(t, h.Click(last), "retry footer without a listener")

	retries := 0
	a.SetRetryListener(func() {
		retries++
		a.ShowFooterRetry(false)
	})
	assert.True(t, h.Click(last))
	assert.Equal(t, 1, retries)
	assert.Equal(t, home.FooterHidden, a.Footer())
	assert.Equal(t, last, a.Mapper().TotalCount())
}

type panicRecorder struct {
	panics []*errors.PanicError
}

func (r *panicRecorder) HandleError(err *errors.Error)      {}
func (r *panicRecorder) HandlePanic(err *errors.PanicError) { r.panics = append(r.panics, err) }

func recordPanics(t *testing.T) *panicRecorder {
	t.Helper()
	r := &panicRecorder{}
	errors.SetHandler(r)
	t.Cleanup(func() { errors.SetHandler(nil) })
	return r
}

// brokenCell fails to draw the image titled "Harbor".
type brokenCell struct {
	*Cell
}

func (c brokenCell) Lines(width, height int) []string {
	if c.title == "Harbor" {
		panic("cannot draw")
	}
	return c.Cell.Lines(width, height)
}

func TestFrameRecoversFromViewPanic(t *testing.T) {
	rec := recordPanics(t)
	a := home.NewAdapter(func() home.View { return brokenCell{NewCell(PlainStyles())} }, adapter.Options{})
	a.SetHeader("Explore", true)
	a.ReplaceImages(testImages())
	h := New(a.Mapper(), Options{Height: 8, Width: 20, ItemExtent: 2})
	defer h.Close()

	require.Equal(t, []string{
		"Explore",
		"3 photos",
		"Bridge",
		"by alice",
		"",
		"",
		"(untitled 3)",
		"by carol  #fog",
	}, trimmed(h.Frame()))
	require.Len(t, rec.panics, 1)
	assert.Equal(t, "listview.Frame", rec.panics[0].Op)
	assert.Equal(t, "cannot draw", rec.panics[0].Value)
}

func TestClickRecoversFromListenerPanic(t *testing.T) {
	rec := recordPanics(t)
	a, h := newTestHost(t, Options{Height: 4, Width: 20, ItemExtent: 2})
	a.SetClickListener(func(flickr.Image) { panic("listener failed") })

	assert.False(t, h.Click(1))
	require.Len(t, rec.panics, 1)
	assert.Equal(t, "listview.Click", rec.panics[0].Op)
	assert.NotEmpty(t, rec.panics[0].StackTrace)
}
