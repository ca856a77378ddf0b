package flickr

// Pager hands out a feed's images one page at a time, simulating the
// incremental loading the home screen performs while scrolling.
type Pager struct {
	images   []Image
	pageSize int
	next     int
}

// NewPager returns a pager over images. A non-positive pageSize returns
// everything in one page.
func NewPager(images []Image, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = len(images)
	}
	return &Pager{images: images, pageSize: pageSize}
}

// Next returns the next page, or nil when exhausted.
func (p *Pager) Next() []Image {
	if p.next >= len(p.images) {
		return nil
	}
	end := min(p.next+p.pageSize, len(p.images))
	page := p.images[p.next:end]
	p.next = end
	return page
}

// HasMore reports whether another page is available.
func (p *Pager) HasMore() bool {
	return p.next < len(p.images)
}
