// Package flickr models the public Flickr photo feed consumed by the home
// screen and provides a small client for fetching it.
package flickr

import (
	"strings"
	"time"
)

// sectionLayout formats the day an image was taken; images are grouped
// under one sticky header per day.
const sectionLayout = "2006-01-02"

// Image is a single photo from the feed.
type Image struct {
	ID       string
	Title    string
	Link     string
	MediaURL string
	Author   string
	Tags     []string
	Taken    time.Time
}

// HasTitle reports whether the image has a non-blank title.
func (img Image) HasTitle() bool {
	return strings.TrimSpace(img.Title) != ""
}

// SectionKey returns the grouping key of the image: the day it was taken, or
// "undated".
func (img Image) SectionKey() string {
	if img.Taken.IsZero() {
		return "undated"
	}
	return img.Taken.Format(sectionLayout)
}

// SectionTitle returns a human readable heading for the image's section.
func (img Image) SectionTitle() string {
	if img.Taken.IsZero() {
		return "Undated"
	}
	return img.Taken.Format("Mon, 02 Jan 2006")
}
