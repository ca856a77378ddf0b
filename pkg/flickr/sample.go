package flickr

import (
	"bytes"
	_ "embed"
)

//go:embed sample_feed.json
var builtinFeed []byte

// SampleFeed returns a small built-in feed used by the mock environment.
func SampleFeed() (*Feed, error) {
	return DecodeFeed(bytes.NewReader(builtinFeed))
}
