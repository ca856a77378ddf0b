package flickr

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
	"time"

	"github.com/manjunathc23/zeta/pkg/errors"
)

// Feed is a decoded photo feed.
type Feed struct {
	Title  string
	Images []Image
}

// feedResponse mirrors the JSON served with format=json&nojsoncallback=1.
type feedResponse struct {
	Title string     `json:"title"`
	Items []feedItem `json:"items"`
}

type feedItem struct {
	Title     string    `json:"title"`
	Link      string    `json:"link"`
	Media     feedMedia `json:"media"`
	DateTaken string    `json:"date_taken"`
	Author    string    `json:"author"`
	Tags      string    `json:"tags"`
}

type feedMedia struct {
	M string `json:"m"`
}

// DecodeFeed parses a feed document.
//
// The public feed escapes apostrophes as \' even in its JSON format, which
// encoding/json rejects; those escapes are rewritten before decoding.
func DecodeFeed(r io.Reader) (*Feed, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New("flickr.DecodeFeed", errors.KindParsing, fmt.Errorf("failed to read feed: %w", err))
	}

	var resp feedResponse
	if err := json.Unmarshal(unescapeApostrophes(data), &resp); err != nil {
		return nil, errors.New("flickr.DecodeFeed", errors.KindParsing, fmt.Errorf("failed to parse feed: %w", err))
	}

	feed := &Feed{Title: resp.Title, Images: make([]Image, 0, len(resp.Items))}
	for _, item := range resp.Items {
		feed.Images = append(feed.Images, item.image())
	}
	return feed, nil
}

// LoadFeedFile reads a feed document saved to disk.
func LoadFeedFile(name string) (*Feed, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed: %w", err)
	}
	defer f.Close()
	return DecodeFeed(f)
}

// unescapeApostrophes replaces every \' escape with a plain apostrophe.
// Other escapes, including \\, are copied unchanged.
func unescapeApostrophes(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\'`)) {
		return data
	}
	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] != '\\' || i+1 == len(data) {
			out = append(out, data[i])
			continue
		}
		if data[i+1] == '\'' {
			out = append(out, '\'')
		} else {
			out = append(out, data[i], data[i+1])
		}
		i++
	}
	return out
}

func (it feedItem) image() Image {
	img := Image{
		ID:       photoID(it.Link),
		Title:    strings.TrimSpace(it.Title),
		Link:     it.Link,
		MediaURL: it.Media.M,
		Author:   authorName(it.Author),
		Tags:     strings.Fields(it.Tags),
	}
	if it.DateTaken != "" {
		if t, err := time.Parse(time.RFC3339, it.DateTaken); err == nil {
			img.Taken = t
		}
	}
	return img
}

// photoID extracts the numeric id from links such as
// https://www.flickr.com/photos/someone/53712345678/.
func photoID(link string) string {
	return path.Base(strings.TrimRight(link, "/"))
}

// authorName extracts the display name from `nobody@flickr.com ("name")`.
func authorName(author string) string {
	start := strings.Index(author, "(\"")
	end := strings.LastIndex(author, "\")")
	if start >= 0 && end > start+2 {
		return author[start+2 : end]
	}
	return author
}
