package flickr

import (
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"time"
)

// LogLevel selects how much of each feed request is written to the log.
type LogLevel int

const (
	// LogNone disables request logging.
	LogNone LogLevel = iota
	// LogBasic logs the request line, response status and duration.
	LogBasic
	// LogHeaders adds request and response headers.
	LogHeaders
	// LogBody adds the response body.
	LogBody
)

func (l LogLevel) String() string {
	switch l {
	case LogBasic:
		return "BASIC"
	case LogHeaders:
		return "HEADERS"
	case LogBody:
		return "BODY"
	default:
		return "NONE"
	}
}

// SetLogging logs every request made by c to w at level. A nil w logs to
// stderr.
func (c *Client) SetLogging(w io.Writer, level LogLevel) {
	base := c.http.Transport
	if lt, ok := base.(*loggingTransport); ok {
		base = lt.base
	}
	if level == LogNone {
		c.http.Transport = base
		return
	}
	if w == nil {
		w = os.Stderr
	}
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &loggingTransport{base: base, out: w, level: level}
}

type loggingTransport struct {
	base  http.RoundTripper
	out   io.Writer
	level LogLevel
}

func (t *loggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	fmt.Fprintf(t.out, "--> %s %s\n", req.Method, req.URL.Redacted())
	if t.level >= LogHeaders {
		if dump, err := httputil.DumpRequestOut(req, false); err == nil {
			t.out.Write(dump)
		}
	}

	start := time.Now()
	resp, err := t.base.RoundTrip(req)
	took := time.Since(start).Round(time.Millisecond)
	if err != nil {
		fmt.Fprintf(t.out, "<-- HTTP FAILED: %v (%s)\n", err, took)
		return nil, err
	}

	fmt.Fprintf(t.out, "<-- %s %s (%s)\n", resp.Status, req.URL.Redacted(), took)
	if t.level >= LogHeaders {
		if dump, err := httputil.DumpResponse(resp, t.level >= LogBody); err == nil {
			t.out.Write(dump)
			fmt.Fprintln(t.out)
		}
	}
	return resp, nil
}
