package cmd

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manjunathc23/zeta/cmd/zeta/internal/config"
	"github.com/manjunathc23/zeta/pkg/adapter"
	"github.com/manjunathc23/zeta/pkg/errors"
	"github.com/manjunathc23/zeta/pkg/flickr"
	"github.com/manjunathc23/zeta/pkg/home"
	"github.com/manjunathc23/zeta/pkg/listview"
	"github.com/manjunathc23/zeta/pkg/prefs"
)

func init() {
	RegisterCommand(&Command{
		Name:  "list",
		Short: "Render the photo list",
		Long: `Load the photo feed and render the home screen list.

The first page of the feed is shown below the header. Each --append loads
another page the way scrolling to the bottom would, with the loading footer
shown while more pages remain.

Flags:
  --feed FILE            Read the feed from a saved JSON document
  --url URL              Fetch from URL instead of the public feed
  --tags a,b             Only photos with these tags
  --append N             Load N more pages after the first
  --footer STATE         Force the footer: progress, retry or none
  --item N               Scroll so item N is at the top
  --offset ROWS          Scroll to a row offset (applied after --item)
  --click N              Click item N
  --height ROWS          Viewport height
  --width COLS           Viewport width
  --no-header            Hide the header
  --changes              Print change notifications
  --plain                Disable colors and the frame border`,
		Usage: "zeta list [flags]",
		Run:   runList,
	})
}

type listOptions struct {
	feedFile  string
	url       string
	tags      []string
	appendN   int
	footer    string
	item      int
	offset    int
	click     int
	height    int
	width     int
	noHeader  bool
	changes   bool
	plain     bool
	hasItem   bool
	hasOffset bool
	hasClick  bool
}

func parseListArgs(args []string) (listOptions, error) {
	opts := listOptions{}
	value := func(i *int, name string) (string, error) {
		if *i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", name)
		}
		*i++
		return args[*i], nil
	}
	number := func(i *int, name string) (int, error) {
		s, err := value(i, name)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("%s requires a non-negative number, got %q", name, s)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if name, v, ok := strings.Cut(arg, "="); ok && strings.HasPrefix(name, "--") {
			// Rewrite --flag=value as --flag value.
			args = append(args[:i:i], append([]string{name, v}, args[i+1:]...)...)
			arg = name
		}

		var err error
		switch arg {
		case "--feed":
			opts.feedFile, err = value(&i, arg)
		case "--url":
			opts.url, err = value(&i, arg)
		case "--tags":
			var s string
			s, err = value(&i, arg)
			opts.tags = splitTags(s)
		case "--append":
			opts.appendN, err = number(&i, arg)
		case "--footer":
			opts.footer, err = value(&i, arg)
			if err == nil && opts.footer != "progress" && opts.footer != "retry" && opts.footer != "none" {
				err = fmt.Errorf("unknown footer state %q (use progress, retry or none)", opts.footer)
			}
		case "--item":
			opts.item, err = number(&i, arg)
			opts.hasItem = true
		case "--offset":
			opts.offset, err = number(&i, arg)
			opts.hasOffset = true
		case "--click":
			opts.click, err = number(&i, arg)
			opts.hasClick = true
		case "--height":
			opts.height, err = number(&i, arg)
		case "--width":
			opts.width, err = number(&i, arg)
		case "--no-header":
			opts.noHeader = true
		case "--changes":
			opts.changes = true
		case "--plain":
			opts.plain = true
		default:
			err = fmt.Errorf("unknown flag: %s", arg)
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func splitTags(s string) []string {
	var tags []string
	for _, tag := range strings.Split(s, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func runList(args []string) error {
	opts, err := parseListArgs(args)
	if err != nil {
		return err
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		return err
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	_, debug, err := openDebugPrefs()
	if err != nil {
		return err
	}

	diagnostics := &errors.LogHandler{
		Out:     os.Stderr,
		Verbose: cfg.Verbose || debug.VerboseDiagnosticsEnabled(),
	}
	errors.SetHandler(diagnostics)
	defer errors.SetHandler(nil)
	uncaught := &errors.UncaughtHandler{Debug: diagnostics.Verbose, Handler: diagnostics}

	s := newListSession(cfg, debug, opts, diagnostics)
	defer s.close()

	load := func() {
		images, err := loadImages(context.Background(), cfg, debug, opts)
		s.load(images, err)
		if err != nil {
			reportLoadError(uncaught, err)
		}
	}
	retried := false
	s.adapter.SetRetryListener(func() {
		fmt.Fprintln(stdout, "retrying...")
		retried = true
		load()
	})
	load()

	for i := 0; i < opts.appendN && s.pager.HasMore(); i++ {
		s.loadNextPage()
	}
	s.applyFooter(opts.footer)

	if opts.hasItem {
		s.host.ScrollToItem(opts.item)
	}
	if opts.hasOffset {
		s.host.ScrollTo(opts.offset)
	}

	s.print()

	if opts.hasClick {
		if !s.host.Click(opts.click) {
			fmt.Fprintf(stdout, "item %d is not clickable\n", opts.click)
		} else if retried {
			s.print()
		}
	}
	return nil
}

// reportLoadError sends a failed feed load to the uncaught-error handler in
// verbose mode. Otherwise only failures other than lost connectivity are
// reported, since the retry footer already covers those.
func reportLoadError(uncaught *errors.UncaughtHandler, err error) {
	if uncaught.Debug {
		uncaught.HandleUncaught("list.load", err)
		return
	}
	if errors.Is(err, errors.ErrNoConnectivity) {
		return
	}
	kind := errors.KindUnknown
	var zerr *errors.Error
	if errors.As(err, &zerr) {
		kind = zerr.Kind
	}
	errors.Report(errors.New("list.load", kind, err))
}

// listSession is one rendering of the home screen.
type listSession struct {
	adapter *home.Adapter
	host    *listview.Host[home.View]
	pager   *flickr.Pager
	plain   bool

	pageSize       int
	removeListener func()
}

func newListSession(cfg *config.Resolved, debug *prefs.Debug, opts listOptions, diagnostics errors.Handler) *listSession {
	styles := listview.DefaultStyles()
	if opts.plain {
		styles = listview.PlainStyles()
	}

	a := home.NewAdapter(func() home.View { return listview.NewCell(styles) }, adapter.Options{
		Strict:      cfg.Strict || debug.StrictModeEnabled(),
		Diagnostics: diagnostics,
	})
	a.SetHeader(cfg.Title, cfg.Header && !opts.noHeader)
	a.SetClickListener(func(img flickr.Image) {
		title := img.Title
		if !img.HasTitle() {
			title = "(untitled)"
		}
		fmt.Fprintf(stdout, "clicked %s %s %s\n", img.ID, title, img.Link)
	})

	s := &listSession{
		adapter:  a,
		plain:    opts.plain,
		pageSize: cfg.PageSize,
		host: listview.New(a.Mapper(), listview.Options{
			Height:        positiveOr(opts.height, cfg.Height),
			Width:         positiveOr(opts.width, cfg.Width),
			ItemExtent:    cfg.ItemExtent,
			StickyHeaders: debug.StickyHeadersEnabled(),
		}),
	}
	if opts.changes {
		s.removeListener = a.Mapper().AddListener(func(c adapter.Change) {
			fmt.Fprintf(stdout, "change: %s\n", c)
		})
	}
	return s
}

func (s *listSession) close() {
	if s.removeListener != nil {
		s.removeListener()
	}
	s.host.Close()
}

// load shows the first page, or the retry footer when loading failed.
func (s *listSession) load(images []flickr.Image, err error) {
	s.pager = flickr.NewPager(images, s.pageSize)
	if err != nil {
		s.adapter.ReplaceImages(nil)
		s.adapter.ShowFooterRetry(true)
		return
	}
	s.adapter.ReplaceImages(s.pager.Next())
	s.adapter.ShowFooterProgress(s.pager.HasMore())
}

func (s *listSession) loadNextPage() {
	s.adapter.AppendImages(s.pager.Next())
	if !s.pager.HasMore() {
		s.adapter.ShowFooterProgress(false)
	}
}

func (s *listSession) applyFooter(state string) {
	switch state {
	case "progress":
		s.adapter.ShowFooterProgress(true)
	case "retry":
		s.adapter.ShowFooterRetry(true)
	case "none":
		s.adapter.ShowFooterProgress(false)
		s.adapter.ShowFooterRetry(false)
	}
}

func (s *listSession) print() {
	frame := s.host.Frame()
	if !s.plain {
		frame = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Render(frame)
	}
	fmt.Fprintln(stdout, frame)

	start, end := s.host.VisibleRange()
	m := s.adapter.Mapper()
	status := fmt.Sprintf("items %d-%d of %d", start, max(end-1, start), m.TotalCount())
	if m.TotalCount() == 0 {
		status = "no items"
	}
	if s.host.AtEnd() {
		status += " (end)"
	}
	fmt.Fprintln(stdout, status)
}

// loadImages returns the feed images from, in order: --feed, feed.file in
// zeta.yaml, the built-in sample in the mock environment, or the network.
func loadImages(ctx context.Context, cfg *config.Resolved, debug *prefs.Debug, opts listOptions) ([]flickr.Image, error) {
	file := opts.feedFile
	if file == "" {
		file = cfg.FeedFile
	}
	if file != "" {
		feed, err := flickr.LoadFeedFile(file)
		if err != nil {
			return nil, err
		}
		return feed.Images, nil
	}

	env := debug.FlickrEnv()
	if env == prefs.EnvMock {
		feed, err := flickr.SampleFeed()
		if err != nil {
			return nil, err
		}
		return feed.Images, nil
	}

	url := opts.url
	if url == "" {
		url = cfg.FeedURL
	}
	if url == "" && env == prefs.EnvStaging {
		return nil, errors.New("list.load", errors.KindConfig, fmt.Errorf("the staging environment requires feed.url or --url"))
	}

	tags := opts.tags
	if len(tags) == 0 {
		tags = cfg.Tags
	}

	client := flickr.NewClient(url, 15*time.Second)
	client.SetLogging(os.Stderr, httpLogLevel(debug.HTTPLoggingLevel()))

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()
	feed, err := client.Fetch(ctx, tags)
	if err != nil {
		return nil, err
	}
	return feed.Images, nil
}

func httpLogLevel(lvl prefs.HTTPLoggingLevel) flickr.LogLevel {
	switch lvl {
	case prefs.HTTPLogBasic:
		return flickr.LogBasic
	case prefs.HTTPLogHeaders:
		return flickr.LogHeaders
	case prefs.HTTPLogBody:
		return flickr.LogBody
	default:
		return flickr.LogNone
	}
}

func positiveOr(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
