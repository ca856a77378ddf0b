// Package adapter maps a list host's flat positions onto a content provider
// that owns an optional header, a run of regular items and an optional footer.
//
// A list host (anything that virtualizes rows and asks "how many items, what
// type is item N, render item N") talks to a [Mapper]. The mapper owns all
// position arithmetic and forwards slot-specific requests to a
// [ContentProvider], which owns the data and every rendering decision:
//
//	flat:     0        1 .. n        n+1
//	slot:     header   regular 0..   footer
//
// Header and footer visibility are re-read from the provider on every call,
// so a footer that only exists while a page is loading never leaves the
// mapper with stale counts.
//
// # Sticky headers
//
// A decoration layer may draw a sticky heading over regular items that share
// a group. [Mapper.StickyID] resolves the group identifier of a flat position;
// header, footer and positions past the current count resolve to
// [NoStickyHeader]. Because decorations are refreshed independently of change
// notifications, a stale position is reported as a diagnostic and never
// panics.
//
// # Updates
//
// Content changes are announced through [Mapper.NotifyReset],
// [Mapper.NotifyAppended], [Mapper.NotifyHeaderChanged] and
// [Mapper.NotifyFooterChanged]. Hosts receive them as [Change] values through
// [Mapper.AddListener].
//
// All methods must be called from the host's UI goroutine.
package adapter
