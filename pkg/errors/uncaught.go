package errors

import "time"

// UncaughtHandler reports errors that escaped background work, such as a
// failed feed fetch nobody was waiting on.
//
// Release builds stay silent. Connectivity failures are expected on mobile
// networks, so they are reported without a stack trace.
type UncaughtHandler struct {
	// Debug enables reporting.
	Debug bool
	// Handler receives the reports. Nil uses the global handler.
	Handler Handler
}

// HandleUncaught reports err on behalf of op.
func (u *UncaughtHandler) HandleUncaught(op string, err error) {
	if u == nil || !u.Debug || err == nil {
		return
	}

	if Is(err, ErrNoConnectivity) {
		ReportTo(u.Handler, &Error{
			Op:    op,
			Kind:  KindNetwork,
			Err:   ErrNoConnectivity,
			Index: -1,
		})
		return
	}

	kind := KindUnknown
	var zerr *Error
	if As(err, &zerr) {
		kind = zerr.Kind
	}
	ReportTo(u.Handler, &Error{
		Op:         op,
		Kind:       kind,
		Err:        err,
		Index:      -1,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}
