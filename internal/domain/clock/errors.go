package clock

import "errors"

// ErrInvalidClockCode deliberately covers both "no such code" and "code
// belongs to an inactive employee" so the kiosk cannot be used to probe
// which codes exist.
var ErrInvalidClockCode = errors.New("invalid clock code or employee is inactive")
