package shift

import "errors"

var ErrInvalidReportPeriod = errors.New("report period is out of range")
