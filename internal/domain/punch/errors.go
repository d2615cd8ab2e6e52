package punch

import "errors"

var (
	ErrPunchSourceUnavailable = errors.New("punch source is unavailable")
)
