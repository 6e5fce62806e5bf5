package usage

import "errors"

// ErrLimitReached indicates the user exceeded their scan quota for the period.
var ErrLimitReached = errors.New("limit reached")
