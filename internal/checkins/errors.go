package checkins

import "errors"

var ErrNotFound = errors.New("checkin not found")
