package scans

import "errors"

var (
	ErrNotFound  = errors.New("scan not found")
	ErrForbidden = errors.New("scan belongs to another user")
)
