// Package errorspkg provides common app errors.
package errorspkg

import "errors"

// ErrInternal indicates internal application error.
var ErrInternal = errors.New("internal")
