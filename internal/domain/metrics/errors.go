package metrics

import "errors"

var ErrNetPayMismatch = errors.New("metrics: net pay does not reconcile")
