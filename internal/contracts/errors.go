package contracts

import "errors"

// ErrNoStatements is the only hard failure the engine raises: the caller
// supplied no statement data at all.
var ErrNoStatements = errors.New("no financial statements supplied")

// AlignmentError reports that fewer than two usable periods exist for any
// period type. It degrades the quality tier to insufficient instead of
// aborting the pipeline.
type AlignmentError struct {
	PeriodsFound int
}

func (e *AlignmentError) Error() string {
	if e.PeriodsFound == 1 {
		return "statement alignment failed: only 1 usable period found, need 2"
	}
	return "statement alignment failed: fewer than two usable periods"
}
