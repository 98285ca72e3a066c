package drift

import "github.com/zeebo/errs"

var (
	// Fatal errors stop a run before any worker starts.
	Fatal = errs.Class("fatal")

	// Warning errors are collected during a run and degrade, but do not
	// invalidate, the samples.
	Warning = errs.Class("warning")
)

// IsFatal reports if the error is of the Fatal class.
func IsFatal(err error) bool { return Fatal.Has(err) }
