// SPDX-License-Identifier: MIT

// Package distrib: functional configuration shared by all constructors.

package distrib

// DefaultValidate controls whether parameter and support validation
// runs when no option says otherwise. Off by default: validation costs
// a full pass over the arrays, and callers doing dense inference loops
// routinely disable it.
const DefaultValidate = false

// Options carries construction-time configuration. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	validate bool
}

// Option mutates Options.
type Option func(*Options)

// WithValidation turns on parameter-domain checks at construction and
// support checks in LogProb.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithoutValidation turns all checks off (the default); out-of-domain
// inputs then propagate NaN/Inf per the underlying special functions.
func WithoutValidation() Option {
	return func(o *Options) { o.validate = false }
}

// gatherOptions folds opts over the defaults.
func gatherOptions(opts ...Option) Options {
	o := Options{validate: DefaultValidate}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
