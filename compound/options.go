// SPDX-License-Identifier: MIT

// Package compound: functional configuration. The validation flag set
// here flows into the owned prior and into every posterior the
// distribution produces.

package compound

import "github.com/katalvlaran/conjugate/distrib"

// DefaultValidate controls whether validation runs when no option says
// otherwise. Off by default, matching distrib.
const DefaultValidate = distrib.DefaultValidate

// Options carries construction-time configuration. Fields are
// unexported; public APIs consume ...Option.
type Options struct {
	validate bool
}

// Option mutates Options.
type Option func(*Options)

// WithValidation enables parameter-domain checks at construction and
// support checks in LogProb.
func WithValidation() Option {
	return func(o *Options) { o.validate = true }
}

// WithoutValidation disables all checks (the default).
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

// distribOpts translates the resolved validation flag for the distrib
// constructors this package drives.
func distribOpts(validate bool) []distrib.Option {
	if validate {
		return []distrib.Option{distrib.WithValidation()}
	}
	return nil
}
