package dirstore

import "github.com/cxr-format/go-cxr/debug"

// WarnFunc receives the path and cause of each entry skipped during a
// directory scan.
type WarnFunc func(path string, err error)

type openOpts struct {
	warn WarnFunc
}

type Option func(*openOpts)

// WithWarn replaces the default skip-warning sink (stderr).
func WithWarn(f WarnFunc) Option {
	return func(o *openOpts) { o.warn = f }
}

func mkOpts(opts []Option) *openOpts {
	o := &openOpts{
		warn: func(path string, err error) {
			debug.Warnf("ignoring %s: %v\n", path, err)
		},
	}
	for _, f := range opts {
		f(o)
	}
	return o
}
