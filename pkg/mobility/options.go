// SPDX-FileCopyrightText: 2022-present Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package mobility

// DiagnosticFunc receives a per-line diagnostic; source is the file name, or "-" for stdin
type DiagnosticFunc func(source string, line int, err error)

type options struct {
	source            string
	diagnostic        DiagnosticFunc
	explicitStartTime bool
	axisDiagnostics   bool
}

// Option customizes how scenario scripts are scanned
type Option func(*options)

// WithSource names the input in diagnostics
func WithSource(source string) Option {
	return func(o *options) {
		o.source = source
	}
}

// WithDiagnostics routes per-line diagnostics to the given function instead of the log
func WithDiagnostics(fn DiagnosticFunc) Option {
	return func(o *options) {
		o.diagnostic = fn
	}
}

// WithExplicitStartTime tracks the trace start time with an explicit unset state, so that
// an event at time 0.0 is reported as the start rather than being treated as "not seen yet".
func WithExplicitStartTime() Option {
	return func(o *options) {
		o.explicitStartTime = true
	}
}

// WithAxisDiagnostics reports position assignments whose axis selector is not X, Y or Z.
func WithAxisDiagnostics() Option {
	return func(o *options) {
		o.axisDiagnostics = true
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		source:     "-",
		diagnostic: logDiagnostic,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) report(line int, err error) {
	o.diagnostic(o.source, line, err)
}

func logDiagnostic(source string, line int, err error) {
	log.Warnf("%s:%d: %v", source, line, err)
}
