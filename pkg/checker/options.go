package checker

import (
	"github.com/nsxbet/sqlcheck/pkg/types"
)

// Sink receives findings as they are produced, before the final Result
// is assembled. A sink shared across concurrently running checks must
// serialize Emit internally.
type Sink interface {
	Emit(advice *types.Advice)
}

// CheckOption is a functional option for customizing check behavior.
type CheckOption func(*checkOptions)

// checkOptions holds optional configuration for a check operation.
type checkOptions struct {
	sink     Sink
	filename string
}

// WithSink streams every finding to the given sink as it is produced,
// in addition to collecting it into the returned Result.
//
// Example:
//
//	console := reporter.NewConsole(false)
//	result, err := c.Check(ctx, sql, checker.WithSink(console))
func WithSink(sink Sink) CheckOption {
	return func(opts *checkOptions) {
		opts.sink = sink
	}
}

// WithFilename records the source file the SQL came from. The name is
// handed to every rule through the check context and shows up in rule
// failure logs.
func WithFilename(filename string) CheckOption {
	return func(opts *checkOptions) {
		opts.filename = filename
	}
}
