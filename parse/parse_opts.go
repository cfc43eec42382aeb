package parse

type parseOpts struct {
	errs *[]error
}

type ParseOption func(*parseOpts)

// ParseErrors makes Parse append the lexical and syntax errors it recovered
// from to *errs.
func ParseErrors(errs *[]error) ParseOption {
	return func(o *parseOpts) { o.errs = errs }
}
