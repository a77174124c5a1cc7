package styles

import (
	"errors"
	"fmt"
)

// Contract violations. Providers panic with an error wrapping one of these;
// none of them is recoverable and a provider that panicked mid-update stays
// poisoned.
var (
	ErrCounterMismatch = errors.New("styles: generator replay did not reach its recorded counter")
	ErrSpanMismatch    = errors.New("styles: generator minted a different number of identifiers than declared")
	ErrReentrant       = errors.New("styles: provider re-entered while generating")
	ErrPoisoned        = errors.New("styles: provider poisoned by an earlier contract violation")
	ErrCounterOverflow = errors.New("styles: identifier counter overflow")
)

func violate(err error, format string, args ...any) {
	panic(fmt.Errorf("%w: "+format, append([]any{err}, args...)...))
}
