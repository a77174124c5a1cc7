package styles

import (
	"strings"
	"sync/atomic"
)

// Generator appends the CSS for one sheet to css, minting one identifier
// from counter per class it defines.
type Generator[T any] func(theme T, css *strings.Builder, counter *Counter)

// SheetID is the identity a provider deduplicates registrations by.
type SheetID uint64

var sheetSeq atomic.Uint64

// Updater is a registrable style generator with a stable identity.
type Updater[T any] interface {
	SheetID() SheetID
	SheetName() string
	Generate(theme T, css *strings.Builder, counter *Counter)
}

// spanner is implemented by updaters that declare how many identifiers
// they mint.
type spanner interface {
	Span() (uint64, bool)
}

// SheetOption configures a Sheet.
type SheetOption func(*sheetOptions)

type sheetOptions struct {
	span    uint64
	hasSpan bool
}

// Span declares the number of identifiers the generator mints. The first run
// is checked against it.
func Span(n uint64) SheetOption {
	return func(o *sheetOptions) {
		o.span = n
		o.hasSpan = true
	}
}

// Sheet is a generator plus the constructor of its Classes bundle. Declare
// sheets once, at package level; each NewSheet call is a distinct identity
// even when two sheets share a name or a generator.
type Sheet[T any, C any] struct {
	id       SheetID
	name     string
	generate Generator[T]
	build    func(start Counter) C
	opts     sheetOptions
}

// NewSheet declares a sheet. build receives the start of the identifier range
// and must derive each class from the offsets generate mints, in order.
func NewSheet[T any, C any](name string, generate Generator[T], build func(start Counter) C, opts ...SheetOption) *Sheet[T, C] {
	if generate == nil || build == nil {
		panic("styles: NewSheet requires a generator and a bundle constructor")
	}
	s := &Sheet[T, C]{
		id:       SheetID(sheetSeq.Add(1)),
		name:     name,
		generate: generate,
		build:    build,
	}
	for _, opt := range opts {
		opt(&s.opts)
	}
	return s
}

func (s *Sheet[T, C]) SheetID() SheetID  { return s.id }
func (s *Sheet[T, C]) SheetName() string { return s.name }

func (s *Sheet[T, C]) Generate(theme T, css *strings.Builder, counter *Counter) {
	s.generate(theme, css, counter)
}

// Span returns the declared identifier count, if any.
func (s *Sheet[T, C]) Span() (uint64, bool) {
	return s.opts.span, s.opts.hasSpan
}

// Classes builds the bundle for a range starting at start.
func (s *Sheet[T, C]) Classes(start Counter) C {
	return s.build(start)
}

// Use registers sheet with p and returns its Classes bundle.
func Use[T Theme[T], C any](p *Provider[T], sheet *Sheet[T, C]) C {
	return sheet.build(p.Register(sheet))
}
