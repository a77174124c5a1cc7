package styles

import "strings"

// Range is the identifier range reserved by one registered sheet. Ranges of
// distinct sheets never overlap.
type Range struct {
	ID    SheetID
	Sheet string
	Start Counter // first identifier
	Stop  Counter // one past the last identifier
}

// Len returns the number of identifiers in the range.
func (r Range) Len() uint64 {
	return uint64(r.Stop - r.Start)
}

// Contains reports whether c lies in [Start, Stop).
func (r Range) Contains(c Counter) bool {
	return c >= r.Start && c < r.Stop
}

type record[T any] struct {
	updater Updater[T]
	start   Counter
	stop    Counter
}

func (r record[T]) rangeOf() Range {
	return Range{ID: r.updater.SheetID(), Sheet: r.updater.SheetName(), Start: r.start, Stop: r.stop}
}

// registry is the provider state. It is not synchronized; Provider guards it.
type registry[T Theme[T]] struct {
	target  Target
	theme   T
	css     *strings.Builder
	records []record[T]
	index   map[SheetID]int
	counter Counter
}

func newRegistry[T Theme[T]](target Target, theme T) *registry[T] {
	return &registry[T]{
		target: target,
		theme:  theme,
		css:    &strings.Builder{},
		index:  make(map[SheetID]int),
	}
}

// add returns the start of u's range, running u and flushing only when u is new.
func (r *registry[T]) add(u Updater[T]) (Range, bool) {
	if idx, ok := r.index[u.SheetID()]; ok {
		return r.records[idx].rangeOf(), false
	}

	start := r.counter
	counter := start
	var out strings.Builder
	u.Generate(r.theme, &out, &counter)
	stop := counter

	if stop < start {
		violate(ErrCounterMismatch, "sheet %q moved the counter backwards from %d to %d", u.SheetName(), start, stop)
	}
	if s, ok := u.(spanner); ok {
		if want, declared := s.Span(); declared && uint64(stop-start) != want {
			violate(ErrSpanMismatch, "sheet %q minted %d identifiers, declared %d", u.SheetName(), stop-start, want)
		}
	}

	rec := record[T]{updater: u, start: start, stop: stop}
	r.index[u.SheetID()] = len(r.records)
	r.records = append(r.records, rec)
	r.counter = stop
	r.css.WriteString(out.String())
	r.flush()

	return rec.rangeOf(), true
}

// rebuild regenerates the whole stylesheet under the current theme. The new
// text replaces the old one only once every sheet replayed cleanly.
func (r *registry[T]) rebuild() {
	next := &strings.Builder{}
	next.Grow(r.css.Len())
	for _, rec := range r.records {
		counter := rec.start
		rec.updater.Generate(r.theme, next, &counter)
		if counter != rec.stop {
			violate(ErrCounterMismatch, "sheet %q replay from %d stopped at %d, recorded %d",
				rec.updater.SheetName(), rec.start, counter, rec.stop)
		}
	}
	r.css = next
	r.flush()
}

func (r *registry[T]) flush() {
	r.target.SetText(r.css.String())
}

func (r *registry[T]) ranges() []Range {
	out := make([]Range, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.rangeOf()
	}
	return out
}
