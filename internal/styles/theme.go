package styles

// Theme is the capability a theme value needs: a fast check whether another
// value of the same type would render identically. Returning false when
// unsure is always correct; it only costs a rebuild.
type Theme[T any] interface {
	Unchanged(other T) bool
}

// EmptyTheme is a theme with no settings. Updating to it never rebuilds.
type EmptyTheme struct{}

// Unchanged always reports true.
func (EmptyTheme) Unchanged(EmptyTheme) bool { return true }
