// Package styles assigns collision-free class names to generated style rules
// and keeps one stylesheet consistent as the theme changes.
//
// A Sheet pairs a Generator with a constructor for its Classes bundle.
// Registering a sheet with a Provider runs the generator once, appends its
// CSS to the stylesheet and reserves the identifier range it minted. Later
// registrations of the same sheet return the same range without running the
// generator. UpdateTheme re-runs every registered generator, in registration
// order, each from its own recorded start, so class names handed out earlier
// stay valid while the CSS bound to them follows the new theme.
//
//	var buttonSheet = styles.NewSheet("button", generateButton,
//		func(start styles.Counter) ButtonClasses {
//			return ButtonClasses{Root: styles.ClassAt(start, 0), Primary: styles.ClassAt(start, 1)}
//		},
//		styles.Span(2),
//	)
//
//	p := styles.New(target, theme.Default())
//	classes := styles.Use(p, buttonSheet) // classes.Root == "css-0"
//
// Generators must be deterministic: given the same theme and start they must
// mint the same number of identifiers. A replay that ends on a different
// counter value panics; see the Err* values for the full list of contract
// violations. A Provider is meant for a single owning goroutine.
package styles
