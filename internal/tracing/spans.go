package tracing

// Span names.
const (
	SpanRegister    = "styles.register"
	SpanRebuild     = "styles.rebuild"
	SpanUpdateTheme = "styles.update_theme"
)

// Span attribute keys.
const (
	AttrProviderID  = "provider.id"
	AttrSheetName   = "sheet.name"
	AttrSheetID     = "sheet.id"
	AttrRangeStart  = "range.start"
	AttrRangeStop   = "range.stop"
	AttrDeduped     = "registration.deduped"
	AttrSheetCount  = "rebuild.sheets"
	AttrCSSBytes    = "stylesheet.bytes"
	AttrThemeChange = "theme.changed"
)
