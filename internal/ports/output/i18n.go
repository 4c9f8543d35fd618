package output

// T exposes a minimal i18n contract for interface strings.
// Implementations provide message lookup and templating for a site language.
type T interface {
	// T renders the message identified by key for locale ("ru", "kg", "en").
	// data is an optional map used for template placeholders (may be nil).
	T(locale, key string, data map[string]any) string
}
