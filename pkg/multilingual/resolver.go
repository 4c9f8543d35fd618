// Package multilingual resolves language-suffixed fields of backend records.
//
// A logical field F may be carried under F (legacy default, Russian), F_ru,
// F_kg and F_en. Resolution for a language tries the preferred suffix, then
// the bare key, then the remaining suffixes in ru, en, kg order.
package multilingual

import (
	"maps"

	"medsite/internal/domain/language"
)

// Record is a decoded JSON object whose translatable fields may carry
// language suffixes.
type Record map[string]any

// Text holds every variant of one logical field. An empty string means the
// variant is absent.
type Text struct {
	Default string
	RU      string
	KG      string
	EN      string
}

// chain is the order of suffixed variants tried after the bare key misses.
var chain = []language.Code{language.RU, language.EN, language.KG}

func (t Text) variant(c language.Code) string {
	switch c {
	case language.KG:
		return t.KG
	case language.EN:
		return t.EN
	default:
		return t.RU
	}
}

// Resolve returns the best variant for lang, or fallback when every variant
// is empty. Codes outside the supported set prefer Russian.
func (t Text) Resolve(lang language.Code, fallback string) string {
	preferred := lang
	if !language.Valid(string(lang)) {
		preferred = language.RU
	}
	if v := t.variant(preferred); v != "" {
		return v
	}
	if t.Default != "" {
		return t.Default
	}
	for _, c := range chain {
		if c == preferred {
			continue
		}
		if v := t.variant(c); v != "" {
			return v
		}
	}
	return fallback
}

// IsZero reports whether no variant is set.
func (t Text) IsZero() bool {
	return t == Text{}
}

// HasSuffixed reports whether at least one language-specific variant is set.
func (t Text) HasSuffixed() bool {
	return t.RU != "" || t.KG != "" || t.EN != ""
}

// TextOf collects the variants of field from record.
func TextOf(record Record, field string) Text {
	if record == nil {
		return Text{}
	}
	return Text{
		Default: record.String(field),
		RU:      record.String(field + language.RU.Suffix()),
		KG:      record.String(field + language.KG.Suffix()),
		EN:      record.String(field + language.EN.Suffix()),
	}
}

// String returns the value under key when it is a string or a non-nil
// *string, and "" otherwise.
func (r Record) String(key string) string {
	switch v := r[key].(type) {
	case string:
		return v
	case *string:
		if v != nil {
			return *v
		}
	}
	return ""
}

// ResolveField returns the best string for field in lang. The optional
// fallback (default "") is returned for a nil record or when no variant is
// set.
func ResolveField(record Record, field string, lang language.Code, fallback ...string) string {
	def := ""
	if len(fallback) > 0 {
		def = fallback[0]
	}
	if record == nil {
		return def
	}
	return TextOf(record, field).Resolve(lang, def)
}

// ResolveArray resolves field for every record, keeping order.
func ResolveArray(records []Record, field string, lang language.Code) []string {
	out := make([]string, len(records))
	for i, r := range records {
		out[i] = ResolveField(r, field, lang)
	}
	return out
}

// AdaptRecord returns a shallow copy of record where every listed field is
// replaced by its resolved string. A field with nothing to resolve keeps its
// current value, and every other key, suffixed variants included, is kept.
func AdaptRecord(record Record, fields []string, lang language.Code) Record {
	if record == nil {
		return nil
	}
	out := maps.Clone(record)
	for _, f := range fields {
		if resolved := ResolveField(record, f, lang); resolved != "" {
			out[f] = resolved
		}
	}
	return out
}

// AdaptArray applies AdaptRecord to every record, keeping order.
func AdaptArray(records []Record, fields []string, lang language.Code) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		out[i] = AdaptRecord(r, fields, lang)
	}
	return out
}
