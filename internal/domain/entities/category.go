package entities

import (
	"medsite/internal/domain/language"
	"medsite/pkg/multilingual"
)

// CategoryName localizes a news category. The backend sends either an
// object with name variants or, in older payloads, a bare string.
func CategoryName(category any, lang language.Code) string {
	switch c := category.(type) {
	case nil:
		return ""
	case string:
		return c
	case map[string]any:
		return categoryRecordName(multilingual.Record(c), lang)
	case multilingual.Record:
		return categoryRecordName(c, lang)
	default:
		return ""
	}
}

func categoryRecordName(r multilingual.Record, lang language.Code) string {
	name := multilingual.TextOf(r, "name")
	if name.HasSuffixed() {
		return name.Resolve(lang, name.Default)
	}
	return name.Default
}
