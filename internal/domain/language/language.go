// Package language defines the closed set of site languages and the mappings
// between the site codes, the backend wire codes and BCP 47 tags.
package language

import (
	"strings"

	textlang "golang.org/x/text/language"
)

// Code is a site language code.
type Code string

const (
	RU Code = "ru"
	KG Code = "kg"
	EN Code = "en"
)

// backendKyrgyz is the ISO 639-1 code the backend expects for Kyrgyz.
const backendKyrgyz = "ky"

var supported = []Code{RU, KG, EN}

// The matcher works on real BCP 47 tags, so Kyrgyz is matched as "ky".
var matcher = textlang.NewMatcher([]textlang.Tag{
	textlang.Russian,
	textlang.MustParse(backendKyrgyz),
	textlang.English,
})

// Supported returns the site languages, default first.
func Supported() []Code {
	out := make([]Code, len(supported))
	copy(out, supported)
	return out
}

// Valid reports whether s is exactly one of the site codes.
func Valid(s string) bool {
	switch Code(s) {
	case RU, KG, EN:
		return true
	}
	return false
}

// Parse maps a raw locale value to a site code. Region suffixes are dropped
// ("en-US" -> en), the backend code "ky" is accepted for Kyrgyz and anything
// else falls back to RU.
func Parse(s string) Code {
	s = strings.ToLower(strings.TrimSpace(s))
	if i := strings.IndexAny(s, "-_"); i >= 0 {
		s = s[:i]
	}
	switch s {
	case string(KG), backendKyrgyz:
		return KG
	case string(EN):
		return EN
	default:
		return RU
	}
}

// Suffix returns the record key suffix for c. Unknown codes get "_ru".
func (c Code) Suffix() string {
	switch c {
	case KG:
		return "_kg"
	case EN:
		return "_en"
	default:
		return "_ru"
	}
}

// Backend returns the code sent to the REST backend.
func (c Code) Backend() string {
	switch c {
	case KG:
		return backendKyrgyz
	case EN:
		return string(EN)
	default:
		return string(RU)
	}
}

// FromBackend is the inverse of Backend.
func FromBackend(s string) Code {
	return Parse(s)
}

// Tag returns the BCP 47 tag for c.
func (c Code) Tag() textlang.Tag {
	switch c {
	case KG:
		return textlang.MustParse(backendKyrgyz)
	case EN:
		return textlang.English
	default:
		return textlang.Russian
	}
}

// Negotiate picks the best site language for an Accept-Language header.
// The site code "kg" is read as Kyrgyz, not as BCP 47 Kongo. An empty or
// unparsable header yields RU.
func Negotiate(acceptLanguage string) Code {
	if strings.TrimSpace(acceptLanguage) == "" {
		return RU
	}
	tags, _, err := textlang.ParseAcceptLanguage(siteCodesToBCP47(acceptLanguage))
	if err != nil || len(tags) == 0 {
		return RU
	}
	_, idx, conf := matcher.Match(tags...)
	if conf == textlang.No {
		return RU
	}
	return supported[idx]
}

// siteCodesToBCP47 rewrites "kg" and "kg-XX" entries of an Accept-Language
// header to "ky", keeping their quality values.
func siteCodesToBCP47(header string) string {
	parts := strings.Split(header, ",")
	for i, part := range parts {
		tag, params, _ := strings.Cut(part, ";")
		trimmed := strings.ToLower(strings.TrimSpace(tag))
		if trimmed != string(KG) && !strings.HasPrefix(trimmed, string(KG)+"-") {
			continue
		}
		part = backendKyrgyz + trimmed[len(KG):]
		if params != "" {
			part += ";" + params
		}
		parts[i] = part
	}
	return strings.Join(parts, ",")
}
