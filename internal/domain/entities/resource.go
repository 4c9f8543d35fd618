package entities

// Kind selects how records of a resource are localized.
type Kind string

const (
	KindNews    Kind = "news"
	KindEvents  Kind = "events"
	KindGeneric Kind = "generic"
)

// Resource is a content collection exposed by the REST backend.
type Resource struct {
	Name string
	// Path is relative to the backend base URL.
	Path string
	Kind Kind
}

var resources = map[string]Resource{
	"news":           {Name: "news", Path: "/news/", Kind: KindNews},
	"featured":       {Name: "featured", Path: "/news/featured/", Kind: KindNews},
	"events":         {Name: "events", Path: "/events/", Kind: KindEvents},
	"announcements":  {Name: "announcements", Path: "/announcements/", Kind: KindGeneric},
	"vacancies":      {Name: "vacancies", Path: "/vacancies/", Kind: KindGeneric},
	"partners":       {Name: "partners", Path: "/about-section/partners/frontend/", Kind: KindGeneric},
	"infrastructure": {Name: "infrastructure", Path: "/infrastructure/", Kind: KindGeneric},
}

// LookupResource returns the registered resource called name.
func LookupResource(name string) (Resource, bool) {
	r, ok := resources[name]
	return r, ok
}
