package icalprop

import (
	"sort"
	"strings"
)

// A Registry maps property names to marshallers. A document reader uses it
// to look up the codec for each property it encounters.
//
// Registering and looking up from multiple goroutines at the same time
// isn't supported: populate a registry first, then share it.
type Registry struct {
	marshallers map[string]*Marshaller
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{marshallers: make(map[string]*Marshaller)}
}

// Register adds a marshaller, replacing any marshaller previously
// registered under the same property name.
func (r *Registry) Register(m *Marshaller) {
	r.marshallers[m.PropertyName()] = m
}

// Get returns the marshaller for the property with the given name. The
// lookup is case-insensitive.
func (r *Registry) Get(name string) (*Marshaller, bool) {
	m, ok := r.marshallers[strings.ToUpper(name)]
	return m, ok
}

// Names returns the names of all registered properties, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.marshallers))
	for name := range r.marshallers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry creates a registry populated with the property types
// defined by this package.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewMarshaller(&Summary{}, "SUMMARY", textCodec{
		get:   func(p Property) string { return p.(*Summary).Text },
		build: func(text string) Property { return &Summary{Text: text} },
	}))
	r.Register(NewMarshaller(&Description{}, "DESCRIPTION", textCodec{
		get:   func(p Property) string { return p.(*Description).Text },
		build: func(text string) Property { return &Description{Text: text} },
	}))
	r.Register(NewMarshaller(&UID{}, "UID", textCodec{
		get:   func(p Property) string { return p.(*UID).Value },
		build: func(text string) Property { return &UID{Value: text} },
	}))
	r.Register(NewMarshaller(&Categories{}, "CATEGORIES", categoriesCodec{}))
	r.Register(NewMarshaller(&RequestStatus{}, "REQUEST-STATUS", requestStatusCodec{}))
	r.Register(NewMarshaller(&Geo{}, "GEO", geoCodec{}))
	r.Register(NewMarshaller(&RecurrenceRule{}, "RRULE", recurrenceRuleCodec{}))
	return r
}
