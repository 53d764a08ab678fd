package icalprop

import (
	"reflect"
	"strings"
)

// A Codec implements the type-specific half of a property's text encoding:
// the syntax of one property type (field order, sub-delimiters, numeric
// formatting). A Marshaller drives the codec and handles everything
// type-independent: warnings collection, result wrapping and parameter
// attachment.
type Codec interface {
	// EncodeText marshals a property's value to a string. Non-fatal
	// problems, such as a lossy or non-standard encoding, are reported
	// through warnings. A non-nil error aborts the operation.
	EncodeText(p Property, warnings *Warnings) (string, error)

	// DecodeText unmarshals a property value. It must return a
	// fully-populated property of the codec's bound type, or a non-nil
	// error if the raw value is structurally unusable. Attaching params to
	// the property is the Marshaller's job, not the codec's.
	DecodeText(value string, params Params, warnings *Warnings) (Property, error)
}

// A ParameterSanitizer is implemented by codecs that need to adjust a
// property's parameters before the property is written.
type ParameterSanitizer interface {
	// SanitizeParameters may add, remove or rewrite parameters on params,
	// which is a copy of p's parameters. p itself must not be modified.
	SanitizeParameters(p Property, params Params)
}

// A Marshaller converts one property type to and from its textual
// representation. Marshallers are immutable after construction and safe
// for concurrent use.
type Marshaller struct {
	typ   reflect.Type
	name  string
	codec Codec
}

// NewMarshaller creates a marshaller binding the dynamic type of prototype
// to the given property name, e.g. "VERSION". The name is canonicalized to
// upper case.
func NewMarshaller(prototype Property, name string, codec Codec) *Marshaller {
	return &Marshaller{
		typ:   reflect.TypeOf(prototype),
		name:  strings.ToUpper(name),
		codec: codec,
	}
}

// PropertyType returns the bound property type.
func (m *Marshaller) PropertyType() reflect.Type {
	return m.typ
}

// PropertyName returns the property name, e.g. "VERSION".
func (m *Marshaller) PropertyName() string {
	return m.name
}

// PrepareParameters sanitizes a property's parameters before the property
// is written. The codec's sanitization hook, if any, runs on a copy of the
// property's parameters, which is returned; the property itself is never
// modified, so repeated writes of the same property don't accumulate side
// effects.
func (m *Marshaller) PrepareParameters(p Property) Params {
	params := p.Parameters().Clone()
	if s, ok := m.codec.(ParameterSanitizer); ok {
		s.SanitizeParameters(p, params)
	}
	return params
}

// WriteText marshals a property's value to a string. The result carries
// any warnings the codec raised while marshalling.
func (m *Marshaller) WriteText(p Property) (*Result[string], error) {
	var ws Warnings
	value, err := m.codec.EncodeText(p, &ws)
	if err != nil {
		return nil, err
	}
	return &Result[string]{value: value, warnings: ws}, nil
}

// ParseText unmarshals a property value. The given parameter container is
// attached to the parsed property unconditionally, whatever the codec did:
// ownership of params transfers to the property.
func (m *Marshaller) ParseText(value string, params Params) (*Result[Property], error) {
	var ws Warnings
	p, err := m.codec.DecodeText(value, params, &ws)
	if err != nil {
		return nil, err
	}
	p.SetParameters(params)
	return &Result[Property]{value: p, warnings: ws}, nil
}

// A Result is the outcome of a marshal or unmarshal operation: the
// produced value together with the warnings raised while producing it.
// Results are immutable.
type Result[T any] struct {
	value    T
	warnings Warnings
}

// Value returns the produced value.
func (r *Result[T]) Value() T {
	return r.value
}

// Warnings returns the warnings raised while producing the value, in the
// order they were raised.
func (r *Result[T]) Warnings() []Warning {
	return r.warnings
}
