package icalprop

import (
	"fmt"
	"reflect"
	"testing"
)

// stubProperty and stubCodec exercise the marshaller's orchestration
// without any property-specific syntax getting in the way.
type stubProperty struct {
	BaseProperty
	value string
}

type stubCodec struct {
	encodeErr error
	decodeErr error
}

func (c stubCodec) EncodeText(p Property, warnings *Warnings) (string, error) {
	if c.encodeErr != nil {
		return "", c.encodeErr
	}
	warnings.Add("encode warning")
	return p.(*stubProperty).value, nil
}

func (c stubCodec) DecodeText(value string, params Params, warnings *Warnings) (Property, error) {
	if c.decodeErr != nil {
		return nil, c.decodeErr
	}
	warnings.Add("decode warning")
	p := &stubProperty{value: value}
	// Misbehave on purpose: the marshaller must overwrite this.
	p.SetParameters(Params{"X-STRAY": {"yes"}})
	return p, nil
}

func TestMarshallerPropertyName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"version", "VERSION"},
		{"VERSION", "VERSION"},
		{"Request-Status", "REQUEST-STATUS"},
	}
	for _, tc := range tests {
		m := NewMarshaller(&stubProperty{}, tc.in, stubCodec{})
		if got := m.PropertyName(); got != tc.want {
			t.Errorf("NewMarshaller(_, %q, _).PropertyName() = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestMarshallerPropertyType(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{})
	if got := m.PropertyType(); got != reflect.TypeOf(&stubProperty{}) {
		t.Errorf("PropertyType() = %v, want %v", got, reflect.TypeOf(&stubProperty{}))
	}
}

func TestPrepareParametersCopies(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{})

	p := &stubProperty{value: "v"}
	p.SetParameter("LANGUAGE", "en")

	params := m.PrepareParameters(p)
	if !reflect.DeepEqual(params, p.Parameters()) {
		t.Errorf("PrepareParameters() = %#v, want a copy of %#v", params, p.Parameters())
	}

	params.Set("LANGUAGE", "fr")
	params.Add("X-NEW", "1")
	if got := p.GetParameter("LANGUAGE"); got != "en" {
		t.Errorf("mutating the prepared copy changed the property: LANGUAGE = %q", got)
	}
	if got := p.GetParameter("X-NEW"); got != "" {
		t.Errorf("mutating the prepared copy changed the property: X-NEW = %q", got)
	}
}

func TestPrepareParametersSanitizer(t *testing.T) {
	registry := DefaultRegistry()
	m, ok := registry.Get("REQUEST-STATUS")
	if !ok {
		t.Fatal("no marshaller for REQUEST-STATUS")
	}

	rs := &RequestStatus{Code: "4.1"}
	rs.SetLanguage("en")

	params := m.PrepareParameters(rs)
	if got := params.Language(); got != "" {
		t.Errorf("sanitized LANGUAGE = %q, want it removed (no description)", got)
	}
	if got := rs.Language(); got != "en" {
		t.Errorf("sanitization modified the property: LANGUAGE = %q, want %q", got, "en")
	}
}

func TestWriteText(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{})

	result, err := m.WriteText(&stubProperty{value: "hello"})
	if err != nil {
		t.Fatalf("WriteText() = %v", err)
	}
	if got := result.Value(); got != "hello" {
		t.Errorf("Value() = %q, want %q", got, "hello")
	}
	want := []Warning{{Message: "encode warning"}}
	if got := result.Warnings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Warnings() = %#v, want %#v", got, want)
	}
}

func TestWriteTextError(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{encodeErr: fmt.Errorf("boom")})
	if _, err := m.WriteText(&stubProperty{}); err == nil {
		t.Fatal("WriteText() succeeded, want an error")
	}
}

func TestParseTextAttachesParameters(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{})

	params := Params{"LANGUAGE": {"en"}}
	result, err := m.ParseText("hello", params)
	if err != nil {
		t.Fatalf("ParseText() = %v", err)
	}

	p := result.Value().(*stubProperty)
	if p.value != "hello" {
		t.Errorf("parsed value = %q, want %q", p.value, "hello")
	}
	if !reflect.DeepEqual(p.Parameters(), params) {
		t.Errorf("Parameters() = %#v, want the container passed to ParseText", p.Parameters())
	}
	if got := p.GetParameter("X-STRAY"); got != "" {
		t.Errorf("codec-attached parameter survived: X-STRAY = %q", got)
	}

	want := []Warning{{Message: "decode warning"}}
	if got := result.Warnings(); !reflect.DeepEqual(got, want) {
		t.Errorf("Warnings() = %#v, want %#v", got, want)
	}
}

func TestParseTextNilParameters(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{})
	result, err := m.ParseText("hello", nil)
	if err != nil {
		t.Fatalf("ParseText() = %v", err)
	}
	if result.Value().Parameters() == nil {
		t.Error("Parameters() = nil after parsing with a nil container")
	}
}

func TestParseTextError(t *testing.T) {
	m := NewMarshaller(&stubProperty{}, "X-STUB", stubCodec{decodeErr: fmt.Errorf("boom")})
	if _, err := m.ParseText("hello", nil); err == nil {
		t.Fatal("ParseText() succeeded, want an error")
	}
}
