package icalprop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
)

// A Summary defines a short, one-line summary of a component (RFC 5545
// section 3.8.1.12).
type Summary struct {
	BaseProperty
	Text string
}

// NewSummary creates a SUMMARY property.
func NewSummary(text string) *Summary {
	return &Summary{Text: text}
}

// A Description defines a complete description of a component (RFC 5545
// section 3.8.1.5).
type Description struct {
	BaseProperty
	Text string
}

// NewDescription creates a DESCRIPTION property.
func NewDescription(text string) *Description {
	return &Description{Text: text}
}

// Categories defines the categories a component belongs to (RFC 5545
// section 3.8.1.2).
type Categories struct {
	BaseProperty
	Values []string
}

// NewCategories creates a CATEGORIES property.
func NewCategories(values ...string) *Categories {
	return &Categories{Values: values}
}

// A RequestStatus describes the outcome of a scheduling request (RFC 5545
// section 3.8.8.3). Its value is a compound of a status code, a
// description and optional extra data, e.g. "4.1;Event conflict".
type RequestStatus struct {
	BaseProperty
	Code        string
	Description string
	Data        string
}

// SupportedVersions implements Property. REQUEST-STATUS was introduced in
// iCalendar 2.0.
func (rs *RequestStatus) SupportedVersions() []Version {
	return []Version{Version2Deprecated, Version2}
}

// ValidateValue implements Property.
func (rs *RequestStatus) ValidateValue(path []string, version Version, warnings *Warnings) {
	if rs.Code == "" {
		warnings.Add("REQUEST-STATUS has no status code")
	}
}

// A Geo specifies a latitude and a longitude in degrees (RFC 5545 section
// 3.8.1.6).
type Geo struct {
	BaseProperty
	Latitude  float64
	Longitude float64
}

// ValidateValue implements Property.
func (g *Geo) ValidateValue(path []string, version Version, warnings *Warnings) {
	if g.Latitude < -90 || g.Latitude > 90 {
		warnings.Addf("latitude %v is out of range [-90, 90]", g.Latitude)
	}
	if g.Longitude < -180 || g.Longitude > 180 {
		warnings.Addf("longitude %v is out of range [-180, 180]", g.Longitude)
	}
}

// A RecurrenceRule defines how often a component repeats (RFC 5545 section
// 3.8.5.3).
type RecurrenceRule struct {
	BaseProperty
	Option rrule.ROption
}

// A UID defines a globally unique identifier for a component (RFC 5545
// section 3.8.4.7).
type UID struct {
	BaseProperty
	Value string
}

// NewUID creates a UID property with a random UUID value.
func NewUID() *UID {
	return &UID{Value: uuid.NewString()}
}

// textCodec encodes single-value text properties.
type textCodec struct {
	get   func(p Property) string
	build func(text string) Property
}

func (c textCodec) EncodeText(p Property, warnings *Warnings) (string, error) {
	return Escape(c.get(p)), nil
}

func (c textCodec) DecodeText(value string, params Params, warnings *Warnings) (Property, error) {
	return c.build(Unescape(value)), nil
}

type categoriesCodec struct{}

func (categoriesCodec) EncodeText(p Property, warnings *Warnings) (string, error) {
	return writeList(p.(*Categories).Values), nil
}

func (categoriesCodec) DecodeText(value string, params Params, warnings *Warnings) (Property, error) {
	return &Categories{Values: ParseList(value)}, nil
}

type requestStatusCodec struct{}

func (requestStatusCodec) EncodeText(p Property, warnings *Warnings) (string, error) {
	rs := p.(*RequestStatus)
	fields := [][]string{{rs.Code}, {rs.Description}}
	if rs.Data != "" {
		fields = append(fields, []string{rs.Data})
	}
	return writeComponent(fields), nil
}

func (requestStatusCodec) DecodeText(value string, params Params, warnings *Warnings) (Property, error) {
	fields := SplitBy(value, ';', false, true)
	if len(fields) > 3 {
		warnings.Addf("REQUEST-STATUS has %v fields, expected at most 3", len(fields))
	}
	rs := &RequestStatus{}
	if len(fields) > 0 {
		rs.Code = fields[0]
	}
	if len(fields) > 1 {
		rs.Description = fields[1]
	}
	if len(fields) > 2 {
		rs.Data = fields[2]
	}
	return rs, nil
}

// SanitizeParameters implements ParameterSanitizer. LANGUAGE qualifies the
// status description, so it is dropped when there is no description.
func (requestStatusCodec) SanitizeParameters(p Property, params Params) {
	if p.(*RequestStatus).Description == "" {
		params.Del(ParamLanguage)
	}
}

type geoCodec struct{}

func (geoCodec) EncodeText(p Property, warnings *Warnings) (string, error) {
	g := p.(*Geo)
	lat := strconv.FormatFloat(g.Latitude, 'f', -1, 64)
	lon := strconv.FormatFloat(g.Longitude, 'f', -1, 64)
	return lat + ";" + lon, nil
}

func (geoCodec) DecodeText(value string, params Params, warnings *Warnings) (Property, error) {
	fields := SplitBy(value, ';', false, false)
	if len(fields) != 2 {
		return nil, fmt.Errorf("icalprop: GEO value %q doesn't have exactly 2 fields", value)
	}

	g := &Geo{}
	var err error
	if g.Latitude, err = strconv.ParseFloat(fields[0], 64); err != nil {
		warnings.Addf("GEO latitude %q is not a valid number", fields[0])
	}
	if g.Longitude, err = strconv.ParseFloat(fields[1], 64); err != nil {
		warnings.Addf("GEO longitude %q is not a valid number", fields[1])
	}
	return g, nil
}

type recurrenceRuleCodec struct{}

func (recurrenceRuleCodec) EncodeText(p Property, warnings *Warnings) (string, error) {
	return p.(*RecurrenceRule).Option.String(), nil
}

func (recurrenceRuleCodec) DecodeText(value string, params Params, warnings *Warnings) (Property, error) {
	option, err := rrule.StrToROption(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("icalprop: invalid RRULE value %q: %v", value, err)
	}
	return &RecurrenceRule{Option: *option}, nil
}
