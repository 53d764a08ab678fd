package icalprop

// A Property is a single named calendar field with a value and parameters.
// Concrete property types embed BaseProperty and override the methods whose
// defaults don't fit.
type Property interface {
	// Parameters returns the property's parameter container. The returned
	// container is the property's own: mutating it mutates the property.
	// It is never nil.
	Parameters() Params

	// SetParameters replaces the property's parameter container as a
	// whole. Ownership of params transfers to the property. Passing nil
	// installs an empty container.
	SetParameters(params Params)

	// SupportedVersions returns the iCalendar versions that support this
	// property type.
	SupportedVersions() []Version

	// ValidateValue checks the property value for deviations from the
	// given iCalendar version, appending any problems to warnings. path is
	// the hierarchy of component names the property belongs to and may be
	// nil.
	ValidateValue(path []string, version Version, warnings *Warnings)
}

// Validate checks a property for deviations from the iCalendar
// specification. Deviations don't prevent the property from being written,
// but may prevent a consuming application from interpreting it.
//
// Validation runs in two phases: the property's own value-level checks,
// then the parameter-level checks of its parameter container. The returned
// warnings concatenate both phases in that order; an empty list means no
// problems were found.
func Validate(p Property, path []string, version Version) []Warning {
	var ws Warnings
	p.ValidateValue(path, version, &ws)
	ws = append(ws, p.Parameters().Validate(version)...)
	for i := range ws {
		if ws[i].Path == nil {
			ws[i].Path = path
		}
	}
	return ws
}

// BaseProperty is the base for all property types. Its zero value is ready
// to use.
type BaseProperty struct {
	params Params
}

// Parameters implements Property.
func (b *BaseProperty) Parameters() Params {
	if b.params == nil {
		b.params = make(Params)
	}
	return b.params
}

// SetParameters implements Property.
func (b *BaseProperty) SetParameters(params Params) {
	if params == nil {
		params = make(Params)
	}
	b.params = params
}

// SupportedVersions implements Property. The base implementation returns
// all versions; property types that the format restricts to specific
// versions override it.
func (b *BaseProperty) SupportedVersions() []Version {
	return AllVersions()
}

// ValidateValue implements Property. The base implementation reports
// nothing; property types with value-level rules override it.
func (b *BaseProperty) ValidateValue(path []string, version Version, warnings *Warnings) {
}

// GetParameter returns the first value of the named parameter, or an empty
// string if it is absent. The name is case-insensitive.
func (b *BaseProperty) GetParameter(name string) string {
	return b.Parameters().Get(name)
}

// GetParameters returns all values of the named parameter. The name is
// case-insensitive.
func (b *BaseProperty) GetParameters(name string) []string {
	return b.Parameters().Values(name)
}

// AddParameter appends a value to the named parameter.
func (b *BaseProperty) AddParameter(name, value string) {
	b.Parameters().Add(name, value)
}

// SetParameter replaces all values of the named parameter with the given
// value.
func (b *BaseProperty) SetParameter(name, value string) {
	b.Parameters().Set(name, value)
}

// SetParameterValues replaces all values of the named parameter with the
// given values.
func (b *BaseProperty) SetParameterValues(name string, values []string) {
	b.Parameters().SetAll(name, values)
}

// RemoveParameter removes the named parameter.
func (b *BaseProperty) RemoveParameter(name string) {
	b.Parameters().Del(name)
}

// AltRep returns the property's ALTREP parameter.
func (b *BaseProperty) AltRep() string {
	return b.Parameters().AltRep()
}

// SetAltRep sets the property's ALTREP parameter. An empty string removes
// it.
func (b *BaseProperty) SetAltRep(uri string) {
	b.Parameters().SetAltRep(uri)
}

// CommonName returns the property's CN parameter.
func (b *BaseProperty) CommonName() string {
	return b.Parameters().CommonName()
}

// SetCommonName sets the property's CN parameter. An empty string removes
// it.
func (b *BaseProperty) SetCommonName(name string) {
	b.Parameters().SetCommonName(name)
}

// DirEntry returns the property's DIR parameter.
func (b *BaseProperty) DirEntry() string {
	return b.Parameters().DirEntry()
}

// SetDirEntry sets the property's DIR parameter. An empty string removes
// it.
func (b *BaseProperty) SetDirEntry(uri string) {
	b.Parameters().SetDirEntry(uri)
}

// FormatType returns the property's FMTTYPE parameter.
func (b *BaseProperty) FormatType() string {
	return b.Parameters().FormatType()
}

// SetFormatType sets the property's FMTTYPE parameter. An empty string
// removes it.
func (b *BaseProperty) SetFormatType(mediaType string) {
	b.Parameters().SetFormatType(mediaType)
}

// Language returns the property's LANGUAGE parameter.
func (b *BaseProperty) Language() string {
	return b.Parameters().Language()
}

// SetLanguage sets the property's LANGUAGE parameter. An empty string
// removes it.
func (b *BaseProperty) SetLanguage(tag string) {
	b.Parameters().SetLanguage(tag)
}

// SentBy returns the property's SENT-BY parameter.
func (b *BaseProperty) SentBy() string {
	return b.Parameters().SentBy()
}

// SetSentBy sets the property's SENT-BY parameter. An empty string removes
// it.
func (b *BaseProperty) SetSentBy(uri string) {
	b.Parameters().SetSentBy(uri)
}
