package icalprop

import (
	"strings"

	"golang.org/x/text/language"
)

// Well-known property parameter names, defined in RFC 5545 section 3.2.
const (
	ParamAltRep     = "ALTREP"
	ParamCommonName = "CN"
	ParamDirEntry   = "DIR"
	ParamEncoding   = "ENCODING"
	ParamFormatType = "FMTTYPE"
	ParamLanguage   = "LANGUAGE"
	ParamSentBy     = "SENT-BY"
)

// Params is a set of property parameters. Parameter names are
// case-insensitive: every method canonicalizes names to upper case, so
// values must be accessed through the methods rather than by indexing the
// map directly.
type Params map[string][]string

// Get returns the first value of the parameter with the given name, or an
// empty string if the parameter is absent.
func (p Params) Get(name string) string {
	values := p[strings.ToUpper(name)]
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// Values returns all values of the parameter with the given name, in the
// order they were added.
func (p Params) Values(name string) []string {
	return p[strings.ToUpper(name)]
}

// Add appends a value to the parameter with the given name.
func (p Params) Add(name, value string) {
	name = strings.ToUpper(name)
	p[name] = append(p[name], value)
}

// Set replaces all values of the parameter with the given single value.
func (p Params) Set(name, value string) {
	p[strings.ToUpper(name)] = []string{value}
}

// SetAll replaces all values of the parameter with the given values.
func (p Params) SetAll(name string, values []string) {
	p[strings.ToUpper(name)] = values
}

// Del removes the parameter with the given name.
func (p Params) Del(name string) {
	delete(p, strings.ToUpper(name))
}

// Clone returns a deep copy of the parameter set. Cloning nil returns nil.
func (p Params) Clone() Params {
	if p == nil {
		return nil
	}
	out := make(Params, len(p))
	for name, values := range p {
		out[name] = append([]string(nil), values...)
	}
	return out
}

func (p Params) setOrDel(name, value string) {
	if value == "" {
		p.Del(name)
		return
	}
	p.Set(name, value)
}

// AltRep returns the ALTREP parameter: a URI pointing to an alternate
// representation of the property value (RFC 5545 section 3.2.1).
func (p Params) AltRep() string {
	return p.Get(ParamAltRep)
}

// SetAltRep sets the ALTREP parameter. An empty string removes it.
func (p Params) SetAltRep(uri string) {
	p.setOrDel(ParamAltRep, uri)
}

// CommonName returns the CN parameter: the display name of the calendar
// user the property refers to (RFC 5545 section 3.2.2).
func (p Params) CommonName() string {
	return p.Get(ParamCommonName)
}

// SetCommonName sets the CN parameter. An empty string removes it.
func (p Params) SetCommonName(name string) {
	p.setOrDel(ParamCommonName, name)
}

// DirEntry returns the DIR parameter: a URI of a directory entry with
// additional information about the calendar user (RFC 5545 section 3.2.6).
func (p Params) DirEntry() string {
	return p.Get(ParamDirEntry)
}

// SetDirEntry sets the DIR parameter. An empty string removes it.
func (p Params) SetDirEntry(uri string) {
	p.setOrDel(ParamDirEntry, uri)
}

// FormatType returns the FMTTYPE parameter: the media type of the property
// value, e.g. "image/png" (RFC 5545 section 3.2.8).
func (p Params) FormatType() string {
	return p.Get(ParamFormatType)
}

// SetFormatType sets the FMTTYPE parameter. An empty string removes it.
func (p Params) SetFormatType(mediaType string) {
	p.setOrDel(ParamFormatType, mediaType)
}

// Language returns the LANGUAGE parameter: the language the property value
// is written in, e.g. "en" (RFC 5545 section 3.2.10).
func (p Params) Language() string {
	return p.Get(ParamLanguage)
}

// SetLanguage sets the LANGUAGE parameter. An empty string removes it.
func (p Params) SetLanguage(tag string) {
	p.setOrDel(ParamLanguage, tag)
}

// SentBy returns the SENT-BY parameter: a URI of the calendar user acting
// on behalf of the one the property refers to (RFC 5545 section 3.2.18).
func (p Params) SentBy() string {
	return p.Get(ParamSentBy)
}

// SetSentBy sets the SENT-BY parameter. An empty string removes it.
func (p Params) SetSentBy(uri string) {
	p.setOrDel(ParamSentBy, uri)
}

// v2OnlyParams aren't defined by vCalendar 1.0.
var v2OnlyParams = []string{ParamAltRep, ParamCommonName, ParamDirEntry, ParamSentBy}

// Validate checks the parameters for deviations from the given iCalendar
// version. It returns an empty list when no problems are found.
func (p Params) Validate(version Version) []Warning {
	var ws Warnings

	if version == Version1 {
		for _, name := range v2OnlyParams {
			if len(p[name]) > 0 {
				ws.Addf("%v parameter is not supported by vCalendar 1.0", name)
			}
		}
	}

	if tag := p.Language(); tag != "" {
		if _, err := language.Parse(tag); err != nil {
			ws.Addf("LANGUAGE parameter value %q is not a well-formed language tag", tag)
		}
	}

	if enc := p.Get(ParamEncoding); enc != "" {
		switch strings.ToUpper(enc) {
		case "8BIT", "BASE64":
			// valid in all versions
		case "QUOTED-PRINTABLE":
			if version != Version1 {
				ws.Add("ENCODING=QUOTED-PRINTABLE is only supported by vCalendar 1.0")
			}
		default:
			ws.Addf("unknown ENCODING parameter value %q", enc)
		}
	}

	return ws
}
