package icalprop

import (
	"fmt"
	"strings"
)

// A Warning describes a non-fatal deviation from the iCalendar
// specification. Warnings never prevent a value from being produced; they
// flag content that a consuming application may fail to interpret.
type Warning struct {
	// Path is the hierarchy of component names the property belongs to, if
	// known.
	Path []string
	// Message is a human-readable description of the problem.
	Message string
}

// String formats the warning.
func (w Warning) String() string {
	if len(w.Path) == 0 {
		return w.Message
	}
	return strings.Join(w.Path, " > ") + ": " + w.Message
}

// Warnings collects warnings raised during a marshal, unmarshal or
// validation operation.
type Warnings []Warning

// Add appends a warning with the given message.
func (ws *Warnings) Add(message string) {
	*ws = append(*ws, Warning{Message: message})
}

// Addf appends a warning with a formatted message.
func (ws *Warnings) Addf(format string, v ...interface{}) {
	ws.Add(fmt.Sprintf(format, v...))
}
