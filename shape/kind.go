package shape

import "strings"

// Kind identifies the concrete variant of a Shape.
type Kind uint8

const (
	// KindUnknown is the zero Kind and never identifies a valid shape.
	KindUnknown Kind = 0x0
	// KindLine identifies a 2D Line.
	KindLine Kind = 0x1
	// KindHyperPlane identifies an N-dimensional HyperPlane.
	KindHyperPlane Kind = 0x2
)

var kindNames = map[Kind]string{
	KindLine:       "line",
	KindHyperPlane: "hyperplane",
}

var kindFromString = map[string]Kind{
	"line":       KindLine,
	"hyperplane": KindHyperPlane,
}

// String returns the lower-case name of the kind.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return "unknown"
}

// Valid reports whether k identifies a known shape variant.
func (k Kind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// KindFromString returns the Kind for a case-insensitive name, or KindUnknown.
func KindFromString(name string) Kind {
	if k, ok := kindFromString[strings.ToLower(strings.TrimSpace(name))]; ok {
		return k
	}

	return KindUnknown
}
