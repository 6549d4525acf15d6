// Package codec selects the JSON encoder used for reports.
//
// Reports record nothing about the codec that wrote them; both built-in
// codecs produce standard JSON and can read each other's output.
package codec

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name. The empty name
// selects Default.
func ByName(name string) (Codec, bool) {
	switch name {
	case "":
		return Default, true
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	default:
		return nil, false
	}
}
