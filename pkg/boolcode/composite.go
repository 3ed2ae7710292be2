package boolcode

import "encoding/json"

// Value is the two-part payload a boolean field stores: the canonical code and
// an optional free-text comment. It travels as a single JSON string at the
// form boundary.
type Value struct {
	Code    Code
	Comment string
}

type wireValue struct {
	Bool    any    `json:"bool"`
	Comment string `json:"comment"`
}

// Encode packs a Value into its stored JSON representation. The code is
// written as its numeric value so legacy readers keep working.
func Encode(v Value) string {
	raw, err := json.Marshal(wireValue{Bool: int(Coerce(v.Code)), Comment: v.Comment})
	if err != nil {
		// Marshalling a struct of int+string cannot fail; keep the path total.
		return `{"bool":0,"comment":""}`
	}
	return string(raw)
}

// Decode unpacks a stored boolean payload. Malformed or legacy inputs (a bare
// "true", an old integer code, an empty string) degrade to coercing the raw
// value with no comment; Decode never fails.
func Decode(raw string) Value {
	if v, ok := DecodeStrict(raw); ok {
		return v
	}
	return Value{Code: Coerce(raw)}
}

// DecodeStrict unpacks a packed payload and reports whether raw actually was
// one. Callers that treat legacy scalar values differently (no comment to
// show) branch on the second return.
func DecodeStrict(raw string) (Value, bool) {
	var wire wireValue
	if err := json.Unmarshal([]byte(raw), &wire); err != nil {
		return Value{}, false
	}
	return Value{Code: Coerce(wire.Bool), Comment: wire.Comment}, true
}
