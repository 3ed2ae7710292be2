// Package boolcode canonicalizes the assorted truthy/falsy/unset values that
// show up in stored dynamic-field data into a single four-valued code. Coercion
// is total: every input maps to exactly one code and nothing ever errors, since
// stored values may predate schema changes or arrive from hand-edited bags.
package boolcode

// Code is the canonical encoding for boolean-like stored values.
type Code int

const (
	Invalid Code = 0
	Unset   Code = 1
	No      Code = 2
	Yes     Code = 3
)

// String returns the admin-facing label for a code. Invalid renders empty so
// display paths degrade silently.
func (c Code) String() string {
	switch c {
	case Unset:
		return "N/A"
	case No:
		return "No"
	case Yes:
		return "Yes"
	default:
		return ""
	}
}

// Coerce maps an arbitrary value onto a Code. Matching is type-and-value
// exact: the boolean false must not fall into a numeric bucket via loose
// conversion, and a string "3" is matched as a string, not as the number 3.
// Numeric matches accept any integer width plus floats holding an exact
// integral value, because JSON decoding hands back float64.
func Coerce(value any) Code {
	switch v := value.(type) {
	case nil:
		return Unset
	case bool:
		if v {
			return Yes
		}
		return No
	case string:
		switch v {
		case "True", "true", "3":
			return Yes
		case "False", "false", "2":
			return No
		case "", "1":
			return Unset
		}
		return Invalid
	case Code:
		if v >= Invalid && v <= Yes {
			return v
		}
		return Invalid
	}

	if n, ok := integralValue(value); ok {
		switch n {
		case 3:
			return Yes
		case 2:
			return No
		case 1:
			return Unset
		}
	}
	return Invalid
}

func integralValue(value any) (int64, bool) {
	switch v := value.(type) {
	case int:
		return int64(v), true
	case int8:
		return int64(v), true
	case int16:
		return int64(v), true
	case int32:
		return int64(v), true
	case int64:
		return v, true
	case uint:
		return int64(v), true
	case uint8:
		return int64(v), true
	case uint16:
		return int64(v), true
	case uint32:
		return int64(v), true
	case uint64:
		return int64(v), true
	case float32:
		if float32(int64(v)) == v {
			return int64(v), true
		}
	case float64:
		if float64(int64(v)) == v {
			return int64(v), true
		}
	}
	return 0, false
}
