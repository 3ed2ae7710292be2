package boolcode

import "testing"

func TestCoerce(t *testing.T) {
	cases := []struct {
		name  string
		input any
		want  Code
	}{
		{"bool true", true, Yes},
		{"bool false", false, No},
		{"string True", "True", Yes},
		{"string true", "true", Yes},
		{"string 3", "3", Yes},
		{"int 3", 3, Yes},
		{"json float 3", float64(3), Yes},
		{"string False", "False", No},
		{"string 2", "2", No},
		{"int 2", 2, No},
		{"nil", nil, Unset},
		{"empty string", "", Unset},
		{"int 1", 1, Unset},
		{"string 1", "1", Unset},
		{"int 42", 42, Invalid},
		{"int 0", 0, Invalid},
		{"fractional float", 2.5, Invalid},
		{"unknown string", "maybe", Invalid},
		{"slice", []string{"3"}, Invalid},
		{"map", map[string]any{"bool": 3}, Invalid},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Coerce(tc.input); got != tc.want {
				t.Fatalf("Coerce(%#v) = %d, want %d", tc.input, got, tc.want)
			}
		})
	}
}

func TestCoerce_FalseIsNotZero(t *testing.T) {
	// The boolean false must land in the No bucket; loose equality with the
	// integer 0 would make it Invalid.
	if got := Coerce(false); got != No {
		t.Fatalf("Coerce(false) = %d, want %d", got, No)
	}
}

func TestCodeString(t *testing.T) {
	cases := map[Code]string{
		Yes:     "Yes",
		No:      "No",
		Unset:   "N/A",
		Invalid: "",
	}
	for code, want := range cases {
		if got := code.String(); got != want {
			t.Fatalf("Code(%d).String() = %q, want %q", code, got, want)
		}
	}
}

func TestDecode_PackedPayload(t *testing.T) {
	value := Decode(`{"bool": 3, "comment": "checked on site"}`)
	if value.Code != Yes || value.Comment != "checked on site" {
		t.Fatalf("unexpected value: %+v", value)
	}
}

func TestDecode_LegacyValues(t *testing.T) {
	cases := []struct {
		raw  string
		want Code
	}{
		{"true", Yes},
		{"2", No},
		{"", Unset},
		{"{not json", Invalid},
	}
	for _, tc := range cases {
		value := Decode(tc.raw)
		if value.Code != tc.want {
			t.Fatalf("Decode(%q).Code = %d, want %d", tc.raw, value.Code, tc.want)
		}
		if value.Comment != "" {
			t.Fatalf("Decode(%q) produced comment %q", tc.raw, value.Comment)
		}
	}
}

func TestDecode_StringCodesInsidePayload(t *testing.T) {
	value := Decode(`{"bool": "false", "comment": ""}`)
	if value.Code != No {
		t.Fatalf("Decode packed string code = %d, want %d", value.Code, No)
	}
}

func TestEncodeDecode(t *testing.T) {
	raw := Encode(Value{Code: No, Comment: "left blank"})
	value, ok := DecodeStrict(raw)
	if !ok {
		t.Fatalf("Encode produced unparseable payload %q", raw)
	}
	if value.Code != No || value.Comment != "left blank" {
		t.Fatalf("round trip mismatch: %+v", value)
	}
}
