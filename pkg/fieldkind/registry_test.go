package fieldkind

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRegistry_BuiltinsRegistered(t *testing.T) {
	reg := NewRegistry()
	keys := []string{
		KeyBoolean, KeyChoice, KeyMultipleChoice, KeyDate, KeyDateTime,
		KeyTime, KeyEmail, KeyInteger, KeyFloat, KeySingleLineText,
		KeyMultiLineText, KeySystem, KeyComponent, KeySubtitle,
	}
	if len(keys) != 14 {
		t.Fatalf("expected 14 builtin keys, have %d", len(keys))
	}
	for _, key := range keys {
		if _, ok := reg.Get(key); !ok {
			t.Fatalf("builtin %q not registered", key)
		}
	}
	if got := len(reg.All()); got != 14 {
		t.Fatalf("All() returned %d entries, want 14", got)
	}
}

func TestRegistry_RoundTrip(t *testing.T) {
	reg := NewRegistry()

	kind, ok := reg.Get(KeyEmail)
	if !ok {
		t.Fatal("email kind missing")
	}
	reg.Unregister(KeyEmail)
	if _, ok := reg.Get(KeyEmail); ok {
		t.Fatal("kind survived unregister")
	}
	// Unregistering an absent key is a no-op.
	reg.Unregister(KeyEmail)

	if err := reg.Register(kind); err != nil {
		t.Fatalf("register: %v", err)
	}
	got, ok := reg.Get(KeyEmail)
	if !ok || got != kind {
		t.Fatalf("round trip returned %v (ok=%v)", got, ok)
	}
}

func TestRegistry_RejectsInvalidKinds(t *testing.T) {
	reg := NewRegistry()
	if err := reg.Register(nil); err == nil {
		t.Fatal("nil kind must fail registration")
	}
	if err := reg.Register(&baseKind{schema: BaseSchema()}); err == nil {
		t.Fatal("unnamed kind must fail registration")
	}
	if err := reg.Register(&baseKind{name: "BareField"}); err == nil {
		t.Fatal("kind without schema must fail registration")
	}
}

func TestRegistry_AllSortedByKey(t *testing.T) {
	reg := NewRegistry()
	entries := reg.All()
	if !sort.SliceIsSorted(entries, func(i, j int) bool { return entries[i].Key < entries[j].Key }) {
		t.Fatalf("entries not sorted: %v", entries)
	}

	choices := reg.Choices()
	if len(choices) != len(entries) {
		t.Fatalf("choices/entries length mismatch: %d vs %d", len(choices), len(entries))
	}
	for i, entry := range entries {
		if choices[i].Value != entry.Key || choices[i].Label != entry.Label {
			t.Fatalf("choice %d mismatch: %+v vs %+v", i, choices[i], entry)
		}
	}
}

func TestDisplayLabels(t *testing.T) {
	reg := NewRegistry()
	want := map[string]string{
		KeyBoolean:        "Boolean",
		KeyChoice:         "Choices",
		KeyMultipleChoice: "Multiple Choices",
		KeyDate:           "Date",
		KeyDateTime:       "Date and Time",
		KeySingleLineText: "Single Line Text",
		KeyMultiLineText:  "Multi Line Text",
		KeySystem:         "System",
	}
	got := make(map[string]string, len(want))
	for key := range want {
		kind, ok := reg.Get(key)
		if !ok {
			t.Fatalf("kind %q missing", key)
		}
		got[key] = kind.DisplayLabel()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("display labels mismatch (-want +got):\n%s", diff)
	}
}

func TestLabelFromName(t *testing.T) {
	cases := map[string]string{
		"SingleLineTextField": "Single Line Text",
		"DateTimeField":       "Date Time",
		"BooleanField":        "Boolean",
		"SubtitleField":       "Subtitle",
	}
	for name, want := range cases {
		if got := labelFromName(name); got != want {
			t.Fatalf("labelFromName(%q) = %q, want %q", name, got, want)
		}
	}
}
