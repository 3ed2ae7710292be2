package fieldkind

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-dynfields/pkg/forms"
)

func TestSchemaMerge(t *testing.T) {
	merged := BaseSchema().Merge(Schema{
		"localize": {Types: []OptionType{OptionBool}, Default: true, Control: forms.ControlCheckbox},
	}, "required")

	want := []string{"help_text", "localize"}
	if diff := cmp.Diff(want, merged.Names()); diff != "" {
		t.Fatalf("merged schema names mismatch (-want +got):\n%s", diff)
	}
}

func TestSchemaMerge_DoesNotMutateBase(t *testing.T) {
	base := BaseSchema()
	base.Merge(Schema{"extra": {Types: []OptionType{OptionBool}, Default: false}}, "required")

	if _, ok := base["required"]; !ok {
		t.Fatal("merge mutated the base schema")
	}
	if _, ok := base["extra"]; ok {
		t.Fatal("merge leaked overlay entries into the base schema")
	}
}

func TestValuesSet_TypeValidation(t *testing.T) {
	schema := BaseSchema().Merge(Schema{
		"max_value": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
	})

	values := schema.NewValues()

	if err := values.Set("max_value", "ten"); err == nil {
		t.Fatal("expected type error for string assigned to int option")
	} else {
		var typeErr *OptionTypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("expected *OptionTypeError, got %T", err)
		}
		if typeErr.Option != "max_value" {
			t.Fatalf("error names option %q", typeErr.Option)
		}
	}

	if err := values.Set("required", 3); err == nil {
		t.Fatal("expected type error for int assigned to bool option")
	}
}

func TestValuesSet_NullAlwaysAccepted(t *testing.T) {
	values := BaseSchema().NewValues()
	if err := values.Set("required", nil); err != nil {
		t.Fatalf("nil assignment should always succeed: %v", err)
	}
	if got := values.Get("required"); got != nil {
		t.Fatalf("expected nil stored, got %#v", got)
	}
}

func TestValuesSet_UnknownKey(t *testing.T) {
	values := BaseSchema().NewValues()
	err := values.Set("no_such_option", true)
	if !errors.Is(err, ErrUnknownOption) {
		t.Fatalf("expected ErrUnknownOption, got %v", err)
	}
}

func TestValuesSet_JSONNumbersNormalize(t *testing.T) {
	schema := Schema{
		"min_value": {Types: []OptionType{OptionInt}, Default: nil, Control: forms.ControlNumber},
	}
	values := schema.NewValues()
	if err := values.Set("min_value", float64(5)); err != nil {
		t.Fatalf("integral float should satisfy the int option: %v", err)
	}
	if n, ok := values.Int("min_value"); !ok || n != 5 {
		t.Fatalf("expected normalized int 5, got %v (ok=%v)", n, ok)
	}

	if err := values.Set("min_value", 5.5); err == nil {
		t.Fatal("fractional float must not satisfy the int option")
	}
}

func TestValuesApply_Defaults(t *testing.T) {
	values := BaseSchema().NewValues()
	if err := values.Apply(map[string]any{"help_text": "shown under the input"}); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if got := values.String("help_text"); got != "shown under the input" {
		t.Fatalf("help_text = %q", got)
	}
	if values.Bool("required") {
		t.Fatal("required default should be false")
	}
}
