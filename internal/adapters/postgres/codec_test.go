package postgres

import (
	"reflect"
	"testing"

	"policymind/internal/domain"
)

func TestDecodeStringArray(t *testing.T) {
	t.Parallel()

	tests := []struct {
		raw  string
		want []string
	}{
		{raw: `["a","b"]`, want: []string{"a", "b"}},
		{raw: `["a",1,null,{"x":1},"b"]`, want: []string{"a", "b"}},
		{raw: `{"a":1}`, want: []string{}},
		{raw: `not json`, want: []string{}},
		{raw: ``, want: []string{}},
		{raw: `null`, want: []string{}},
	}
	for _, tt := range tests {
		if got := decodeStringArray([]byte(tt.raw)); !reflect.DeepEqual(got, tt.want) {
			t.Fatalf("decodeStringArray(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestDecodePolicySnapshots(t *testing.T) {
	t.Parallel()

	raw := `[
		{"area":"Data Privacy","maturity":"approved","ownerTeam":"Legal","ownerContact":"legal@acme.test"},
		{"area":"AI Governance","maturity":"legendary","ownerTeam":"Data"},
		{"area":"Cybersecurity","ownerTeam":"Security"},
		"garbage",
		{"area":"Finance","maturity":"draft","ownerTeam":"Finance","ownerContact":42}
	]`
	want := []domain.PolicySnapshot{
		{Area: "Data Privacy", Maturity: domain.MaturityApproved, OwnerTeam: "Legal", OwnerContact: "legal@acme.test"},
		{Area: "AI Governance", Maturity: domain.MaturityNone, OwnerTeam: "Data"},
		{Area: "Finance", Maturity: domain.MaturityDraft, OwnerTeam: "Finance"},
	}
	if got := decodePolicySnapshots([]byte(raw)); !reflect.DeepEqual(got, want) {
		t.Fatalf("decodePolicySnapshots() = %+v, want %+v", got, want)
	}
	if got := decodePolicySnapshots([]byte(`"oops"`)); len(got) != 0 || got == nil {
		t.Fatalf("decodePolicySnapshots(non-array) = %#v, want empty slice", got)
	}
}

func TestEncodeJSONNilAsEmptyArray(t *testing.T) {
	t.Parallel()

	got, err := encodeJSON[string](nil)
	if err != nil || got != "[]" {
		t.Fatalf("encodeJSON(nil) = %q, %v", got, err)
	}
}
