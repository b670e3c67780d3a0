package traffic

import (
	"reflect"
	"testing"
)

func TestParsePostcodes(t *testing.T) {
	if got := ParsePostcodes("-"); got != nil {
		t.Fatalf("expected no postcodes for sentinel, got %v", got)
	}

	got := ParsePostcodes("4000 / 4001")
	if !reflect.DeepEqual(got, []int{4000, 4001}) {
		t.Fatalf("expected [4000 4001], got %v", got)
	}

	// non-numeric tokens are dropped silently
	got = ParsePostcodes("4000 / unknown / 4012")
	if !reflect.DeepEqual(got, []int{4000, 4012}) {
		t.Fatalf("expected [4000 4012], got %v", got)
	}

	if got := ParsePostcodes("not a postcode"); got != nil {
		t.Fatalf("expected no postcodes, got %v", got)
	}
}

func TestParseLocalities(t *testing.T) {
	if got := ParseLocalities(nil); got != nil {
		t.Fatalf("expected no localities for nil, got %v", got)
	}

	sentinel := "-"
	if got := ParseLocalities(&sentinel); got != nil {
		t.Fatalf("expected no localities for sentinel, got %v", got)
	}

	raw := "Bowen Hills / Fortitude Valley"
	got := ParseLocalities(&raw)
	if !reflect.DeepEqual(got, []string{"Bowen Hills", "Fortitude Valley"}) {
		t.Fatalf("expected trimmed localities, got %v", got)
	}
}
