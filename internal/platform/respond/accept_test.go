package respond

import "testing"

func TestPrefersCBOR(t *testing.T) {
	tests := []struct {
		accept string
		want   bool
	}{
		{"", false},
		{"*/*", false},
		{"application/*", false},
		{"application/json", false},
		{"text/html", false},
		{"application/cbor", true},
		{"application/problem+cbor", true},
		{"application/*+cbor", true},
		{"application/*+json", false},
		{"application/json, application/cbor", false},
		{"application/json;q=0.5, application/cbor", true},
		{"application/cbor;q=0, application/json", false},
		{"application/json;q=0, application/cbor", true},
		{"application/cbor, */*;q=0.1", true},
		{"application/cbor;q=0", false},
		{"application/cbor;q=0.1, application/problem+cbor;q=1.0", true},
		{"application/json;q=0.8, application/problem+cbor;q=0.8", true},
		{"application/problem+json;q=0.8, application/cbor;q=0.8", false},
		{"application/problem+json, application/problem+cbor", false},
	}

	for _, tt := range tests {
		t.Run(tt.accept, func(t *testing.T) {
			if got := prefersCBOR(tt.accept); got != tt.want {
				t.Fatalf("prefersCBOR(%q) = %v, want %v", tt.accept, got, tt.want)
			}
		})
	}
}

func TestParseAccept(t *testing.T) {
	ranges := parseAccept("text, , application/json;q=invalid, application/cbor;q=2.0, */*;q=0.5;q=0.9")
	if len(ranges) != 4 {
		t.Fatalf("expected 4 ranges, got %d", len(ranges))
	}
	if ranges[0].typ != "text" || ranges[0].subtype != "*" {
		t.Fatalf("expected text/*, got %s/%s", ranges[0].typ, ranges[0].subtype)
	}
	if ranges[1].q != 1 || ranges[2].q != 1 {
		t.Fatalf("expected invalid q values to default to 1, got %v and %v", ranges[1].q, ranges[2].q)
	}
	if ranges[3].q != 0.9 {
		t.Fatalf("expected last q value to win, got %v", ranges[3].q)
	}
}

func TestMatchQPicksHighestQWithinMostSpecificRank(t *testing.T) {
	ranges := parseAccept("application/cbor;q=0.2, application/cbor;q=0.7, */*;q=1")
	q, rank := matchQ(ranges, "cbor", "cbor")
	if q != 0.7 || rank != 3 {
		t.Fatalf("expected q=0.7 at rank 3, got q=%v rank=%d", q, rank)
	}

	q, rank = matchQ(parseAccept("text/html"), "json", "json")
	if q != -1 || rank != -1 {
		t.Fatalf("expected no match, got q=%v rank=%d", q, rank)
	}
}
