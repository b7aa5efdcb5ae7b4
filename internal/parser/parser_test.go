package parser

import (
	"errors"
	"strings"
	"testing"
)

func TestParse_FourFields(t *testing.T) {
	rec, err := Parse("1,4,0.023410,1.99998", 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Variant != 1 {
		t.Errorf("expected variant 1, got %d", rec.Variant)
	}
	if rec.Threads != 4 {
		t.Errorf("expected 4 threads, got %d", rec.Threads)
	}
	if rec.Seconds != 0.023410 {
		t.Errorf("expected 0.023410 seconds, got %v", rec.Seconds)
	}
	if rec.Result == nil || *rec.Result != 1.99998 {
		t.Errorf("expected result 1.99998, got %v", rec.Result)
	}
}

func TestParse_ThreeFields(t *testing.T) {
	rec, err := Parse("3,1,12.5\n", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Variant != 3 || rec.Threads != 1 || rec.Seconds != 12.5 {
		t.Errorf("unexpected record: %+v", rec)
	}
	if rec.Result != nil {
		t.Errorf("expected no result value, got %v", *rec.Result)
	}
}

func TestParse_TrailingNewlineAccepted(t *testing.T) {
	if _, err := Parse("1,2,0.5,2.0\n", 4); err != nil {
		t.Errorf("trailing newline should parse, got %v", err)
	}
}

func TestParse_Malformed(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		fields int
	}{
		{"non-numeric time", "1,4,abc", 3},
		{"wrong field count", "1,4", 4},
		{"too many fields", "1,4,0.1,2.0", 3},
		{"empty output", "", 4},
		{"blank output", "   \n", 4},
		{"multiple lines", "1,4,0.1,2.0\n1,4,0.2,2.0", 4},
		{"non-numeric variant", "x,4,0.1,2.0", 4},
		{"non-numeric threads", "1,x,0.1,2.0", 4},
		{"non-numeric result", "1,4,0.1,x", 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.raw, tc.fields)
			if err == nil {
				t.Fatalf("expected ParseError for %q", tc.raw)
			}
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %T", err)
			}
			if parseErr.Raw != tc.raw {
				t.Errorf("expected offending text %q preserved, got %q", tc.raw, parseErr.Raw)
			}
		})
	}
}

func TestParseError_MessageCarriesRawText(t *testing.T) {
	_, err := Parse("1,4,abc", 3)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "1,4,abc") {
		t.Errorf("error message should carry the raw text, got %q", err.Error())
	}
}
