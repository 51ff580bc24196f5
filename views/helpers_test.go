package views

import "testing"

func TestBuildURLJoinsSegmentsWithTrailingSlash(t *testing.T) {
	cases := []struct {
		base     string
		segments []string
		want     string
	}{
		{"https://example.com", nil, "https://example.com"},
		{"https://example.com", []string{"tab", "foundations"}, "https://example.com/tab/foundations/"},
		{"https://example.com/guide", []string{"tab", "in-practice"}, "https://example.com/guide/tab/in-practice/"},
		{"://bad", []string{"tab"}, "://bad"},
	}
	for _, tc := range cases {
		if got := BuildURL(tc.base, tc.segments...); got != tc.want {
			t.Errorf("BuildURL(%q, %v) = %q, want %q", tc.base, tc.segments, got, tc.want)
		}
	}
}
