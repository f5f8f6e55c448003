package authn

import (
	"net/url"
	"testing"
)

func TestSafeNext(t *testing.T) {
	type testCase struct {
		Next     string
		Expected string
	}

	testCases := []testCase{
		{Next: "", Expected: "/"},
		{Next: "/articles/new", Expected: "/articles/new"},
		{Next: "/search?words=go", Expected: "/search?words=go"},
		{Next: "https://evil.example", Expected: "/"},
		{Next: "//evil.example/articles", Expected: "/"},
		{Next: "/\\evil.example", Expected: "/"},
		{Next: "articles/new", Expected: "/"},
		{Next: "javascript:alert(1)", Expected: "/"},
	}

	for _, tc := range testCases {
		t.Run(tc.Next, func(t *testing.T) {
			if e, g := tc.Expected, SafeNext(tc.Next, "/"); e != g {
				t.Errorf("SafeNext(): expected '%s', got '%s'", e, g)
			}
		})
	}
}

func TestNextURL(t *testing.T) {
	type testCase struct {
		BaseURL  string
		Next     string
		Expected string
	}

	testCases := []testCase{
		{BaseURL: "/", Next: "/articles/new", Expected: "/articles/new"},
		{BaseURL: "/", Next: "/search?words=go", Expected: "/search?words=go"},
		{BaseURL: "https://example.net/bbs", Next: "/articles/new", Expected: "https://example.net/bbs/articles/new"},
		{BaseURL: "https://example.net/bbs", Next: "https://evil.example", Expected: "https://example.net/bbs"},
	}

	for _, tc := range testCases {
		baseURL, err := url.Parse(tc.BaseURL)
		if err != nil {
			t.Fatalf("%+v", err)
		}

		if e, g := tc.Expected, NextURL(baseURL, tc.Next); e != g {
			t.Errorf("NextURL(%s, %s): expected '%s', got '%s'", tc.BaseURL, tc.Next, e, g)
		}
	}
}
