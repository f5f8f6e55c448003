package markdown

import (
	"strings"
	"testing"

	"github.com/pkg/errors"
)

func TestRender(t *testing.T) {
	type testCase struct {
		Name        string
		Source      string
		Contains    []string
		NotContains []string
	}

	testCases := []testCase{
		{
			Name:     "Emphasis",
			Source:   "Hello **world**",
			Contains: []string{"<strong>world</strong>"},
		},
		{
			Name:     "HardWraps",
			Source:   "first line\nsecond line",
			Contains: []string{"first line<br>"},
		},
		{
			Name:        "RawHTML",
			Source:      "<script>alert('xss')</script>",
			NotContains: []string{"<script>"},
		},
		{
			Name:        "JavascriptLink",
			Source:      "[click](javascript:alert(1))",
			NotContains: []string{"javascript:"},
		},
		{
			Name:     "Autolink",
			Source:   "see https://example.net",
			Contains: []string{`<a href="https://example.net">`},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			html, err := Render(tc.Source)
			if err != nil {
				t.Fatalf("%+v", errors.WithStack(err))
			}

			for _, c := range tc.Contains {
				if !strings.Contains(string(html), c) {
					t.Errorf("html: expected '%s' to contain '%s'", html, c)
				}
			}

			for _, c := range tc.NotContains {
				if strings.Contains(string(html), c) {
					t.Errorf("html: expected '%s' not to contain '%s'", html, c)
				}
			}
		})
	}
}
