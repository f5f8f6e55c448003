package url

import (
	"net/url"
	"testing"
)

func TestMutate(t *testing.T) {
	type testCase struct {
		Name     string
		Base     string
		Funcs    []MutationFunc
		Expected string
	}

	testCases := []testCase{
		{
			Name:     "RootPath",
			Base:     "http://localhost:3002/",
			Funcs:    []MutationFunc{WithPath("/articles/new")},
			Expected: "http://localhost:3002/articles/new",
		},
		{
			Name:     "PrefixedBase",
			Base:     "https://example.net/bbs",
			Funcs:    []MutationFunc{WithPath("articles", "abc", "edit")},
			Expected: "https://example.net/bbs/articles/abc/edit",
		},
		{
			Name:     "TrailingSlash",
			Base:     "/",
			Funcs:    []MutationFunc{WithPath("/assets/")},
			Expected: "/assets/",
		},
		{
			Name:     "Values",
			Base:     "/auth/login",
			Funcs:    []MutationFunc{WithValues("next", "/articles/new")},
			Expected: "/auth/login?next=%2Farticles%2Fnew",
		},
		{
			Name:     "WithoutValues",
			Base:     "/search?words=go&page=2",
			Funcs:    []MutationFunc{WithoutValues("page")},
			Expected: "/search?words=go",
		},
		{
			Name:     "ValuesReset",
			Base:     "/search?words=go",
			Funcs:    []MutationFunc{WithValuesReset()},
			Expected: "/search",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			base, err := url.Parse(tc.Base)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			mutated := Mutate(base, tc.Funcs...)

			if e, g := tc.Expected, mutated.String(); e != g {
				t.Errorf("mutated.String(): expected '%s', got '%s'", e, g)
			}

			if e, g := tc.Base, base.String(); e != g {
				t.Errorf("base.String(): expected '%s' to be left untouched, got '%s'", e, g)
			}
		})
	}
}
