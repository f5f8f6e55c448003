package model

import (
	"strings"
	"testing"
	"time"
)

func TestArticleTitle(t *testing.T) {
	type testCase struct {
		Content  string
		Expected string
	}

	testCases := []testCase{
		{Content: "hello world", Expected: "hello world"},
		{Content: "  first line\nsecond line", Expected: "first line"},
		{Content: strings.Repeat("é", 60), Expected: strings.Repeat("é", 50) + "…"},
		{Content: strings.Repeat("a", 50), Expected: strings.Repeat("a", 50)},
	}

	author := NewUser(ProviderLocal, "jdoe", "", "John Doe")

	for _, tc := range testCases {
		article := NewArticle(NewArticleID(), author, tc.Content, time.Now(), time.Now())

		if e, g := tc.Expected, ArticleTitle(article); e != g {
			t.Errorf("ArticleTitle(%q): expected '%s', got '%s'", tc.Content, e, g)
		}
	}
}

func TestSameUser(t *testing.T) {
	a := NewUser(ProviderLocal, "a", "", "A")
	b := NewUser(ProviderLocal, "b", "", "B")

	if !SameUser(a, CopyUser(a)) {
		t.Errorf("SameUser(a, copy(a)): expected true, got false")
	}

	if SameUser(a, b) {
		t.Errorf("SameUser(a, b): expected false, got true")
	}

	if SameUser(nil, a) {
		t.Errorf("SameUser(nil, a): expected false, got true")
	}
}
