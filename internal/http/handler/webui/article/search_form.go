package article

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const maxSearchWordsLength = 200

type SearchForm struct {
	Words       string
	WordsErrors []string
}

// Validate reports whether the form is valid. An empty form is valid but
// should not trigger a search, see ShouldSearch.
func (f *SearchForm) Validate() bool {
	f.WordsErrors = nil

	if length := utf8.RuneCountInString(f.Words); length > maxSearchWordsLength {
		f.WordsErrors = append(f.WordsErrors, fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", maxSearchWordsLength, length))
	}

	return len(f.WordsErrors) == 0
}

func (f *SearchForm) ShouldSearch() bool {
	return f.Words != "" && f.Validate()
}

func parseSearchForm(values url.Values) *SearchForm {
	return &SearchForm{
		Words: strings.TrimSpace(values.Get("words")),
	}
}
