package oidc

import (
	"testing"

	"github.com/markbates/goth"
)

func TestGetUserDisplayName(t *testing.T) {
	type testCase struct {
		Name     string
		User     goth.User
		Expected string
	}

	testCases := []testCase{
		{
			Name: "PreferredUsername",
			User: goth.User{
				RawData:  map[string]any{"preferred_username": "jdoe"},
				NickName: "johnny",
			},
			Expected: "jdoe",
		},
		{
			Name:     "NickName",
			User:     goth.User{NickName: "johnny", Name: "John Doe"},
			Expected: "johnny",
		},
		{
			Name:     "FirstAndLastName",
			User:     goth.User{FirstName: "John", LastName: "Doe"},
			Expected: "John Doe",
		},
		{
			Name:     "UserID",
			User:     goth.User{UserID: "1234"},
			Expected: "1234",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			if e, g := tc.Expected, getUserDisplayName(tc.User); e != g {
				t.Errorf("getUserDisplayName(): expected '%s', got '%s'", e, g)
			}
		})
	}
}
