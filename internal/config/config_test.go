package config

import (
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Setenv("BBS_HTTP_ADDRESS", ":8080")
	t.Setenv("BBS_HTTP_SESSION_KEYS", "first,second")
	t.Setenv("BBS_HTTP_AUTHN_PROVIDERS_GITHUB_SCOPES", "read:user,user:email")
	t.Setenv("BBS_STORAGE_DATABASE_CACHE_USERS_TTL", "5m")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	t.Logf("%s", spew.Sdump(conf))

	if e, g := ":8080", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected '%s', got '%s'", e, g)
	}

	if e, g := "/", conf.HTTP.BaseURL; e != g {
		t.Errorf("conf.HTTP.BaseURL: expected '%s', got '%s'", e, g)
	}

	if e, g := 2, len(conf.HTTP.Session.Keys); e != g {
		t.Errorf("len(conf.HTTP.Session.Keys): expected %d, got %d", e, g)
	}

	if e, g := 2, len(conf.HTTP.Authn.Providers.Github.Scopes); e != g {
		t.Errorf("len(conf.HTTP.Authn.Providers.Github.Scopes): expected %d, got %d", e, g)
	}

	if e, g := true, conf.HTTP.Authn.Local.Enabled; e != g {
		t.Errorf("conf.HTTP.Authn.Local.Enabled: expected '%v', got '%v'", e, g)
	}

	if e, g := "data.sqlite", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected '%s', got '%s'", e, g)
	}

	if e, g := 5*time.Minute, conf.Storage.Database.Cache.Users.TTL; e != g {
		t.Errorf("conf.Storage.Database.Cache.Users.TTL: expected '%v', got '%v'", e, g)
	}
}
