package crypto

import (
	"testing"

	"github.com/pkg/errors"
)

func TestRandomPassword(t *testing.T) {
	first, err := RandomPassword(16)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	second, err := RandomPassword(16)
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	if e, g := 22, len(first); e != g {
		t.Errorf("len(first): expected %d, got %d", e, g)
	}

	if first == second {
		t.Errorf("expected two different passwords, got '%s' twice", first)
	}
}
