package setup

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bornholm/bbs/internal/adapter/gorm"
	"github.com/bornholm/bbs/internal/core/model"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	gormlib "gorm.io/gorm"
)

func TestGormLoggerOmitsBoundValues(t *testing.T) {
	ctx := context.Background()

	var buf bytes.Buffer

	dbFile := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gormlib.Open(gormlite.Open(fmt.Sprintf("file:%s", dbFile)), &gormlib.Config{
		Logger: newGormLogger(slog.LevelInfo, &buf),
	})
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB, err := db.DB()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		internalDB.Close()
	})

	store := gorm.NewStore(db)

	user, err := store.FindOrCreateUser(ctx, model.ProviderLocal, "jdoe")
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	hash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

	if err := store.SetUserPassword(ctx, user.ID(), []byte(hash)); err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	logs := buf.String()

	if !strings.Contains(logs, "password_hash") {
		t.Fatalf("expected the password update to be logged, got:\n%s", logs)
	}

	if strings.Contains(logs, hash) {
		t.Errorf("expected the password hash to be absent from the logs, got:\n%s", logs)
	}

	if strings.Contains(logs, "jdoe") {
		t.Errorf("expected the user subject to be absent from the logs, got:\n%s", logs)
	}
}
