package gorm

import (
	"fmt"
	"path/filepath"
	"testing"

	"github.com/bornholm/bbs/internal/core/port/testsuite"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/ncruces/go-sqlite3/gormlite"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestArticleStore(t *testing.T) {
	testsuite.TestArticleStore(t, createTestStore)
}

func TestUserStore(t *testing.T) {
	testsuite.TestUserStore(t, createTestStore)
}

func createTestStore(t *testing.T) (testsuite.Store, error) {
	db, err := openTestDatabase(t)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return NewStore(db), nil
}

func openTestDatabase(t *testing.T) (*gorm.DB, error) {
	dbFile := filepath.Join(t.TempDir(), "test.sqlite")

	db, err := gorm.Open(gormlite.Open(fmt.Sprintf("file:%s", dbFile)), &gorm.Config{
		Logger: logger.Discard,
	})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB, err := db.DB()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	internalDB.SetMaxOpenConns(1)

	t.Cleanup(func() {
		internalDB.Close()
	})

	if err := db.Exec("PRAGMA foreign_keys=on; PRAGMA busy_timeout=5000").Error; err != nil {
		return nil, errors.WithStack(err)
	}

	return db, nil
}
