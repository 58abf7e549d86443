package repository

import (
	"testing"

	"lnkshrt/internal/config"
	"lnkshrt/internal/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestInitDB(t *testing.T) {
	t.Run("SQLite in-memory", func(t *testing.T) {
		cfg := config.Config{DatabaseURL: "sqlite://:memory:"}
		db, err := InitDB(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, db)
	})

	t.Run("Unsupported driver", func(t *testing.T) {
		cfg := config.Config{DatabaseURL: "mysql://localhost:3306/db"}
		_, err := InitDB(cfg)
		assert.Error(t, err)
	})
}

func TestMigrate(t *testing.T) {
	cfg := config.Config{DatabaseURL: "sqlite://:memory:"}
	db, err := InitDB(cfg)
	assert.NoError(t, err)

	err = Migrate(db)
	assert.NoError(t, err)

	for _, table := range []string{"users", "links", "tokens", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
}

func TestUniqueConstraintTranslation(t *testing.T) {
	cfg := config.Config{DatabaseURL: "sqlite://:memory:"}
	db, _ := InitDB(cfg)
	assert.NoError(t, Migrate(db))

	user := models.User{Username: "alice", Email: "a@x.com", PasswordHash: "h"}
	assert.NoError(t, db.Create(&user).Error)

	dup := models.User{Username: "alice", Email: "other@x.com", PasswordHash: "h"}
	err := db.Create(&dup).Error
	assert.ErrorIs(t, err, gorm.ErrDuplicatedKey)
}
