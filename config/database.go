package config

import (
	"github.com/naolatam/SN-radio-sub000/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the Postgres connection and keeps the schema in sync with
// the models. TranslateError is on so unique-constraint violations surface
// as gorm.ErrDuplicatedKey, which the like toggle depends on.
func InitDB(cfg DatabaseConfig) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	if err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Article{},
		&models.ArticleLike{},
		&models.Theme{},
	); err != nil {
		return nil, err
	}

	return db, nil
}
