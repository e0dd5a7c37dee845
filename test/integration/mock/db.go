// Package mock provides test doubles for the integration suite.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/easyimob/backend/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

// Db wraps an in-memory SQLite database migrated to the application schema.
// A single shared instance backs all scenarios; Reset wipes it between them.
type Db struct {
	DbConn *gorm.DB
	sqlDB  *sql.DB
	models []any
}

// NewDb opens (once) the shared in-memory test database.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	// One pooled connection keeps the in-memory schema alive.
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	newDb := &Db{
		DbConn: dbConn,
		sqlDB:  dbSQL,
		models: []any{
			&model.PropertyTypeModel{},
			&model.PropertyModel{},
			&model.SalePaymentModel{},
		},
	}

	if err := dbConn.AutoMigrate(newDb.models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database. err: %s", err.Error()))
	}

	return newDb
}

// Reset removes all rows so each scenario starts from an empty dataset.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", m, err)
		}
	}
	return nil
}

// HealthCheck pings the underlying connection.
func (d *Db) HealthCheck() bool {
	return d.sqlDB.Ping() == nil
}
