//go:build integration

package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

var once sync.Once
var db *Db

type Db struct {
	DbConn *gorm.DB
}

// NewDb returns the shared in-memory sqlite database with the blobs table migrated.
func NewDb() *Db {
	once.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
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

	if err := dbConn.AutoMigrate(&model.BlobModel{}); err != nil {
		panic(fmt.Sprintf("failed to migrate database. err: %s", err.Error()))
	}

	return &Db{DbConn: dbConn}
}

// ClearDB removes every stored blob.
func (d *Db) ClearDB() error {
	return d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.BlobModel{}).Error
}

// CountBlobs returns the number of rows in the blobs table.
func (d *Db) CountBlobs() (int64, error) {
	var count int64
	err := d.DbConn.Model(&model.BlobModel{}).Count(&count).Error
	return count, err
}
