package database

import (
	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/DedS3t/disney-monopoly/platform/config"
	"github.com/go-pg/pg/v10"
	"github.com/go-pg/pg/v10/orm"
)

func PostgreSQLConnection(cfg config.Config) *pg.DB {
	return pg.Connect(&pg.Options{
		User:     cfg.DBUser,
		Addr:     cfg.DBAddr,
		Password: cfg.DBPassword,
		Database: cfg.DBName,
	})
}

// CreateSchema creates the tables the server writes to when they are missing.
func CreateSchema(db *pg.DB) error {
	for _, model := range []interface{}{(*models.Game)(nil)} {
		err := db.Model(model).CreateTable(&orm.CreateTableOptions{IfNotExists: true})
		if err != nil {
			return err
		}
	}
	return nil
}
