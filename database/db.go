package database

import (
	"database/sql"
	"sync"

	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/PIG208/Airbook/config"
)

// Package-level singleton so every consumer shares one connection pool.
var instance *Datasource
var once sync.Once

// Datasource is the only component that talks to MySQL. Everything above
// it hands over finished (sql, params) pairs and gets rows back.
type Datasource struct {
	Conn *sql.DB
}

func NewDataSource(configuration *config.Configuration) (IDataSource, error) {
	con, err := GetDBConnection(configuration)
	if err != nil {
		return nil, err
	}
	return con, nil
}

// GetDBConnection provides the shared Datasource, connecting and
// bootstrapping the schema on first use.
func GetDBConnection(configuration *config.Configuration) (*Datasource, error) {
	var err error
	once.Do(func() {
		con, errConn := ConnectDB(configuration.DataSource.Dns)
		if errConn != nil {
			err = errConn
			return
		}
		instance = &Datasource{Conn: con}
	})
	if err != nil {
		return nil, err
	}
	return instance, nil
}

func ConnectDB(dns string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dns)
	if err != nil {
		return nil, errors.Wrap(err, "opening database")
	}
	if err := db.Ping(); err != nil {
		logrus.WithError(err).Error("database connection failed")
		return nil, errors.Wrap(err, "pinging database")
	}
	if err := bootstrapSchema(db); err != nil {
		return nil, err
	}
	return db, nil
}
