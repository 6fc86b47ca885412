package db

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
)

// driverName is a variable so tests can swap in the sqlmock driver.
var driverName = "postgres"

// Connect opens a Postgres connection pool and verifies it with a ping.
// On ping failure the pool is closed before returning the error.
func Connect(host, port, name, user, password string, maxOpen, maxIdle int) (*sql.DB, error) {
	db, err := sql.Open(driverName, DSN(host, port, name, user, password))
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// DSN builds a lib/pq key-value connection string.
func DSN(host, port, name, user, password string) string {
	return fmt.Sprintf(
		"host=%s port=%s dbname=%s user=%s password=%s sslmode=disable",
		host, port, name, user, password,
	)
}
