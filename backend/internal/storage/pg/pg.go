package pg

import (
	"database/sql"
	"log"

	"github.com/oremod/oremod/shared/config"
	sharedpg "github.com/oremod/oremod/shared/storage/pg"
)

type Storage struct {
	db *sql.DB
}

func New(cfg *config.Config) (*Storage, error) {
	log.Print("Connecting to db")
	db, err := sharedpg.Connect(cfg, sharedpg.DefaultConnectionConfig())
	if err != nil {
		return nil, err
	}
	log.Print("Succesfully connected to db")
	return &Storage{db}, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping verifies the backing connection, used by the health endpoint.
func (s *Storage) Ping() error {
	return s.db.Ping()
}
