package store

import (
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/maisonbelle/salon-api/internal/config"
	dbpkg "github.com/maisonbelle/salon-api/internal/db"
)

var (
	// ErrUnavailable is returned by mutations when no database is configured
	// or the connection could not be established.
	ErrUnavailable = errors.New("database not available")

	ErrNotFound = gorm.ErrRecordNotFound
)

// Store is the data-access layer. The GORM handle is opened lazily exactly
// once; when it cannot be opened, queries degrade to empty results and
// mutations fail with ErrUnavailable.
type Store struct {
	cfg  *config.Config
	once sync.Once
	db   *gorm.DB
}

func New(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// NewWithDB builds a store around an existing handle. Used by tests.
func NewWithDB(db *gorm.DB, cfg *config.Config) *Store {
	return &Store{cfg: cfg, db: db}
}

func (s *Store) handle() *gorm.DB {
	s.once.Do(func() {
		if s.db == nil && s.cfg != nil {
			s.db = dbpkg.Open(s.cfg)
		}
	})
	return s.db
}

// Available reports whether a database handle could be established.
func (s *Store) Available() bool {
	return s.handle() != nil
}
