package handlers

import (
	"github.com/uptrace/bun"

	"github.com/hkracing/racesignal/analysis"
	"github.com/hkracing/racesignal/store"
)

// Handler holds shared dependencies used by all route handlers.
type Handler struct {
	db       *bun.DB
	store    *store.Store
	analyzer *analysis.Analyzer
	JWTKey   []byte
}

// New creates a Handler with the given database connection, analyzer and JWT
// signing key.
func New(db *bun.DB, analyzer *analysis.Analyzer, jwtKey []byte) *Handler {
	return &Handler{
		db:       db,
		store:    store.New(db),
		analyzer: analyzer,
		JWTKey:   jwtKey,
	}
}
