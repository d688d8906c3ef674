package postgres

import (
	"database/sql"

	"fixwize-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.OrganizationRepository
	repository.PartRequestRepository
	repository.QuoteRepository
	repository.MemberRepository
	repository.ActivityRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                     db,
		OrganizationRepository: NewOrganizationRepository(db),
		PartRequestRepository:  NewPartRequestRepository(db),
		QuoteRepository:        NewQuoteRepository(db),
		MemberRepository:       NewMemberRepository(db),
		ActivityRepository:     NewActivityRepository(db),
	}
}
