package user

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"postboard/internal/app/db"
	"postboard/internal/app/store"
	"postboard/internal/pkg/logx"
)

// ErrReferenced indicates a user cannot be deleted while posts reference it.
var ErrReferenced = errors.New("user is still referenced by posts")

// ReferenceChecker reports whether any post still references the given user.
// Implemented by the post repository; an interface here avoids a package cycle.
type ReferenceChecker interface {
	HasPostsByUser(ctx context.Context, q store.Querier, userID int64) (bool, error)
}

// Service orchestrates user operations: validation, access-layer calls, and
// transaction commit boundaries.
type Service struct {
	db     store.DB
	repo   Repository
	refs   ReferenceChecker
	logger zerolog.Logger
}

// NewService constructs the user service.
func NewService(db store.DB, repo Repository, refs ReferenceChecker) *Service {
	return &Service{
		db:     db,
		repo:   repo,
		refs:   refs,
		logger: logx.Logger().With().Str("component", "users").Logger(),
	}
}

// Create validates the input, persists a new user, and commits.
func (s *Service) Create(ctx context.Context, in Input) (User, error) {
	if err := in.Validate(); err != nil {
		return User{}, err
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return User{}, err
	}
	defer tx.Rollback(ctx)

	created, err := s.repo.Insert(ctx, tx, User{Name: in.Name, Password: in.Password})
	if err != nil {
		return User{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return User{}, err
	}

	s.logger.Info().Int64("user_id", created.ID).Str("name", created.Name).Msg("User created.")
	return created, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if users == nil {
		users = []User{}
	}

	s.logger.Info().Int("count", len(users)).Msg("Users listed.")
	return users, nil
}

// Get returns the user with the given id.
func (s *Service) Get(ctx context.Context, id int64) (User, error) {
	return s.repo.GetByID(ctx, s.db, id)
}

// GetByName returns the user with the given name. Used by authentication and
// by post creation to resolve the acting principal.
func (s *Service) GetByName(ctx context.Context, name string) (User, error) {
	return s.repo.GetByName(ctx, s.db, name)
}

// Delete removes the user with the given id and commits. Deletion is rejected
// with ErrReferenced while any post references the user; the posts table's
// ON DELETE RESTRICT backs the same rule at the store.
func (s *Service) Delete(ctx context.Context, id int64) error {
	referenced, err := s.refs.HasPostsByUser(ctx, s.db, id)
	if err != nil {
		return err
	}
	if referenced {
		return ErrReferenced
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Delete(ctx, tx, id); err != nil {
		// a post created between the reference check and the delete trips
		// the ON DELETE RESTRICT constraint
		if db.IsForeignKeyViolation(err) {
			return ErrReferenced
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.logger.Info().Int64("user_id", id).Msg("User deleted.")
	return nil
}
