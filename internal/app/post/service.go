package post

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"postboard/internal/app/db"
	"postboard/internal/app/store"
	"postboard/internal/app/user"
	"postboard/internal/pkg/logx"
)

// ErrNotOwner indicates the acting user tried to create a post for another
// user while ownership enforcement is on.
var ErrNotOwner = errors.New("post user_id does not match the acting user")

// UserDirectory resolves users for authorship checks. Satisfied by
// user.PgRepository.
type UserDirectory interface {
	GetByID(ctx context.Context, q store.Querier, id int64) (user.User, error)
	GetByName(ctx context.Context, q store.Querier, name string) (user.User, error)
}

// Service orchestrates post operations: principal resolution, validation,
// access-layer calls, and transaction commit boundaries.
type Service struct {
	db               store.DB
	repo             Repository
	users            UserDirectory
	enforceOwnership bool
	logger           zerolog.Logger
}

// NewService constructs the post service. enforceOwnership requires a new
// post's user_id to match the acting user.
func NewService(db store.DB, repo Repository, users UserDirectory, enforceOwnership bool) *Service {
	return &Service{
		db:               db,
		repo:             repo,
		users:            users,
		enforceOwnership: enforceOwnership,
		logger:           logx.Logger().With().Str("component", "posts").Logger(),
	}
}

// Create resolves the acting principal, validates the input, verifies that
// the referenced user exists, persists the post, and commits. An unknown
// acting principal fails as a not-found lookup before anything is written.
func (s *Service) Create(ctx context.Context, in Input, actingName string) (Post, error) {
	acting, err := s.users.GetByName(ctx, s.db, actingName)
	if err != nil {
		return Post{}, err
	}

	if err := in.Validate(); err != nil {
		return Post{}, err
	}

	owner, err := s.users.GetByID(ctx, s.db, in.UserID)
	if err != nil {
		return Post{}, err
	}

	if s.enforceOwnership && acting.ID != owner.ID {
		return Post{}, ErrNotOwner
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Post{}, err
	}
	defer tx.Rollback(ctx)

	created, err := s.repo.Insert(ctx, tx, Post{Name: in.Name, Content: in.Content, UserID: in.UserID})
	if err != nil {
		// the referenced user was deleted between the existence check and
		// the insert
		if db.IsForeignKeyViolation(err) {
			return Post{}, fmt.Errorf("%w: user %d", store.ErrNotFound, in.UserID)
		}
		return Post{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Post{}, err
	}

	s.logger.Info().
		Int64("post_id", created.ID).
		Int64("user_id", created.UserID).
		Str("acting_user", actingName).
		Msg("Post created.")
	return created, nil
}

// List returns all posts.
func (s *Service) List(ctx context.Context) ([]Post, error) {
	posts, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, err
	}

	if posts == nil {
		posts = []Post{}
	}

	s.logger.Info().Int("count", len(posts)).Msg("Posts listed.")
	return posts, nil
}

// Get returns the post with the given id.
func (s *Service) Get(ctx context.Context, id int64) (Post, error) {
	return s.repo.GetByID(ctx, s.db, id)
}

// Delete removes the post with the given id and commits.
func (s *Service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := s.repo.Delete(ctx, tx, id); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return err
	}

	s.logger.Info().Int64("post_id", id).Msg("Post deleted.")
	return nil
}

// ListPayload is the full-state message pushed to feed subscribers.
type ListPayload struct {
	Type  string `json:"type"`
	Posts []Post `json:"posts"`
}

// Snapshot marshals the current post list for broadcasting.
func (s *Service) Snapshot(ctx context.Context) ([]byte, error) {
	posts, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	return json.Marshal(ListPayload{Type: "posts", Posts: posts})
}
