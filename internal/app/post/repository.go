package post

import (
	"context"

	"postboard/internal/app/store"
)

// Repository is the persistence boundary for posts.
type Repository interface {
	Insert(ctx context.Context, q store.Querier, p Post) (Post, error)
	List(ctx context.Context, q store.Querier) ([]Post, error)
	GetByID(ctx context.Context, q store.Querier, id int64) (Post, error)
	Delete(ctx context.Context, q store.Querier, id int64) error
}

// PgRepository implements Repository on the generic access layer. It also
// satisfies user.ReferenceChecker via HasPostsByUser.
type PgRepository struct{}

func (PgRepository) Insert(ctx context.Context, q store.Querier, p Post) (Post, error) {
	return store.Insert(ctx, q, Desc, p)
}

func (PgRepository) List(ctx context.Context, q store.Querier) ([]Post, error) {
	return store.Fetch(ctx, q, Desc, nil, store.AnyCount)
}

func (PgRepository) GetByID(ctx context.Context, q store.Querier, id int64) (Post, error) {
	posts, err := store.Fetch(ctx, q, Desc, []store.Predicate{store.Eq("id", id)}, 1)
	if err != nil {
		return Post{}, err
	}
	return posts[0], nil
}

func (PgRepository) Delete(ctx context.Context, q store.Querier, id int64) error {
	return store.Remove(ctx, q, Desc, []store.Predicate{store.Eq("id", id)})
}

// HasPostsByUser reports whether any post references the given user.
func (PgRepository) HasPostsByUser(ctx context.Context, q store.Querier, userID int64) (bool, error) {
	posts, err := store.Fetch(ctx, q, Desc, []store.Predicate{store.Eq("user_id", userID)}, store.AnyCount)
	if err != nil {
		return false, err
	}
	return len(posts) > 0, nil
}
