package user

import (
	"context"

	"postboard/internal/app/store"
)

// Repository is the persistence boundary for users. The Querier parameter
// lets the caller run an operation inside or outside a transaction.
type Repository interface {
	Insert(ctx context.Context, q store.Querier, u User) (User, error)
	List(ctx context.Context, q store.Querier) ([]User, error)
	GetByID(ctx context.Context, q store.Querier, id int64) (User, error)
	GetByName(ctx context.Context, q store.Querier, name string) (User, error)
	Delete(ctx context.Context, q store.Querier, id int64) error
}

// PgRepository implements Repository on the generic access layer.
type PgRepository struct{}

func (PgRepository) Insert(ctx context.Context, q store.Querier, u User) (User, error) {
	return store.Insert(ctx, q, Desc, u)
}

func (PgRepository) List(ctx context.Context, q store.Querier) ([]User, error) {
	return store.Fetch(ctx, q, Desc, nil, store.AnyCount)
}

func (PgRepository) GetByID(ctx context.Context, q store.Querier, id int64) (User, error) {
	users, err := store.Fetch(ctx, q, Desc, []store.Predicate{store.Eq("id", id)}, 1)
	if err != nil {
		return User{}, err
	}
	return users[0], nil
}

func (PgRepository) GetByName(ctx context.Context, q store.Querier, name string) (User, error) {
	users, err := store.Fetch(ctx, q, Desc, []store.Predicate{store.Eq("name", name)}, 1)
	if err != nil {
		return User{}, err
	}
	return users[0], nil
}

func (PgRepository) Delete(ctx context.Context, q store.Querier, id int64) error {
	return store.Remove(ctx, q, Desc, []store.Predicate{store.Eq("id", id)})
}
