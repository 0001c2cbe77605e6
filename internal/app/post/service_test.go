package post_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"postboard/internal/app/post"
	"postboard/internal/app/store"
	"postboard/internal/app/store/storetest"
	"postboard/internal/app/user"
)

type mockRepo struct {
	insertFn  func(ctx context.Context, q store.Querier, p post.Post) (post.Post, error)
	listFn    func(ctx context.Context, q store.Querier) ([]post.Post, error)
	getByIDFn func(ctx context.Context, q store.Querier, id int64) (post.Post, error)
	deleteFn  func(ctx context.Context, q store.Querier, id int64) error

	inserts int
	deletes int
}

func (m *mockRepo) Insert(ctx context.Context, q store.Querier, p post.Post) (post.Post, error) {
	m.inserts++
	if m.insertFn != nil {
		return m.insertFn(ctx, q, p)
	}
	p.ID = 1
	return p, nil
}

func (m *mockRepo) List(ctx context.Context, q store.Querier) ([]post.Post, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, nil
}

func (m *mockRepo) GetByID(ctx context.Context, q store.Querier, id int64) (post.Post, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, q, id)
	}
	return post.Post{ID: id}, nil
}

func (m *mockRepo) Delete(ctx context.Context, q store.Querier, id int64) error {
	m.deletes++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, q, id)
	}
	return nil
}

func (m *mockRepo) HasPostsByUser(ctx context.Context, q store.Querier, userID int64) (bool, error) {
	return false, nil
}

// mockDirectory serves user lookups keyed by name and id.
type mockDirectory struct {
	byName map[string]user.User
	byID   map[int64]user.User
}

func (m *mockDirectory) GetByName(ctx context.Context, q store.Querier, name string) (user.User, error) {
	u, ok := m.byName[name]
	if !ok {
		return user.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *mockDirectory) GetByID(ctx context.Context, q store.Querier, id int64) (user.User, error) {
	u, ok := m.byID[id]
	if !ok {
		return user.User{}, store.ErrNotFound
	}
	return u, nil
}

func directoryWith(users ...user.User) *mockDirectory {
	d := &mockDirectory{
		byName: make(map[string]user.User),
		byID:   make(map[int64]user.User),
	}
	for _, u := range users {
		d.byName[u.Name] = u
		d.byID[u.ID] = u
	}
	return d
}

func TestCreate_UnknownActingPrincipal(t *testing.T) {
	db := &storetest.DB{}
	repo := &mockRepo{}
	svc := post.NewService(db, repo, directoryWith(), false)

	_, err := svc.Create(context.Background(), post.Input{Name: "hi", Content: "body", UserID: 1}, "ghost")

	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, repo.inserts, "nothing is written for an unknown principal")
	assert.Zero(t, db.Commits)
}

func TestCreate_Validation(t *testing.T) {
	alice := user.User{ID: 1, Name: "alice"}

	tests := []struct {
		name  string
		input post.Input
	}{
		{"empty name", post.Input{Name: "", Content: "body", UserID: 1}},
		{"empty content", post.Input{Name: "hi", Content: "", UserID: 1}},
		{"zero user_id", post.Input{Name: "hi", Content: "body", UserID: 0}},
		{"negative user_id", post.Input{Name: "hi", Content: "body", UserID: -2}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			db := &storetest.DB{}
			repo := &mockRepo{}
			svc := post.NewService(db, repo, directoryWith(alice), false)

			_, err := svc.Create(context.Background(), tc.input, "alice")

			require.ErrorIs(t, err, post.ErrInvalidInput)
			assert.Zero(t, repo.inserts)
			assert.Zero(t, db.Commits)
		})
	}
}

func TestCreate_MissingOwner(t *testing.T) {
	alice := user.User{ID: 1, Name: "alice"}
	db := &storetest.DB{}
	repo := &mockRepo{}
	svc := post.NewService(db, repo, directoryWith(alice), false)

	_, err := svc.Create(context.Background(), post.Input{Name: "hi", Content: "body", UserID: 42}, "alice")

	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, repo.inserts)
}

func TestCreate_OwnershipEnforced(t *testing.T) {
	alice := user.User{ID: 1, Name: "alice"}
	bob := user.User{ID: 2, Name: "bob"}
	db := &storetest.DB{}
	repo := &mockRepo{}
	svc := post.NewService(db, repo, directoryWith(alice, bob), true)

	_, err := svc.Create(context.Background(), post.Input{Name: "hi", Content: "body", UserID: bob.ID}, "alice")

	require.ErrorIs(t, err, post.ErrNotOwner)
	assert.Zero(t, repo.inserts)
	assert.Zero(t, db.Commits)
}

func TestCreate_OwnershipNotEnforced(t *testing.T) {
	alice := user.User{ID: 1, Name: "alice"}
	bob := user.User{ID: 2, Name: "bob"}
	db := &storetest.DB{}
	repo := &mockRepo{}
	svc := post.NewService(db, repo, directoryWith(alice, bob), false)

	created, err := svc.Create(context.Background(), post.Input{Name: "hi", Content: "body", UserID: bob.ID}, "alice")

	require.NoError(t, err)
	assert.Equal(t, bob.ID, created.UserID)
	assert.Equal(t, 1, db.Commits)
}

func TestCreate_Success(t *testing.T) {
	alice := user.User{ID: 1, Name: "alice"}
	db := &storetest.DB{}
	repo := &mockRepo{
		insertFn: func(_ context.Context, _ store.Querier, p post.Post) (post.Post, error) {
			p.ID = 11
			return p, nil
		},
	}
	svc := post.NewService(db, repo, directoryWith(alice), true)

	created, err := svc.Create(context.Background(), post.Input{Name: "hi", Content: "body", UserID: alice.ID}, "alice")

	require.NoError(t, err)
	assert.Equal(t, int64(11), created.ID)
	assert.Equal(t, "hi", created.Name)
	assert.Equal(t, 1, db.Commits, "create commits its transaction")
}

func TestList_NeverNil(t *testing.T) {
	svc := post.NewService(&storetest.DB{}, &mockRepo{}, directoryWith(), false)

	posts, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, posts)
	assert.Empty(t, posts)
}

func TestDelete_Success(t *testing.T) {
	db := &storetest.DB{}
	repo := &mockRepo{}
	svc := post.NewService(db, repo, directoryWith(), false)

	err := svc.Delete(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, 1, repo.deletes)
	assert.Equal(t, 1, db.Commits)
}

func TestDelete_NotFoundIsNotCommitted(t *testing.T) {
	db := &storetest.DB{}
	repo := &mockRepo{
		deleteFn: func(_ context.Context, _ store.Querier, _ int64) error {
			return store.ErrNotFound
		},
	}
	svc := post.NewService(db, repo, directoryWith(), false)

	err := svc.Delete(context.Background(), 3)

	require.ErrorIs(t, err, store.ErrNotFound)
	assert.Zero(t, db.Commits)
}

func TestSnapshot_EmptyList(t *testing.T) {
	svc := post.NewService(&storetest.DB{}, &mockRepo{}, directoryWith(), false)

	payload, err := svc.Snapshot(context.Background())

	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"posts","posts":[]}`, string(payload))
}

func TestSnapshot_CarriesPosts(t *testing.T) {
	repo := &mockRepo{
		listFn: func(_ context.Context, _ store.Querier) ([]post.Post, error) {
			return []post.Post{
				{ID: 1, Name: "first", Content: "hello", UserID: 1},
				{ID: 2, Name: "second", Content: "world", UserID: 1},
			}, nil
		},
	}
	svc := post.NewService(&storetest.DB{}, repo, directoryWith(), false)

	payload, err := svc.Snapshot(context.Background())

	require.NoError(t, err)

	var got post.ListPayload
	require.NoError(t, json.Unmarshal(payload, &got))
	assert.Equal(t, "posts", got.Type)
	require.Len(t, got.Posts, 2)
	assert.Equal(t, "first", got.Posts[0].Name)
	assert.Equal(t, "second", got.Posts[1].Name)
}
