package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"postboard/internal/app/feed"
	"postboard/internal/app/post"
	"postboard/internal/app/user"
	"postboard/internal/configs"
	"postboard/internal/handler"
	"postboard/internal/pkg/auth/jwt"
)

const testSecret = "test-secret"

type mockUsers struct {
	createFn    func(ctx context.Context, in user.Input) (user.User, error)
	listFn      func(ctx context.Context) ([]user.User, error)
	getFn       func(ctx context.Context, id int64) (user.User, error)
	getByNameFn func(ctx context.Context, name string) (user.User, error)
	deleteFn    func(ctx context.Context, id int64) error
}

func (m *mockUsers) Create(ctx context.Context, in user.Input) (user.User, error) {
	return m.createFn(ctx, in)
}

func (m *mockUsers) List(ctx context.Context) ([]user.User, error) {
	return m.listFn(ctx)
}

func (m *mockUsers) Get(ctx context.Context, id int64) (user.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUsers) GetByName(ctx context.Context, name string) (user.User, error) {
	return m.getByNameFn(ctx, name)
}

func (m *mockUsers) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockPosts struct {
	createFn func(ctx context.Context, in post.Input, actingName string) (post.Post, error)
	listFn   func(ctx context.Context) ([]post.Post, error)
	getFn    func(ctx context.Context, id int64) (post.Post, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockPosts) Create(ctx context.Context, in post.Input, actingName string) (post.Post, error) {
	return m.createFn(ctx, in, actingName)
}

func (m *mockPosts) List(ctx context.Context) ([]post.Post, error) {
	return m.listFn(ctx)
}

func (m *mockPosts) Get(ctx context.Context, id int64) (post.Post, error) {
	return m.getFn(ctx, id)
}

func (m *mockPosts) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

// testDeps bundles the wired dependencies with the broadcast counter so tests
// can observe feed notifications.
type testDeps struct {
	deps       *handler.AppDeps
	broadcasts *int
}

func newTestDeps(t *testing.T, users *mockUsers, posts *mockPosts) testDeps {
	t.Helper()

	broadcasts := 0
	registry := feed.NewRegistry(func(ctx context.Context) ([]byte, error) {
		broadcasts++
		return []byte(`{"type":"posts","posts":[]}`), nil
	})
	t.Cleanup(registry.Shutdown)

	return testDeps{
		deps: &handler.AppDeps{
			Users: users,
			Posts: posts,
			Feed:  registry,
			Config: &configs.AppConfig{
				Environment:    "development",
				Port:           8080,
				AllowedOrigins: []string{},
				JWTSecret:      testSecret,
			},
		},
		broadcasts: &broadcasts,
	}
}

func doRequest(t *testing.T, h http.Handler, method, target string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors resp.JSONResponse with the data left raw for per-test decoding.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func bearerFor(t *testing.T, name, password string) string {
	t.Helper()

	token, err := jwt.GenerateToken(&jwt.Payload{Name: name, Password: password}, testSecret, time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}
