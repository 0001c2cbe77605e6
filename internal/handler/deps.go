package handler

import (
	"context"

	"postboard/internal/app/feed"
	"postboard/internal/app/post"
	"postboard/internal/app/user"
	"postboard/internal/configs"
)

// UserService is the user operations surface the handlers need.
type UserService interface {
	Create(ctx context.Context, in user.Input) (user.User, error)
	List(ctx context.Context) ([]user.User, error)
	Get(ctx context.Context, id int64) (user.User, error)
	GetByName(ctx context.Context, name string) (user.User, error)
	Delete(ctx context.Context, id int64) error
}

// PostService is the post operations surface the handlers need.
type PostService interface {
	Create(ctx context.Context, in post.Input, actingName string) (post.Post, error)
	List(ctx context.Context) ([]post.Post, error)
	Get(ctx context.Context, id int64) (post.Post, error)
	Delete(ctx context.Context, id int64) error
}

// AppDeps carries the wired application dependencies into the handlers.
type AppDeps struct {
	Users  UserService
	Posts  PostService
	Feed   *feed.Registry
	Config *configs.AppConfig
}
