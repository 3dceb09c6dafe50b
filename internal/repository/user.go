package repository

import (
	"context"

	"github.com/reviseapp/revise/internal/entity"
)

// UserRepository persists accounts and their study preferences.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) (*entity.User, error)
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) (*entity.User, error)
}
