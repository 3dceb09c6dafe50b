package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/reviseapp/revise/internal/entity"
	entdb "github.com/reviseapp/revise/internal/infrastructure/database/ent"
	entuser "github.com/reviseapp/revise/internal/infrastructure/database/ent/user"
	"github.com/reviseapp/revise/internal/repository"
)

type userRepository struct {
	client *entdb.Client
}

// NewUserRepository constructs an ent-backed repository.
func NewUserRepository(client *entdb.Client) repository.UserRepository {
	return &userRepository{client: client}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) (*entity.User, error) {
	row, err := r.client.User.Create().
		SetEmail(user.Email).
		SetUsername(user.Username).
		SetPasswordHash(user.PasswordHash).
		SetStudyHoursPerDay(user.StudyHoursPerDay).
		SetWeekendStudyHours(user.WeekendStudyHours).
		Save(ctx)
	if err != nil {
		return nil, translateUserError(err)
	}
	created := mapEntUser(row)
	return &created, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	row, err := r.client.User.Query().
		Where(entuser.IDEQ(int(id))).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	user := mapEntUser(row)
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	row, err := r.client.User.Query().
		Where(entuser.EmailEQ(email)).
		Only(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	user := mapEntUser(row)
	return &user, nil
}

func (r *userRepository) Update(ctx context.Context, user *entity.User) (*entity.User, error) {
	row, err := r.client.User.UpdateOneID(int(user.ID)).
		SetUsername(user.Username).
		SetPasswordHash(user.PasswordHash).
		SetStudyHoursPerDay(user.StudyHoursPerDay).
		SetWeekendStudyHours(user.WeekendStudyHours).
		Save(ctx)
	if err != nil {
		if entdb.IsNotFound(err) {
			return nil, entity.ErrUserNotFound
		}
		return nil, translateUserError(err)
	}
	updated := mapEntUser(row)
	return &updated, nil
}

// translateUserError maps driver-level unique violations onto the domain
// sentinel, for both supported drivers.
func translateUserError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return entity.ErrDuplicateUser
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return entity.ErrDuplicateUser
	}
	if entdb.IsConstraintError(err) {
		return entity.ErrDuplicateUser
	}
	return err
}

func mapEntUser(row *entdb.User) entity.User {
	return entity.User{
		ID:                int64(row.ID),
		Email:             row.Email,
		Username:          row.Username,
		PasswordHash:      row.PasswordHash,
		StudyHoursPerDay:  row.StudyHoursPerDay,
		WeekendStudyHours: row.WeekendStudyHours,
		CreatedAt:         row.CreatedAt,
		UpdatedAt:         row.UpdatedAt,
	}
}
