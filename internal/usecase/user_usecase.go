package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/reviseapp/revise/internal/entity"
	"github.com/reviseapp/revise/internal/repository"
)

// UserUsecase covers account registration, authentication and study
// preference updates.
type UserUsecase interface {
	Register(ctx context.Context, email, username, password string) (*entity.User, error)
	Authenticate(ctx context.Context, email, password string) (*entity.User, error)
	Get(ctx context.Context, userID int64) (*entity.User, error)
	// UpdateStudyHours applies the provided settings, clamped to the
	// allowed bands. Nil pointers leave the current value untouched.
	UpdateStudyHours(ctx context.Context, userID int64, weekday, weekend *float64) (*entity.User, error)
}

// NewUserUsecase wires the repository with default behaviour.
func NewUserUsecase(repo repository.UserRepository) UserUsecase {
	return &userUsecase{repo: repo, clock: time.Now}
}

type userUsecase struct {
	repo  repository.UserRepository
	clock func() time.Time
}

func (u *userUsecase) Register(ctx context.Context, email, username, password string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	username = strings.TrimSpace(username)
	if email == "" || !strings.Contains(email, "@") || username == "" || len(password) < 8 {
		return nil, entity.ErrInvalidCredentials
	}

	existing, err := u.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, entity.ErrDuplicateUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := u.clock()
	return u.repo.Create(ctx, &entity.User{
		Email:             email,
		Username:          username,
		PasswordHash:      string(hash),
		StudyHoursPerDay:  entity.DefaultWeekdayStudyHours,
		WeekendStudyHours: entity.DefaultWeekendStudyHours,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
}

func (u *userUsecase) Authenticate(ctx context.Context, email, password string) (*entity.User, error) {
	user, err := u.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, entity.ErrInvalidCredentials
	}
	return user, nil
}

func (u *userUsecase) Get(ctx context.Context, userID int64) (*entity.User, error) {
	user, err := u.repo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, entity.ErrUserNotFound
	}
	return user, nil
}

func (u *userUsecase) UpdateStudyHours(ctx context.Context, userID int64, weekday, weekend *float64) (*entity.User, error) {
	user, err := u.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if weekday != nil {
		user.StudyHoursPerDay = entity.ClampWeekdayHours(*weekday)
	}
	if weekend != nil {
		user.WeekendStudyHours = entity.ClampWeekendHours(*weekend)
	}
	user.UpdatedAt = u.clock()
	return u.repo.Update(ctx, user)
}
