package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reviseapp/revise/internal/entity"
)

func newUserFixture() (*userUsecase, *fakeUserRepo) {
	users := newFakeUserRepo()
	uc := NewUserUsecase(users).(*userUsecase)
	uc.clock = func() time.Time { return time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC) }
	return uc, users
}

func TestRegisterAndAuthenticate(t *testing.T) {
	uc, _ := newUserFixture()
	ctx := context.Background()

	user, err := uc.Register(ctx, "  Amy@Example.com ", "amy", "correct horse battery")
	if err != nil {
		t.Fatal(err)
	}
	if user.Email != "amy@example.com" {
		t.Errorf("email = %q, want normalised lowercase", user.Email)
	}
	if user.PasswordHash == "correct horse battery" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if user.StudyHoursPerDay != entity.DefaultWeekdayStudyHours || user.WeekendStudyHours != entity.DefaultWeekendStudyHours {
		t.Errorf("defaults not applied: %+v", user)
	}

	got, err := uc.Authenticate(ctx, "amy@example.com", "correct horse battery")
	if err != nil {
		t.Fatal(err)
	}
	if got.ID != user.ID {
		t.Fatalf("authenticated as %d, want %d", got.ID, user.ID)
	}

	if _, err := uc.Authenticate(ctx, "amy@example.com", "wrong"); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", err)
	}
	if _, err := uc.Authenticate(ctx, "nobody@example.com", "correct horse battery"); !errors.Is(err, entity.ErrInvalidCredentials) {
		t.Fatalf("unknown email: want ErrInvalidCredentials, got %v", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	uc, _ := newUserFixture()
	ctx := context.Background()

	cases := []struct {
		name                      string
		email, username, password string
	}{
		{"empty email", "", "amy", "long enough pw"},
		{"malformed email", "not-an-email", "amy", "long enough pw"},
		{"empty username", "amy@example.com", "", "long enough pw"},
		{"short password", "amy@example.com", "amy", "short"},
	}
	for _, c := range cases {
		if _, err := uc.Register(ctx, c.email, c.username, c.password); !errors.Is(err, entity.ErrInvalidCredentials) {
			t.Errorf("%s: want ErrInvalidCredentials, got %v", c.name, err)
		}
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	uc, _ := newUserFixture()
	ctx := context.Background()
	if _, err := uc.Register(ctx, "amy@example.com", "amy", "long enough pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := uc.Register(ctx, "AMY@example.com", "amy2", "long enough pw"); !errors.Is(err, entity.ErrDuplicateUser) {
		t.Fatalf("want ErrDuplicateUser, got %v", err)
	}
}

func TestUpdateStudyHoursClampsAndKeeps(t *testing.T) {
	uc, _ := newUserFixture()
	ctx := context.Background()
	user, err := uc.Register(ctx, "amy@example.com", "amy", "long enough pw")
	if err != nil {
		t.Fatal(err)
	}

	weekday := 20.0
	updated, err := uc.UpdateStudyHours(ctx, user.ID, &weekday, nil)
	if err != nil {
		t.Fatal(err)
	}
	if updated.StudyHoursPerDay != entity.MaxStudyHours {
		t.Errorf("weekday hours = %v, want clamped to %v", updated.StudyHoursPerDay, float64(entity.MaxStudyHours))
	}
	if updated.WeekendStudyHours != entity.DefaultWeekendStudyHours {
		t.Errorf("weekend hours = %v, nil pointer should leave them untouched", updated.WeekendStudyHours)
	}

	weekend := -1.0
	updated, err = uc.UpdateStudyHours(ctx, user.ID, nil, &weekend)
	if err != nil {
		t.Fatal(err)
	}
	if updated.WeekendStudyHours != entity.MinWeekendStudyHours {
		t.Errorf("weekend hours = %v, want clamped to %v", updated.WeekendStudyHours, float64(entity.MinWeekendStudyHours))
	}
}

func TestUpdateStudyHoursUnknownUser(t *testing.T) {
	uc, _ := newUserFixture()
	weekday := 2.0
	if _, err := uc.UpdateStudyHours(context.Background(), 99, &weekday, nil); !errors.Is(err, entity.ErrUserNotFound) {
		t.Fatalf("want ErrUserNotFound, got %v", err)
	}
}
