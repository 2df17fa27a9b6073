package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/anonymity12/habitplanet/pkg/entity"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// CreateHabitRequest carries the user-provided fields. Zero values fall back to
// the habit defaults.
type CreateHabitRequest struct {
	Title       string           `json:"title" validate:"max=200"`
	Description string           `json:"desc" validate:"max=2000"`
	Type        entity.HabitType `json:"type" validate:"omitempty,oneof=Study Fitness Life Work"`
	Frequency   entity.Frequency `json:"frequency" validate:"omitempty,oneof=Daily Weekly Custom"`
	TargetCount int              `json:"target_count" validate:"gte=0,lte=1000"`
	SubTasks    []string         `json:"subtasks" validate:"max=50,dive,required,max=200"`
}

type CheckInRequest struct {
	Note *string  `json:"note,omitempty" validate:"omitempty,max=1000"`
	Lat  *float64 `json:"lat,omitempty" validate:"omitempty,latitude"`
	Lng  *float64 `json:"lng,omitempty" validate:"omitempty,longitude"`
}

type UserServiceI interface {
	// Validates credentials and creates the user with the starting profile
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, gives back the user's profile
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetProfile(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Returns the check-in log in creation order
	GetStats(ctx context.Context, uid uuid.UUID) ([]*entity.CheckInRecord, error)
}

type HabitsServiceI interface {
	// Returns habits newest first with the day rollover applied
	ListHabits(ctx context.Context, uid uuid.UUID) ([]*entity.Habit, error)
	CreateHabit(ctx context.Context, uid uuid.UUID, req *CreateHabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, uid, habitID uuid.UUID) error
	ToggleSubtask(ctx context.Context, uid, habitID, subtaskID uuid.UUID) (*entity.Habit, error)
}

type CheckInServiceI interface {
	CheckIn(ctx context.Context, uid, habitID uuid.UUID, req *CheckInRequest) (*entity.CheckInResult, error)
}

type GachaServiceI interface {
	Draw(ctx context.Context, uid uuid.UUID) (*entity.DrawResult, error)
}

type AdviceServiceI interface {
	// Never fails because of the generator, only when the user is unknown
	GetAdvice(ctx context.Context, uid uuid.UUID) (string, error)
}

// Notifier delivers live events to the user's connected clients.
type Notifier interface {
	Notify(uid uuid.UUID, event entity.Event)
}

// AdviceGenerator turns a coaching prompt into advice text.
type AdviceGenerator interface {
	Advice(ctx context.Context, prompt string) (string, error)
}

// ArtGenerator produces an image reference for a card figure.
type ArtGenerator interface {
	CardArt(ctx context.Context, name, title string) (string, error)
}

type nopNotifier struct{}

func (nopNotifier) Notify(uuid.UUID, entity.Event) {}
