package entity

import (
	"slices"
	"time"

	"github.com/google/uuid"
)

type HabitType string

const (
	HabitTypeStudy   HabitType = "Study"
	HabitTypeFitness HabitType = "Fitness"
	HabitTypeLife    HabitType = "Life"
	HabitTypeWork    HabitType = "Work"
)

// Frequency is recorded on the habit, only daily semantics are enforced.
type Frequency string

const (
	FrequencyDaily  Frequency = "Daily"
	FrequencyWeekly Frequency = "Weekly"
	FrequencyCustom Frequency = "Custom"
)

type SubTask struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
}

type Habit struct {
	ID               uuid.UUID `json:"id"`
	UserID           uuid.UUID `json:"uid"`
	Title            string    `json:"title"`
	Description      string    `json:"desc"`
	Type             HabitType `json:"type"`
	Frequency        Frequency `json:"frequency"`
	TargetCount      int       `json:"target_count"`
	CompletedCount   int       `json:"completed_count"`
	SubTasks         []SubTask `json:"subtasks"`
	Streak           int       `json:"streak"`
	LastCheckInDate  *string   `json:"last_check_in_date"`
	IsCompletedToday bool      `json:"is_completed_today"`
	CreatedAt        time.Time `json:"created_at"`
}

// Clone returns a deep copy, so callers never share subtasks or the date pointer.
func (h *Habit) Clone() *Habit {
	if h == nil {
		return nil
	}
	c := *h
	c.SubTasks = slices.Clone(h.SubTasks)
	if h.LastCheckInDate != nil {
		d := *h.LastCheckInDate
		c.LastCheckInDate = &d
	}
	return &c
}

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// CheckInRecord is append-only: created once by the check-in engine, never mutated.
type CheckInRecord struct {
	ID         uuid.UUID `json:"id"`
	HabitID    uuid.UUID `json:"habit_id"`
	UserID     uuid.UUID `json:"uid"`
	Timestamp  int64     `json:"timestamp"`
	DateString string    `json:"date"`
	Note       *string   `json:"note,omitempty"`
	Location   *Location `json:"location,omitempty"`
}

type Rarity string

const (
	RarityCommon    Rarity = "Common"
	RarityRare      Rarity = "Rare"
	RarityEpic      Rarity = "Epic"
	RarityLegendary Rarity = "Legendary"
)

// Rank orders rarities by scarcity, Common is 0.
func (r Rarity) Rank() int {
	switch r {
	case RarityRare:
		return 1
	case RarityEpic:
		return 2
	case RarityLegendary:
		return 3
	default:
		return 0
	}
}

type Card struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Title       string    `json:"title"`
	Rarity      Rarity    `json:"rarity"`
	Value       int       `json:"value"`
	ImageURL    *string   `json:"image_url"`
	Description string    `json:"description"`
	ObtainedAt  int64     `json:"obtained_at"`
}

type User struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	PasswordHash   string    `json:"-"`
	Coins          int       `json:"coins"`
	PetLevel       int       `json:"pet_level"`
	PetExp         int       `json:"pet_exp"`
	PetName        string    `json:"pet_name"`
	EquippedSkin   string    `json:"equipped_skin"`
	Inventory      []string  `json:"inventory"`
	CollectedCards []Card    `json:"collected_cards"`
}

func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	c := *u
	c.Inventory = slices.Clone(u.Inventory)
	c.CollectedCards = slices.Clone(u.CollectedCards)
	return &c
}

type Rewards struct {
	Coins    int  `json:"coins"`
	Exp      int  `json:"exp"`
	LevelUp  bool `json:"level_up"`
	NewLevel *int `json:"new_level,omitempty"`
}

type CheckInResult struct {
	Record       *CheckInRecord `json:"record"`
	UpdatedHabit *Habit         `json:"updated_habit"`
	Rewards      Rewards        `json:"rewards"`
	Warning      string         `json:"warning,omitempty"`
}

type DrawResult struct {
	Card           *Card  `json:"card"`
	RemainingCoins int    `json:"remaining_coins"`
	Warning        string `json:"warning,omitempty"`
}

type EventType string

const (
	EventCheckInCreated EventType = "check_in_created"
	EventPetLeveledUp   EventType = "pet_leveled_up"
	EventCardDrawn      EventType = "card_drawn"
)

// Event is a live notification pushed to the owner's connected clients.
type Event struct {
	Type    EventType `json:"type"`
	Payload any       `json:"payload"`
}
