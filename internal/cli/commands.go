package cli

import (
	"strings"

	"github.com/google/uuid"

	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

type RegisterCmd struct {
	Name     string `arg:"" help:"Account name."`
	Password string `help:"Account password." required:""`
}

func (c *RegisterCmd) Run(ctx *Context) error {
	user, err := ctx.Users.Register(ctx.Ctx, &service.RegisterRequest{Name: c.Name, Password: c.Password})
	if err != nil {
		return err
	}
	ctx.printf("%s %s with %d coins, %s the pet is waiting.\n",
		headerStyle.Render("Welcome"), user.Name, user.Coins, user.PetName)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	habits, err := ctx.Habits.ListHabits(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		ctx.printf("No habits yet\n")
		return nil
	}
	ctx.printf("%s\n", headerStyle.Render("Habits:"))
	for _, h := range habits {
		status := mutedStyle.Render("todo")
		if h.IsCompletedToday {
			status = doneStyle.Render("done")
		}
		ctx.printf("  [%s] %s (%s) streak %d, %d/%d today  %s\n",
			status, h.Title, h.Type, h.Streak, h.CompletedCount, h.TargetCount, mutedStyle.Render(h.ID.String()))
		for _, st := range h.SubTasks {
			mark := " "
			if st.IsCompleted {
				mark = "x"
			}
			ctx.printf("      [%s] %s  %s\n", mark, st.Title, mutedStyle.Render(st.ID.String()))
		}
	}
	return nil
}

type HabitAddCmd struct {
	Title    string           `arg:"" optional:"" help:"Habit title."`
	Desc     string           `help:"Description."`
	Type     entity.HabitType `help:"Study, Fitness, Life or Work."`
	Target   int              `help:"Check-ins per day." default:"1"`
	Subtasks []string         `help:"Subtask titles." name:"subtask"`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	habit, err := ctx.Habits.CreateHabit(ctx.Ctx, uid, &service.CreateHabitRequest{
		Title:       c.Title,
		Description: c.Desc,
		Type:        c.Type,
		TargetCount: c.Target,
		SubTasks:    c.Subtasks,
	})
	if err != nil {
		return err
	}
	ctx.printf("Created %s %s\n", habit.Title, mutedStyle.Render(habit.ID.String()))
	return nil
}

type HabitDeleteCmd struct {
	ID uuid.UUID `arg:"" help:"Habit id."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	if err = ctx.Habits.DeleteHabit(ctx.Ctx, uid, c.ID); err != nil {
		return err
	}
	ctx.printf("Deleted %s\n", c.ID)
	return nil
}

type HabitToggleCmd struct {
	HabitID   uuid.UUID `arg:"" help:"Habit id."`
	SubtaskID uuid.UUID `arg:"" help:"Subtask id."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	habit, err := ctx.Habits.ToggleSubtask(ctx.Ctx, uid, c.HabitID, c.SubtaskID)
	if err != nil {
		return err
	}
	for _, st := range habit.SubTasks {
		if st.ID == c.SubtaskID {
			ctx.printf("%s: %s completed=%t\n", habit.Title, st.Title, st.IsCompleted)
		}
	}
	return nil
}

type CheckinCmd struct {
	HabitID  uuid.UUID `arg:"" help:"Habit id."`
	Note     string    `help:"Note for the record."`
	Location string    `help:"Where it happened, as lat,lng."`
}

func (c *CheckinCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	lat, lng, err := parseLocation(c.Location)
	if err != nil {
		return err
	}
	req := &service.CheckInRequest{Lat: lat, Lng: lng}
	if c.Note != "" {
		req.Note = &c.Note
	}
	result, err := ctx.CheckIns.CheckIn(ctx.Ctx, uid, c.HabitID, req)
	if err != nil {
		return err
	}
	ctx.printf("%s %s, streak %d\n", doneStyle.Render("Checked in"), result.UpdatedHabit.Title, result.UpdatedHabit.Streak)
	ctx.printf("  +%d coins, +%d exp\n", result.Rewards.Coins, result.Rewards.Exp)
	if result.Rewards.LevelUp && result.Rewards.NewLevel != nil {
		ctx.printf("  %s your pet reached level %d\n", headerStyle.Render("Level up!"), *result.Rewards.NewLevel)
	}
	if result.Warning != "" {
		ctx.printf("  %s\n", warnStyle.Render(result.Warning))
	}
	return nil
}

type DrawCmd struct{}

func (c *DrawCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	result, err := ctx.Gacha.Draw(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	card := result.Card
	ctx.printf("[%s] %s, %s  value %d\n", rarity(card.Rarity), card.Name, card.Title, card.Value)
	if card.ImageURL != nil && !strings.HasPrefix(*card.ImageURL, "data:") {
		ctx.printf("  art: %s\n", *card.ImageURL)
	}
	ctx.printf("  %d coins left\n", result.RemainingCoins)
	if result.Warning != "" {
		ctx.printf("  %s\n", warnStyle.Render(result.Warning))
	}
	return nil
}

type ProfileCmd struct{}

func (c *ProfileCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	user, err := ctx.Users.GetProfile(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	ctx.printf("%s\n", headerStyle.Render(user.Name))
	ctx.printf("  coins %d\n", user.Coins)
	ctx.printf("  %s level %d (%d exp)\n", user.PetName, user.PetLevel, user.PetExp)
	ctx.printf("  cards %d\n", len(user.CollectedCards))
	for _, card := range user.CollectedCards {
		ctx.printf("    [%s] %s, %s  value %d\n", rarity(card.Rarity), card.Name, card.Title, card.Value)
	}
	return nil
}

type StatsCmd struct {
	Days int `help:"Only the last N days, 0 for all." default:"0"`
}

func (c *StatsCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	records, err := ctx.Users.GetStats(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	perDay := make(map[string]int)
	var days []string
	for _, rec := range records {
		if perDay[rec.DateString] == 0 {
			days = append(days, rec.DateString)
		}
		perDay[rec.DateString]++
	}
	if c.Days > 0 && len(days) > c.Days {
		days = days[len(days)-c.Days:]
	}
	ctx.printf("%s %d check-ins\n", headerStyle.Render("Total"), len(records))
	for _, d := range days {
		ctx.printf("  %s %s %d\n", d, strings.Repeat("#", perDay[d]), perDay[d])
	}
	return nil
}

type AdviceCmd struct{}

func (c *AdviceCmd) Run(ctx *Context) error {
	uid, err := ctx.login()
	if err != nil {
		return err
	}
	advice, err := ctx.Advice.GetAdvice(ctx.Ctx, uid)
	if err != nil {
		return err
	}
	ctx.printf("%s\n", advice)
	return nil
}
