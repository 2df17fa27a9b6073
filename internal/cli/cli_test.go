package cli

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository/sqlitestore"
	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

type harness struct {
	st   *sqlitestore.Store
	cal  *dateutil.Calendar
	out  *bytes.Buffer
	ctx  *Context
	name string
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	st, err := sqlitestore.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	h := &harness{
		st:   st,
		cal:  dateutil.NewCalendar(dateutil.Fixed(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)), time.UTC),
		out:  &bytes.Buffer{},
		name: "traveler",
	}
	h.ctx = h.fresh()
	return h
}

// fresh builds a new Context over the same database, with a cold session cache.
func (h *harness) fresh() *Context {
	ctx := NewContext(context.Background(), h.out, Options{Storage: h.st, Calendar: h.cal})
	ctx.User = h.name
	ctx.Password = "s3cret-pass"
	return ctx
}

func (h *harness) output() string {
	s := h.out.String()
	h.out.Reset()
	return s
}

func TestHabitLifecycle(t *testing.T) {
	h := newHarness(t)

	require.NoError(t, (&RegisterCmd{Name: h.name, Password: "s3cret-pass"}).Run(h.ctx))
	assert.Contains(t, h.output(), "traveler with 150 coins")

	require.NoError(t, (&HabitListCmd{}).Run(h.ctx))
	assert.Contains(t, h.output(), "No habits yet")

	add := &HabitAddCmd{Title: "Read", Type: entity.HabitTypeStudy, Target: 1, Subtasks: []string{"Chapter"}}
	require.NoError(t, add.Run(h.ctx))
	assert.Contains(t, h.output(), "Created Read")

	uid, err := h.ctx.login()
	require.NoError(t, err)
	habits, err := h.ctx.Habits.ListHabits(h.ctx.Ctx, uid)
	require.NoError(t, err)
	require.Len(t, habits, 1)
	habit := habits[0]

	require.NoError(t, (&HabitToggleCmd{HabitID: habit.ID, SubtaskID: habit.SubTasks[0].ID}).Run(h.ctx))
	assert.Contains(t, h.output(), "Read: Chapter completed=true")

	checkin := &CheckinCmd{HabitID: habit.ID, Note: "two chapters", Location: "31.2, 121.5"}
	require.NoError(t, checkin.Run(h.ctx))
	out := h.output()
	assert.Contains(t, out, "Read, streak 1")
	assert.Contains(t, out, "+10 coins, +15 exp")

	err = checkin.Run(h.ctx)
	assert.ErrorIs(t, err, errorvalues.ErrAlreadyCompleted)

	require.NoError(t, (&DrawCmd{}).Run(h.ctx))
	assert.Contains(t, h.output(), "60 coins left")

	err = (&DrawCmd{}).Run(h.ctx)
	assert.ErrorIs(t, err, errorvalues.ErrInsufficientFunds)

	// A cold cache sees what the first one persisted.
	cold := h.fresh()
	require.NoError(t, (&HabitListCmd{}).Run(cold))
	assert.Contains(t, h.output(), "Read (Study) streak 1, 1/1 today")

	require.NoError(t, (&ProfileCmd{}).Run(cold))
	out = h.output()
	assert.Contains(t, out, "coins 60")
	assert.Contains(t, out, "cards 1")

	require.NoError(t, (&StatsCmd{}).Run(cold))
	out = h.output()
	assert.Contains(t, out, "1 check-ins")
	assert.Contains(t, out, "2024-03-10 # 1")

	require.NoError(t, (&AdviceCmd{}).Run(cold))
	assert.Contains(t, h.output(), service.AdviceMissingKey)

	require.NoError(t, (&HabitDeleteCmd{ID: habit.ID}).Run(cold))
	assert.Contains(t, h.output(), "Deleted "+habit.ID.String())

	err = (&HabitDeleteCmd{ID: habit.ID}).Run(h.fresh())
	assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
}

func TestLoginRequired(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, (&RegisterCmd{Name: h.name, Password: "s3cret-pass"}).Run(h.ctx))

	noUser := h.fresh()
	noUser.User = ""
	assert.Error(t, (&ProfileCmd{}).Run(noUser))

	wrong := h.fresh()
	wrong.Password = "not-the-pass"
	assert.ErrorIs(t, (&ProfileCmd{}).Run(wrong), errorvalues.ErrWrongCredentials)
}

func TestParseLocation(t *testing.T) {
	cases := []struct {
		Desc    string
		In      string
		Lat     float64
		Lng     float64
		Nil     bool
		IsError bool
	}{
		{Desc: "empty", In: "", Nil: true},
		{Desc: "plain", In: "31.2,121.5", Lat: 31.2, Lng: 121.5},
		{Desc: "spaced", In: " -12.5 , 7 ", Lat: -12.5, Lng: 7},
		{Desc: "one value", In: "31.2", IsError: true},
		{Desc: "not a number", In: "north,7", IsError: true},
	}
	for _, tc := range cases {
		t.Run(tc.Desc, func(t *testing.T) {
			lat, lng, err := parseLocation(tc.In)
			if tc.IsError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			if tc.Nil {
				assert.Nil(t, lat)
				assert.Nil(t, lng)
				return
			}
			require.NotNil(t, lat)
			require.NotNil(t, lng)
			assert.InDelta(t, tc.Lat, *lat, 1e-9)
			assert.InDelta(t, tc.Lng, *lng, 1e-9)
		})
	}
}
