package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
)

// Options wires the engines a Context is built from. Generator may be nil,
// advice then falls back to the canned text and cards have no art.
type Options struct {
	Storage   repository.StorageI
	Calendar  *dateutil.Calendar
	Generator interface {
		service.AdviceGenerator
		service.ArtGenerator
	}
	ContentTimeout time.Duration
}

// Context carries the engines every command runs against and the local
// account the command acts for.
type Context struct {
	Ctx      context.Context
	Out      io.Writer
	Users    service.UserServiceI
	Habits   service.HabitsServiceI
	CheckIns service.CheckInServiceI
	Gacha    service.GachaServiceI
	Advice   service.AdviceServiceI

	User     string
	Password string
}

// NewContext builds every engine over one session cache, the same way the API
// server does.
func NewContext(ctx context.Context, out io.Writer, opts Options) *Context {
	sessions := service.NewSessions(opts.Storage)
	policy := service.DefaultRewardPolicy()
	gacha := service.GachaOptions{Policy: policy, ArtTimeout: opts.ContentTimeout}
	var advisor service.AdviceGenerator
	if opts.Generator != nil {
		gacha.Artist = opts.Generator
		advisor = opts.Generator
	}
	return &Context{
		Ctx:      ctx,
		Out:      out,
		Users:    service.NewUserService(sessions),
		Habits:   service.NewHabitsService(sessions, opts.Calendar),
		CheckIns: service.NewCheckInService(sessions, opts.Calendar, policy, nil),
		Gacha:    service.NewGachaService(sessions, gacha),
		Advice:   service.NewAdviceService(sessions, opts.Calendar, advisor, opts.ContentTimeout),
	}
}

func (c *Context) printf(format string, args ...any) {
	fmt.Fprintf(c.Out, format, args...)
}

// login resolves the acting account from the --user and --password flags.
func (c *Context) login() (uuid.UUID, error) {
	if c.User == "" {
		return uuid.Nil, errors.New("no account selected, pass --user and --password")
	}
	user, err := c.Users.Login(c.Ctx, c.User, c.Password)
	if err != nil {
		return uuid.Nil, err
	}
	return user.ID, nil
}

// parseLocation reads "lat,lng". An empty string means no location.
func parseLocation(s string) (lat, lng *float64, err error) {
	if s == "" {
		return nil, nil, nil
	}
	latStr, lngStr, ok := strings.Cut(s, ",")
	if !ok {
		return nil, nil, fmt.Errorf("location %q: want lat,lng", s)
	}
	la, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("location %q: %w", s, err)
	}
	ln, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
	if err != nil {
		return nil, nil, fmt.Errorf("location %q: %w", s, err)
	}
	return &la, &ln, nil
}
