package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/store"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	"github.com/anonymity12/habitplanet/pkg/logging"
)

const (
	AdviceMissingKey = "AI Service Unavailable (Missing Key)"
	AdviceOnError    = "Keep going!"
	AdviceOnEmpty    = "Keep it up!"

	defaultAdviceTimeout = 30 * time.Second
)

type AdviceService struct {
	sessions  *Sessions
	calendar  *dateutil.Calendar
	generator AdviceGenerator
	timeout   time.Duration
}

// NewAdviceService accepts a nil generator, every request then gets the
// missing key fallback.
func NewAdviceService(sessions *Sessions, calendar *dateutil.Calendar, generator AdviceGenerator, timeout time.Duration) *AdviceService {
	if sessions == nil || calendar == nil {
		log.Fatal("on advice service provided nil sessions or calendar")
	}
	if timeout <= 0 {
		timeout = defaultAdviceTimeout
	}
	return &AdviceService{
		sessions:  sessions,
		calendar:  calendar,
		generator: generator,
		timeout:   timeout,
	}
}

func (as *AdviceService) GetAdvice(ctx context.Context, uid uuid.UUID) (string, error) {
	var prompt string
	err := as.sessions.Do(ctx, uid, func(sess *store.Session) error {
		prompt = as.prompt(sess)
		return nil
	})
	if err != nil {
		return "", err
	}
	if as.generator == nil {
		return AdviceMissingKey, nil
	}
	gctx, cancel := context.WithTimeout(ctx, as.timeout)
	defer cancel()
	advice, err := as.generator.Advice(gctx, prompt)
	switch {
	case errors.Is(err, errorvalues.ErrMissingAPIKey):
		return AdviceMissingKey, nil
	case err != nil:
		logging.FromContext(ctx).Warn("advice generation failed",
			slog.String("error", errors.Join(errorvalues.ErrContentGenerationUnavailable, err).Error()),
		)
		return AdviceOnError, nil
	case strings.TrimSpace(advice) == "":
		return AdviceOnEmpty, nil
	}
	return advice, nil
}

// prompt summarizes the habits as they look today. The session is not
// modified, the rollover here only shapes the summary.
func (as *AdviceService) prompt(sess *store.Session) string {
	today := as.calendar.Today()
	var b strings.Builder
	b.WriteString("You are a habit coach for a gamified habit tracker. User stats:\n")
	habits := sess.Habits()
	if len(habits) == 0 {
		b.WriteString("- no habits yet\n")
	}
	for _, h := range habits {
		Rollover(h, today)
		fmt.Fprintf(&b, "- %s (%s): Streak %d, Completed Today: %t, Total Checkins: %d\n",
			h.Title, h.Type, h.Streak, h.IsCompletedToday, sess.CountCheckIns(h.ID))
	}
	b.WriteString("Provide 3 short, punchy tips to improve consistency. Keep the tone friendly and game-like, ")
	b.WriteString("mention leveling up or keeping streaks. Use emojis. Output format: Markdown bullet points.")
	return b.String()
}
