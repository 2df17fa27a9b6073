package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/repository"
	"github.com/anonymity12/habitplanet/internal/store"
	"github.com/anonymity12/habitplanet/pkg/dateutil"
	"github.com/anonymity12/habitplanet/pkg/entity"
	"github.com/anonymity12/habitplanet/pkg/logging"
)

const defaultArtTimeout = 30 * time.Second

type GachaService struct {
	sessions   *Sessions
	clock      dateutil.Clock
	random     RandomSource
	artist     ArtGenerator
	policy     RewardPolicy
	notifier   Notifier
	artTimeout time.Duration
}

type GachaOptions struct {
	Clock    dateutil.Clock
	Random   RandomSource
	Artist   ArtGenerator
	Policy   RewardPolicy
	Notifier Notifier
	// Bounds one art generation call. Zero means 30s.
	ArtTimeout time.Duration
}

func NewGachaService(sessions *Sessions, opts GachaOptions) *GachaService {
	if sessions == nil {
		log.Fatal("on gacha service provided nil sessions")
	}
	gs := &GachaService{
		sessions:   sessions,
		clock:      opts.Clock,
		random:     opts.Random,
		artist:     opts.Artist,
		policy:     opts.Policy,
		notifier:   opts.Notifier,
		artTimeout: opts.ArtTimeout,
	}
	if gs.clock == nil {
		gs.clock = dateutil.System()
	}
	if gs.random == nil {
		gs.random = DefaultRandom()
	}
	if gs.notifier == nil {
		gs.notifier = nopNotifier{}
	}
	if gs.policy.DrawCost <= 0 {
		gs.policy.DrawCost = DefaultRewardPolicy().DrawCost
	}
	if gs.artTimeout <= 0 {
		gs.artTimeout = defaultArtTimeout
	}
	return gs
}

// Draw spends the draw cost on one card. The section is held for the art
// call too, so the debit and the credit land together.
func (gs *GachaService) Draw(ctx context.Context, uid uuid.UUID) (*entity.DrawResult, error) {
	var result *entity.DrawResult
	err := gs.sessions.Do(ctx, uid, func(sess *store.Session) error {
		user := sess.User()
		if user.Coins < gs.policy.DrawCost {
			return errorvalues.ErrInsufficientFunds
		}
		rarity := RollRarity(gs.random.Float64())
		figure := Roster[gs.random.IntN(len(Roster))]
		card := entity.Card{
			ID:          uuid.New(),
			Name:        figure.Name,
			Title:       figure.Title,
			Rarity:      rarity,
			Value:       CardValue(gs.random.Float64(), rarity),
			ImageURL:    gs.cardArt(ctx, figure),
			Description: "Collected from the celestial draw: " + figure.Name + ", " + figure.Title,
			ObtainedAt:  gs.clock.Now().UnixMilli(),
		}
		user.Coins -= gs.policy.DrawCost
		user.CollectedCards = append(user.CollectedCards, card)
		sess.SetUser(user)
		warning := gs.sessions.persist(ctx, "draw", func(ctx context.Context, st repository.StorageI) error {
			return st.UpdateUser(ctx, user)
		})
		result = &entity.DrawResult{
			Card:           &card,
			RemainingCoins: user.Coins,
			Warning:        warning,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errorvalues.ErrInsufficientFunds) ||
			errors.Is(err, errorvalues.ErrUserNotFound) ||
			errors.Is(err, errorvalues.ErrStorageFailure) {
			return nil, err
		}
		return nil, errors.New("draw error: " + err.Error())
	}
	logging.FromContext(ctx).Info("card drawn",
		slog.String("figure", result.Card.Name),
		slog.String("rarity", string(result.Card.Rarity)),
		slog.Int("value", result.Card.Value),
	)
	gs.notifier.Notify(uid, entity.Event{Type: entity.EventCardDrawn, Payload: result})
	return result, nil
}

// cardArt returns nil when there is no artist or it fails or times out.
func (gs *GachaService) cardArt(ctx context.Context, figure Figure) *string {
	if gs.artist == nil {
		return nil
	}
	actx, cancel := context.WithTimeout(ctx, gs.artTimeout)
	defer cancel()
	ref, err := gs.artist.CardArt(actx, figure.Name, figure.Title)
	if err != nil || ref == "" {
		if err == nil {
			err = errors.New("empty image reference")
		}
		logging.FromContext(ctx).Warn("card art unavailable, issuing card without image",
			slog.String("figure", figure.Name),
			slog.String("error", errors.Join(errorvalues.ErrContentGenerationUnavailable, err).Error()),
		)
		return nil
	}
	return &ref
}
