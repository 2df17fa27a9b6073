package service

import (
	"math"
	"math/rand/v2"

	"github.com/anonymity12/habitplanet/pkg/entity"
)

// RandomSource is every random draw the gacha makes. Float64 is uniform in
// [0,1), IntN uniform in [0,n).
type RandomSource interface {
	Float64() float64
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }
func (globalRand) IntN(n int) int   { return rand.IntN(n) }

// DefaultRandom is backed by math/rand/v2's global generator.
func DefaultRandom() RandomSource { return globalRand{} }

// StreakBonus adds Coins when the new streak is strictly greater than Above.
type StreakBonus struct {
	Above int
	Coins int
}

// RewardPolicy holds the progression constants. Bonuses are tried in order
// and the first match wins, so list them from the highest threshold down.
type RewardPolicy struct {
	BaseCoins     int
	StreakBonuses []StreakBonus
	ExpPerCheckIn int
	ExpPerLevel   int
	DrawCost      int
}

func DefaultRewardPolicy() RewardPolicy {
	return RewardPolicy{
		BaseCoins: 10,
		StreakBonuses: []StreakBonus{
			{Above: 7, Coins: 5},
			{Above: 3, Coins: 2},
		},
		ExpPerCheckIn: 15,
		ExpPerLevel:   100,
		DrawCost:      100,
	}
}

// CoinsFor returns the coins earned by a check-in that produced streak.
func (p RewardPolicy) CoinsFor(streak int) int {
	coins := p.BaseCoins
	for _, bonus := range p.StreakBonuses {
		if streak > bonus.Above {
			coins += bonus.Coins
			break
		}
	}
	return coins
}

// Grant credits u for one check-in and levels the pet up as many times as
// the experience allows.
func (p RewardPolicy) Grant(u *entity.User, streak int) entity.Rewards {
	rewards := entity.Rewards{
		Coins: p.CoinsFor(streak),
		Exp:   p.ExpPerCheckIn,
	}
	u.Coins += rewards.Coins
	u.PetExp += rewards.Exp
	for p.ExpPerLevel > 0 && u.PetExp >= p.ExpPerLevel {
		u.PetLevel++
		u.PetExp -= p.ExpPerLevel
		rewards.LevelUp = true
	}
	if rewards.LevelUp {
		level := u.PetLevel
		rewards.NewLevel = &level
	}
	return rewards
}

// Figure is a collectible character. Any rarity can pair with any figure.
type Figure struct {
	Name  string
	Title string
}

var Roster = []Figure{
	{Name: "Laozi", Title: "The Founder"},
	{Name: "Zhuangzi", Title: "The Sage"},
	{Name: "Zhang Daoling", Title: "Celestial Master"},
	{Name: "Lu Dongbin", Title: "Sword Immortal"},
	{Name: "He Xiangu", Title: "Lotus Immortal"},
	{Name: "Jade Emperor", Title: "Ruler of Heaven"},
}

const (
	minCardValue = 10
	maxCardValue = 50
)

// RollRarity maps a uniform roll in [0,1) onto a rarity. Boundaries belong to
// the lower tier: 0.95 is Epic, 0.85 and 0.60 are Rare.
func RollRarity(r float64) entity.Rarity {
	switch {
	case r > 0.95:
		return entity.RarityLegendary
	case r > 0.85:
		return entity.RarityEpic
	case r > 0.60:
		return entity.RarityRare
	default:
		return entity.RarityCommon
	}
}

func RarityMultiplier(r entity.Rarity) int {
	switch r {
	case entity.RarityRare:
		return 5
	case entity.RarityEpic:
		return 20
	case entity.RarityLegendary:
		return 100
	default:
		return 1
	}
}

// CardValue scales a uniform roll in [0,1) onto [10,50) and applies the
// rarity multiplier.
func CardValue(u float64, r entity.Rarity) int {
	base := minCardValue + u*(maxCardValue-minCardValue)
	return int(math.Floor(base * float64(RarityMultiplier(r))))
}
