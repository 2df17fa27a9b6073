package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/store"
	"github.com/anonymity12/habitplanet/pkg/entity"
)

// Starting profile of every new account.
const (
	StartingCoins    = 150
	StartingPetLevel = 1
	StartingPetExp   = 20
	StartingPetName  = "Gloopy"
	DefaultSkin      = "default"
)

type UserService struct {
	sessions *Sessions
}

func NewUserService(sessions *Sessions) *UserService {
	if sessions == nil {
		log.Fatal("provided nil sessions for user service")
	}
	return &UserService{
		sessions: sessions,
	}
}

func Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func NewProfile(name, passwordHash string) *entity.User {
	return &entity.User{
		ID:             uuid.New(),
		Name:           name,
		PasswordHash:   passwordHash,
		Coins:          StartingCoins,
		PetLevel:       StartingPetLevel,
		PetExp:         StartingPetExp,
		PetName:        StartingPetName,
		EquippedSkin:   DefaultSkin,
		Inventory:      []string{DefaultSkin},
		CollectedCards: []entity.Card{},
	}
}

// Register needs storage to accept the account, names are unique only there.
func (us *UserService) Register(ctx context.Context, req *RegisterRequest) (*entity.User, error) {
	if req == nil {
		return nil, errorvalues.ErrValidation
	}
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	passwordHash, err := Hash(req.Password)
	if err != nil {
		return nil, errors.New("hashing password error: " + err.Error())
	}
	user := NewProfile(req.Name, passwordHash)
	if err = us.sessions.storage.CreateUser(ctx, user); err != nil {
		if errors.Is(err, errorvalues.ErrUserExists) {
			return nil, errorvalues.ErrUserExists
		}
		return nil, errors.Join(errorvalues.ErrStorageFailure, err)
	}
	us.sessions.Admit(user)
	return user.Clone(), nil
}

func (us *UserService) Login(ctx context.Context, name, password string) (*entity.User, error) {
	stored, err := us.sessions.storage.FindUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, errorvalues.ErrWrongCredentials
		}
		return nil, errors.Join(errorvalues.ErrStorageFailure, err)
	}
	if err = bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(password)); err != nil {
		return nil, errorvalues.ErrWrongCredentials
	}
	// The session may be ahead of storage
	return us.GetProfile(ctx, stored.ID)
}

func (us *UserService) GetProfile(ctx context.Context, uid uuid.UUID) (*entity.User, error) {
	var user *entity.User
	err := us.sessions.Do(ctx, uid, func(sess *store.Session) error {
		user = sess.User()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (us *UserService) GetStats(ctx context.Context, uid uuid.UUID) ([]*entity.CheckInRecord, error) {
	var records []*entity.CheckInRecord
	err := us.sessions.Do(ctx, uid, func(sess *store.Session) error {
		records = sess.CheckIns()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
