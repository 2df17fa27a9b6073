package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anonymity12/habitplanet/internal/api"
	errorvalues "github.com/anonymity12/habitplanet/internal/error_values"
	"github.com/anonymity12/habitplanet/internal/service"
	"github.com/anonymity12/habitplanet/internal/service/mocks"
	"github.com/anonymity12/habitplanet/pkg/entity"
	jwtservice "github.com/anonymity12/habitplanet/pkg/jwt_service"
)

var (
	username = "test_name"
	password = "test_password"
	userID   = uuid.New()
)

func testUser() *entity.User {
	return &entity.User{
		ID:        userID,
		Name:      username,
		Coins:     150,
		PetLevel:  1,
		PetExp:    20,
		PetName:   "Gloopy",
		Inventory: []string{"default"},
	}
}

func authorized(r *http.Request) *http.Request {
	return r.WithContext(api.ContextWithUID(r.Context(), userID))
}

func mustMarshal(t *testing.T, v any) []byte {
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestRegister(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})
	body := mustMarshal(t, api.RegisterRequest{Name: username, Password: password})
	req := &service.RegisterRequest{Name: username, Password: password}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(testUser(), nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "name taken",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "validation",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Password: min")))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "storage down",
			ExpectedCode: http.StatusServiceUnavailable,
			MockPrepFunc: func() {
				uService.EXPECT().Register(gomock.Any(), req).Return(nil, errors.Join(errorvalues.ErrStorageFailure, errors.New("conn refused")))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode == http.StatusCreated {
				result := make(map[string]any)
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
				assert.Equal(t, userID.String(), result["uid"])
			}
		})
	}
}

func TestLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwt := jwtservice.New("secret")
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwt,
	})
	body := mustMarshal(t, api.LoginRequest{Name: username, Password: password})

	t.Run("logged in", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		result := make(map[string]any)
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
		token, ok := result["token"].(string)
		require.True(t, ok)
		claims, err := jwt.ParseToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
	})
	t.Run("wrong credentials", func(t *testing.T) {
		uService.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("invalid body", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader([]byte("corrupted"))))
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestCreateHabit(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	habit := api.CreateHabitRequest{
		Title:       "Code Study",
		Description: "Learn Go for 1 hour",
		Type:        entity.HabitTypeStudy,
		SubTasks:    []string{"Read Docs"},
	}
	body := mustMarshal(t, habit)
	req := &service.CreateHabitRequest{
		Title:       habit.Title,
		Description: habit.Description,
		Type:        habit.Type,
		SubTasks:    habit.SubTasks,
	}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, req).Return(&entity.Habit{ID: uuid.New(), UserID: userID, Title: habit.Title}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "empty body takes defaults",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, &service.CreateHabitRequest{}).Return(&entity.Habit{ID: uuid.New(), Title: "New Habit"}, nil)
			},
			Body: nil,
		},
		{
			Desc:         "invalid type",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, req).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				hService.EXPECT().CreateHabit(gomock.Any(), userID, req).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.CreateHabit(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/habits", tc.Body)))
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.CreateHabit(rr, httptest.NewRequest(http.MethodPost, "/api/v1/habits", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}

func TestListHabits(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	habits := []*entity.Habit{
		{ID: uuid.New(), UserID: userID, Title: "newest"},
		{ID: uuid.New(), UserID: userID, Title: "oldest"},
	}
	hService.EXPECT().ListHabits(gomock.Any(), userID).Return(habits, nil)
	rr := httptest.NewRecorder()
	serv.ListHabits(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp api.GetHabitsResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Habits, 2)
	assert.Equal(t, "newest", resp.Habits[0].Title)

	hService.EXPECT().ListHabits(gomock.Any(), userID).Return(nil, errors.Join(errorvalues.ErrStorageFailure, errors.New("timeout")))
	rr = httptest.NewRecorder()
	serv.ListHabits(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil)))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Result().StatusCode)
}

func TestDeleteHabit(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	habitID := uuid.New()
	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "deleted",
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				hService.EXPECT().DeleteHabit(gomock.Any(), userID, habitID).Return(nil)
			},
		},
		{
			Desc:         "not found",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				hService.EXPECT().DeleteHabit(gomock.Any(), userID, habitID).Return(errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				hService.EXPECT().DeleteHabit(gomock.Any(), userID, habitID).Return(errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authorized(httptest.NewRequest(http.MethodDelete, "/api/v1/habits/"+habitID.String(), nil))
			r.SetPathValue("id", habitID.String())
			serv.DeleteHabit(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
	t.Run("invalid id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authorized(httptest.NewRequest(http.MethodDelete, "/api/v1/habits/42", nil))
		r.SetPathValue("id", "42")
		serv.DeleteHabit(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
}

func TestToggleSubtask(t *testing.T) {
	ctrl := gomock.NewController(t)
	hService := mocks.NewMockHabitsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		HabitsService: hService,
	})
	habitID, subtaskID := uuid.New(), uuid.New()
	request := func() *http.Request {
		r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/subtasks/"+subtaskID.String()+"/toggle", nil))
		r.SetPathValue("id", habitID.String())
		r.SetPathValue("subtaskID", subtaskID.String())
		return r
	}

	hService.EXPECT().ToggleSubtask(gomock.Any(), userID, habitID, subtaskID).Return(&entity.Habit{
		ID:       habitID,
		SubTasks: []entity.SubTask{{ID: subtaskID, Title: "Read Docs", IsCompleted: true}},
	}, nil)
	rr := httptest.NewRecorder()
	serv.ToggleSubtask(rr, request())
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var habit entity.Habit
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&habit))
	assert.True(t, habit.SubTasks[0].IsCompleted)

	hService.EXPECT().ToggleSubtask(gomock.Any(), userID, habitID, subtaskID).Return(nil, errorvalues.ErrSubtaskNotFound)
	rr = httptest.NewRecorder()
	serv.ToggleSubtask(rr, request())
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}

func TestCheckIn(t *testing.T) {
	ctrl := gomock.NewController(t)
	cService := mocks.NewMockCheckInServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		CheckInService: cService,
	})
	habitID := uuid.New()
	note := "felt great"
	lat, lng := 31.23, 121.47
	body := mustMarshal(t, api.CheckInRequest{Note: &note, Lat: &lat, Lng: &lng})
	today := "2024-03-10"
	level := 2

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         []byte
		Check        func(t *testing.T, result map[string]any)
	}{
		{
			Desc:         "checked in",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().CheckIn(gomock.Any(), userID, habitID, &service.CheckInRequest{Note: &note, Lat: &lat, Lng: &lng}).
					Return(&entity.CheckInResult{
						Record:       &entity.CheckInRecord{ID: uuid.New(), HabitID: habitID, UserID: userID, DateString: today},
						UpdatedHabit: &entity.Habit{ID: habitID, Streak: 8, LastCheckInDate: &today, IsCompletedToday: true},
						Rewards:      entity.Rewards{Coins: 15, Exp: 15, LevelUp: true, NewLevel: &level},
					}, nil)
			},
			Body: body,
			Check: func(t *testing.T, result map[string]any) {
				rewards := result["rewards"].(map[string]any)
				assert.Equal(t, float64(15), rewards["coins"])
				assert.Equal(t, true, rewards["level_up"])
				assert.Equal(t, float64(2), rewards["new_level"])
				assert.NotContains(t, result, "warning")
			},
		},
		{
			Desc:         "persisted later",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				cService.EXPECT().CheckIn(gomock.Any(), userID, habitID, &service.CheckInRequest{}).
					Return(&entity.CheckInResult{
						Record:       &entity.CheckInRecord{ID: uuid.New()},
						UpdatedHabit: &entity.Habit{ID: habitID},
						Rewards:      entity.Rewards{Coins: 10, Exp: 15},
						Warning:      service.StorageWarning,
					}, nil)
			},
			Body: nil,
			Check: func(t *testing.T, result map[string]any) {
				assert.Equal(t, service.StorageWarning, result["warning"])
			},
		},
		{
			Desc:         "already completed",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				cService.EXPECT().CheckIn(gomock.Any(), userID, habitID, gomock.Any()).Return(nil, errorvalues.ErrAlreadyCompleted)
			},
			Body: body,
		},
		{
			Desc:         "unknown habit",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				cService.EXPECT().CheckIn(gomock.Any(), userID, habitID, gomock.Any()).Return(nil, errorvalues.ErrHabitNotFound)
			},
			Body: body,
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         []byte("{"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authorized(httptest.NewRequest(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/check-ins", bytes.NewReader(tc.Body)))
			r.SetPathValue("id", habitID.String())
			serv.CheckIn(rr, r)
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.Check != nil {
				result := make(map[string]any)
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
				tc.Check(t, result)
			}
		})
	}
}

func TestDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGachaServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GachaService: gService,
	})

	gService.EXPECT().Draw(gomock.Any(), userID).Return(&entity.DrawResult{
		Card:           &entity.Card{ID: uuid.New(), Name: "Laozi", Title: "The Founder", Rarity: entity.RarityEpic, Value: 600},
		RemainingCoins: 50,
	}, nil)
	rr := httptest.NewRecorder()
	serv.Draw(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/gacha/draw", nil)))
	require.Equal(t, http.StatusCreated, rr.Result().StatusCode)
	var result entity.DrawResult
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&result))
	assert.Equal(t, 50, result.RemainingCoins)
	assert.Equal(t, entity.RarityEpic, result.Card.Rarity)
	assert.Nil(t, result.Card.ImageURL)

	gService.EXPECT().Draw(gomock.Any(), userID).Return(nil, errorvalues.ErrInsufficientFunds)
	rr = httptest.NewRecorder()
	serv.Draw(rr, authorized(httptest.NewRequest(http.MethodPost, "/api/v1/gacha/draw", nil)))
	assert.Equal(t, http.StatusPaymentRequired, rr.Result().StatusCode)
}

func TestProfileStatsAdvice(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	aService := mocks.NewMockAdviceServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService:   uService,
		AdviceService: aService,
	})

	uService.EXPECT().GetProfile(gomock.Any(), userID).Return(testUser(), nil)
	rr := httptest.NewRecorder()
	serv.GetProfile(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.NotContains(t, rr.Body.String(), "password")

	uService.EXPECT().GetStats(gomock.Any(), userID).Return([]*entity.CheckInRecord{{ID: uuid.New(), DateString: "2024-03-10"}}, nil)
	rr = httptest.NewRecorder()
	serv.GetStats(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/me/stats", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var stats api.GetStatsResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&stats))
	assert.Len(t, stats.CheckIns, 1)

	aService.EXPECT().GetAdvice(gomock.Any(), userID).Return(service.AdviceMissingKey, nil)
	rr = httptest.NewRecorder()
	serv.GetAdvice(rr, authorized(httptest.NewRequest(http.MethodGet, "/api/v1/me/advice", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var advice api.AdviceResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&advice))
	assert.Equal(t, service.AdviceMissingKey, advice.Advice)
}

type recordingStream struct {
	uid uuid.UUID
}

func (s *recordingStream) Serve(w http.ResponseWriter, _ *http.Request, uid uuid.UUID) {
	s.uid = uid
	w.WriteHeader(http.StatusSwitchingProtocols)
}

func TestRouter(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUserServiceI(ctrl)
	jwt := jwtservice.New("secret")
	stream := &recordingStream{}
	serv := api.New(&api.ServicesList{
		UserService: uService,
		JwtService:  jwt,
		Events:      stream,
	})
	handler := serv.Handler()
	token, err := jwt.GenerateToken(testUser())
	require.NoError(t, err)

	t.Run("authorized profile", func(t *testing.T) {
		uService.EXPECT().GetProfile(gomock.Any(), userID).Return(testUser(), nil).Times(2)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
		assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
	})
	t.Run("missing token", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/habits", nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("forged token", func(t *testing.T) {
		forged, err := jwtservice.New("other").GenerateToken(testUser())
		require.NoError(t, err)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		r.Header.Set("Authorization", "Bearer "+forged)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		uService.EXPECT().GetProfile(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		r.Header.Set("Authorization", "Bearer "+token)
		handler.ServeHTTP(rr, r)
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
	t.Run("websocket takes query token", func(t *testing.T) {
		uService.EXPECT().GetProfile(gomock.Any(), userID).Return(testUser(), nil)
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/ws?access_token="+token, nil))
		assert.Equal(t, http.StatusSwitchingProtocols, rr.Result().StatusCode)
		assert.Equal(t, userID, stream.uid)
	})
	t.Run("query token only on websocket", func(t *testing.T) {
		rr := httptest.NewRecorder()
		handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/me?access_token="+token, nil))
		assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
	})
}
