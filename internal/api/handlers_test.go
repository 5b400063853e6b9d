package api_test

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/accountability/internal/api"
	errorvalues "github.com/limbo/accountability/internal/error_values"
	"github.com/limbo/accountability/internal/scoring"
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/internal/service/mocks"
	"github.com/limbo/accountability/internal/tracker"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/httputil"
	jwtservice "github.com/limbo/accountability/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID   = uuid.New()
	userName = "alice"
)

func withUser(r *http.Request) *http.Request {
	return r.WithContext(api.WithUser(r.Context(), userID, userName))
}

func TestCreateGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	goal := api.CreateGoalRequest{
		Description: "read",
		Frequency:   "weekly",
		TargetDays:  []string{"Monday", "friday"},
		Difficulty:  "medium",
	}
	body, err := sonic.ConfigDefault.Marshal(goal)
	require.NoError(t, err)
	expectedReq := service.CreateGoalRequest{
		Description: "read",
		Frequency:   entity.FrequencyWeekly,
		TargetDays:  []time.Weekday{time.Monday, time.Friday},
		Difficulty:  entity.DifficultyMedium,
	}
	goalID := uuid.New()

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
				gService.EXPECT().CreateGoal(gomock.Any(), userID, expectedReq).Return(&entity.Goal{
					ID:          goalID,
					OwnerID:     userID,
					Description: "read",
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid schedule",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				gService.EXPECT().CreateGoal(gomock.Any(), userID, expectedReq).Return(nil, errorvalues.ErrInvalidSchedule)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "validation failed",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				gService.EXPECT().CreateGoal(gomock.Any(), userID, expectedReq).Return(nil, errorvalues.ErrValidation)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "goal exists",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				gService.EXPECT().CreateGoal(gomock.Any(), userID, expectedReq).Return(nil, errorvalues.ErrGoalExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				gService.EXPECT().CreateGoal(gomock.Any(), userID, expectedReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "unknown weekday",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         strings.NewReader(`{"description":"read","frequency":"weekly","target_days":["someday"],"difficulty":"easy"}`),
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
			r := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/goals", tc.Body))
			serv.CreateGoal(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestGetGoals(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	goals := []*entity.Goal{{ID: uuid.New(), OwnerID: userID, Description: "read", CurrentStatus: entity.StatusYellow}}

	testCases := []struct {
		Desc          string
		Query         string
		ExpectedCode  int
		ExpectedPage  int
		ExpectedLimit int
		MockPrepFunc  func()
	}{
		{
			Desc:          "defaults",
			ExpectedCode:  http.StatusOK,
			ExpectedPage:  1,
			ExpectedLimit: 10,
			MockPrepFunc: func() {
				gService.EXPECT().GetUserGoals(gomock.Any(), userID, service.PaginationOpts{Limit: 10, Offset: 0}).Return(goals, nil)
			},
		},
		{
			Desc:          "third page",
			Query:         "?page=3&limit=5",
			ExpectedCode:  http.StatusOK,
			ExpectedPage:  3,
			ExpectedLimit: 5,
			MockPrepFunc: func() {
				gService.EXPECT().GetUserGoals(gomock.Any(), userID, service.PaginationOpts{Limit: 5, Offset: 10}).Return(goals, nil)
			},
		},
		{
			Desc:          "limit out of range",
			Query:         "?page=0&limit=500",
			ExpectedCode:  http.StatusOK,
			ExpectedPage:  1,
			ExpectedLimit: 10,
			MockPrepFunc: func() {
				gService.EXPECT().GetUserGoals(gomock.Any(), userID, service.PaginationOpts{Limit: 10, Offset: 0}).Return(goals, nil)
			},
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				gService.EXPECT().GetUserGoals(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("service error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/goals"+tc.Query, nil))
			serv.GetGoals(rr, r)
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode != http.StatusOK {
				return
			}
			var resp api.GetGoalsResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, tc.ExpectedPage, resp.Page)
			assert.Equal(t, tc.ExpectedLimit, resp.Limit)
			require.Len(t, resp.Goals, 1)
			assert.Equal(t, entity.StatusYellow, resp.Goals[0].CurrentStatus)
		})
	}
}

func TestDeleteGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	goalID := uuid.New()

	testCases := []struct {
		Desc         string
		PathID       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "deleted",
			PathID:       goalID.String(),
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				gService.EXPECT().DeleteGoal(gomock.Any(), goalID, userID).Return(nil)
			},
		},
		{
			Desc:         "not found",
			PathID:       goalID.String(),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().DeleteGoal(gomock.Any(), goalID, userID).Return(errorvalues.ErrGoalNotFound)
			},
		},
		{
			Desc:         "wrong owner",
			PathID:       goalID.String(),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().DeleteGoal(gomock.Any(), goalID, userID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			Desc:         "service error",
			PathID:       goalID.String(),
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				gService.EXPECT().DeleteGoal(gomock.Any(), goalID, userID).Return(errors.New("service error"))
			},
		},
		{
			Desc:         "invalid id",
			PathID:       "not-a-uuid",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUser(httptest.NewRequest(http.MethodDelete, "/api/v1/goals/"+tc.PathID, nil))
			r.SetPathValue("id", tc.PathID)
			serv.DeleteGoal(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
		})
	}
}

func TestCompleteGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	goalID := uuid.New()
	completedAt := time.Date(2025, 3, 4, 20, 0, 0, 0, time.UTC)
	result := &service.CompletionResult{
		Goal:          &entity.Goal{ID: goalID, OwnerID: userID, CurrentStatus: entity.StatusGreen},
		Streak:        &entity.HabitStreak{HabitID: goalID, CurrentStreak: 7, BestStreak: 7},
		Kind:          entity.CompletionOnTime,
		Encouragement: scoring.GetDifficultyEncouragement(entity.DifficultyHard),
	}

	testCases := []struct {
		Desc         string
		Body         io.Reader
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "completed now",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				gService.EXPECT().CompleteGoal(gomock.Any(), goalID, userID, nil).Return(result, nil)
			},
		},
		{
			Desc:         "backdated completion",
			Body:         strings.NewReader(`{"completed_at":"2025-03-04T20:00:00Z"}`),
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				gService.EXPECT().CompleteGoal(gomock.Any(), goalID, userID, gomock.Any()).DoAndReturn(
					func(_ any, _, _ uuid.UUID, at *time.Time) (*service.CompletionResult, error) {
						require.NotNil(t, at)
						assert.True(t, completedAt.Equal(*at))
						return result, nil
					})
			},
		},
		{
			Desc:         "duplicate",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				gService.EXPECT().CompleteGoal(gomock.Any(), goalID, userID, nil).Return(nil, errorvalues.ErrCompletionDuplicate)
			},
		},
		{
			Desc:         "in future",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				gService.EXPECT().CompleteGoal(gomock.Any(), goalID, userID, nil).Return(nil, errorvalues.ErrCompletionInFuture)
			},
		},
		{
			Desc:         "wrong owner",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				gService.EXPECT().CompleteGoal(gomock.Any(), goalID, userID, nil).Return(nil, errorvalues.ErrWrongOwner)
			},
		},
		{
			Desc:         "corrupted body",
			Body:         strings.NewReader("{"),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/goals/"+goalID.String()+"/complete", tc.Body))
			r.SetPathValue("id", goalID.String())
			serv.CompleteGoal(rr, r)
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode != http.StatusOK {
				return
			}
			var resp api.CompleteGoalResponse
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.Equal(t, entity.CompletionOnTime, resp.Kind)
			assert.Equal(t, 7, resp.Streak.CurrentStreak)
			assert.NotEmpty(t, resp.Encouragement.StreakMessage)
		})
	}
}

func TestEvaluateGoal(t *testing.T) {
	ctrl := gomock.NewController(t)
	gService := mocks.NewMockGoalsServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		GoalsService: gService,
	})
	goalID := uuid.New()
	redSince := time.Date(2025, 3, 4, 23, 59, 59, 0, time.UTC)

	gService.EXPECT().EvaluateGoal(gomock.Any(), goalID, userID).Return(&service.EvaluationResult{
		Goal:   &entity.Goal{ID: goalID, CurrentStatus: entity.StatusRed, RedSince: &redSince},
		Streak: &entity.HabitStreak{HabitID: goalID, FreezesUsed: 1},
		Miss:   tracker.MissCovered,
	}, nil)
	rr := httptest.NewRecorder()
	r := withUser(httptest.NewRequest(http.MethodPost, "/api/v1/goals/"+goalID.String()+"/evaluate", nil))
	r.SetPathValue("id", goalID.String())
	serv.EvaluateGoal(rr, r)
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp api.EvaluateGoalResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, tracker.MissCovered, resp.Miss)
	assert.Equal(t, entity.StatusRed, resp.Goal.CurrentStatus)

	gService.EXPECT().GetStreak(gomock.Any(), goalID, userID).Return(nil, errorvalues.ErrStreakNotFound)
	rr = httptest.NewRecorder()
	r = withUser(httptest.NewRequest(http.MethodGet, "/api/v1/goals/"+goalID.String()+"/streak", nil))
	r.SetPathValue("id", goalID.String())
	serv.GetStreak(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)
}

func TestGetScores(t *testing.T) {
	ctrl := gomock.NewController(t)
	sService := mocks.NewMockScoresServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ScoresService: sService,
	})
	score := entity.HabitScore{HabitID: uuid.New(), RawScore: 75, AdjustedScore: 150, Difficulty: entity.DifficultyHard, Multiplier: 2}
	normalized := entity.NormalizedScore{HabitID: score.HabitID, Rank: 1, TotalHabits: 1}
	report := &service.ScoreReport{
		Habits: []service.HabitReport{{
			Score:       score,
			Normalized:  normalized,
			Recognition: scoring.GetRecognitionLevel(score, normalized),
		}},
		Overall: scoring.CalculateOverallUserScore([]entity.HabitScore{score}),
	}

	sService.EXPECT().GetUserScores(gomock.Any(), userID).Return(report, nil)
	rr := httptest.NewRecorder()
	serv.GetScores(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/scores", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp api.GetScoresResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Habits, 1)
	assert.Equal(t, 150, resp.Habits[0].Score.AdjustedScore)
	assert.True(t, resp.Habits[0].Recognition.IsHardHabitBonus)
	assert.Equal(t, 150, resp.Overall.TotalAdjustedScore)

	sService.EXPECT().GetUserScores(gomock.Any(), userID).Return(nil, errors.New("service error"))
	rr = httptest.NewRecorder()
	serv.GetScores(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/scores", nil)))
	assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
}

func TestGetEncouragement(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	for _, tc := range []struct {
		Difficulty   string
		ExpectedCode int
	}{
		{"easy", http.StatusOK},
		{"medium", http.StatusOK},
		{"hard", http.StatusOK},
		{"extreme", http.StatusBadRequest},
	} {
		t.Run(tc.Difficulty, func(t *testing.T) {
			rr := httptest.NewRecorder()
			serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/difficulty/"+tc.Difficulty+"/encouragement", nil))
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.ExpectedCode != http.StatusOK {
				return
			}
			var resp scoring.Encouragement
			require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
			assert.NotEmpty(t, resp.CompletionMessage)
			assert.NotEmpty(t, resp.StreakMessage)
			assert.NotEmpty(t, resp.MilestoneMessage)
		})
	}
}

func TestUpdatePushToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUsersServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		UserService: uService,
	})

	uService.EXPECT().UpdatePushToken(gomock.Any(), userID, "tok").Return(nil)
	rr := httptest.NewRecorder()
	serv.UpdatePushToken(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/v1/users/me/push-token", strings.NewReader(`{"token":"tok"}`))))
	assert.Equal(t, http.StatusNoContent, rr.Result().StatusCode)

	uService.EXPECT().UpdatePushToken(gomock.Any(), userID, "tok").Return(errorvalues.ErrUserNotFound)
	rr = httptest.NewRecorder()
	serv.UpdatePushToken(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/v1/users/me/push-token", strings.NewReader(`{"token":"tok"}`))))
	assert.Equal(t, http.StatusNotFound, rr.Result().StatusCode)

	rr = httptest.NewRecorder()
	serv.UpdatePushToken(rr, withUser(httptest.NewRequest(http.MethodPut, "/api/v1/users/me/push-token", nil)))
	assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
}

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	uService := mocks.NewMockUsersServiceI(ctrl)
	sService := mocks.NewMockScoresServiceI(ctrl)
	jwt := jwtservice.New("test_secret", time.Hour)
	serv := api.New(&api.ServicesList{
		UserService:   uService,
		ScoresService: sService,
		JwtService:    jwt,
	})
	user := &entity.User{ID: userID, Name: userName}
	token, err := jwt.GenerateToken(user)
	require.NoError(t, err)
	expired, err := jwtservice.New("test_secret", time.Nanosecond).GenerateToken(user)
	require.NoError(t, err)
	foreign, err := jwtservice.New("other_secret", time.Hour).GenerateToken(user)
	require.NoError(t, err)
	newcomer := &entity.User{ID: uuid.New(), Name: "newcomer"}
	newcomerToken, err := jwt.GenerateToken(newcomer)
	require.NoError(t, err)

	testCases := []struct {
		Desc         string
		Header       string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "authorized",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().EnsureUser(gomock.Any(), userID, userName).Return(user, nil)
				sService.EXPECT().GetUserScores(gomock.Any(), userID).Return(&service.ScoreReport{}, nil)
			},
		},
		{
			Desc:         "no header",
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "not bearer",
			Header:       "Basic " + token,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "expired token",
			Header:       "Bearer " + expired,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "foreign signature",
			Header:       "Bearer " + foreign,
			ExpectedCode: http.StatusUnauthorized,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "first request of new user",
			Header:       "Bearer " + newcomerToken,
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				uService.EXPECT().EnsureUser(gomock.Any(), newcomer.ID, newcomer.Name).Return(newcomer, nil)
				sService.EXPECT().GetUserScores(gomock.Any(), newcomer.ID).Return(&service.ScoreReport{}, nil)
			},
		},
		{
			Desc:         "user name taken",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				uService.EXPECT().EnsureUser(gomock.Any(), userID, userName).Return(nil, errorvalues.ErrUserExists)
			},
		},
		{
			Desc:         "user store unavailable",
			Header:       "Bearer " + token,
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				uService.EXPECT().EnsureUser(gomock.Any(), userID, userName).Return(nil, errors.New("repository searching error: db error"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/scores", nil)
			if tc.Header != "" {
				r.Header.Set("Authorization", tc.Header)
			}
			serv.ServeHTTP(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	serv := api.New(&api.ServicesList{
		RateLimit: api.RateLimitOpts{RPS: 0.001, Burst: 2},
	})
	codes := make([]int, 0, 3)
	for range 3 {
		rr := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/difficulty/easy/encouragement", nil)
		r.RemoteAddr = "10.0.0.1:5555"
		serv.ServeHTTP(rr, r)
		codes = append(codes, rr.Result().StatusCode)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)

	// Other clients keep their own budget.
	rr := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/api/v1/difficulty/easy/encouragement", nil)
	r.RemoteAddr = "10.0.0.2:5555"
	serv.ServeHTTP(rr, r)
	assert.Equal(t, http.StatusOK, rr.Result().StatusCode)
}

func TestMetricsEndpoint(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/difficulty/hard/encouragement", nil))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)

	rr = httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	assert.Contains(t, rr.Body.String(), `http_request_duration_seconds_count{method="GET",route="/api/v1/difficulty/{difficulty}/encouragement",status="200"}`)
}

func TestErrorBodyShape(t *testing.T) {
	serv := api.New(&api.ServicesList{})
	rr := httptest.NewRecorder()
	serv.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/difficulty/unknown/encouragement", nil))
	var resp httputil.ErrorResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	assert.Equal(t, "unknown difficulty", resp.Message)
}
