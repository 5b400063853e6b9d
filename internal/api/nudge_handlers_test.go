package api_test

import (
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
	"github.com/limbo/accountability/internal/service"
	"github.com/limbo/accountability/internal/service/mocks"
	"github.com/limbo/accountability/pkg/entity"
	"github.com/limbo/accountability/pkg/httputil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendNudge(t *testing.T) {
	ctrl := gomock.NewController(t)
	nService := mocks.NewMockNudgeServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		NudgeService: nService,
	})
	receiverID, goalID, nudgeID := uuid.New(), uuid.New(), uuid.New()
	body := `{"receiver_id":"` + receiverID.String() + `","goal_id":"` + goalID.String() + `","goal_description":"run 5k"}`
	expected := service.SendNudgeRequest{
		SenderID:        userID,
		SenderName:      userName,
		ReceiverID:      receiverID,
		GoalID:          goalID,
		GoalDescription: "run 5k",
	}

	testCases := []struct {
		Desc         string
		Body         io.Reader
		ExpectedCode int
		MockPrepFunc func()
		Check        func(t *testing.T, rr *httptest.ResponseRecorder)
	}{
		{
			Desc:         "sent",
			Body:         strings.NewReader(body),
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				nService.EXPECT().SendNudge(gomock.Any(), expected).Return(nudgeID, nil)
			},
			Check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				var resp map[string]string
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, nudgeID.String(), resp["nudge_id"])
			},
		},
		{
			Desc: "explicit sender name",
			Body: strings.NewReader(`{"receiver_id":"` + receiverID.String() + `","goal_id":"` + goalID.String() +
				`","goal_description":"run 5k","sender_name":"Coach A"}`),
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				req := expected
				req.SenderName = "Coach A"
				nService.EXPECT().SendNudge(gomock.Any(), req).Return(nudgeID, nil)
			},
		},
		{
			Desc:         "cooldown active",
			Body:         strings.NewReader(body),
			ExpectedCode: http.StatusTooManyRequests,
			MockPrepFunc: func() {
				nService.EXPECT().SendNudge(gomock.Any(), expected).Return(uuid.UUID{}, &errorvalues.CooldownError{RemainingMinutes: 50})
			},
			Check: func(t *testing.T, rr *httptest.ResponseRecorder) {
				assert.Equal(t, "3000", rr.Header().Get("Retry-After"))
				var resp httputil.ErrorResponse
				require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
				assert.Equal(t, 50, resp.RetryAfterMinutes)
				assert.Equal(t, "please wait 50 minutes before nudging again", resp.Message)
			},
		},
		{
			Desc:         "self nudge",
			Body:         strings.NewReader(body),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				nService.EXPECT().SendNudge(gomock.Any(), expected).Return(uuid.UUID{}, errorvalues.ErrSelfNudge)
			},
		},
		{
			Desc:         "missing fields",
			Body:         strings.NewReader(`{"goal_description":"run 5k"}`),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				nService.EXPECT().SendNudge(gomock.Any(), service.SendNudgeRequest{
					SenderID:        userID,
					SenderName:      userName,
					GoalDescription: "run 5k",
				}).Return(uuid.UUID{}, errorvalues.ErrValidation)
			},
		},
		{
			Desc:         "goal missing",
			Body:         strings.NewReader(body),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				nService.EXPECT().SendNudge(gomock.Any(), expected).Return(uuid.UUID{}, errorvalues.ErrGoalNotFound)
			},
		},
		{
			Desc:         "service error",
			Body:         strings.NewReader(body),
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				nService.EXPECT().SendNudge(gomock.Any(), expected).Return(uuid.UUID{}, errors.New("service error"))
			},
		},
		{
			Desc:         "empty body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			serv.SendNudge(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/nudges", tc.Body)))
			require.Equal(t, tc.ExpectedCode, rr.Result().StatusCode)
			if tc.Check != nil {
				tc.Check(t, rr)
			}
		})
	}
}

func TestNudgeCooldownEndpoints(t *testing.T) {
	ctrl := gomock.NewController(t)
	nService := mocks.NewMockNudgeServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		NudgeService: nService,
	})
	goalID := uuid.New()
	until := time.Date(2025, 3, 5, 11, 0, 0, 0, time.UTC)

	t.Run("remaining minutes", func(t *testing.T) {
		nService.EXPECT().GetRemainingCooldownMinutes(gomock.Any(), userID, goalID).Return(42, nil)
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/nudges/cooldowns/"+goalID.String(), nil))
		r.SetPathValue("goalId", goalID.String())
		serv.GetNudgeCooldown(rr, r)
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp api.NudgeCooldownResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.False(t, resp.CanSend)
		assert.Equal(t, 42, resp.RemainingMinutes)
	})
	t.Run("no cooldown", func(t *testing.T) {
		nService.EXPECT().GetRemainingCooldownMinutes(gomock.Any(), userID, goalID).Return(0, nil)
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/nudges/cooldowns/"+goalID.String(), nil))
		r.SetPathValue("goalId", goalID.String())
		serv.GetNudgeCooldown(rr, r)
		var resp api.NudgeCooldownResponse
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, resp.CanSend)
	})
	t.Run("invalid goal id", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := withUser(httptest.NewRequest(http.MethodGet, "/api/v1/nudges/cooldowns/x", nil))
		r.SetPathValue("goalId", "x")
		serv.GetNudgeCooldown(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Result().StatusCode)
	})
	t.Run("active cooldowns", func(t *testing.T) {
		nService.EXPECT().GetNudgeCooldowns(gomock.Any(), userID).Return(map[uuid.UUID]time.Time{goalID: until}, nil)
		rr := httptest.NewRecorder()
		serv.GetNudgeCooldowns(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/nudges/cooldowns", nil)))
		require.Equal(t, http.StatusOK, rr.Result().StatusCode)
		var resp struct {
			Cooldowns map[string]time.Time `json:"cooldowns"`
		}
		require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
		assert.True(t, until.Equal(resp.Cooldowns[goalID.String()]))
	})
	t.Run("cooldowns store error", func(t *testing.T) {
		nService.EXPECT().GetNudgeCooldowns(gomock.Any(), userID).Return(nil, errors.New("cooldown store error: timeout"))
		rr := httptest.NewRecorder()
		serv.GetNudgeCooldowns(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/nudges/cooldowns", nil)))
		assert.Equal(t, http.StatusInternalServerError, rr.Result().StatusCode)
	})
}

func TestGetNudges(t *testing.T) {
	ctrl := gomock.NewController(t)
	nService := mocks.NewMockNudgeServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		NudgeService: nService,
	})
	nudges := []*entity.Nudge{{ID: uuid.New(), ReceiverID: userID, SenderName: "Bob", GoalDescription: "run 5k"}}

	nService.EXPECT().GetReceivedNudges(gomock.Any(), userID, service.PaginationOpts{Limit: 20, Offset: 20}).Return(nudges, nil)
	rr := httptest.NewRecorder()
	serv.GetNudges(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/nudges?page=2&limit=20", nil)))
	require.Equal(t, http.StatusOK, rr.Result().StatusCode)
	var resp api.GetNudgesResponse
	require.NoError(t, sonic.ConfigDefault.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, 2, resp.Page)
	require.Len(t, resp.Nudges, 1)
	assert.Equal(t, "Bob", resp.Nudges[0].SenderName)

	rr = httptest.NewRecorder()
	serv.GetNudges(rr, httptest.NewRequest(http.MethodGet, "/api/v1/nudges", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Result().StatusCode)
}
