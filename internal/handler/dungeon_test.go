package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/mocks"
)

func TestHandleListDungeons(t *testing.T) {
	mockSvc := mocks.NewMockDungeonService(t)
	mockSvc.On("ListDungeons", mock.Anything).Return([]domain.Dungeon{
		{Name: "Goblin Cave", Rank: domain.RankE},
		{Name: "Abyssal Rift", Rank: domain.RankS},
	}, nil)

	req := httptest.NewRequest("GET", "/dungeons", nil)
	w := httptest.NewRecorder()

	HandleListDungeons(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Goblin Cave")
	assert.Contains(t, w.Body.String(), "Abyssal Rift")
}

func TestHandleSubmitAttempt(t *testing.T) {
	InitValidator()

	teamID := uuid.New()
	dungeonID := uuid.New()
	attemptID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockDungeonService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: SubmitAttemptRequest{DungeonID: dungeonID.String()},
			setupMock: func(m *mocks.MockDungeonService) {
				m.On("SubmitAttempt", mock.Anything, teamID, dungeonID).Return(&domain.DungeonAttempt{
					ID:        attemptID,
					TeamID:    teamID,
					DungeonID: dungeonID,
					Status:    domain.StatusPending,
				}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "pending",
		},
		{
			name:        "Out Of Stamina",
			requestBody: SubmitAttemptRequest{DungeonID: dungeonID.String()},
			setupMock: func(m *mocks.MockDungeonService) {
				m.On("SubmitAttempt", mock.Anything, teamID, dungeonID).
					Return(nil, domain.ErrInsufficientStamina)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgNoStaminaError,
		},
		{
			name:        "Attempt Already Pending",
			requestBody: SubmitAttemptRequest{DungeonID: dungeonID.String()},
			setupMock: func(m *mocks.MockDungeonService) {
				m.On("SubmitAttempt", mock.Anything, teamID, dungeonID).
					Return(nil, domain.ErrAttemptPending)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgAttemptPendingError,
		},
		{
			name:        "Unknown Dungeon",
			requestBody: SubmitAttemptRequest{DungeonID: dungeonID.String()},
			setupMock: func(m *mocks.MockDungeonService) {
				m.On("SubmitAttempt", mock.Anything, teamID, dungeonID).
					Return(nil, domain.ErrDungeonNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgDungeonNotFoundError,
		},
		{
			name:           "Invalid Dungeon ID",
			requestBody:    SubmitAttemptRequest{DungeonID: "nope"},
			setupMock:      func(m *mocks.MockDungeonService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockDungeonService(t)
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/dungeons/attempt", bytes.NewBuffer(body))
			req = req.WithContext(WithTeamID(req.Context(), teamID))
			w := httptest.NewRecorder()

			HandleSubmitAttempt(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleSubmitAttempt_NoSession(t *testing.T) {
	mockSvc := mocks.NewMockDungeonService(t)

	body, _ := json.Marshal(SubmitAttemptRequest{DungeonID: uuid.NewString()})
	req := httptest.NewRequest("POST", "/dungeons/attempt", bytes.NewBuffer(body))
	w := httptest.NewRecorder()

	HandleSubmitAttempt(mockSvc).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
