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
	"github.com/Maou3434/TOTS/internal/team"
	"github.com/Maou3434/TOTS/mocks"
)

func validRegisterBody() RegisterTeamRequest {
	return RegisterTeamRequest{
		TeamName: "night-watch",
		Password: "hunter2hunter2",
		Members: []MemberSpec{
			{Name: "Aldric", Class: "tank"},
			{Name: "Mira", Class: "healer"},
			{Name: "Sev", Class: "assassin"},
		},
	}
}

func TestHandleRegisterTeam(t *testing.T) {
	InitValidator()

	teamID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockTeamService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: validRegisterBody(),
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Register", mock.Anything, "night-watch", "hunter2hunter2", []team.MemberSpec{
					{Name: "Aldric", Class: domain.ClassTank},
					{Name: "Mira", Class: domain.ClassHealer},
					{Name: "Sev", Class: domain.ClassAssassin},
				}).Return(&domain.Team{ID: teamID, Name: "night-watch", Stamina: 100}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedBody:   "night-watch",
		},
		{
			name: "Invalid Request - Two Members",
			requestBody: RegisterTeamRequest{
				TeamName: "duo",
				Password: "hunter2hunter2",
				Members: []MemberSpec{
					{Name: "Aldric", Class: "tank"},
					{Name: "Mira", Class: "healer"},
				},
			},
			setupMock:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
		{
			name: "Invalid Request - Unknown Class",
			requestBody: func() RegisterTeamRequest {
				req := validRegisterBody()
				req.Members[0].Class = "necromancer"
				return req
			}(),
			setupMock:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "Invalid character class",
		},
		{
			name:        "Name Taken",
			requestBody: validRegisterBody(),
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Register", mock.Anything, "night-watch", "hunter2hunter2", mock.Anything).
					Return(nil, domain.ErrTeamNameTaken)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgTeamNameTakenError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTeamService(t)
			tt.setupMock(mockSvc)

			handler := HandleRegisterTeam(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/team/register", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleLogin(t *testing.T) {
	InitValidator()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockTeamService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: LoginRequest{TeamName: "night-watch", Password: "hunter2hunter2"},
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Login", mock.Anything, "night-watch", "hunter2hunter2").
					Return("session-token", &domain.Team{Name: "night-watch"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "session-token",
		},
		{
			name:        "Bad Credentials",
			requestBody: LoginRequest{TeamName: "night-watch", Password: "wrong"},
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Login", mock.Anything, "night-watch", "wrong").
					Return("", nil, domain.ErrInvalidCredential)
			},
			expectedStatus: http.StatusUnauthorized,
			expectedBody:   ErrMsgBadCredentialsError,
		},
		{
			name:           "Missing Password",
			requestBody:    LoginRequest{TeamName: "night-watch"},
			setupMock:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTeamService(t)
			tt.setupMock(mockSvc)

			handler := HandleLogin(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/team/login", bytes.NewBuffer(body))
			w := httptest.NewRecorder()

			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}

func TestHandleGetRoster(t *testing.T) {
	teamID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		mockSvc := mocks.NewMockTeamService(t)
		mockSvc.On("Roster", mock.Anything, teamID).Return([]domain.Player{
			{Name: "Aldric", Class: domain.ClassTank, Health: 150},
		}, nil)

		req := httptest.NewRequest("GET", "/team/roster", nil)
		req = req.WithContext(WithTeamID(req.Context(), teamID))
		w := httptest.NewRecorder()

		HandleGetRoster(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Aldric")
	})

	t.Run("No session", func(t *testing.T) {
		mockSvc := mocks.NewMockTeamService(t)

		req := httptest.NewRequest("GET", "/team/roster", nil)
		w := httptest.NewRecorder()

		HandleGetRoster(mockSvc).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandleEquip(t *testing.T) {
	InitValidator()

	teamID := uuid.New()
	playerID := uuid.New()
	itemID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockTeamService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: EquipRequest{PlayerID: playerID.String(), ItemID: itemID.String()},
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Equip", mock.Anything, teamID, playerID, itemID).Return(nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   "Item equipped",
		},
		{
			name:        "Artifact Slots Full",
			requestBody: EquipRequest{PlayerID: playerID.String(), ItemID: itemID.String()},
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Equip", mock.Anything, teamID, playerID, itemID).Return(domain.ErrArtifactCap)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   ErrMsgArtifactCapError,
		},
		{
			name:           "Invalid Item ID",
			requestBody:    EquipRequest{PlayerID: playerID.String(), ItemID: "not-a-uuid"},
			setupMock:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   ErrMsgInvalidRequestSummary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTeamService(t)
			tt.setupMock(mockSvc)

			body, _ := json.Marshal(tt.requestBody)
			req := httptest.NewRequest("POST", "/team/equip", bytes.NewBuffer(body))
			req = req.WithContext(WithTeamID(req.Context(), teamID))
			w := httptest.NewRecorder()

			HandleEquip(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
