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

	"github.com/Maou3434/TOTS/internal/battle"
	"github.com/Maou3434/TOTS/internal/domain"
	"github.com/Maou3434/TOTS/mocks"
)

func TestHandleSimulate(t *testing.T) {
	InitValidator()

	attackerID := uuid.New()
	defenderID := uuid.New()

	tests := []struct {
		name           string
		requestBody    interface{}
		setupMock      func(*mocks.MockBattleService)
		expectedStatus int
		expectedBody   string
	}{
		{
			name:        "Success",
			requestBody: SimulateRequest{AttackerID: attackerID.String(), DefenderID: defenderID.String()},
			setupMock: func(m *mocks.MockBattleService) {
				m.On("Simulate", mock.Anything, attackerID, defenderID).Return(&battle.Simulation{
					Attacker: battle.Combatant{Player: domain.Player{ID: attackerID, Name: "Aldric"}},
					Defender: battle.Combatant{Player: domain.Player{ID: defenderID, Name: "Mira"}},
					Result:   battle.AttackResult{Damage: 34, Attack: 120, Defense: 86},
				}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `"damage":34`,
		},
		{
			name:        "Same Player",
			requestBody: SimulateRequest{AttackerID: attackerID.String(), DefenderID: attackerID.String()},
			setupMock: func(m *mocks.MockBattleService) {
				m.On("Simulate", mock.Anything, attackerID, attackerID).Return(nil, domain.ErrInvalidInput)
			},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:        "Player Not Found",
			requestBody: SimulateRequest{AttackerID: attackerID.String(), DefenderID: defenderID.String()},
			setupMock: func(m *mocks.MockBattleService) {
				m.On("Simulate", mock.Anything, attackerID, defenderID).Return(nil, domain.ErrPlayerNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   ErrMsgPlayerNotFoundError,
		},
		{
			name:           "Invalid Attacker ID",
			requestBody:    SimulateRequest{AttackerID: "not-a-uuid", DefenderID: defenderID.String()},
			setupMock:      func(m *mocks.MockBattleService) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockBattleService(t)
			tt.setupMock(mockSvc)

			body, err := json.Marshal(tt.requestBody)
			assert.NoError(t, err)

			req := httptest.NewRequest("POST", "/battle/simulate", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			HandleSimulate(mockSvc).ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), tt.expectedBody)
			}
		})
	}
}
