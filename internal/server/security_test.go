package server

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/Maou3434/TOTS/internal/handler"
	"github.com/Maou3434/TOTS/mocks"
)

func TestAPIKeyMiddleware(t *testing.T) {
	apiKey := "secret-key"
	middleware := APIKeyMiddleware(apiKey, nil, NewSuspiciousActivityDetector())

	tests := []struct {
		name           string
		providedKey    string
		expectedStatus int
	}{
		{
			name:           "Valid API Key",
			providedKey:    apiKey,
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Invalid API Key",
			providedKey:    "wrong-key",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing API Key",
			providedKey:    "",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/v1/admin/attempts/pending", nil)
			if tt.providedKey != "" {
				req.Header.Set(HeaderAPIKey, tt.providedKey)
			}
			rec := httptest.NewRecorder()

			handlerFn := middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))
			handlerFn.ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
		})
	}
}

func TestSessionMiddleware(t *testing.T) {
	teamID := uuid.New()

	tests := []struct {
		name           string
		authHeader     string
		setupMock      func(*mocks.MockTeamService)
		expectedStatus int
		expectTeamID   bool
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer good-token",
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Authenticate", mock.Anything, "good-token").Return(teamID, nil)
			},
			expectedStatus: http.StatusOK,
			expectTeamID:   true,
		},
		{
			name:       "Expired token",
			authHeader: "Bearer stale-token",
			setupMock: func(m *mocks.MockTeamService) {
				m.On("Authenticate", mock.Anything, "stale-token").Return(uuid.Nil, errors.New("unauthorized"))
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Missing header",
			authHeader:     "",
			setupMock:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Wrong scheme",
			authHeader:     "Basic dXNlcjpwYXNz",
			setupMock:      func(m *mocks.MockTeamService) {},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := mocks.NewMockTeamService(t)
			tt.setupMock(mockSvc)

			var gotTeamID uuid.UUID
			var gotOK bool
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotTeamID, gotOK = handler.TeamIDFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/api/v1/team/roster", nil)
			if tt.authHeader != "" {
				req.Header.Set(HeaderAuthorization, tt.authHeader)
			}
			rec := httptest.NewRecorder()

			SessionMiddleware(mockSvc)(next).ServeHTTP(rec, req)

			if rec.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rec.Code)
			}
			if tt.expectTeamID {
				if !gotOK || gotTeamID != teamID {
					t.Errorf("expected team id %s on context, got %s (ok=%v)", teamID, gotTeamID, gotOK)
				}
			}
		})
	}
}
