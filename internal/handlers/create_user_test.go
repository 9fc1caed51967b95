package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/exercise-tracker/internal/models"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()

	tests := []struct {
		name         string
		body         string
		mockSetup    func(m *MockUserRegisterer)
		expectedCode int
		expectedBody map[string]any
	}{
		{
			name: "success",
			body: `{"username":"fcc_test"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "fcc_test").
					Return(&models.UserDB{UserID: userID, Username: "fcc_test"}, nil)
			},
			expectedCode: 200,
			expectedBody: map[string]any{"username": "fcc_test", "id": userID.String()},
		},
		{
			name:         "missing username",
			body:         `{}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Username is required"},
		},
		{
			name:         "empty username",
			body:         `{"username":""}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Username is required"},
		},
		{
			name:         "invalid json",
			body:         `{invalid json}`,
			expectedCode: 400,
			expectedBody: map[string]any{"error": "Invalid request body"},
		},
		{
			name: "internal server error",
			body: `{"username":"bob"}`,
			mockSetup: func(m *MockUserRegisterer) {
				m.EXPECT().
					Register(gomock.Any(), "bob").
					Return(nil, errors.New("database failure"))
			},
			expectedCode: 500,
			expectedBody: map[string]any{"error": "Internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserRegisterer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			rr := httptest.NewRecorder()
			handler(rr, req)

			assert.Equal(t, tt.expectedCode, rr.Code)

			var resp map[string]any
			err := json.Unmarshal(rr.Body.Bytes(), &resp)
			assert.NoError(t, err)
			assert.Equal(t, tt.expectedBody, resp)
		})
	}
}

func TestCreateUserHandler_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	userID := uuid.New()
	mockSvc := NewMockUserRegisterer(ctrl)
	mockSvc.EXPECT().
		Register(gomock.Any(), "fcc_test").
		Return(&models.UserDB{UserID: userID, Username: "fcc_test"}, nil).
		Times(2)

	handler := NewCreateUserHandler(mockSvc)

	var bodies []string
	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(`{"username":"fcc_test"}`))
		rr := httptest.NewRecorder()
		handler(rr, req)
		assert.Equal(t, 200, rr.Code)
		bodies = append(bodies, rr.Body.String())
	}

	assert.Equal(t, bodies[0], bodies[1])
}
