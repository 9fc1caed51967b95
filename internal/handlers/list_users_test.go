package handlers

import (
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

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	aliceID := uuid.New()
	bobID := uuid.New()

	t.Run("success", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.UserSummaryDB{
				{UserID: aliceID, Username: "alice"},
				{UserID: bobID, Username: "bob"},
			}, nil)

		handler := NewListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)

		var resp []UserListItem
		err := json.Unmarshal(rr.Body.Bytes(), &resp)
		assert.NoError(t, err)
		assert.Equal(t, []UserListItem{
			{ID: aliceID.String(), Username: "alice"},
			{ID: bobID.String(), Username: "bob"},
		}, resp)
	})

	t.Run("empty list is a JSON array", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return(nil, nil)

		handler := NewListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 200, rr.Code)
		assert.JSONEq(t, `[]`, rr.Body.String())
	})

	t.Run("internal server error", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("database failure"))

		handler := NewListUsersHandler(mockSvc)

		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rr := httptest.NewRecorder()
		handler(rr, req)

		assert.Equal(t, 500, rr.Code)
		assert.JSONEq(t, `{"error":"Internal server error"}`, rr.Body.String())
	})
}
