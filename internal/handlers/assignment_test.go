package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/middleware"
	"github.com/D3MONSAUSAGE/Teamtegrate-sub006/internal/service/assignment"
)

func authedRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	ctx := context.WithValue(req.Context(), middleware.UserContextKey, middleware.Claims{
		UserID:         "user-1",
		Email:          "alice@example.com",
		OrganizationID: "org-1",
	})
	return req.WithContext(ctx)
}

// Neither failure mode below reaches the service, so empty stores are fine.
func newTestHandler() *AssignmentHandler {
	return NewAssignmentHandler(assignment.NewService(nil, nil, nil, nil))
}

func TestAssignMissingClaimsIsUnauthorized(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/task/t1/assignment", strings.NewReader(`{"assignment_type":"team","team_id":"team-1"}`))
	rec := httptest.NewRecorder()
	h.Assign(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestAssignMalformedBodyIsBadRequest(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Assign(rec, authedRequest(http.MethodPost, "/task/t1/assignment", `{"assignment_type":`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}

func TestPreviewMissingClaimsIsUnauthorized(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/task/t1/assignment/preview", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.Preview(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
}

func TestPreviewMalformedBodyIsBadRequest(t *testing.T) {
	h := newTestHandler()

	rec := httptest.NewRecorder()
	h.Preview(rec, authedRequest(http.MethodPost, "/task/t1/assignment/preview", `not json`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid request body")
}
