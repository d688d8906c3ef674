package handlers

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	httpapi "fixwize-backend/internal/api/http"
	"fixwize-backend/internal/security"
	"fixwize-backend/internal/service"

	"github.com/gorilla/mux"
)

const testSecret = "handler-test-secret"

// testEnv wires mocked services behind the real router and auth middleware
// so tests exercise routing, token checks and status mapping together.
type testEnv struct {
	quoteSvc    *MockQuoteService
	requestSvc  *MockRequestService
	teamSvc     *MockTeamService
	activitySvc *MockActivityService
	authSvc     *MockAuthService
	tokens      security.TokenManager
	router      *mux.Router
}

func newTestEnv() *testEnv {
	e := &testEnv{
		quoteSvc:    new(MockQuoteService),
		requestSvc:  new(MockRequestService),
		teamSvc:     new(MockTeamService),
		activitySvc: new(MockActivityService),
		authSvc:     new(MockAuthService),
		tokens:      security.NewTokenManager(testSecret),
	}

	h := httpapi.Handlers{
		Auth:     httpapi.NewAuthHandler(e.authSvc),
		Request:  httpapi.NewRequestHandler(e.requestSvc),
		Quote:    httpapi.NewQuoteHandler(e.quoteSvc),
		Team:     httpapi.NewTeamHandler(e.teamSvc),
		Activity: httpapi.NewActivityHandler(e.activitySvc),
		Org:      httpapi.NewOrgHandler(nil),
	}
	e.router = httpapi.NewRouter(h, httpapi.NewAuthMiddleware(e.tokens))
	return e
}

// actor matches the claims baked into accessToken.
func (e *testEnv) actor() service.Actor {
	return service.Actor{ID: 5, Name: "Mike Chan"}
}

func (e *testEnv) accessToken(t *testing.T) string {
	t.Helper()
	token, err := e.tokens.GenerateAccessToken(5, 10, "mike@example.com", "Mike Chan", "admin", []string{"manage_team"})
	if err != nil {
		t.Fatalf("error generating access token: %v", err)
	}
	return token
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}
