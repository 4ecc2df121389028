package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/mlevchuk/noteapp/internal/logger"
	"github.com/mlevchuk/noteapp/internal/service"
	"github.com/mlevchuk/noteapp/internal/utils"
	"github.com/mlevchuk/noteapp/models"
)

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case; calling an unset
// method panics, which flags an unexpected service call.
type mockAuthService struct {
	registerFn   func(ctx context.Context, req models.RegisterRequest) (models.User, error)
	loginFn      func(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)
	parseTokenFn func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return m.parseTokenFn(ctx, tokenString)
}

// mockNoteService implements service.NoteService for unit tests.
type mockNoteService struct {
	createFn func(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error)
	listFn   func(ctx context.Context, userID int64) ([]models.Note, error)
	updateFn func(ctx context.Context, userID, noteID int64, req models.NoteRequest) (models.Note, error)
	deleteFn func(ctx context.Context, userID, noteID int64) error
	toggleFn func(ctx context.Context, userID, noteID int64) (models.Note, error)
}

func (m *mockNoteService) Create(ctx context.Context, userID int64, req models.NoteRequest) (models.Note, error) {
	return m.createFn(ctx, userID, req)
}

func (m *mockNoteService) List(ctx context.Context, userID int64) ([]models.Note, error) {
	return m.listFn(ctx, userID)
}

func (m *mockNoteService) Update(ctx context.Context, userID, noteID int64, req models.NoteRequest) (models.Note, error) {
	return m.updateFn(ctx, userID, noteID, req)
}

func (m *mockNoteService) Delete(ctx context.Context, userID, noteID int64) error {
	return m.deleteFn(ctx, userID, noteID)
}

func (m *mockNoteService) ToggleFavorite(ctx context.Context, userID, noteID int64) (models.Note, error) {
	return m.toggleFn(ctx, userID, noteID)
}

// newTestHandler builds a Handler over the given service mocks. Either mock
// may be nil when the test exercises only the other service.
func newTestHandler(t *testing.T, auth service.AuthService, notes service.NoteService) *Handler {
	t.Helper()
	return NewHandler(&service.Services{
		AuthService: auth,
		NoteService: notes,
	}, logger.Nop())
}

// jsonBody serialises v to a JSON string for request bodies.
func jsonBody(t *testing.T, v any) string {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return string(b)
}

// withUserID stores userID in the request context the way the auth
// middleware does.
func withUserID(r *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
	return r.WithContext(ctx)
}

// withNoteID injects a chi route context carrying the {id} URL parameter,
// standing in for the router during direct handler calls.
func withNoteID(r *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("id", id)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// decodeMessage unmarshals a {"message": "..."} response body.
func decodeMessage(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp messageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Message
}
