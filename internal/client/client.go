package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	"github.com/mlevchuk/noteapp/models"
)

// Client is a typed HTTP client for the note service API.
//
// It wraps resty and mirrors the server's route surface one method per
// operation. After a successful [Client.Login] the bearer token is attached
// to every subsequent request automatically.
type Client struct {
	http *resty.Client
}

// New creates a Client pointed at baseURL, e.g. "http://localhost:4001".
func New(baseURL string) *Client {
	return &Client{
		http: resty.New().SetBaseURL(baseURL),
	}
}

// SetToken installs a bearer token for authenticated requests. Login calls
// this automatically; tests use it to craft requests with arbitrary tokens.
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}

// APIError is the decoded error body returned by the server for non-2xx
// responses that carry a single message.
type APIError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, e.Message)
}

func apiError(resp *resty.Response) error {
	apiErr, ok := resp.Error().(*APIError)
	if !ok || apiErr == nil {
		apiErr = &APIError{}
	}
	apiErr.StatusCode = resp.StatusCode()
	return apiErr
}

// Register creates a new account and returns the created user.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.User, error) {
	var user models.User

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&user).
		SetError(&APIError{}).
		Post("/auth/register")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, apiError(resp)
	}

	return &user, nil
}

// Login exchanges credentials for a token and installs it on the client.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	var loginResponse models.LoginResponse

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&loginResponse).
		SetError(&APIError{}).
		Post("/auth/login")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}

	c.SetToken(loginResponse.Token)

	return &loginResponse, nil
}

// CreateNote creates a note owned by the authenticated user.
func (c *Client) CreateNote(ctx context.Context, req models.NoteRequest) (*models.Note, error) {
	var note models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&note).
		SetError(&APIError{}).
		Post("/noteapp/create-note")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusCreated {
		return nil, apiError(resp)
	}

	return &note, nil
}

// GetNotes lists the authenticated user's notes, newest first.
func (c *Client) GetNotes(ctx context.Context) ([]models.Note, error) {
	var notes []models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&notes).
		SetError(&APIError{}).
		Get("/noteapp/get-notes")
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}

	return notes, nil
}

// UpdateNote replaces the title and content of the note with the given ID.
func (c *Client) UpdateNote(ctx context.Context, noteID int64, req models.NoteRequest) (*models.Note, error) {
	var note models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&note).
		SetError(&APIError{}).
		Put("/noteapp/update-note/" + strconv.FormatInt(noteID, 10))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}

	return &note, nil
}

// DeleteNote removes the note with the given ID.
func (c *Client) DeleteNote(ctx context.Context, noteID int64) error {
	resp, err := c.http.R().
		SetContext(ctx).
		SetError(&APIError{}).
		Delete("/noteapp/delete-note/" + strconv.FormatInt(noteID, 10))
	if err != nil {
		return err
	}
	if resp.StatusCode() != http.StatusOK {
		return apiError(resp)
	}

	return nil
}

// ToggleFavorite flips the favorite flag of the note with the given ID and
// returns the updated note.
func (c *Client) ToggleFavorite(ctx context.Context, noteID int64) (*models.Note, error) {
	var note models.Note

	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(&note).
		SetError(&APIError{}).
		Put("/noteapp/toggle-favorite/" + strconv.FormatInt(noteID, 10))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, apiError(resp)
	}

	return &note, nil
}
