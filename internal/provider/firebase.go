// Package provider implements the identity-provider port against the
// Firebase Auth REST API.
package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"gospel-keys/internal/usecase"
	"gospel-keys/pkg/logger"
)

const firebaseAuthURL = "https://identitytoolkit.googleapis.com/v1"

type FirebaseProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewFirebaseProvider(apiKey string, log *logger.Logger) *FirebaseProvider {
	return &FirebaseProvider{
		apiKey:     apiKey,
		baseURL:    firebaseAuthURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		logger:     log,
	}
}

type signUpRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	DisplayName       string `json:"displayName,omitempty"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type authResponse struct {
	LocalID     string `json:"localId"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	IDToken     string `json:"idToken"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

func (p *FirebaseProvider) SignUp(ctx context.Context, email, password, displayName string) (*usecase.Identity, error) {
	resp, err := p.post(ctx, "accounts:signUp", signUpRequest{
		Email:             email,
		Password:          password,
		DisplayName:       displayName,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}
	return &usecase.Identity{
		UID:         resp.LocalID,
		Email:       resp.Email,
		DisplayName: displayName,
	}, nil
}

func (p *FirebaseProvider) SignIn(ctx context.Context, email, password string) (*usecase.Identity, error) {
	resp, err := p.post(ctx, "accounts:signInWithPassword", signUpRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	})
	if err != nil {
		return nil, err
	}
	return &usecase.Identity{
		UID:         resp.LocalID,
		Email:       resp.Email,
		DisplayName: resp.DisplayName,
	}, nil
}

// SignOut has no server-side counterpart in the REST API; the session the
// use case layer clears is the only thing to tear down.
func (p *FirebaseProvider) SignOut(ctx context.Context) error {
	return nil
}

func (p *FirebaseProvider) post(ctx context.Context, endpoint string, payload signUpRequest) (*authResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/%s?key=%s", p.baseURL, endpoint, p.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	httpResp, err := p.httpClient.Do(req)
	if err != nil {
		p.logger.Error("Identity provider request failed: %v", err)
		return nil, err
	}
	defer httpResp.Body.Close()

	if httpResp.StatusCode != http.StatusOK {
		var errResp errorResponse
		if err := json.NewDecoder(httpResp.Body).Decode(&errResp); err != nil {
			return nil, fmt.Errorf("identity provider returned status %d", httpResp.StatusCode)
		}
		return nil, &usecase.ProviderError{
			Code:    translateCode(errResp.Error.Message),
			Message: errResp.Error.Message,
		}
	}

	var resp authResponse
	if err := json.NewDecoder(httpResp.Body).Decode(&resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func translateCode(message string) string {
	switch message {
	case "EMAIL_EXISTS":
		return "auth/email-already-in-use"
	case "EMAIL_NOT_FOUND":
		return "auth/user-not-found"
	case "INVALID_PASSWORD":
		return "auth/wrong-password"
	case "INVALID_LOGIN_CREDENTIALS":
		return "auth/invalid-credential"
	case "WEAK_PASSWORD : Password should be at least 6 characters":
		return "auth/weak-password"
	case "TOO_MANY_ATTEMPTS_TRY_LATER":
		return "auth/too-many-requests"
	default:
		return "auth/internal-error"
	}
}
