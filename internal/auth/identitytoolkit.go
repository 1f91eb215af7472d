package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// restCodes maps Identity Toolkit REST error strings to provider codes.
var restCodes = map[string]string{
	"EMAIL_NOT_FOUND":                  CodeUserNotFound,
	"USER_NOT_FOUND":                   CodeUserNotFound,
	"INVALID_PASSWORD":                 CodeWrongPassword,
	"USER_DISABLED":                    CodeUserDisabled,
	"INVALID_EMAIL":                    CodeInvalidEmail,
	"MISSING_EMAIL":                    CodeMissingEmail,
	"TOO_MANY_ATTEMPTS_TRY_LATER":      CodeTooManyRequests,
	"RESET_PASSWORD_EXCEED_LIMIT":      CodeTooManyRequests,
	"INVALID_LOGIN_CREDENTIALS":        CodeInvalidCredential,
	"INVALID_IDP_RESPONSE":             CodeInvalidCredential,
	"EMAIL_EXISTS":                     CodeEmailInUse,
	"WEAK_PASSWORD":                    CodeWeakPassword,
	"NEED_CONFIRMATION":                CodeAccountExists,
	"FEDERATED_USER_ID_ALREADY_LINKED": CodeCredentialInUse,
	"OPERATION_NOT_ALLOWED":            CodeOperationNotAllowed,
	"TOKEN_EXPIRED":                    CodeTokenExpired,
	"API_KEY_INVALID":                  CodeInvalidAPIKey,
}

// IdentityToolkitConfig configures the REST provider.
type IdentityToolkitConfig struct {
	APIKey      string
	Endpoint    string // e.g. https://identitytoolkit.googleapis.com/v1
	ContinueURL string // where password reset links and IdP redirects return to
	Timeout     time.Duration
}

// IdentityToolkit is a Provider backed by the Google Identity Toolkit REST API.
type IdentityToolkit struct {
	apiKey      string
	endpoint    string
	continueURL string
	client      *http.Client
}

// NewIdentityToolkit returns a REST provider for cfg.
func NewIdentityToolkit(cfg IdentityToolkitConfig) *IdentityToolkit {
	return &IdentityToolkit{
		apiKey:      cfg.APIKey,
		endpoint:    strings.TrimRight(cfg.Endpoint, "/"),
		continueURL: cfg.ContinueURL,
		client:      &http.Client{Timeout: cfg.Timeout},
	}
}

type accountResponse struct {
	LocalID      string `json:"localId"`
	Email        string `json:"email"`
	DisplayName  string `json:"displayName"`
	PhotoURL     string `json:"photoUrl"`
	ProviderID   string `json:"providerId"`
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"`
	ErrorMessage string `json:"errorMessage"`
}

func (r accountResponse) user(defaultProvider string) *User {
	provider := r.ProviderID
	if provider == "" {
		provider = defaultProvider
	}
	return &User{
		UID:          r.LocalID,
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PhotoURL:     r.PhotoURL,
		ProviderID:   provider,
		IDToken:      r.IDToken,
		RefreshToken: r.RefreshToken,
		ExpiresIn:    r.ExpiresIn,
	}
}

type restErrorBody struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithPassword implements Provider.
func (p *IdentityToolkit) SignInWithPassword(ctx context.Context, email, password string) (*User, error) {
	req := map[string]any{
		"email":             email,
		"password":          password,
		"returnSecureToken": true,
	}
	var resp accountResponse
	if err := p.call(ctx, "signInWithPassword", req, &resp); err != nil {
		return nil, err
	}
	return resp.user("password"), nil
}

// SignInWithCredential implements Provider.
func (p *IdentityToolkit) SignInWithCredential(ctx context.Context, cred Credential) (*User, error) {
	if cred.ProviderID == "" || (cred.IDToken == "" && cred.AccessToken == "") {
		return nil, &ProviderError{Code: CodeInvalidCredential, Message: "credential requires a provider and a token"}
	}

	post := url.Values{}
	post.Set("providerId", cred.ProviderID)
	if cred.IDToken != "" {
		post.Set("id_token", cred.IDToken)
	}
	if cred.AccessToken != "" {
		post.Set("access_token", cred.AccessToken)
	}

	requestURI := p.continueURL
	if requestURI == "" {
		requestURI = "http://localhost"
	}
	req := map[string]any{
		"postBody":            post.Encode(),
		"requestUri":          requestURI,
		"returnSecureToken":   true,
		"returnIdpCredential": true,
	}
	var resp accountResponse
	if err := p.call(ctx, "signInWithIdp", req, &resp); err != nil {
		return nil, err
	}
	if resp.ErrorMessage != "" {
		return nil, restError(resp.ErrorMessage)
	}
	return resp.user(cred.ProviderID), nil
}

// SignOut implements Provider. Tokens are held by the caller, so there is
// nothing to revoke remotely.
func (p *IdentityToolkit) SignOut(context.Context, Session) error {
	return nil
}

// SendPasswordResetEmail implements Provider.
func (p *IdentityToolkit) SendPasswordResetEmail(ctx context.Context, email string) error {
	req := map[string]any{
		"requestType":        "PASSWORD_RESET",
		"email":              email,
		"canHandleCodeInApp": false,
	}
	if p.continueURL != "" {
		req["continueUrl"] = p.continueURL
	}
	return p.call(ctx, "sendOobCode", req, nil)
}

func (p *IdentityToolkit) call(ctx context.Context, method string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal %s request: %w", method, err)
	}

	target := fmt.Sprintf("%s/accounts:%s?key=%s", p.endpoint, method, url.QueryEscape(p.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return &ProviderError{Code: CodeNetworkFailed, Message: err.Error()}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return &ProviderError{Code: CodeNetworkFailed, Message: err.Error()}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var restErr restErrorBody
		if err := json.Unmarshal(data, &restErr); err != nil || restErr.Error.Message == "" {
			return &ProviderError{Code: CodeInternalError, Message: fmt.Sprintf("%s failed with status %d", method, resp.StatusCode)}
		}
		return restError(restErr.Error.Message)
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return &ProviderError{Code: CodeInternalError, Message: fmt.Sprintf("invalid %s response: %v", method, err)}
	}
	return nil
}

// restError converts a REST message such as "WEAK_PASSWORD : Password should
// be at least 6 characters" into a ProviderError.
func restError(message string) *ProviderError {
	key, detail, _ := strings.Cut(message, " : ")
	key = strings.TrimSpace(key)
	if strings.HasPrefix(key, "API key not valid") {
		key = "API_KEY_INVALID"
	}
	if code, ok := restCodes[key]; ok {
		return &ProviderError{Code: code, Message: strings.TrimSpace(detail)}
	}
	return &ProviderError{Code: CodeInternalError, Message: message}
}

var _ Provider = (*IdentityToolkit)(nil)

// IsNetworkError reports whether err came from a transport failure.
func IsNetworkError(err error) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code == CodeNetworkFailed
	}
	var pe *ProviderError
	return errors.As(err, &pe) && pe.Code == CodeNetworkFailed
}
