// Package auth is a thin gateway in front of a hosted identity provider. It
// performs no credential handling of its own: every operation is a single
// delegated call whose failure is translated into a user-facing message.
package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// User is the provider's account record. The gateway passes it through
// without interpretation.
type User struct {
	UID          string `json:"uid"`
	Email        string `json:"email,omitempty"`
	DisplayName  string `json:"displayName,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	ProviderID   string `json:"providerId,omitempty"`
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
	ExpiresIn    string `json:"expiresIn,omitempty"`
}

// Credential is a federated sign-in credential obtained from an external
// identity provider such as Google.
type Credential struct {
	ProviderID  string `json:"providerId"`
	IDToken     string `json:"idToken,omitempty"`
	AccessToken string `json:"accessToken,omitempty"`
}

// Session identifies a signed-in user for sign-out.
type Session struct {
	IDToken      string `json:"idToken,omitempty"`
	RefreshToken string `json:"refreshToken,omitempty"`
}

// Provider is the hosted identity service the gateway delegates to. Failures
// should be reported as *ProviderError so their code can be translated.
type Provider interface {
	SignInWithPassword(ctx context.Context, email, password string) (*User, error)
	SignInWithCredential(ctx context.Context, cred Credential) (*User, error)
	SignOut(ctx context.Context, session Session) error
	SendPasswordResetEmail(ctx context.Context, email string) error
}

// ProviderError is a raw failure reported by a Provider.
type ProviderError struct {
	Code    string
	Message string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return e.Code
	}
	return e.Code + ": " + e.Message
}

// Error is the user-facing failure returned by every Gateway operation.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

// Gateway translates provider failures into user-facing errors.
type Gateway struct {
	provider Provider
	logger   *zap.Logger
}

// NewGateway wraps provider. A nil logger disables logging.
func NewGateway(provider Provider, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Gateway{provider: provider, logger: logger}
}

// SignInWithEmail signs a user in with email and password.
func (g *Gateway) SignInWithEmail(ctx context.Context, email, password string) (*User, error) {
	user, err := g.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, g.fail("auth.SignInWithEmail", err)
	}
	g.logger.Debug("signed in with email", zap.String("op", "auth.SignInWithEmail"), zap.String("uid", user.UID))
	return user, nil
}

// SignInWithProvider signs a user in with a federated credential.
func (g *Gateway) SignInWithProvider(ctx context.Context, cred Credential) (*User, error) {
	user, err := g.provider.SignInWithCredential(ctx, cred)
	if err != nil {
		return nil, g.fail("auth.SignInWithProvider", err)
	}
	g.logger.Debug("signed in with provider",
		zap.String("op", "auth.SignInWithProvider"),
		zap.String("uid", user.UID),
		zap.String("provider", cred.ProviderID),
	)
	return user, nil
}

// SignOut ends the given session.
func (g *Gateway) SignOut(ctx context.Context, session Session) error {
	if err := g.provider.SignOut(ctx, session); err != nil {
		return g.fail("auth.SignOut", err)
	}
	return nil
}

// SendPasswordResetEmail asks the provider to email a password reset link.
func (g *Gateway) SendPasswordResetEmail(ctx context.Context, email string) error {
	if err := g.provider.SendPasswordResetEmail(ctx, email); err != nil {
		return g.fail("auth.SendPasswordResetEmail", err)
	}
	return nil
}

func (g *Gateway) fail(op string, err error) *Error {
	translated := Translate(err)
	g.logger.Warn("authentication request failed",
		zap.String("op", op),
		zap.String("code", translated.Code),
		zap.Error(err),
	)
	return translated
}

// Translate converts any provider failure into an *Error. Errors that are not
// a *ProviderError are reported with code CodeInternalError.
func Translate(err error) *Error {
	var already *Error
	if errors.As(err, &already) {
		return already
	}

	var pe *ProviderError
	if !errors.As(err, &pe) {
		pe = &ProviderError{Code: CodeInternalError, Message: fmt.Sprint(err)}
	}
	return &Error{Code: pe.Code, Message: Message(pe.Code, pe.Message)}
}
