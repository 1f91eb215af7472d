package server

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/iwvelando/accounting-tutor/internal/auth"
)

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (h *handler) handleSignIn(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSignIn"
	var req signInRequest
	if !h.authRequest(w, r, op, &req) {
		return
	}

	user, err := h.gateway.SignInWithEmail(r.Context(), req.Email, req.Password)
	h.respondAuth(w, r, op, "signin", user, err)
}

func (h *handler) handleSignInProvider(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSignInProvider"
	var cred auth.Credential
	if !h.authRequest(w, r, op, &cred) {
		return
	}

	user, err := h.gateway.SignInWithProvider(r.Context(), cred)
	h.respondAuth(w, r, op, "signin_provider", user, err)
}

func (h *handler) handleSignOut(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleSignOut"
	var session auth.Session
	if !h.authRequest(w, r, op, &session) {
		return
	}

	err := h.gateway.SignOut(r.Context(), session)
	h.respondAuth(w, r, op, "signout", map[string]string{"status": "signed out"}, err)
}

func (h *handler) handlePasswordReset(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePasswordReset"
	var req passwordResetRequest
	if !h.authRequest(w, r, op, &req) {
		return
	}

	err := h.gateway.SendPasswordResetEmail(r.Context(), req.Email)
	h.respondAuth(w, r, op, "password_reset", map[string]string{"status": "sent"}, err)
}

// authRequest checks that auth is configured and decodes the body into dst.
func (h *handler) authRequest(w http.ResponseWriter, r *http.Request, op string, dst any) bool {
	if h.gateway == nil {
		h.respondErrorWithOp(w, r, http.StatusServiceUnavailable, "authentication is not configured", op)
		return false
	}
	if status, err := h.decodeBody(w, r, dst); err != nil {
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return false
	}
	return true
}

func (h *handler) respondAuth(w http.ResponseWriter, r *http.Request, op, operation string, payload any, err error) {
	if err == nil {
		h.metrics.RecordAuth(operation, "")
		h.logger.Info("authentication request succeeded",
			zap.String("op", op),
			zap.String("request_id", requestID(r)),
		)
		h.writeJSON(w, http.StatusOK, payload)
		return
	}

	var authErr *auth.Error
	if !errors.As(err, &authErr) {
		authErr = auth.Translate(err)
	}
	h.metrics.RecordAuth(operation, authErr.Code)
	h.writeJSON(w, statusForAuth(authErr), authErr)
}

// statusForAuth maps an auth failure code to an HTTP status. Anything not
// listed is a rejected credential.
func statusForAuth(err *auth.Error) int {
	switch err.Code {
	case auth.CodeNetworkFailed, auth.CodeInternalError, auth.CodeInvalidAPIKey:
		return http.StatusBadGateway
	case auth.CodeInvalidEmail, auth.CodeMissingEmail, auth.CodeWeakPassword,
		auth.CodeEmailInUse, auth.CodeOperationNotAllowed:
		return http.StatusBadRequest
	default:
		return http.StatusUnauthorized
	}
}
