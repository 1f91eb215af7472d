package auth

// Error codes produced by providers.
const (
	CodeUserNotFound        = "auth/user-not-found"
	CodeWrongPassword       = "auth/wrong-password"
	CodeInvalidEmail        = "auth/invalid-email"
	CodeUserDisabled        = "auth/user-disabled"
	CodeTooManyRequests     = "auth/too-many-requests"
	CodeNetworkFailed       = "auth/network-request-failed"
	CodePopupClosed         = "auth/popup-closed-by-user"
	CodePopupCancelled      = "auth/cancelled-popup-request"
	CodePopupBlocked        = "auth/popup-blocked"
	CodeAccountExists       = "auth/account-exists-with-different-credential"
	CodeEmailInUse          = "auth/email-already-in-use"
	CodeWeakPassword        = "auth/weak-password"
	CodeInvalidCredential   = "auth/invalid-credential"
	CodeCredentialInUse     = "auth/credential-already-in-use"
	CodeInvalidAPIKey       = "auth/invalid-api-key"
	CodeOperationNotAllowed = "auth/operation-not-allowed"
	CodeMissingEmail        = "auth/missing-email"
	CodeTokenExpired        = "auth/user-token-expired"
	CodeInternalError       = "auth/internal-error"
)

// DefaultMessage is used when a code is unknown and the provider gave no text.
const DefaultMessage = "An unexpected error occurred."

// messageTable lists the user-facing messages in declaration order. Some
// codes appear twice; the later entry wins.
var messageTable = []struct {
	code    string
	message string
}{
	{CodeUserNotFound, "No account found with this email address."},
	{CodeWrongPassword, "Incorrect password. Please try again."},
	{CodeInvalidEmail, "Invalid email address format."},
	{CodeUserDisabled, "This account has been disabled."},
	{CodeTooManyRequests, "Too many failed attempts. Please try again later."},
	{CodeNetworkFailed, "Network error. Please check your connection."},
	{CodePopupClosed, "Sign-in popup was closed. Please try again."},
	{CodePopupCancelled, "Sign-in was cancelled. Please try again."},
	{CodePopupBlocked, "Sign-in popup was blocked. Please allow popups and try again."},
	{CodeAccountExists, "An account already exists with this email but different sign-in method."},
	{CodeEmailInUse, "An account already exists with this email address."},
	{CodeWeakPassword, "Password should be at least 6 characters."},
	{CodeInvalidCredential, "Invalid credentials. Please check your email and password."},
	{CodeUserNotFound, "No account found with this email address."},
	{CodeInvalidEmail, "Invalid email address format."},
	{CodeTooManyRequests, "Too many password reset attempts. Please try again later."},
}

var messages = func() map[string]string {
	m := make(map[string]string, len(messageTable))
	for _, entry := range messageTable {
		m[entry.code] = entry.message
	}
	return m
}()

// Message returns the user-facing text for code. Unknown codes fall back to
// providerMessage, then to DefaultMessage.
func Message(code, providerMessage string) string {
	if msg, ok := messages[code]; ok {
		return msg
	}
	if providerMessage != "" {
		return providerMessage
	}
	return DefaultMessage
}
