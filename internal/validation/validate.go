// Package validation holds the pure input-format rules for signup and
// login. Functions here never fail across their boundary: they return a
// Result value describing the first rule violated, if any.
package validation

import "regexp"

// Result is the outcome of an input check. It is transient and never
// stored.
type Result struct {
	OK      bool
	Code    string
	Message string
}

// Outcome codes returned by this package.
const (
	CodeOK              = "OK"
	CodeInvalidUsername = "INVALID_USERNAME"
	CodeInvalidPassword = "INVALID_PASSWORD"
	CodeInvalidName     = "INVALID_NAME"
	CodeMissingFields   = "MISSING_FIELDS"
)

// AllowedSpecials is the set of special characters a password may contain.
// At least one of them is required.
const AllowedSpecials = "!@#$%^&*()"

var (
	usernameRE = regexp.MustCompile(`^[A-Za-z]{4,20}$`)

	// Latin letters plus AllowedSpecials, 8-32 chars. Digits are not in the
	// class; the rule ships verbatim pending product review.
	passwordRE   = regexp.MustCompile(`^[A-Za-z!@#$%^&*()]{8,32}$`)
	hasSpecialRE = regexp.MustCompile(`[!@#$%^&*()]`)

	// Hangul syllables, Latin letters, and spaces, 1-30 runes. "Letters of
	// the target script" is the Hangul block for this deployment; confirm
	// with stakeholders before widening.
	displayNameRE = regexp.MustCompile(`^[A-Za-z\x{AC00}-\x{D7A3} ]{1,30}$`)
)

// SignupInput checks username, password, and display name in that order and
// returns the first failure. All three passing yields Code "OK".
func SignupInput(username, password, displayName string) Result {
	if !usernameRE.MatchString(username) {
		return Result{
			Code:    CodeInvalidUsername,
			Message: "username must be 4-20 Latin letters (A-Z, a-z)",
		}
	}

	if !passwordRE.MatchString(password) || !hasSpecialRE.MatchString(password) {
		return Result{
			Code:    CodeInvalidPassword,
			Message: "password must be 8-32 characters of Latin letters and specials (" + AllowedSpecials + "), with at least one special",
		}
	}

	if !displayNameRE.MatchString(displayName) {
		return Result{
			Code:    CodeInvalidName,
			Message: "name must be 1-30 Hangul or Latin letters; spaces are allowed",
		}
	}

	return Result{OK: true, Code: CodeOK, Message: "valid"}
}

// LoginInput only checks field presence. Format rules are not re-applied on
// login, so accounts predating a rule change can still sign in.
func LoginInput(username, password string) Result {
	if username == "" || password == "" {
		return Result{
			Code:    CodeMissingFields,
			Message: "username and password are required",
		}
	}
	return Result{OK: true, Code: CodeOK, Message: "valid"}
}
