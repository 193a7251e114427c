package models

// PrincipalType names the credential scheme a principal was resolved under.
type PrincipalType string

const (
	// PrincipalTypeUser marks a principal authenticated with a session token.
	PrincipalTypeUser PrincipalType = "user"

	// PrincipalTypeService marks a principal authenticated with an API key.
	PrincipalTypeService PrincipalType = "service"
)

// Principal is the per-request outcome of successful authentication.
// It is constructed fresh for every request by the auth middleware, attached
// to the request context, and discarded when the request ends. It is never
// persisted or cached across requests.
type Principal struct {
	// UserID is the identifier of the acting user (for the service scheme,
	// the owner of the presented API key).
	UserID string `json:"userId"`

	// Email is the contact address of the acting user.
	Email string `json:"email"`

	// Type is the credential scheme the principal was resolved under.
	Type PrincipalType `json:"type"`
}
