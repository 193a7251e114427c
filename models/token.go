package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the claim set carried by every issued session token.
// It extends the registered JWT claims with the user's contact address so
// that verification can resolve a principal without a storage lookup.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Email is the contact address of the token subject.
	Email string `json:"email"`
}

// Token is an issued or parsed session token.
//
// It embeds [jwt.Token] for low-level token operations (signing, parsing)
// and [TokenClaims] for claim access.
//
// SignedString holds the compact serialized form of the token (header.payload.signature)
// ready to be transmitted in HTTP headers or stored on the client side.
//
// UserID and Email are cached copies of the "sub" and "email" claims,
// populated during token construction or parsing so that callers do not
// re-inspect the claim set.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// TokenClaims provides access to the claim set (sub, exp, iat, iss, email).
	TokenClaims

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	// Excluded from JSON serialization.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID string `json:"-"`

	// Email is the contact address extracted from the "email" claim.
	Email string `json:"-"`
}
