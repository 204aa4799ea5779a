package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is the payload of a session token.
//
// UserID duplicates the "sub" claim as a number so that clients can read the
// caller identity without parsing the subject string.
type TokenClaims struct {
	// UserID is the identifier of the user the token was issued to.
	UserID int64 `json:"userId"`

	// RegisteredClaims carries iss, sub, iat and exp as defined by RFC 7519.
	jwt.RegisteredClaims
}

// Token wraps a session JWT with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be returned to the client.
// UserID is a cached copy of the caller identity taken from the claims.
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	*jwt.Token `json:"-"`

	// Claims are the decoded or to-be-signed claims.
	Claims TokenClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the claims.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
