package session

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

// ErrBadToken is returned when the stored token cannot be decoded.
var ErrBadToken = errors.New("malformed token")

// UnverifiedClaims is the decoded payload of the bearer token. The name is
// deliberate: the signature is NOT checked on this side, the backend is the
// trust boundary. These claims feed the profile display only and must never
// drive an authorization decision.
type UnverifiedClaims struct {
	AdminID        string `json:"adminId"`
	FullName       string `json:"fullName"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture"`
	IsSuper        bool   `json:"isSuper"`
	IsAdmin        bool   `json:"isAdmin"`
	IsAccess       bool   `json:"isAccess"`
	jwt.RegisteredClaims
}

// DecodeUnverified parses the token without verifying its signature.
func DecodeUnverified(token string) (UnverifiedClaims, error) {
	var claims UnverifiedClaims
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return UnverifiedClaims{}, ErrBadToken
	}
	if claims.AdminID == "" {
		if sub, err := claims.GetSubject(); err == nil && sub != "" {
			claims.AdminID = sub
		}
	}
	return claims, nil
}
