package jwt

import "github.com/golang-jwt/jwt"

// Payload defines the JWT claims carried by a postboard bearer token.
// The credential model is deliberate: the token carries the principal's name
// and password, and both are compared against the stored user row when the
// token is presented. A token is therefore invalidated by changing either.
type Payload struct {
	// StandardClaims embeds the JWT standard fields such as Exp (Expiration),
	// Iat (Issued At), and Iss (Issuer), used for token validity checks.
	jwt.StandardClaims `json:"standard_claims"`

	// Name is the principal's user name, resolved against the users table.
	Name string `json:"name"`

	// Password is the principal's stored password, checked on every request.
	Password string `json:"password"`
}
