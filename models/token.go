package models

// BearerTokenType is the fixed token-type marker returned on login.
const BearerTokenType = "bearer"

// Token is the login response: an opaque bearer credential the client
// presents on subsequent requests instead of re-sending the password.
//
// The access token is a random URL-safe string with at least 32 bytes of
// entropy. It carries no claims and no expiry; it is valid only while the
// issuing process is alive and the token table still holds it.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
