// Package auth provides authentication primitives for taskgate.
//
// # Tokens
//
// Users authenticate with HS256-signed JWTs carrying the username in the
// "sub" claim and a fixed two-hour validity window:
//
//	verifier := auth.NewJWTVerifier(secret)
//	token, err := verifier.Generate(username, auth.TokenTTL)
//	username, err = verifier.Verify(token)
//
// The signing key is process-wide. When no key is configured one is generated
// at startup, so tokens from a previous run stop verifying after a restart.
//
// # Request Authorization
//
// Middleware wraps protected handlers. It pulls the bearer token out of the
// Authorization header, verifies it, and attaches an Identity to the request
// context; the wrapped handler never runs for a rejected request. Handlers
// read the identity with FromContext (or MustFromContext behind Middleware).
//
// # Passwords
//
// Passwords are stored as salted bcrypt hashes. Verification always compares
// against a stored hash; the plaintext is never re-hashed for comparison.
// BurnComparison keeps rejection timing uniform for unknown usernames.
package auth
