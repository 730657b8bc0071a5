// Package auth implements credential authentication and the bearer-token
// lifecycle.
//
// Two strategies cover the pipeline:
//   - Local: Service.Authenticate verifies a username/password pair
//     against the credential store's bcrypt hashes
//   - Token: TokenManager validates a signed bearer token (HS256 only)
//     and extracts the embedded identity without touching the store
//
// # Configuration
//
//	JWT_SECRET=<shared signing secret>  # Required for serving
//	JWT_EXPIRY=168h                     # Token lifetime (7 days default)
//	BCRYPT_COST=10                      # bcrypt cost factor
//
// # Usage
//
// Wire the pieces in entrypoint:
//
//	service := auth.NewService(usersRepo, cfg.Auth)
//	tokens := auth.NewTokenManager(cfg.Auth)
//	protected.Use(auth.NewMiddleware(tokens).RequireBearer())
//
// Extract identity in handlers:
//
//	identity, ok := auth.CurrentIdentity(c)
package auth
