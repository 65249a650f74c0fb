// Package session implements cookie based authentication sessions backed by
// a server side store.
//
// A session starts when Manager.Create (or CreateTx inside a caller's
// transaction) generates a random token with pkg/token. The raw token goes
// to the client through CookieBinder; the store only ever sees its SHA-256
// lookup key, so a leaked sessions table cannot be replayed as cookies.
//
// # Lifecycle
//
// Every record has an absolute expiry. Manager.Validate looks the record up
// by lookup key and then:
//
//   - returns "no session" when the key is unknown;
//   - deletes the record and returns "no session" once the expiry has passed;
//   - extends the expiry to now + lifetime when the request falls inside the
//     refresh window before expiry;
//   - otherwise returns the joined user unchanged.
//
// Storage errors are always reported as errors wrapping ErrStoreFailure and
// never collapse into "no session". The check-then-refresh sequence is not
// transactional; two concurrent refreshes write nearly identical expiries.
//
// Lazy deletion in Validate is the primary cleanup. RunCleanup adds a
// periodic sweep for stores implementing ExpiredDeleter.
//
// # Stores
//
// PostgresStore runs on pgx and accepts an explicit pg.Querier on every call
// so account registration can create the user, its profile and the session
// in one transaction. MemoryStore is a map backed implementation for tests
// and local runs.
//
// # HTTP
//
//	r := chi.NewRouter()
//	r.Use(manager.Middleware)
//	r.With(manager.RequireAuth).Get("/me", me)
//
// Middleware stores the AuthenticatedUser in the request context; read it
// with UserFromContext. Logout invalidates the session and clears the cookie.
//
// # Configuration
//
//	SESSION_COOKIE_NAME       cookie name (default "session")
//	SESSION_LIFETIME          lifetime in seconds (default 2592000, 30 days)
//	SESSION_REFRESH_TIME      refresh window in seconds (default 86400, 1 day)
//	SESSION_CLEANUP_INTERVAL  sweep interval, 0 disables (default 1h)
package session
