// Package account implements registration, login and logout for the job
// portal on top of pkg/session.
//
// Registration validates the form, rejects a taken username or email, hashes
// the password with bcrypt and then, in a single PostgreSQL transaction,
// inserts the user, its role profile (applicant or employer) and the first
// session. The session cookie is written only after that transaction commits.
//
// Routes:
//
//	POST /register  rate limited
//	POST /login     rate limited
//	POST /logout
//	GET  /me        requires a session
package account
