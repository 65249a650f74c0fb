// Package token generates opaque session tokens and derives their lookup keys.
//
// A token is the secret handed to the client. The lookup key is a one-way
// SHA-256 digest of the token and is the only form that reaches storage, so a
// read-only leak of the session table cannot be replayed as a cookie value.
//
// # Usage
//
//	import "github.com/dmitrymomot/jobportal/pkg/token"
//
//	raw, err := token.Generate()
//	if err != nil {
//	    return err
//	}
//	key := token.LookupKey(raw) // store key, send raw to the client
//
// Generate fails only when crypto/rand cannot be read and reports it as
// ErrGenerate. LookupKey is a pure function with no error conditions.
package token
