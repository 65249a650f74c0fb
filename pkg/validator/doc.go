// Package validator validates request structs with
// github.com/go-playground/validator/v10 and reports failures as
// ValidationErrors keyed by json field name.
//
// Besides the built in tags it registers:
//
//	username           letters, digits, underscores and hyphens only
//	password_strength  at least one lowercase, one uppercase and one digit
//	year_since=N       four digit year between N and the current year
//
// Messages lets callers attach user facing text per field and tag.
package validator
