// Package ratelimit throttles requests per client with token buckets from
// golang.org/x/time/rate. It guards the login and registration endpoints.
package ratelimit
