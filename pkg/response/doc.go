// Package response holds the JSON envelope shared by the HTTP handlers.
package response
