// Package config loads typed configuration from environment variables.
//
// It combines github.com/joho/godotenv, which seeds the environment from a
// .env file once per process, with github.com/caarlos0/env/v11, which parses
// the environment into structs annotated with `env` and `envDefault` tags.
// Every configuration type is parsed once and cached, so packages can call
// Load for their own Config struct without coordinating.
//
// # Usage
//
//	type SessionConfig struct {
//	    Lifetime int `env:"SESSION_LIFETIME" envDefault:"2592000"`
//	}
//
//	var cfg SessionConfig
//	config.MustLoad(&cfg)
//
// Call LoadEnv with explicit paths before the first Load to read files other
// than ./.env. Reset clears the cache between tests.
package config
