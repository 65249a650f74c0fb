package clientip

// Config lists the reverse proxies whose forwarding headers are believed.
type Config struct {
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}
