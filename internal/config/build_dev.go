//go:build !production

package config

// DefaultEnvironment is fixed at build time. Build with -tags production to flip it.
const DefaultEnvironment = Development
