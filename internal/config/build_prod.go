//go:build production

package config

// DefaultEnvironment is fixed at build time.
const DefaultEnvironment = Production
