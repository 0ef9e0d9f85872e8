// Package runconfig resolves the runner binary's configuration from
// flags, environment variables, and an optional config file, the same
// layered-provider pattern this corpus's service configs use: koanf
// with a confmap defaults layer, an optional file layer, then an env
// layer overriding both. Validation failures are reported as
// ErrInvalidConfig, which cmd/runner maps to exit code 1.
package runconfig
