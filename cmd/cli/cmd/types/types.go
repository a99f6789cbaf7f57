// Package types holds the context keys shared between the command tree and
// the root setup.
package types

type contextKey string

// ClientAppKey stores the *cli.App built by the root command.
const ClientAppKey contextKey = "app"
