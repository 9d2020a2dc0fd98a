// Package commands defines the clasp CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init           Create the local signing identity
//   - fingerprint    Print the identity fingerprint
//   - register       Publish your signing key to the identity registry
//   - lookup         Fetch a party's registered signing key
//
// # Implementation
//
// The root command builds the dependency graph (stores, services, registry
// client) before any subcommand runs, so handlers share one app context.
// Handshakes themselves are driven by hosts embedding the protocol packages;
// the CLI covers the identity and registry lifecycle around them.
package commands
