// Package constants centralizes the governance limits shared across the CLI
// and the tool server.
//
// Keeping the rate window, range cap, and process deadlines in one place
// prevents magic numbers from scattering across cmd/ and internal/, and lets
// the validator, ledger, and runner agree on the same bounds without import
// cycles.
package constants
