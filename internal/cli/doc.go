// Package cli builds the guardian command tree with cobra. It binds flags
// into app.Config, runs the selected command, and maps failures onto process
// exit codes through ExitError.
package cli
