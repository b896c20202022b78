// Package app contains the application logic behind the command line. It
// defines the App struct, its configuration, and the operations the commands
// run, decoupled from flag parsing and process exit codes.
package app
