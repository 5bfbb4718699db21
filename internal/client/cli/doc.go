// Package cli implements the interactive shell of the prompt library: a
// small REPL that drives the repositories and services. It is the local
// stand-in for the marketplace panel UI; every panel interaction (browse,
// search, create, favorite, use, import/export) has a command here.
package cli
