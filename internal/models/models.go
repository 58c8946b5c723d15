// Package models provides the domain types shared by the pricer, the
// strategy engine and the command-line front end.
package models
