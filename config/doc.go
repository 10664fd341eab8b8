// Package config implements the two external collaborators named in the
// protocol spec but not detailed by it: command-line argument parsing and
// the event seed-file parser. Both are fully implemented here since this is
// a standalone module, even though their feature scope sits outside the
// "hard part" of the server.
package config
