// Package app wires the application components together and runs the
// top-level commands: the range download, the reciter directory listing
// and the HTTP front end.
package app
