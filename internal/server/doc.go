// Package server provides a small HTTP front end over the grabber service:
// a form for picking a verse range and a reciter, and a handler that runs
// the grab job and returns the merged audio file as a download.
package server
