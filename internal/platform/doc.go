package platform

// Package platform contains OS/platform integration glue: locating the
// assets directory, resolving asset paths to fyne resources, and filesystem
// helpers.
