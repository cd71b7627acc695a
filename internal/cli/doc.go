// Package cli implements hubdata, a command line view of the hub catalog:
// groups, a group's items or top items, single items and image checks.
package cli
