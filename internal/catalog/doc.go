package catalog

// Package catalog provides the compiled-in sample groups and items and the
// id based lookups the hub pages navigate with.
