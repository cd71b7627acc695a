package model

// Package model defines the hub data model: bindable groups and items, the
// observable item sequence each group owns, and the capped projection of that
// sequence that grid views bind to. Every mutation notifies its single
// consumer synchronously, before the mutating call returns.
