package ui

// Package ui contains the Fyne-based hub user interface: a hub page with one
// section per group showing its top items, a group page with every item, and
// an item page. All UI strings are localized via Localization.
