package ui

import (
	"fyne.io/fyne/v2"
)

// MobileUI provides mobile-specific UI adjustments
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// GetDeviceOrientation returns the current device orientation
func (m *MobileUI) GetDeviceOrientation() fyne.DeviceOrientation {
	return fyne.CurrentDevice().Orientation()
}

// IsLandscape returns true if device is in landscape orientation
func (m *MobileUI) IsLandscape() bool {
	orientation := m.GetDeviceOrientation()
	return orientation == fyne.OrientationHorizontalLeft || orientation == fyne.OrientationHorizontalRight
}

// AdaptiveColumns returns the grid column count to use. Desktop keeps the
// configured value; phones in portrait drop to MobileColumns.
func (m *MobileUI) AdaptiveColumns(configured int) int {
	if !m.IsMobileDevice() || m.IsLandscape() {
		return configured
	}
	return min(configured, MobileColumns)
}
