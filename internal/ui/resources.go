package ui

import (
	"fyne.io/fyne/v2"

	"github.com/ytget/interior-hub/internal/model"
)

const (
	AppIcon = "Assets/Logo.png"
)

// LoadLogoResource loads the logo through the same resolver used for item images
func LoadLogoResource(resolver model.ImageResolver) (fyne.Resource, error) {
	return resolver.ResolveImage(AppIcon)
}
