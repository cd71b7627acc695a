package model

import (
	"fmt"

	"fyne.io/fyne/v2"
)

// ImageResolver turns an asset path into a renderable resource
type ImageResolver interface {
	ResolveImage(path string) (fyne.Resource, error)
}

// Common holds the display fields shared by groups and items
type Common struct {
	Bindable

	id          string
	title       string
	subtitle    string
	description string

	imagePath string
	image     fyne.Resource
	resolver  ImageResolver
}

func newCommon(id, title, subtitle, imagePath, description string) Common {
	return Common{
		id:          id,
		title:       title,
		subtitle:    subtitle,
		description: description,
		imagePath:   imagePath,
	}
}

// ID returns the unique identifier
func (c *Common) ID() string { return c.id }

// Title returns the display title
func (c *Common) Title() string { return c.title }

// SetTitle sets the display title
func (c *Common) SetTitle(title string) { SetProperty(&c.Bindable, &c.title, title, PropertyTitle) }

// Subtitle returns the display subtitle
func (c *Common) Subtitle() string { return c.subtitle }

// SetSubtitle sets the display subtitle
func (c *Common) SetSubtitle(subtitle string) {
	SetProperty(&c.Bindable, &c.subtitle, subtitle, PropertySubtitle)
}

// Description returns the long description
func (c *Common) Description() string { return c.description }

// SetDescription sets the long description
func (c *Common) SetDescription(description string) {
	SetProperty(&c.Bindable, &c.description, description, PropertyDescription)
}

// ImagePath returns the unresolved asset path, empty once an image was set directly
func (c *Common) ImagePath() string { return c.imagePath }

// SetImageResolver sets the capability used to load the image lazily.
// An image resolved from the asset path is dropped so the next Image call
// goes through the new resolver.
func (c *Common) SetImageResolver(resolver ImageResolver) {
	c.resolver = resolver
	if c.imagePath != "" {
		c.image = nil
	}
}

// Image returns the entity image, resolving and caching it on first use.
// A nil resource with a nil error means there is no image.
func (c *Common) Image() (fyne.Resource, error) {
	if c.image != nil || c.imagePath == "" {
		return c.image, nil
	}
	if c.resolver == nil {
		return nil, nil
	}

	res, err := c.resolver.ResolveImage(c.imagePath)
	if err != nil {
		return nil, fmt.Errorf("resolve image for %s: %w", c.id, err)
	}
	c.image = res
	return res, nil
}

// SetImage stores an already loaded resource and forgets the asset path.
// Resources are not compared: their concrete types need not be comparable.
func (c *Common) SetImage(res fyne.Resource) {
	c.imagePath = ""
	c.image = res
	c.NotifyPropertyChanged(PropertyImage)
}

// SetImagePath points the entity at a new asset; it is resolved on next Image call
func (c *Common) SetImagePath(path string) {
	c.image = nil
	c.imagePath = path
	c.NotifyPropertyChanged(PropertyImage)
}

// String returns the title
func (c *Common) String() string {
	return c.title
}
