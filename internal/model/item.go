package model

import "github.com/google/uuid"

// Item is a single entry shown in a hub section or group page
type Item struct {
	Common

	content string
	groupID string
	group   *Group
}

// NewItem creates an item. An empty id is replaced with a generated one.
func NewItem(id, title, subtitle, imagePath, description, content string) *Item {
	if id == "" {
		id = GenerateID("item")
	}
	return &Item{
		Common:  newCommon(id, title, subtitle, imagePath, description),
		content: content,
	}
}

// Content returns the body text
func (i *Item) Content() string { return i.content }

// SetContent sets the body text
func (i *Item) SetContent(content string) {
	SetProperty(&i.Bindable, &i.content, content, PropertyContent)
}

// GroupID returns the id of the owning group, empty if none
func (i *Item) GroupID() string { return i.groupID }

// SetID renames the item. An item held by a group cannot take the id of
// another item of that group.
func (i *Item) SetID(id string) error {
	if i.group != nil {
		if err := i.group.checkRename(i, id); err != nil {
			return err
		}
	}
	SetProperty(&i.Bindable, &i.id, id, PropertyID)
	return nil
}

// setGroup records the owning group, nil once the item left it
func (i *Item) setGroup(g *Group) {
	i.group = g
	groupID := ""
	if g != nil {
		groupID = g.ID()
	}
	SetProperty(&i.Bindable, &i.groupID, groupID, PropertyGroupID)
}

// GenerateID returns prefix-<uuid>
func GenerateID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}
