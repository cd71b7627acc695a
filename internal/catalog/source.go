package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/ytget/interior-hub/internal/model"
)

// AllGroupsID is the only collection of groups the source knows about
const AllGroupsID = "AllGroups"

// contentParagraphs is how many times the subject repeats in generated item content
const contentParagraphs = 7

var (
	// ErrUnsupportedCollection is returned by Groups for any id but AllGroupsID
	ErrUnsupportedCollection = errors.New("only 'AllGroups' is supported as a collection of groups")

	// ErrGroupNotFound and ErrItemNotFound report a lookup without a unique match
	ErrGroupNotFound = errors.New("group not found")
	ErrItemNotFound  = errors.New("item not found")
)

//go:embed sample.yaml
var sampleYAML []byte

// File is the YAML layout of a catalog
type File struct {
	Version        int         `yaml:"version"`
	ContentSubject string      `yaml:"content_subject"`
	Groups         []GroupFile `yaml:"groups"`
}

// GroupFile describes one group and its items
type GroupFile struct {
	ID          string     `yaml:"id"`
	Title       string     `yaml:"title"`
	Subtitle    string     `yaml:"subtitle"`
	Image       string     `yaml:"image"`
	Description string     `yaml:"description"`
	Items       []ItemFile `yaml:"items"`
}

// ItemFile describes one item. Empty Content falls back to the content template.
type ItemFile struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Image       string `yaml:"image"`
	Description string `yaml:"description"`
	Content     string `yaml:"content,omitempty"`
}

// Source holds every group in memory and answers id lookups
type Source struct {
	groups *model.ObservableList[*model.Group]
}

var defaultSource = sync.OnceValue(func() *Source {
	src, err := Load(sampleYAML)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded sample data: %v", err))
	}
	return src
})

// Default returns the process-wide source built from the embedded sample data
func Default() *Source {
	return defaultSource()
}

// NewSource creates an empty source
func NewSource() *Source {
	return &Source{
		groups: model.NewObservableList(func(g *model.Group) string { return g.ID() }),
	}
}

// LoadSample builds a fresh source from the embedded sample data
func LoadSample() (*Source, error) {
	return Load(sampleYAML)
}

// Load builds a source from catalog YAML
func Load(data []byte) (*Source, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return FromFile(file)
}

// FromFile builds a source from an already decoded catalog
func FromFile(file File) (*Source, error) {
	src := NewSource()
	content := ItemContent(file.ContentSubject)
	seenItems := make(map[string]string)

	for gi, gf := range file.Groups {
		if strings.TrimSpace(gf.ID) == "" {
			return nil, fmt.Errorf("group %d: id is required", gi)
		}
		group := model.NewGroup(gf.ID, gf.Title, gf.Subtitle, gf.Image, gf.Description)

		for ii, itf := range gf.Items {
			if strings.TrimSpace(itf.ID) == "" {
				return nil, fmt.Errorf("group %s item %d: id is required", gf.ID, ii)
			}
			if owner, dup := seenItems[itf.ID]; dup {
				return nil, fmt.Errorf("item %s: already defined in group %s: %w", itf.ID, owner, model.ErrDuplicateID)
			}
			seenItems[itf.ID] = gf.ID

			body := itf.Content
			if body == "" {
				body = content
			}
			item := model.NewItem(itf.ID, itf.Title, itf.Subtitle, itf.Image, itf.Description, body)
			if err := group.AddItem(item); err != nil {
				return nil, fmt.Errorf("group %s: %w", gf.ID, err)
			}
		}

		if err := src.AddGroup(group); err != nil {
			return nil, err
		}
	}
	return src, nil
}

// ItemContent formats the placeholder body text for subject
func ItemContent(subject string) string {
	if subject == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString("Item Content: ")
	b.WriteString(subject)
	for i := 1; i < contentParagraphs; i++ {
		b.WriteString("\n\n")
		b.WriteString(subject)
	}
	return b.String()
}

// AddGroup appends group to the AllGroups collection
func (s *Source) AddGroup(group *model.Group) error {
	if err := s.groups.Append(group); err != nil {
		return fmt.Errorf("add group %s: %w", group.ID(), err)
	}
	return nil
}

// AllGroups returns the observable collection of groups
func (s *Source) AllGroups() *model.ObservableList[*model.Group] {
	return s.groups
}

// Groups returns the groups of the collection named collectionID
func (s *Source) Groups(collectionID string) ([]*model.Group, error) {
	if collectionID != AllGroupsID {
		return nil, fmt.Errorf("groups %q: %w", collectionID, ErrUnsupportedCollection)
	}
	return s.groups.Items(), nil
}

// Group returns the group with id. Linear search is fine for sample sized data.
func (s *Source) Group(id string) (*model.Group, bool) {
	var match *model.Group
	count := 0
	for _, g := range s.groups.Items() {
		if g.ID() == id {
			match = g
			count++
		}
	}
	if count != 1 {
		return nil, false
	}
	return match, true
}

// Item returns the item with id across all groups, only when exactly one matches
func (s *Source) Item(id string) (*model.Item, bool) {
	var match *model.Item
	count := 0
	for _, g := range s.groups.Items() {
		for _, it := range g.Items().Items() {
			if it.ID() == id {
				match = it
				count++
			}
		}
	}
	if count != 1 {
		return nil, false
	}
	return match, true
}

// SetImageResolver installs resolver on every group and item
func (s *Source) SetImageResolver(resolver model.ImageResolver) {
	for _, g := range s.groups.Items() {
		g.SetImageResolver(resolver)
		for _, it := range g.Items().Items() {
			it.SetImageResolver(resolver)
		}
	}
}
