package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"

	"github.com/ytget/interior-hub/internal/model"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("137"))
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("160"))
)

type groupView struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Items       int    `json:"items"`
	TopItems    int    `json:"topItems"`
}

type itemView struct {
	ID          string `json:"id"`
	GroupID     string `json:"groupId"`
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle,omitempty"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
	Content     string `json:"content,omitempty"`
}

type groupDetailView struct {
	Group groupView  `json:"group"`
	Top   bool       `json:"top"`
	Items []itemView `json:"items"`
}

func newGroupView(g *model.Group) groupView {
	return groupView{
		ID:          g.ID(),
		Title:       g.Title(),
		Subtitle:    g.Subtitle(),
		Description: g.Description(),
		Image:       g.ImagePath(),
		Items:       g.Items().Len(),
		TopItems:    g.TopItems().Len(),
	}
}

// newItemView copies item; content is only included for detail output
func newItemView(it *model.Item, withContent bool) itemView {
	v := itemView{
		ID:          it.ID(),
		GroupID:     it.GroupID(),
		Title:       it.Title(),
		Subtitle:    it.Subtitle(),
		Description: it.Description(),
		Image:       it.ImagePath(),
	}
	if withContent {
		v.Content = it.Content()
	}
	return v
}

func heading(w io.Writer, text string) {
	fmt.Fprintln(w, headingStyle.Render(text))
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
}
