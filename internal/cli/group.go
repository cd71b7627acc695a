package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/interior-hub/internal/catalog"
)

func newGroupCmd(app *App) *cobra.Command {
	var top bool

	cmd := &cobra.Command{
		Use:   "group <group-id>",
		Short: "Show a group and its items",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			group, ok := src.Group(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("%s: %w", args[0], catalog.ErrGroupNotFound))
			}

			items := group.Items().Items()
			if top {
				items = group.TopItems().Items()
			}

			view := groupDetailView{Group: newGroupView(group), Top: top}
			for _, it := range items {
				view.Items = append(view.Items, newItemView(it, false))
			}

			return writeOut(cmd, app, view, func(w io.Writer) error {
				heading(w, group.Title())
				if group.Subtitle() != "" {
					fmt.Fprintln(w, mutedStyle.Render(group.Subtitle()))
				}
				if group.Description() != "" {
					fmt.Fprintln(w, group.Description())
				}
				fmt.Fprintln(w)

				tw := newTable(w)
				fmt.Fprintln(tw, "#\tID\tTITLE\tSUBTITLE")
				for i, it := range view.Items {
					fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", i+1, it.ID, it.Title, it.Subtitle)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().BoolVar(&top, "top", false, "Only the items a hub section shows")
	return cmd
}
