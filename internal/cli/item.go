package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/interior-hub/internal/catalog"
)

func newItemCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "item <item-id>",
		Short: "Show one item with its content",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			item, ok := src.Item(args[0])
			if !ok {
				return writeErr(cmd, fmt.Errorf("%s: %w", args[0], catalog.ErrItemNotFound))
			}
			view := newItemView(item, true)

			return writeOut(cmd, app, view, func(w io.Writer) error {
				heading(w, view.Title)
				fmt.Fprintln(w, mutedStyle.Render(view.Subtitle))
				fmt.Fprintf(w, "id: %s  group: %s  image: %s\n\n", view.ID, view.GroupID, view.Image)
				fmt.Fprintln(w, view.Description)
				fmt.Fprintln(w)
				fmt.Fprintln(w, view.Content)
				return nil
			})
		},
	}
	return cmd
}
