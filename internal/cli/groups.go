package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/interior-hub/internal/catalog"
)

func newGroupsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "groups [collection]",
		Short: "List the groups of a collection (only AllGroups exists)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			collection := catalog.AllGroupsID
			if len(args) == 1 {
				collection = args[0]
			}
			groups, err := src.Groups(collection)
			if err != nil {
				return writeErr(cmd, err)
			}

			views := make([]groupView, 0, len(groups))
			for _, g := range groups {
				views = append(views, newGroupView(g))
			}

			return writeOut(cmd, app, views, func(w io.Writer) error {
				heading(w, collection)
				tw := newTable(w)
				fmt.Fprintln(tw, "ID\tTITLE\tITEMS\tTOP")
				for _, v := range views {
					fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n", v.ID, v.Title, v.Items, v.TopItems)
				}
				return tw.Flush()
			})
		},
	}
	return cmd
}
