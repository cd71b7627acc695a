package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/interior-hub/internal/platform"
)

// ErrMissingImages is returned when at least one image does not resolve
var ErrMissingImages = errors.New("missing images")

type imageCheck struct {
	Owner string `json:"owner"`
	Path  string `json:"path"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func newImagesCmd(app *App) *cobra.Command {
	var assetsDir string

	cmd := &cobra.Command{
		Use:   "images",
		Short: "Resolve every group and item image against an assets directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			src, err := loadSource(app)
			if err != nil {
				return writeErr(cmd, err)
			}

			resolver := platform.NewAssetResolver(assetsDir)
			src.SetImageResolver(resolver)

			var checks []imageCheck
			missing := 0
			check := func(owner, path string, load func() error) {
				if path == "" {
					return
				}
				c := imageCheck{Owner: owner, Path: path, OK: true}
				if err := load(); err != nil {
					c.OK = false
					c.Error = err.Error()
					missing++
				}
				checks = append(checks, c)
			}

			for _, g := range src.AllGroups().Items() {
				check(g.ID(), g.ImagePath(), func() error { _, err := g.Image(); return err })
				for _, it := range g.Items().Items() {
					check(it.ID(), it.ImagePath(), func() error { _, err := it.Image(); return err })
				}
			}

			err = writeOut(cmd, app, checks, func(w io.Writer) error {
				heading(w, resolver.BaseDir())
				tw := newTable(w)
				fmt.Fprintln(tw, "OWNER\tPATH\tSTATUS")
				for _, c := range checks {
					status := "ok"
					if !c.OK {
						status = errorStyle.Render("missing")
					}
					fmt.Fprintf(tw, "%s\t%s\t%s\n", c.Owner, c.Path, status)
				}
				return tw.Flush()
			})
			if err != nil {
				return writeErr(cmd, err)
			}
			if missing > 0 {
				return writeErr(cmd, fmt.Errorf("%d of %d: %w", missing, len(checks), ErrMissingImages))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&assetsDir, "assets", envOr("HUB_ASSETS_DIR", platform.DefaultAssetsDir()), "Assets directory")
	return cmd
}
