package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ytget/interior-hub/internal/catalog"
	"github.com/ytget/interior-hub/internal/config"
)

// App holds the flags shared by every command
type App struct {
	CatalogPath string
	JSON        bool
	PrettyJSON  bool
	LogLevel    string

	source *catalog.Source
}

// NewRootCmd builds the hubdata command tree
func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "hubdata",
		Short:        "Inspect the interior hub catalog",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # List every group with its item counts
  hubdata groups

  # Items a hub section shows for a group
  hubdata group Group-1 --top

  # One item as JSON
  hubdata item Group-2-Item-3 --json --pretty

  # Check that every image resolves
  hubdata images --assets ./Assets
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
			Level: config.ParseLogLevel(app.LogLevel),
		})))
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.CatalogPath, "catalog", envOr("HUB_CATALOG", ""), "Catalog YAML file (default: built-in sample data)")
	cmd.PersistentFlags().BoolVar(&app.JSON, "json", false, "Write JSON instead of text")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("HUB_LOG_LEVEL", config.DefaultLogLevel), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newGroupsCmd(app))
	cmd.AddCommand(newGroupCmd(app))
	cmd.AddCommand(newItemCmd(app))
	cmd.AddCommand(newImagesCmd(app))

	return cmd
}

// loadSource reads the catalog once per invocation
func loadSource(app *App) (*catalog.Source, error) {
	if app.source != nil {
		return app.source, nil
	}

	if app.CatalogPath == "" {
		src, err := catalog.LoadSample()
		if err != nil {
			return nil, err
		}
		app.source = src
		return src, nil
	}

	data, err := os.ReadFile(app.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	src, err := catalog.Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", app.CatalogPath, err)
	}
	slog.Debug("catalog loaded", "path", app.CatalogPath)
	app.source = src
	return src, nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

// writeOut writes v as JSON when --json is set, otherwise runs text
func writeOut(cmd *cobra.Command, app *App, v any, text func(w io.Writer) error) error {
	w := cmd.OutOrStdout()
	if !app.JSON {
		return text(w)
	}

	var (
		b   []byte
		err error
	)
	if app.PrettyJSON {
		b, err = json.MarshalIndent(v, "", "  ")
	} else {
		b, err = json.Marshal(v)
	}
	if err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}

func writeErr(cmd *cobra.Command, err error) error {
	fmt.Fprintln(cmd.ErrOrStderr(), err.Error())
	return err
}
