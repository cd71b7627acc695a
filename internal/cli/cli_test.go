package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ytget/interior-hub/internal/catalog"
)

func runCLI(t *testing.T, args []string) (stdout []byte, stderr []byte, err error) {
	t.Helper()

	cmd := NewRootCmd()

	var outBuf bytes.Buffer
	var errBuf bytes.Buffer
	cmd.SetOut(&outBuf)
	cmd.SetErr(&errBuf)
	cmd.SetArgs(args)

	e := cmd.Execute()
	return outBuf.Bytes(), errBuf.Bytes(), e
}

func TestGroups_JSON(t *testing.T) {
	out, stderr, err := runCLI(t, []string{"groups", "--json"})
	if err != nil {
		t.Fatalf("groups: %v\nstderr:\n%s", err, stderr)
	}

	var groups []groupView
	if err := json.Unmarshal(out, &groups); err != nil {
		t.Fatalf("unmarshal groups output: %v\nstdout:\n%s", err, out)
	}
	if len(groups) != 2 || groups[0].ID != "Group-1" || groups[1].ID != "Group-2" {
		t.Fatalf("unexpected groups: %+v", groups)
	}
	if groups[0].Items != 6 || groups[0].TopItems != 6 {
		t.Errorf("Group-1 counts = %d/%d, expected 6/6", groups[0].Items, groups[0].TopItems)
	}
}

func TestGroups_Text(t *testing.T) {
	out, _, err := runCLI(t, []string{"groups", catalog.AllGroupsID})
	if err != nil {
		t.Fatalf("groups: %v", err)
	}
	for _, want := range []string{"AllGroups", "Group-1", "Directives", "Executions"} {
		if !strings.Contains(string(out), want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestGroups_UnsupportedCollection(t *testing.T) {
	_, stderr, err := runCLI(t, []string{"groups", "Favorites"})
	if !errors.Is(err, catalog.ErrUnsupportedCollection) {
		t.Fatalf("Expected ErrUnsupportedCollection, got %v", err)
	}
	if !strings.Contains(string(stderr), "AllGroups") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestGroup_TopLimitsItems(t *testing.T) {
	path := writeCatalog(t, 15)

	out, stderr, err := runCLI(t, []string{"--catalog", path, "group", "big", "--top", "--json"})
	if err != nil {
		t.Fatalf("group: %v\nstderr:\n%s", err, stderr)
	}
	var view groupDetailView
	if err := json.Unmarshal(out, &view); err != nil {
		t.Fatalf("unmarshal group output: %v\nstdout:\n%s", err, out)
	}
	if !view.Top || len(view.Items) != 12 {
		t.Fatalf("top=%v items=%d, expected top with 12 items", view.Top, len(view.Items))
	}
	if view.Group.Items != 15 || view.Items[11].ID != "big-11" {
		t.Errorf("unexpected view: %+v", view)
	}

	out, _, err = runCLI(t, []string{"--catalog", path, "group", "big", "--json"})
	if err != nil {
		t.Fatalf("group: %v", err)
	}
	view = groupDetailView{}
	_ = json.Unmarshal(out, &view)
	if len(view.Items) != 15 {
		t.Errorf("items = %d, expected 15", len(view.Items))
	}
}

func TestGroup_NotFound(t *testing.T) {
	_, _, err := runCLI(t, []string{"group", "Group-7"})
	if !errors.Is(err, catalog.ErrGroupNotFound) {
		t.Fatalf("Expected ErrGroupNotFound, got %v", err)
	}
}

func TestItem(t *testing.T) {
	out, _, err := runCLI(t, []string{"item", "Group-2-Item-1", "--json", "--pretty"})
	if err != nil {
		t.Fatalf("item: %v", err)
	}
	if !bytes.Contains(out, []byte("\n  \"id\"")) {
		t.Errorf("expected indented JSON, got:\n%s", out)
	}

	var view itemView
	if err := json.Unmarshal(out, &view); err != nil {
		t.Fatalf("unmarshal item output: %v", err)
	}
	if view.GroupID != "Group-2" || view.Title != "Art Deco Style" {
		t.Errorf("unexpected item: %+v", view)
	}
	if !strings.HasPrefix(view.Content, "Item Content: ") {
		t.Errorf("content = %q", view.Content)
	}

	_, _, err = runCLI(t, []string{"item", "Group-2"})
	if !errors.Is(err, catalog.ErrItemNotFound) {
		t.Errorf("Expected ErrItemNotFound, got %v", err)
	}
}

func TestCatalogFlag_Errors(t *testing.T) {
	_, _, err := runCLI(t, []string{"--catalog", filepath.Join(t.TempDir(), "none.yaml"), "groups"})
	if err == nil || !strings.Contains(err.Error(), "read catalog") {
		t.Errorf("Expected read catalog error, got %v", err)
	}

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(bad, []byte("groups: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	_, _, err = runCLI(t, []string{"--catalog", bad, "groups"})
	if err == nil || !strings.Contains(err.Error(), "parse catalog") {
		t.Errorf("Expected parse catalog error, got %v", err)
	}
}

func TestImages(t *testing.T) {
	dir := t.TempDir()

	_, _, err := runCLI(t, []string{"images", "--assets", dir, "--json"})
	if !errors.Is(err, ErrMissingImages) {
		t.Fatalf("Expected ErrMissingImages for an empty assets dir, got %v", err)
	}

	files := []string{"DarkGray.png", "LightGray.png"}
	for i := 1; i <= 12; i++ {
		files = append(files, filepath.Join("HubPage", fmt.Sprintf("HubPage%d.png", i)))
	}
	for _, f := range files {
		full := filepath.Join(dir, f)
		if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(full, []byte("png"), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	out, stderr, err := runCLI(t, []string{"images", "--assets", dir, "--json"})
	if err != nil {
		t.Fatalf("images: %v\nstderr:\n%s", err, stderr)
	}
	var checks []imageCheck
	if err := json.Unmarshal(out, &checks); err != nil {
		t.Fatalf("unmarshal images output: %v", err)
	}
	if len(checks) != 14 {
		t.Errorf("checked %d images, expected 14", len(checks))
	}
}

// writeCatalog writes a one-group catalog with n items and returns its path
func writeCatalog(t *testing.T, n int) string {
	t.Helper()
	var b strings.Builder
	b.WriteString("version: 1\ncontent_subject: Test\ngroups:\n  - id: big\n    title: Big\n    items:\n")
	for i := 0; i < n; i++ {
		fmt.Fprintf(&b, "      - id: big-%02d\n        title: Item %d\n", i, i)
	}
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
