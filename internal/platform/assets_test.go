package platform

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestAssetResolver_AssetPath(t *testing.T) {
	resolver := NewAssetResolver("/opt/hub/Assets")

	tests := []struct {
		input    string
		expected string
	}{
		{"Assets/HubPage/HubPage1.png", filepath.Join("/opt/hub/Assets", "HubPage", "HubPage1.png")},
		{"ms-appx:///Assets/DarkGray.png", filepath.Join("/opt/hub/Assets", "DarkGray.png")},
		{"LightGray.png", filepath.Join("/opt/hub/Assets", "LightGray.png")},
	}

	for _, test := range tests {
		result, err := resolver.AssetPath(test.input)
		if err != nil {
			t.Errorf("AssetPath(%q) returned error: %v", test.input, err)
			continue
		}
		if result != test.expected {
			t.Errorf("AssetPath(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestAssetResolver_RejectsInvalidPaths(t *testing.T) {
	resolver := NewAssetResolver(t.TempDir())

	for _, path := range []string{"", "  ", "Assets/", "../secret.png", "Assets/../../etc/passwd"} {
		if _, err := resolver.AssetPath(path); !errors.Is(err, ErrAssetPath) {
			t.Errorf("AssetPath(%q): expected ErrAssetPath, got %v", path, err)
		}
	}
}

func TestAssetResolver_ResolveImage(t *testing.T) {
	baseDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(baseDir, "HubPage"), 0755); err != nil {
		t.Fatal(err)
	}
	content := []byte("\x89PNG fake")
	if err := os.WriteFile(filepath.Join(baseDir, "HubPage", "HubPage3.png"), content, 0644); err != nil {
		t.Fatal(err)
	}

	resolver := NewAssetResolver(baseDir)
	res, err := resolver.ResolveImage("Assets/HubPage/HubPage3.png")
	if err != nil {
		t.Fatalf("ResolveImage returned error: %v", err)
	}
	if res.Name() != "HubPage3.png" {
		t.Errorf("Name() = %q, expected HubPage3.png", res.Name())
	}
	if string(res.Content()) != string(content) {
		t.Errorf("Content() = %q", res.Content())
	}

	if _, err := resolver.ResolveImage("Assets/HubPage/Missing.png"); !errors.Is(err, ErrFileNotFound) {
		t.Errorf("Expected ErrFileNotFound, got %v", err)
	}
}
