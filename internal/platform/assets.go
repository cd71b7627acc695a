package platform

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
)

// Prefixes accepted in asset paths
const (
	AppURIPrefix = "ms-appx:///"
	HTTPPrefix   = "http://"
	HTTPSPrefix  = "https://"
)

// ErrAssetPath is returned for empty asset paths or paths leaving the base directory
var ErrAssetPath = errors.New("invalid asset path")

// AssetResolver loads images referenced by relative asset paths
type AssetResolver struct {
	baseDir string
}

// NewAssetResolver creates a resolver rooted at baseDir
func NewAssetResolver(baseDir string) *AssetResolver {
	return &AssetResolver{baseDir: baseDir}
}

// BaseDir returns the directory asset paths are resolved against
func (r *AssetResolver) BaseDir() string {
	return r.baseDir
}

// ResolveImage implements model.ImageResolver
func (r *AssetResolver) ResolveImage(path string) (fyne.Resource, error) {
	if strings.HasPrefix(path, HTTPPrefix) || strings.HasPrefix(path, HTTPSPrefix) {
		res, err := fyne.LoadResourceFromURLString(path)
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		return res, nil
	}

	full, err := r.AssetPath(path)
	if err != nil {
		return nil, err
	}
	found, err := FindFileWithFallback(full)
	if err != nil {
		return nil, err
	}
	res, err := fyne.LoadResourceFromPath(found)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", found, err)
	}
	return res, nil
}

// AssetPath maps an asset path such as "Assets/HubPage/HubPage1.png" onto
// the filesystem. A leading Assets/ segment is dropped since baseDir already
// points at the assets directory.
func (r *AssetResolver) AssetPath(path string) (string, error) {
	rel := strings.TrimPrefix(strings.TrimSpace(path), AppURIPrefix)
	rel = strings.TrimPrefix(rel, "/")
	rel = strings.TrimPrefix(rel, AssetsDirName+"/")
	if rel == "" {
		return "", fmt.Errorf("%q: %w", path, ErrAssetPath)
	}

	rel = filepath.FromSlash(rel)
	if !filepath.IsLocal(rel) {
		return "", fmt.Errorf("%q: %w", path, ErrAssetPath)
	}
	return filepath.Join(r.baseDir, rel), nil
}
