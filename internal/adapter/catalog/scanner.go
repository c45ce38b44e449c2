// Package catalog lists the creative files shipped with the site so the
// admin asset picker can offer them.
package catalog

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"docsuite-ads/internal/core/port"
)

var assetExt = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|svg|webp|mp4|webm)$`)

// Scanner walks a directory of ad assets. Placement is inferred from the
// relative path, e.g. desktop/header/banner.png is a header asset.
type Scanner struct {
	root string
	// prefix is the public URL path the root directory is served under.
	prefix string
}

// NewScanner returns a scanner for root, publishing paths under prefix.
func NewScanner(root, prefix string) *Scanner {
	return &Scanner{root: root, prefix: prefix}
}

// Scan returns every asset file below the root. A missing root yields an
// empty list.
func (s *Scanner) Scan(ctx context.Context) ([]port.Asset, error) {
	assets := []port.Asset{}
	if _, err := os.Stat(s.root); errors.Is(err, fs.ErrNotExist) {
		return assets, nil
	}
	err := filepath.WalkDir(s.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err = ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() || !assetExt.MatchString(d.Name()) {
			return nil
		}
		rel, err := filepath.Rel(s.root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		assets = append(assets, port.Asset{
			Placement: InferPlacement(rel),
			Filename:  d.Name(),
			Path:      path.Join(s.prefix, rel),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

// InferPlacement maps a relative asset path to a placement name by
// substring, checking the sidebars before header and footer.
func InferPlacement(rel string) string {
	switch {
	case strings.Contains(rel, "sidebar-left"):
		return "sidebar-left"
	case strings.Contains(rel, "sidebar-right"):
		return "sidebar-right"
	case strings.Contains(rel, "header"):
		return "header"
	case strings.Contains(rel, "footer"):
		return "footer"
	default:
		return "unknown"
	}
}
