// Package assets serves logos bundled with the application.
package assets

import (
	"errors"
	"io/fs"
	"os"
	"strings"

	"go.uber.org/zap"

	zlog "quickstocks/internal/logger"
	"quickstocks/internal/provider"
)

// extensions are tried in order for each symbol.
var extensions = []string{".png", ".jpg", ".jpeg"}

// Dir looks up logos named <symbol>.<ext> in a file system.
type Dir struct {
	fsys   fs.FS
	logger *zap.Logger
}

// New returns a Dir over fsys. A nil fsys yields a Dir that never matches.
func New(fsys fs.FS, logger *zap.Logger) *Dir {
	return &Dir{fsys: fsys, logger: zlog.OrNop(logger)}
}

// Open returns a Dir over the directory at path. An empty path disables
// bundled logos.
func Open(path string, logger *zap.Logger) (*Dir, error) {
	if path == "" {
		return New(nil, logger), nil
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, errors.New("assets: " + path + " is not a directory")
	}
	return New(os.DirFS(path), logger), nil
}

// Lookup returns the bundled logo for symbol, if any. Files that fail to
// decode are logged and skipped.
func (d *Dir) Lookup(symbol provider.Symbol) (provider.Logo, bool) {
	if d == nil || d.fsys == nil || !safeName(string(symbol)) {
		return provider.Logo{}, false
	}
	for _, ext := range extensions {
		name := string(symbol) + ext
		data, err := fs.ReadFile(d.fsys, name)
		if err != nil {
			continue
		}
		logo, err := provider.DecodeLogo(symbol, data)
		if err != nil {
			d.logger.Warn("bundled logo unreadable", zap.String("file", name), zap.Error(err))
			continue
		}
		return logo, true
	}
	return provider.Logo{}, false
}

// safeName rejects symbols that could escape the asset directory.
func safeName(s string) bool {
	if s == "" || s == "." || s == ".." {
		return false
	}
	return !strings.ContainsAny(s, `/\`) && fs.ValidPath(s)
}
