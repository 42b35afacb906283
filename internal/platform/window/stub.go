//go:build !ebiten

package window

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/storage"
)

// Run reports ErrUnsupported; rebuild with -tags ebiten for a window.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, scale int, logger *log.Logger) error {
	return ErrUnsupported
}
