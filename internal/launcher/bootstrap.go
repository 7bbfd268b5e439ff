package launcher

import (
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/config"
	"github.com/ytget/launchgrid/internal/discovery"
	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/persist"
)

// NewFromConfig builds a service over the layout file, discovery roots and
// grid geometry in cfg. The watcher is enabled when cfg asks for it.
func NewFromConfig(cfg *config.Config, logger *zap.Logger, opts ...Option) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := layout.NewStore(cfg.PageSize(), layout.WithLogger(logger.Named("layout")))
	repo := persist.NewFileRepository(cfg.Storage.LayoutPath)
	scanner := discovery.NewScanner(discovery.Options{
		Roots:    cfg.Discovery.Roots,
		Pattern:  cfg.Discovery.Pattern,
		MaxDepth: cfg.Discovery.MaxDepth,
	}, logger.Named("discovery"))

	base := []Option{
		WithLogger(logger),
		WithHoverThreshold(cfg.HoverThreshold()),
	}
	if cfg.Discovery.Watch {
		base = append(base, WithWatcher(cfg.Debounce()))
	}
	return NewService(store, repo, scanner, append(base, opts...)...)
}
