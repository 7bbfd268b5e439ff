// Package cli implements gridctl, the command-line companion of the
// launcher. It reads and edits the saved layout while the GUI is not
// running.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/config"
	"github.com/ytget/launchgrid/internal/discovery"
	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/logging"
	"github.com/ytget/launchgrid/internal/model"
	"github.com/ytget/launchgrid/internal/persist"
	"github.com/ytget/launchgrid/internal/platform"
)

// CLI wires the gridctl commands to the layout store
type CLI struct {
	app        *cli.Command
	configPath string
	verbose    bool
	json       bool
}

// NewCLI creates the gridctl command tree writing to out
func NewCLI(version string, out io.Writer) *CLI {
	c := &CLI{}
	if out == nil {
		out = os.Stdout
	}

	c.app = &cli.Command{
		Name:    "gridctl",
		Usage:   "Inspect and edit the launchgrid layout",
		Version: version,
		Suggest: true,
		Writer:  out,
		Description: `Reads and rewrites the saved launcher layout.

Editing commands refuse to run while the launcher window is open.

Examples:
  gridctl pages --query term          # Show pages matching "term"
  gridctl move --dragged Mail --target Calendar --long
  gridctl return --app Mail           # Move Mail out of its folder
  gridctl rescan                      # Reconcile with installed apps`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to the configuration file",
				Value:       config.DefaultPath(),
				Destination: &c.configPath,
			},
			&cli.BoolFlag{
				Name:        "verbose",
				Aliases:     []string{"v"},
				Usage:       "log debug messages to stderr",
				Destination: &c.verbose,
			},
			&cli.BoolFlag{
				Name:        "json",
				Aliases:     []string{"j"},
				Usage:       "output structured JSON results",
				Destination: &c.json,
			},
		},
		Commands: c.commands(),
	}
	return c
}

// Run executes the command line in args
func (c *CLI) Run(ctx context.Context, args []string) error {
	return c.app.Run(ctx, args)
}

func (c *CLI) commands() []*cli.Command {
	return []*cli.Command{
		c.createPagesCommand(),
		c.createScanCommand(),
		c.createRescanCommand(),
		c.createMoveCommand(),
		c.createSwapCommand(),
		c.createDeleteCommand(),
		c.createReturnCommand(),
		c.createRenameCommand(),
		c.createResetCommand(),
	}
}

// session is one command's view of the configured layout
type session struct {
	cfg    *config.Config
	logger *zap.Logger
	store  *layout.Store
	repo   *persist.FileRepository
	unlock func()
}

func (s *session) close() {
	if s.unlock != nil {
		s.unlock()
	}
	_ = s.logger.Sync()
}

// open loads configuration and the saved layout. When exclusive is set the
// instance lock is taken first so the GUI cannot write concurrently.
func (c *CLI) open(exclusive bool) (*session, error) {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return nil, NewExitError(ExitConfigError, "invalid configuration", err)
	}

	level := "warn"
	if c.verbose {
		level = "debug"
	}
	logger, err := logging.New(logging.Config{Level: level, OutputPaths: []string{"stderr"}})
	if err != nil {
		return nil, NewExitError(ExitGeneralError, "failed to create logger", err)
	}

	s := &session{
		cfg:    cfg,
		logger: logger,
		store:  layout.NewStore(cfg.PageSize(), layout.WithLogger(logger.Named("layout"))),
		repo:   persist.NewFileRepository(cfg.Storage.LayoutPath),
	}

	if exclusive {
		lock, err := platform.AcquireLock(cfg.Storage.LockPath)
		if err != nil {
			_ = logger.Sync()
			if errors.Is(err, platform.ErrLocked) {
				return nil, NewExitError(ExitBusyError, "the launcher is running, close it before editing the layout", err)
			}
			return nil, NewExitError(ExitSystemError, "failed to acquire layout lock", err)
		}
		s.unlock = func() { _ = lock.Unlock() }
	}

	elements, err := s.repo.Load()
	switch {
	case err == nil:
		s.store.Replace(elements)
	case errors.Is(err, persist.ErrNoLayout):
		logger.Debug("no saved layout", zap.String("path", s.repo.Path()), zap.Error(err))
	default:
		s.close()
		return nil, NewExitError(ExitSystemError, "failed to read layout", err)
	}
	return s, nil
}

func (s *session) save() error {
	if err := s.repo.Save(s.store.Elements()); err != nil {
		return NewExitError(ExitSystemError, "failed to save layout", err)
	}
	return nil
}

func (s *session) scanner() *discovery.Scanner {
	return discovery.NewScanner(discovery.Options{
		Roots:    s.cfg.Discovery.Roots,
		Pattern:  s.cfg.Discovery.Pattern,
		MaxDepth: s.cfg.Discovery.MaxDepth,
	}, s.logger.Named("discovery"))
}

// resolve maps a command-line reference to an element ID. A reference is
// either an element ID or a case-insensitive application or folder name.
func (s *session) resolve(ref string) (model.ID, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", NewExitError(ExitUsageError, "empty reference", ErrNotFound)
	}
	if id, err := model.ParseID(ref); err == nil {
		if _, ok := s.store.Lookup(id); ok {
			return id, nil
		}
	}

	var matches []model.ID
	for _, e := range s.store.Elements() {
		switch v := e.(type) {
		case model.Application:
			if strings.EqualFold(v.Name, ref) {
				matches = append(matches, v.ID)
			}
		case model.Folder:
			if strings.EqualFold(v.Name, ref) {
				matches = append(matches, v.ID)
			}
			for _, item := range v.Items {
				if strings.EqualFold(item.Name, ref) {
					matches = append(matches, item.ID)
				}
			}
		}
	}

	switch len(matches) {
	case 0:
		return "", NewExitError(ExitNotFoundError, fmt.Sprintf("no application or folder named %q", ref), ErrNotFound)
	case 1:
		return matches[0], nil
	default:
		return "", NewExitError(ExitUsageError, fmt.Sprintf("%q matches %d elements, use an ID", ref, len(matches)), ErrAmbiguous)
	}
}
