package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/bytedance/sonic"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/ytget/launchgrid/internal/layout"
	"github.com/ytget/launchgrid/internal/model"
)

type slotView struct {
	Slot  int      `json:"slot"`
	ID    string   `json:"id"`
	Kind  string   `json:"kind"`
	Name  string   `json:"name,omitempty"`
	Path  string   `json:"path,omitempty"`
	Items []string `json:"items,omitempty"`
}

type pageView struct {
	Page  int        `json:"page"`
	Slots []slotView `json:"slots"`
}

type changeView struct {
	Command string `json:"command"`
	Action  string `json:"action"`
	Added   int    `json:"added,omitempty"`
	Removed int    `json:"removed,omitempty"`
}

func (c *CLI) writeJSON(w io.Writer, v any) error {
	data, err := sonic.MarshalIndent(v, "", "  ")
	if err != nil {
		return NewExitError(ExitGeneralError, "failed to encode output", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func (c *CLI) report(cmd *cli.Command, change changeView) error {
	w := cmd.Root().Writer
	if c.json {
		return c.writeJSON(w, change)
	}
	if change.Added > 0 || change.Removed > 0 {
		_, err := fmt.Fprintf(w, "%s: %d added, %d removed\n", change.Command, change.Added, change.Removed)
		return err
	}
	_, err := fmt.Fprintf(w, "%s: %s\n", change.Command, change.Action)
	return err
}

func toPageViews(pages [][]model.Element) []pageView {
	views := make([]pageView, 0, len(pages))
	for p, page := range pages {
		view := pageView{Page: p + 1, Slots: make([]slotView, 0, len(page))}
		for i, e := range page {
			slot := slotView{Slot: i + 1, ID: e.ElementID().String(), Kind: e.Kind().String(), Name: model.DisplayName(e)}
			switch v := e.(type) {
			case model.Application:
				slot.Path = v.Path
			case model.Folder:
				for _, item := range v.Items {
					slot.Items = append(slot.Items, item.Name)
				}
			}
			view.Slots = append(view.Slots, slot)
		}
		views = append(views, view)
	}
	return views
}

func (c *CLI) createPagesCommand() *cli.Command {
	return &cli.Command{
		Name:  "pages",
		Usage: "Print the saved layout page by page",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "query",
				Aliases: []string{"q"},
				Usage:   "show only applications whose name contains the query",
			},
		},
		Action: c.runPages,
	}
}

func (c *CLI) runPages(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(false)
	if err != nil {
		return err
	}
	defer s.close()

	views := toPageViews(s.store.Pages(cmd.String("query")))
	w := cmd.Root().Writer
	if c.json {
		return c.writeJSON(w, views)
	}

	for _, view := range views {
		fmt.Fprintf(w, "Page %d\n", view.Page)
		for _, slot := range view.Slots {
			switch slot.Kind {
			case model.KindApp.String():
				fmt.Fprintf(w, "  %2d  %-24s %s\n", slot.Slot, slot.Name, slot.Path)
			case model.KindFolder.String():
				fmt.Fprintf(w, "  %2d  [%s] %v\n", slot.Slot, slot.Name, slot.Items)
			default:
				fmt.Fprintf(w, "  %2d  -\n", slot.Slot)
			}
		}
	}
	return nil
}

func (c *CLI) createScanCommand() *cli.Command {
	return &cli.Command{
		Name:   "scan",
		Usage:  "List installed applications without touching the layout",
		Action: c.runScan,
	}
}

func (c *CLI) runScan(ctx context.Context, cmd *cli.Command) error {
	s, err := c.open(false)
	if err != nil {
		return err
	}
	defer s.close()

	found, err := s.scanner().Scan(ctx)
	if err != nil {
		return NewExitError(ExitSystemError, "discovery failed", err)
	}

	w := cmd.Root().Writer
	if c.json {
		return c.writeJSON(w, found)
	}
	for _, inst := range found {
		fmt.Fprintf(w, "%-24s %s\n", inst.Name, inst.Path)
	}
	return nil
}

func (c *CLI) createRescanCommand() *cli.Command {
	return &cli.Command{
		Name:   "rescan",
		Usage:  "Reconcile the saved layout with installed applications",
		Action: c.runRescan,
	}
}

func (c *CLI) runRescan(ctx context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	found, err := s.scanner().Scan(ctx)
	if err != nil {
		return NewExitError(ExitSystemError, "discovery failed", err)
	}
	result := s.store.Reconcile(found)
	s.logger.Debug("reconciled layout", zap.Int("added", result.Added), zap.Int("removed", result.Removed))
	if err := s.save(); err != nil {
		return err
	}

	action := "unchanged"
	if result.Changed() {
		action = "reconciled"
	}
	return c.report(cmd, changeView{Command: "rescan", Action: action, Added: result.Added, Removed: result.Removed})
}

func (c *CLI) createMoveCommand() *cli.Command {
	return &cli.Command{
		Name:  "move",
		Usage: "Drop one element onto another",
		Description: `Applies the same rules as dragging in the launcher window.

Without --long the two elements swap places. With --long two applications
form a folder and an application joins a target folder. An application
inside a folder is moved out and placed after the target.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "dragged", Aliases: []string{"d"}, Usage: "element being dragged (name or ID)", Required: true},
			&cli.StringFlag{Name: "target", Aliases: []string{"t"}, Usage: "element dropped onto (name or ID)", Required: true},
			&cli.BoolFlag{Name: "long", Aliases: []string{"l"}, Usage: "treat the drop as a long hover"},
		},
		Action: c.runMove,
	}
}

func (c *CLI) runMove(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	dragged, err := s.resolve(cmd.String("dragged"))
	if err != nil {
		return err
	}
	target, err := s.resolve(cmd.String("target"))
	if err != nil {
		return err
	}

	outcome := s.store.ResolveDrop(dragged, target, cmd.Bool("long"))
	if outcome.Action == layout.ActionRejected {
		return NewExitError(ExitRejectedError, "no free slot on the target page", ErrRejected)
	}
	if outcome.Action.Changed() {
		if err := s.save(); err != nil {
			return err
		}
	}
	return c.report(cmd, changeView{Command: "move", Action: outcome.Action.String()})
}

func (c *CLI) createSwapCommand() *cli.Command {
	return &cli.Command{
		Name:  "swap",
		Usage: "Exchange two slots on one page",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "page", Aliases: []string{"p"}, Usage: "page number starting at 1", Value: 1},
			&cli.IntFlag{Name: "a", Usage: "first slot starting at 1", Required: true},
			&cli.IntFlag{Name: "b", Usage: "second slot starting at 1", Required: true},
		},
		Action: c.runSwap,
	}
}

func (c *CLI) runSwap(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	if !s.store.Swap(cmd.Int("page")-1, cmd.Int("a")-1, cmd.Int("b")-1) {
		return NewExitError(ExitRejectedError, "slots out of range or identical", ErrRejected)
	}
	if err := s.save(); err != nil {
		return err
	}
	return c.report(cmd, changeView{Command: "swap", Action: layout.ActionSwap.String()})
}

func (c *CLI) createDeleteCommand() *cli.Command {
	return &cli.Command{
		Name:  "delete",
		Usage: "Remove an application icon from the layout",
		Description: `The application stays installed and returns on the next rescan
only if it is still found on disk.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "app", Aliases: []string{"a"}, Usage: "application (name or ID)", Required: true},
		},
		Action: c.runDelete,
	}
}

func (c *CLI) runDelete(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	id, err := s.resolve(cmd.String("app"))
	if err != nil {
		return err
	}
	if !s.store.DeleteApp(id) {
		return NewExitError(ExitRejectedError, "only applications can be deleted", ErrRejected)
	}
	if err := s.save(); err != nil {
		return err
	}
	return c.report(cmd, changeView{Command: "delete", Action: "deleted"})
}

func (c *CLI) createReturnCommand() *cli.Command {
	return &cli.Command{
		Name:  "return",
		Usage: "Move an application out of its folder onto the grid",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "app", Aliases: []string{"a"}, Usage: "application inside a folder (name or ID)", Required: true},
		},
		Action: c.runReturn,
	}
}

func (c *CLI) runReturn(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	id, err := s.resolve(cmd.String("app"))
	if err != nil {
		return err
	}
	loc, _ := s.store.Lookup(id)
	if !loc.InFolder() {
		return NewExitError(ExitRejectedError, "application is not inside a folder", ErrRejected)
	}
	if !s.store.ReturnApp(id, loc.Folder) {
		return NewExitError(ExitRejectedError, "no free slot after the folder", ErrRejected)
	}
	if err := s.save(); err != nil {
		return err
	}
	return c.report(cmd, changeView{Command: "return", Action: "returned"})
}

func (c *CLI) createRenameCommand() *cli.Command {
	return &cli.Command{
		Name:  "rename",
		Usage: "Rename a folder",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "folder", Aliases: []string{"f"}, Usage: "folder (name or ID)", Required: true},
			&cli.StringFlag{Name: "name", Aliases: []string{"n"}, Usage: "new folder name", Required: true},
		},
		Action: c.runRename,
	}
}

func (c *CLI) runRename(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	id, err := s.resolve(cmd.String("folder"))
	if err != nil {
		return err
	}
	if !s.store.RenameFolder(id, cmd.String("name")) {
		return NewExitError(ExitRejectedError, "folder not renamed: unknown folder, blank or unchanged name", ErrRejected)
	}
	if err := s.save(); err != nil {
		return err
	}
	return c.report(cmd, changeView{Command: "rename", Action: "renamed"})
}

func (c *CLI) createResetCommand() *cli.Command {
	return &cli.Command{
		Name:   "reset",
		Usage:  "Delete the saved layout so the next start sorts applications by name",
		Action: c.runReset,
	}
}

func (c *CLI) runReset(_ context.Context, cmd *cli.Command) error {
	s, err := c.open(true)
	if err != nil {
		return err
	}
	defer s.close()

	if err := s.repo.Remove(); err != nil {
		return NewExitError(ExitSystemError, "failed to remove layout", err)
	}
	return c.report(cmd, changeView{Command: "reset", Action: "removed"})
}
