package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/rm-browser/internal/browse"
	"github.com/ytget/rm-browser/internal/model"
	"github.com/ytget/rm-browser/internal/textview"
)

type listOptions struct {
	page          int
	name          string
	status        string
	favoritesOnly bool
}

func newListCmd(c *cli) *cobra.Command {
	opts := &listOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of characters",
		Long: `Fetches one page of the directory for the given filters and prints it
as cards followed by the status and pagination summary.

Example:
  rm-browser list --name rick --status alive --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runList(cmd, opts)
		},
	}

	cmd.Flags().IntVar(&opts.page, "page", 1, "1-based page number")
	cmd.Flags().StringVar(&opts.name, "name", "", "case-insensitive name filter")
	cmd.Flags().StringVar(&opts.status, "status", "all", "status filter: all, alive, dead, unknown")
	cmd.Flags().BoolVar(&opts.favoritesOnly, "favorites", false, "show only favorites from the fetched page")
	return cmd
}

// query translates flags into a single command carrying the whole query,
// so one invocation issues exactly one fetch
func (o *listOptions) query() (browse.SetQuery, error) {
	if o.page < 1 {
		return browse.SetQuery{}, fmt.Errorf("%w: %d", model.ErrInvalidPage, o.page)
	}
	status, err := model.ParseStatusFilter(o.status)
	if err != nil {
		return browse.SetQuery{}, fmt.Errorf("%w: %q", err, o.status)
	}
	return browse.SetQuery{Name: o.name, Status: status.String(), Page: o.page}, nil
}

func (c *cli) runList(cmd *cobra.Command, opts *listOptions) error {
	query, err := opts.query()
	if err != nil {
		return err
	}

	favs, closeFavs, err := c.openFavorites()
	if err != nil {
		return err
	}
	defer closeFavs()

	client, err := c.newDirectory()
	if err != nil {
		return err
	}

	coord := browse.NewCoordinator(c.logger, client, favs)
	defer coord.Close()

	if err := coord.Dispatch(query); err != nil {
		return err
	}
	coord.Wait()

	if opts.favoritesOnly {
		coord.SetFavoritesOnly(true)
	}

	view := coord.Snapshot()
	if view.State == model.LoadStateFailed {
		return fmt.Errorf("cannot load characters: %w", view.Err)
	}

	out := cmd.OutOrStdout()
	if cards := textview.Render(view.Characters, coord.IsFavorite); cards != "" {
		fmt.Fprintln(out, cards)
	}
	fmt.Fprintln(out, textview.Summary(view.Indicator))
	return nil
}
