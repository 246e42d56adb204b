package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ytget/rm-browser/internal/model"
)

func newFavoritesCmd(c *cli) *cobra.Command {
	favoritesCmd := &cobra.Command{
		Use:   "favorites",
		Short: "Manage the favorite set",
		Long: `Lists and edits the favorite character ids persisted in the local database.

Available subcommands:
  list   - Print favorite ids in ascending order
  add    - Mark a character id as favorite
  remove - Unmark a character id`,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Print favorite ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			favs, closeFavs, err := c.openFavorites()
			if err != nil {
				return err
			}
			defer closeFavs()

			out := cmd.OutOrStdout()
			ids := favs.IDs()
			if len(ids) == 0 {
				fmt.Fprintln(out, "no favorites")
				return nil
			}
			for _, id := range ids {
				fmt.Fprintln(out, id)
			}
			return nil
		},
	}

	addCmd := &cobra.Command{
		Use:   "add [id]",
		Short: "Mark a character as favorite",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCharacterID(args[0])
			if err != nil {
				return err
			}
			favs, closeFavs, err := c.openFavorites()
			if err != nil {
				return err
			}
			defer closeFavs()

			favs.Add(id)
			fmt.Fprintf(cmd.OutOrStdout(), "added %d (%d favorites)\n", id, favs.Len())
			return nil
		},
	}

	removeCmd := &cobra.Command{
		Use:   "remove [id]",
		Short: "Unmark a favorite character",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseCharacterID(args[0])
			if err != nil {
				return err
			}
			favs, closeFavs, err := c.openFavorites()
			if err != nil {
				return err
			}
			defer closeFavs()

			favs.Remove(id)
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d (%d favorites)\n", id, favs.Len())
			return nil
		},
	}

	favoritesCmd.AddCommand(listCmd, addCmd, removeCmd)
	return favoritesCmd
}

func parseCharacterID(raw string) (model.CharacterID, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid character id %q: %w", raw, err)
	}
	return model.CharacterID(id), nil
}
