package main

import (
	"fmt"

	"github.com/ytget/rm-browser/internal/directory"
	"github.com/ytget/rm-browser/internal/favorites"
	"github.com/ytget/rm-browser/internal/platform"
	"github.com/ytget/rm-browser/internal/storage"
)

// openFavorites loads the SQLite-backed favorite set. The returned close
// function releases the database.
func (c *cli) openFavorites() (*favorites.Store, func(), error) {
	path, err := platform.ResolveFavoritesDBPath(c.cfg.Storage.Path, platform.AppID)
	if err != nil {
		return nil, nil, err
	}

	db, err := storage.OpenSQLite(path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open favorites database: %w", err)
	}

	store := favorites.NewStore(c.logger, db, c.cfg.Storage.FavoritesKey)
	store.Load()

	closeFn := func() {
		if err := db.Close(); err != nil {
			c.logger.Sugar().Warnf("failed to close favorites database: %v", err)
		}
	}
	return store, closeFn, nil
}

// newDirectory creates the directory client from configuration
func (c *cli) newDirectory() (*directory.Client, error) {
	return directory.NewClient(c.cfg.API.BaseURL, directory.Options{
		Timeout:           c.cfg.API.Timeout,
		RequestsPerSecond: c.cfg.API.RequestsPerSecond,
		Burst:             c.cfg.API.Burst,
	}, c.logger)
}
