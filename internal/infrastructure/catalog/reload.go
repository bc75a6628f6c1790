package catalog

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/medmarket/bot/internal/domain/recipe"
	"github.com/medmarket/bot/internal/domain/shop"
	"github.com/medmarket/bot/pkg/errors"
)

// overrideFile is the on-disk shape of a catalog override. All sections are
// optional; an omitted section keeps the embedded data.
type overrideFile struct {
	Recipes []recipe.Recipe              `json:"recipes"`
	Shops   []shop.Shop                  `json:"shops"`
	Prices  map[string][]shop.PriceEntry `json:"prices"`
}

// LoadOverride reads a JSON override file and merges it over the embedded
// snapshot. A section present in the file replaces the embedded section
// wholesale; there is no per-record merge.
func LoadOverride(path string) (Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Snapshot{}, errors.NewConfigurationError("read catalog override: " + err.Error())
	}

	var ov overrideFile
	if err := json.Unmarshal(raw, &ov); err != nil {
		return Snapshot{}, errors.NewConfigurationError("parse catalog override: " + err.Error())
	}

	snap := EmbeddedSnapshot()
	if ov.Recipes != nil {
		snap.Recipes = ov.Recipes
	}
	if ov.Shops != nil {
		snap.Shops = ov.Shops
	}
	if ov.Prices != nil {
		snap.Prices = ov.Prices
	}
	return snap, nil
}

// Reloader watches a catalog override file and swaps the store's snapshot
// when the file changes. A failed reload keeps the previous snapshot; the
// store never serves a half-applied generation.
type Reloader struct {
	store    *Store
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
}

// NewReloader creates a reloader for the given override file. The file's
// directory is watched rather than the file itself, so editors that replace
// the file via rename are handled.
func NewReloader(store *Store, path string, logger *zap.Logger) (*Reloader, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewInternalError("create catalog watcher: " + err.Error())
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, errors.NewConfigurationError("watch catalog override dir: " + err.Error())
	}

	return &Reloader{
		store:    store,
		path:     path,
		watcher:  watcher,
		logger:   logger.Named("catalog.reload"),
		debounce: 250 * time.Millisecond,
	}, nil
}

// Run blocks until ctx is cancelled, reloading the catalog on each change of
// the watched file. Events arriving in quick succession are coalesced.
func (r *Reloader) Run(ctx context.Context) error {
	defer r.watcher.Close()

	var timer *time.Timer
	var pending <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-r.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(r.path) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(r.debounce)
			} else {
				timer.Reset(r.debounce)
			}
			pending = timer.C

		case <-pending:
			pending = nil
			r.reload()

		case err, ok := <-r.watcher.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("catalog watcher error", zap.Error(err))
		}
	}
}

func (r *Reloader) reload() {
	snap, err := LoadOverride(r.path)
	if err != nil {
		r.logger.Error("catalog override load failed, keeping current snapshot",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return
	}
	if err := r.store.Swap(snap); err != nil {
		r.logger.Error("catalog override rejected, keeping current snapshot",
			zap.String("path", r.path),
			zap.Error(err),
		)
		return
	}
	r.logger.Info("catalog override applied", zap.String("path", r.path))
}
