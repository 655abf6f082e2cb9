package sim

import (
	"context"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-stilllife/model"
	"github.com/sheikhrachel/go-stilllife/patterns"
)

// ScanReport is the recognition outcome for one saved board
type ScanReport struct {
	Path        string
	Columns     int
	Rows        int
	Alive       int
	Recognition *patterns.Recognition
	Symmetrical int
}

// ScanSnapshots loads every snapshot file and recognizes figures on each of
// them, at most limit files at a time (no limit when limit <= 0). Reports come
// back in the order of paths. The first failure cancels the remaining scans.
func ScanSnapshots(ctx context.Context, paths []string, catalog *patterns.Catalog, limit int) ([]ScanReport, error) {
	reports := make([]ScanReport, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	for i, path := range paths {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			g, err := model.ReadSnapshotFile(path)
			if err != nil {
				return err
			}

			recognition := patterns.Recognize(g, catalog)
			reports[i] = ScanReport{
				Path:        path,
				Columns:     g.Columns(),
				Rows:        g.Rows(),
				Alive:       g.CountAlive(),
				Recognition: recognition,
				Symmetrical: patterns.CountSymmetrical(recognition, catalog),
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[ScanSnapshots] scan failed")
	}
	return reports, nil
}
