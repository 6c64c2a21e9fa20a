package main

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/store"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/leighmacdonald/slidertui/internal/ui/pages"
)

var errRestore = errors.New("failed to restore slider state")

// stateRecorder writes committed slider changes to the database.
type stateRecorder struct {
	database *sql.DB
	now      func() time.Time
}

func newStateRecorder(database *sql.DB) *stateRecorder {
	return &stateRecorder{database: database, now: time.Now}
}

func (r *stateRecorder) Record(ctx context.Context, state command.SliderState) error {
	return store.Record(ctx, r.database, store.SliderState{
		SliderID:     state.ID,
		Value:        int64(state.Value),
		PageStepMode: state.PageStepMode,
		Inverted:     state.Inverted,
		Orientation:  state.Orientation,
		UpdatedOn:    r.now().Unix(),
	}, int64(state.Previous))
}

// loadRestored reads every stored slider, keyed by id.
func loadRestored(ctx context.Context, database store.DBTX) (map[string]pages.Restored, error) {
	rows, err := store.New(database).ListSliders(ctx)
	if err != nil {
		return nil, errors.Join(err, errRestore)
	}

	restored := make(map[string]pages.Restored, len(rows))
	for _, row := range rows {
		restored[row.SliderID] = pages.Restored{
			Value:        int(row.Value),
			PageStepMode: row.PageStepMode,
			Inverted:     row.Inverted,
			Orientation:  slider.ParseOrientation(row.Orientation),
		}
	}

	return restored, nil
}
