package store

import (
	"context"
	"database/sql"
	"errors"
)

var ErrRecord = errors.New("failed to record slider state")

// Record saves state and, when the value moved, appends a history entry. Both writes share one
// transaction.
func Record(ctx context.Context, conn *sql.DB, state SliderState, oldValue int64) error {
	tx, errTx := conn.BeginTx(ctx, nil)
	if errTx != nil {
		return errors.Join(errTx, ErrRecord)
	}

	queries := New(conn).WithTx(tx)

	if err := queries.SaveSlider(ctx, state); err != nil {
		_ = tx.Rollback()

		return errors.Join(err, ErrRecord)
	}

	if oldValue != state.Value {
		if err := queries.InsertHistory(ctx, InsertHistoryParams{
			SliderID:  state.SliderID,
			OldValue:  oldValue,
			NewValue:  state.Value,
			CreatedOn: state.UpdatedOn,
		}); err != nil {
			_ = tx.Rollback()

			return errors.Join(err, ErrRecord)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.Join(err, ErrRecord)
	}

	return nil
}
