package store

import (
	"context"
	"database/sql"
	"errors"
)

var ErrNotFound = errors.New("no rows found")

type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Queries struct {
	db DBTX
}

func New(db DBTX) *Queries {
	return &Queries{db: db}
}

func (q *Queries) WithTx(tx *sql.Tx) *Queries {
	return &Queries{db: tx}
}

type SliderState struct {
	SliderID     string
	Value        int64
	PageStepMode bool
	Inverted     bool
	Orientation  string
	UpdatedOn    int64
}

type SliderHistory struct {
	HistoryID int64
	SliderID  string
	OldValue  int64
	NewValue  int64
	CreatedOn int64
}

const getSlider = `SELECT slider_id, value, page_step_mode, inverted, orientation, updated_on
FROM slider_state WHERE slider_id = ?`

func (q *Queries) GetSlider(ctx context.Context, sliderID string) (SliderState, error) {
	var state SliderState

	err := q.db.QueryRowContext(ctx, getSlider, sliderID).Scan(
		&state.SliderID,
		&state.Value,
		&state.PageStepMode,
		&state.Inverted,
		&state.Orientation,
		&state.UpdatedOn,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return SliderState{}, errors.Join(err, ErrNotFound)
		}

		return SliderState{}, err
	}

	return state, nil
}

const listSliders = `SELECT slider_id, value, page_step_mode, inverted, orientation, updated_on
FROM slider_state ORDER BY slider_id`

func (q *Queries) ListSliders(ctx context.Context) ([]SliderState, error) {
	rows, err := q.db.QueryContext(ctx, listSliders)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SliderState

	for rows.Next() {
		var state SliderState
		if err := rows.Scan(
			&state.SliderID,
			&state.Value,
			&state.PageStepMode,
			&state.Inverted,
			&state.Orientation,
			&state.UpdatedOn,
		); err != nil {
			return nil, err
		}

		items = append(items, state)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

const saveSlider = `INSERT INTO slider_state (slider_id, value, page_step_mode, inverted, orientation, updated_on)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT (slider_id) DO UPDATE SET
    value = excluded.value,
    page_step_mode = excluded.page_step_mode,
    inverted = excluded.inverted,
    orientation = excluded.orientation,
    updated_on = excluded.updated_on`

func (q *Queries) SaveSlider(ctx context.Context, arg SliderState) error {
	_, err := q.db.ExecContext(ctx, saveSlider,
		arg.SliderID,
		arg.Value,
		arg.PageStepMode,
		arg.Inverted,
		arg.Orientation,
		arg.UpdatedOn,
	)

	return err
}

const deleteSlider = `DELETE FROM slider_state WHERE slider_id = ?`

func (q *Queries) DeleteSlider(ctx context.Context, sliderID string) error {
	_, err := q.db.ExecContext(ctx, deleteSlider, sliderID)

	return err
}

type InsertHistoryParams struct {
	SliderID  string
	OldValue  int64
	NewValue  int64
	CreatedOn int64
}

const insertHistory = `INSERT INTO slider_history (slider_id, old_value, new_value, created_on) VALUES (?, ?, ?, ?)`

func (q *Queries) InsertHistory(ctx context.Context, arg InsertHistoryParams) error {
	_, err := q.db.ExecContext(ctx, insertHistory, arg.SliderID, arg.OldValue, arg.NewValue, arg.CreatedOn)

	return err
}

const listHistory = `SELECT history_id, slider_id, old_value, new_value, created_on
FROM slider_history WHERE slider_id = ? ORDER BY history_id DESC LIMIT ?`

// ListHistory returns the newest limit entries for sliderID, newest first.
func (q *Queries) ListHistory(ctx context.Context, sliderID string, limit int64) ([]SliderHistory, error) {
	rows, err := q.db.QueryContext(ctx, listHistory, sliderID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []SliderHistory

	for rows.Next() {
		var item SliderHistory
		if err := rows.Scan(&item.HistoryID, &item.SliderID, &item.OldValue, &item.NewValue, &item.CreatedOn); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
