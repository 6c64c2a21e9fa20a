package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/leighmacdonald/slidertui/internal/slider"
	"github.com/leighmacdonald/slidertui/internal/store"
	"github.com/leighmacdonald/slidertui/internal/ui/command"
	"github.com/stretchr/testify/require"
)

func TestRecorderRestore(t *testing.T) {
	ctx := context.Background()

	database, errDB := store.Open(ctx, filepath.Join(t.TempDir(), "state.db"), true)
	require.NoError(t, errDB)
	t.Cleanup(func() { closeDatabase(database) })

	recorder := newStateRecorder(database)
	recorder.now = func() time.Time { return time.Unix(1700000000, 0) }

	require.NoError(t, recorder.Record(ctx, command.SliderState{
		ID:           "volume",
		Value:        1500,
		Previous:     35,
		PageStepMode: true,
		Orientation:  "vertical",
		Inverted:     true,
		Committed:    true,
	}))

	restored, errRestore := loadRestored(ctx, database)
	require.NoError(t, errRestore)
	require.Len(t, restored, 1)
	require.Equal(t, 1500, restored["volume"].Value)
	require.Equal(t, slider.Vertical, restored["volume"].Orientation)
	require.True(t, restored["volume"].Inverted)
	require.True(t, restored["volume"].PageStepMode)

	var out bytes.Buffer
	require.NoError(t, printHistory(ctx, &out, store.New(database), "volume", 10))
	require.Contains(t, out.String(), "1,500")
	require.Contains(t, out.String(), "35")

	out.Reset()
	require.NoError(t, printHistory(ctx, &out, store.New(database), "balance", 10))
	require.Equal(t, "no history for balance\n", out.String())
}
