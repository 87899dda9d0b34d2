package main

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/noteflow/internal/classifier"
	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

func parseConvertFlags(t *testing.T, args ...string) (*cobra.Command, *convertFlags) {
	t.Helper()
	var flags convertFlags
	cmd := &cobra.Command{Use: "convert"}
	flags.register(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, &flags
}

func TestConvertFlags_Edit(t *testing.T) {
	t.Run("no overrides", func(t *testing.T) {
		cmd, flags := parseConvertFlags(t, "--confirm")
		_, changed := flags.edit(cmd)
		assert.False(t, changed)
		assert.True(t, flags.confirm)
	})

	t.Run("explicit empty time clears it", func(t *testing.T) {
		cmd, flags := parseConvertFlags(t, "--title", "Dentist", "--time", "", "--view-type", "weekly")
		edit, changed := flags.edit(cmd)
		require.True(t, changed)
		require.NotNil(t, edit.Title)
		assert.Equal(t, "Dentist", *edit.Title)
		require.NotNil(t, edit.Time)
		assert.Equal(t, "", *edit.Time)
		require.NotNil(t, edit.ViewType)
		assert.Equal(t, content.ViewWeekly, *edit.ViewType)
		assert.Nil(t, edit.Body)
		assert.Nil(t, edit.Date)
	})
}

func TestConvertFlags_Apply(t *testing.T) {
	note := content.Note{ID: "note-1", Title: "Errands"}
	suggestions := []classifier.TaskSuggestion{
		{Title: "Buy milk", Date: "2025-03-01", ViewType: "daily"},
		{Title: "Call mom", Date: "2025-03-02", Time: "18:00", ViewType: "daily"},
	}

	t.Run("select and edit", func(t *testing.T) {
		cmd, flags := parseConvertFlags(t, "--index", "1", "--date", "2025-03-05")
		s := converter.NewSession(note, suggestions)

		require.NoError(t, flags.apply(cmd, s))
		active, ok := s.Active()
		require.True(t, ok)
		assert.Equal(t, 1, s.ActiveIndex())
		assert.Equal(t, "Call mom", active.Title)
		assert.Equal(t, "2025-03-05", active.Date)
		assert.Equal(t, "18:00", active.Time)
	})

	t.Run("index out of range", func(t *testing.T) {
		cmd, flags := parseConvertFlags(t, "--index", "5")
		s := converter.NewSession(note, suggestions)

		err := flags.apply(cmd, s)
		assert.ErrorIs(t, err, flow.ErrValidation)
		assert.Equal(t, 0, s.ActiveIndex())
	})

	t.Run("default index keeps the first suggestion", func(t *testing.T) {
		cmd, flags := parseConvertFlags(t)
		s := converter.NewSession(note, suggestions)

		require.NoError(t, flags.apply(cmd, s))
		assert.Equal(t, 0, s.ActiveIndex())
	})
}
