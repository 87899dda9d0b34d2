package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

func TestTaskFilter(t *testing.T) {
	tests := []struct {
		name       string
		filter     taskFilter
		wantFields []string
	}{
		{
			name:   "empty filter matches everything",
			filter: taskFilter{},
		},
		{
			name:   "full filter",
			filter: taskFilter{From: "2025-03-01", To: "2025-03-31", Status: "pending", ViewType: "weekly"},
		},
		{
			name:       "bad values",
			filter:     taskFilter{From: "03/01/2025", Status: "done", ViewType: "hourly"},
			wantFields: []string{"from", "status", "view_type"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := flow.Validate("list tasks", tt.filter)
			if len(tt.wantFields) == 0 {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, flow.ErrValidation)
			var fields []string
			for _, v := range flow.Violations(err) {
				fields = append(fields, v.Field)
			}
			assert.ElementsMatch(t, tt.wantFields, fields)
		})
	}

	got := taskFilter{From: "2025-03-01", Status: "completed", ViewType: "daily"}.planner()
	assert.Equal(t, content.PlannerFilter{DateStart: "2025-03-01", Status: content.PlannerCompleted, ViewType: content.ViewDaily}, got)
}
