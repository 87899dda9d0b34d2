package main

import (
	"github.com/spf13/cobra"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

// taskFilter mirrors content.PlannerFilter with validation for flag input.
type taskFilter struct {
	From     string `json:"from" validate:"omitempty,datetime=2006-01-02"`
	To       string `json:"to" validate:"omitempty,datetime=2006-01-02"`
	Status   string `json:"status" validate:"omitempty,oneof=pending completed"`
	ViewType string `json:"view_type" validate:"omitempty,oneof=daily weekly monthly yearly"`
}

func (f taskFilter) planner() content.PlannerFilter {
	return content.PlannerFilter{
		DateStart: f.From,
		DateEnd:   f.To,
		Status:    content.PlannerStatus(f.Status),
		ViewType:  content.ViewType(f.ViewType),
	}
}

func newTaskCommand() *cobra.Command {
	taskCommand := &cobra.Command{
		Use:   "task",
		Short: "Planner item commands",
	}
	taskCommand.AddCommand(newTaskListCommand())
	taskCommand.AddCommand(newTaskToggleCommand())
	taskCommand.AddCommand(newTaskNotesCommand())
	return taskCommand
}

func newTaskListCommand() *cobra.Command {
	var filter taskFilter
	command := &cobra.Command{
		Use:   "list",
		Short: "List planner items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flow.Validate("list tasks", filter); err != nil {
				return err
			}
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			items, err := a.store.Planner.ListItems(cmd.Context(), filter.planner())
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, item := range items {
				p.plannerItem(item)
			}
			return nil
		},
	}
	command.Flags().StringVar(&filter.From, "from", "", "first date, YYYY-MM-DD")
	command.Flags().StringVar(&filter.To, "to", "", "last date, YYYY-MM-DD")
	command.Flags().StringVar(&filter.Status, "status", "", "pending or completed")
	command.Flags().StringVar(&filter.ViewType, "view-type", "", "daily, weekly, monthly or yearly")
	return command
}

func newTaskToggleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <task id>",
		Short: "Switch a planner item between pending and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.store.Planner.ToggleItemStatus(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).plannerItem(*item)
			return nil
		},
	}
}

func newTaskNotesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "notes <task id>",
		Short: "List the notes a planner item was created from",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			notes, err := a.store.Planner.ListLinkedNotes(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, n := range notes {
				p.note(n)
			}
			return nil
		},
	}
}
