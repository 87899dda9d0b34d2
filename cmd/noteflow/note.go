package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
)

func newNoteCommand() *cobra.Command {
	noteCommand := &cobra.Command{
		Use:   "note",
		Short: "Note commands",
	}
	noteCommand.AddCommand(newNoteCreateCommand())
	noteCommand.AddCommand(newNoteListCommand())
	noteCommand.AddCommand(newNoteShowCommand())
	return noteCommand
}

func newNoteCreateCommand() *cobra.Command {
	var params content.NewNote
	command := &cobra.Command{
		Use:   "create",
		Short: "Create a note",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flow.Validate("create note", params); err != nil {
				return err
			}
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			note, err := a.store.Notes.Create(cmd.Context(), params)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("created note")
			p.note(*note)
			return nil
		},
	}
	command.Flags().StringVar(&params.Title, "title", "", "note title")
	command.Flags().StringVar(&params.Body, "body", "", "note body")
	return command
}

func newNoteListCommand() *cobra.Command {
	var unorganized bool
	command := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			var notes []content.Note
			if unorganized {
				notes, err = a.store.Notes.ListUnorganized(cmd.Context())
			} else {
				notes, err = a.store.Notes.List(cmd.Context())
			}
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, note := range notes {
				p.note(note)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&unorganized, "unorganized", false, "only notes without a folder")
	return command
}

func newNoteShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <note id>",
		Short: "Show a note with its category, folders and linked tasks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			note, err := a.store.Notes.Get(ctx, args[0])
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.note(*note)
			if note.Body != "" {
				p.line("%s", note.Body)
			}

			insp, err := a.store.Categories.GetInspirationByNote(ctx, note.ID)
			switch {
			case err == nil:
				p.line("category: %s (%.2f)", insp.CategoryName, insp.Confidence)
			case !errors.Is(err, flow.ErrNotFound):
				return fmt.Errorf("get inspiration: %w", err)
			}

			folders, err := a.store.Folders.List(ctx)
			if err != nil {
				return err
			}
			for _, f := range folders {
				for _, id := range note.FolderIDs {
					if f.ID == id {
						p.line("folder: %s", f.Name)
					}
				}
			}

			items, err := a.store.Planner.ListLinkedItems(ctx, note.ID)
			if err != nil {
				return err
			}
			for _, item := range items {
				p.plannerItem(item)
			}
			return nil
		},
	}
}
