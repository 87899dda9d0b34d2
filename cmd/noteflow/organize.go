package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/organize"
)

func newOrganizeCommand() *cobra.Command {
	var (
		outputFile string
		apply      bool
	)
	organizeCommand := &cobra.Command{
		Use:   "organize",
		Short: "Preview folder assignments for unorganized notes",
		Long: `Ask the model to sort notes without a folder into existing or new folders.
The preview can be written to a YAML file, edited, and applied with "organize apply".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			ctx := cmd.Context()
			session, err := a.organizer.RequestPreview(ctx)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			preview := session.Working()
			titles, err := noteTitles(ctx, a.store.Notes)
			if err != nil {
				return err
			}
			p.preview(preview, titles)
			if preview.IsEmpty() {
				return nil
			}

			if outputFile != "" {
				if err := writePreviewFile(outputFile, preview); err != nil {
					return err
				}
				p.success("wrote preview to %s", outputFile)
			}
			if !apply {
				return nil
			}
			result, err := a.organizer.ApplySession(ctx, session)
			p.applyResult(result)
			return err
		},
	}
	organizeCommand.Flags().StringVarP(&outputFile, "output", "o", "", "write the preview to a YAML file")
	organizeCommand.Flags().BoolVar(&apply, "apply", false, "apply the preview as suggested")

	organizeCommand.AddCommand(newOrganizeEditCommand())
	organizeCommand.AddCommand(newOrganizeApplyCommand())
	return organizeCommand
}

func newOrganizeEditCommand() *cobra.Command {
	var (
		addFolders      []string
		removeFolders   []string
		addSuggestion   []string
		removeSuggested []string
	)
	command := &cobra.Command{
		Use:   "edit <preview file>",
		Short: "Edit a saved preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := readPreviewFile(args[0])
			if err != nil {
				return err
			}
			preview, err = editPreview(preview, addFolders, removeFolders, addSuggestion, removeSuggested)
			if err != nil {
				return err
			}
			if err := writePreviewFile(args[0], preview); err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.preview(preview, nil)
			return nil
		},
	}
	command.Flags().StringArrayVar(&addFolders, "add", nil, "assign a folder to a note, as <note id>=<folder name>")
	command.Flags().StringArrayVar(&removeFolders, "remove", nil, "unassign a folder from a note, as <note id>=<folder name>")
	command.Flags().StringArrayVar(&addSuggestion, "suggest", nil, "add a new folder to create")
	command.Flags().StringArrayVar(&removeSuggested, "unsuggest", nil, "drop a suggested folder and its assignments")
	return command
}

func newOrganizeApplyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "apply <preview file>",
		Short: "Create the suggested folders and assign notes from a saved preview",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			preview, err := readPreviewFile(args[0])
			if err != nil {
				return err
			}
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.organizer.Apply(cmd.Context(), preview)
			p := newPrinter(cmd.OutOrStdout())
			p.applyResult(result)
			if err != nil {
				return err
			}
			if failed := result.Failed(); len(failed) > 0 {
				p.warn("%d notes could not be assigned", len(failed))
			}
			return nil
		},
	}
}

// editPreview applies suggestion changes before assignments, so a note can be
// assigned to a folder suggested in the same call.
func editPreview(preview organize.Preview, add, remove, suggest, unsuggest []string) (organize.Preview, error) {
	for _, name := range suggest {
		preview = preview.WithSuggestionAdded(name, "")
	}
	for _, name := range unsuggest {
		preview = preview.WithSuggestionRemoved(name)
	}
	for _, pair := range add {
		noteID, name, err := splitAssignment(pair)
		if err != nil {
			return organize.Preview{}, err
		}
		preview = preview.WithFolderAdded(noteID, name)
	}
	for _, pair := range remove {
		noteID, name, err := splitAssignment(pair)
		if err != nil {
			return organize.Preview{}, err
		}
		preview = preview.WithFolderRemoved(noteID, name)
	}
	return preview, nil
}

func splitAssignment(pair string) (string, string, error) {
	noteID, name, ok := strings.Cut(pair, "=")
	if !ok || noteID == "" || name == "" {
		return "", "", fmt.Errorf("invalid assignment %q, want <note id>=<folder name>", pair)
	}
	return noteID, name, nil
}

func readPreviewFile(path string) (organize.Preview, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return organize.Preview{}, fmt.Errorf("read preview %s: %w", path, err)
	}
	var preview organize.Preview
	if err := yaml.Unmarshal(data, &preview); err != nil {
		return organize.Preview{}, fmt.Errorf("parse preview %s: %w", path, err)
	}
	return preview, nil
}

func writePreviewFile(path string, preview organize.Preview) error {
	data, err := yaml.Marshal(preview)
	if err != nil {
		return fmt.Errorf("marshal preview: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write preview %s: %w", path, err)
	}
	return nil
}

func noteTitles(ctx context.Context, notes content.NoteRepository) (map[string]string, error) {
	list, err := notes.List(ctx)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(list))
	for _, n := range list {
		titles[n.ID] = n.Title
	}
	return titles, nil
}
