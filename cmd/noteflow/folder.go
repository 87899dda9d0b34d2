package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/flow"
	"github.com/at-ishikawa/noteflow/internal/pdf"
)

func newFolderCommand() *cobra.Command {
	folderCommand := &cobra.Command{
		Use:   "folder",
		Short: "Folder commands",
	}
	folderCommand.AddCommand(newFolderCreateCommand())
	folderCommand.AddCommand(newFolderListCommand())
	folderCommand.AddCommand(newFolderDeleteCommand())
	folderCommand.AddCommand(newFolderExportCommand())
	return folderCommand
}

func newFolderCreateCommand() *cobra.Command {
	var color string
	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a folder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			params := content.NewFolder{Name: args[0], Color: color}
			if err := flow.Validate("create folder", params); err != nil {
				return err
			}
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			folder, err := a.store.Folders.Create(cmd.Context(), params)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).folder(*folder)
			return nil
		},
	}
	command.Flags().StringVar(&color, "color", "", "folder color, e.g. #3b82f6")
	return command
}

func newFolderListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List folders with their note counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			folders, err := a.store.Folders.List(cmd.Context())
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, f := range folders {
				p.folder(f)
			}
			return nil
		},
	}
}

func newFolderDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <folder name or id>",
		Short: "Delete a folder; its notes are kept",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			folder, err := findFolder(cmd.Context(), a.store.Folders, args[0])
			if err != nil {
				return err
			}
			if err := a.store.Folders.Delete(cmd.Context(), folder.ID); err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).success("deleted folder %s", folder.Name)
			return nil
		},
	}
}

func newFolderExportCommand() *cobra.Command {
	var outputDir string
	command := &cobra.Command{
		Use:   "export <folder name or id>",
		Short: "Export the notes of a folder as markdown and PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			folder, err := findFolder(cmd.Context(), a.store.Folders, args[0])
			if err != nil {
				return err
			}
			if outputDir == "" {
				outputDir = a.cfg.Outputs.ExportDirectory
			}
			export, err := pdf.NewFolderExporter(a.store.Folders, outputDir).Export(cmd.Context(), *folder)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("exported %s", folder.Name)
			p.line("%s", export.MarkdownPath)
			p.line("%s", export.PDFPath)
			return nil
		},
	}
	command.Flags().StringVar(&outputDir, "output-dir", "", "directory to write to (default outputs.export_directory)")
	return command
}

// findFolder resolves a folder by exact name first, then by id.
func findFolder(ctx context.Context, folders content.FolderRepository, nameOrID string) (*content.Folder, error) {
	list, err := folders.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, f := range list {
		if f.Name == nameOrID {
			return &f, nil
		}
	}
	for _, f := range list {
		if f.ID == nameOrID {
			return &f, nil
		}
	}
	return nil, flow.New(flow.ErrNotFound, "find folder", "no folder named %q", nameOrID)
}
