package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/noteflow/internal/content"
	"github.com/at-ishikawa/noteflow/internal/converter"
)

// convertFlags are the edits a command applies to an open conversion.
type convertFlags struct {
	index    int
	title    string
	body     string
	date     string
	time     string
	viewType string
	confirm  bool
}

func (f *convertFlags) register(cmd *cobra.Command) {
	cmd.Flags().IntVar(&f.index, "index", -1, "suggestion to select")
	cmd.Flags().StringVar(&f.title, "title", "", "override the title of the selected suggestion")
	cmd.Flags().StringVar(&f.body, "body", "", "override the body of the selected suggestion")
	cmd.Flags().StringVar(&f.date, "date", "", "override the date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&f.time, "time", "", "override the time (HH:MM)")
	cmd.Flags().StringVar(&f.viewType, "view-type", "", "override the view type: daily, weekly, monthly or yearly")
	cmd.Flags().BoolVar(&f.confirm, "confirm", false, "create the planner item from the selected suggestion")
}

// edit returns the overrides set on cmd. Unset flags leave the draft as is.
func (f *convertFlags) edit(cmd *cobra.Command) (converter.DraftEdit, bool) {
	var edit converter.DraftEdit
	changed := false
	set := func(name string, value string, dst **string) {
		if cmd.Flags().Changed(name) {
			v := value
			*dst = &v
			changed = true
		}
	}
	set("title", f.title, &edit.Title)
	set("body", f.body, &edit.Body)
	set("date", f.date, &edit.Date)
	set("time", f.time, &edit.Time)
	if cmd.Flags().Changed("view-type") {
		v := content.ViewType(f.viewType)
		edit.ViewType = &v
		changed = true
	}
	return edit, changed
}

// apply selects and edits the session as the flags ask.
func (f *convertFlags) apply(cmd *cobra.Command, s *converter.Session) error {
	if cmd.Flags().Changed("index") {
		if err := s.Select(f.index); err != nil {
			return err
		}
	}
	if edit, ok := f.edit(cmd); ok {
		if _, err := s.Edit(edit); err != nil {
			return err
		}
	}
	return nil
}

// finishConversion prints the session and commits it if asked.
func finishConversion(cmd *cobra.Command, a *app, p *printer, s *converter.Session, flags *convertFlags) error {
	if s.State() == converter.StateNoSuggestions {
		p.conversion(s)
		return nil
	}
	if err := flags.apply(cmd, s); err != nil {
		return err
	}
	p.conversion(s)
	if !flags.confirm {
		p.line("rerun with --confirm to create the selected task")
		return nil
	}

	commit, err := a.converter.Confirm(cmd.Context(), s)
	p.steps(commit.Steps)
	if err != nil {
		return err
	}
	if commit.Item != nil {
		p.success("created task")
		p.plannerItem(*commit.Item)
	}
	return nil
}

func newClassifyCommand() *cobra.Command {
	var flags convertFlags
	command := &cobra.Command{
		Use:   "classify <note id>",
		Short: "Classify a note as a task or an inspiration and run the matching flow",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			note, err := a.store.Notes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			outcome, err := a.router.Classify(cmd.Context(), *note)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.classification(outcome)
			if outcome.Inspiration != nil {
				p.categorizeResult(*outcome.Inspiration)
			}
			if outcome.Conversion != nil {
				return finishConversion(cmd, a, p, outcome.Conversion, &flags)
			}
			return nil
		},
	}
	flags.register(command)
	return command
}

func newConvertCommand() *cobra.Command {
	var flags convertFlags
	command := &cobra.Command{
		Use:   "convert <note id>",
		Short: "Suggest planner tasks for a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			note, err := a.store.Notes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			session, err := a.converter.Convert(cmd.Context(), *note)
			if err != nil {
				return err
			}
			return finishConversion(cmd, a, newPrinter(cmd.OutOrStdout()), session, &flags)
		},
	}
	flags.register(command)
	return command
}

func newCategorizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categorize <note id>",
		Short: "Assign an inspiration note to a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			note, err := a.store.Notes.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			result, err := a.categorizer.Categorize(cmd.Context(), *note)
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).categorizeResult(result)
			return nil
		},
	}
}

func newCategoryCommand() *cobra.Command {
	categoryCommand := &cobra.Command{
		Use:   "category",
		Short: "Inspiration category commands",
	}
	categoryCommand.AddCommand(newCategoryListCommand())
	categoryCommand.AddCommand(newCategoryPendingCommand())
	categoryCommand.AddCommand(newCategoryApproveCommand())
	categoryCommand.AddCommand(newCategoryRejectCommand())
	return categoryCommand
}

func listCategories(cmd *cobra.Command, status content.CategoryStatus) error {
	a, err := newApp(false)
	if err != nil {
		return err
	}
	defer a.Close()

	categories, err := a.store.Categories.List(cmd.Context(), status)
	if err != nil {
		return err
	}
	p := newPrinter(cmd.OutOrStdout())
	if len(categories) == 0 {
		p.warn("no categories")
	}
	for _, c := range categories {
		p.line("%s  %s  %s", p.bold.Sprint(c.Name), c.Status, p.faint.Sprint(c.ID))
	}
	return nil
}

func newCategoryListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCategories(cmd, "")
		},
	}
}

func newCategoryPendingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List categories waiting for approval",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listCategories(cmd, content.CategoryPendingApproval)
		},
	}
}

func newCategoryApproveCommand() *cobra.Command {
	var noteID string
	command := &cobra.Command{
		Use:   "approve <category id>",
		Short: "Activate a proposed category, optionally assigning a note to it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			result, err := a.gate.Approve(cmd.Context(), args[0], noteID)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("category %q is active", result.Category.Name)
			if result.Note != nil {
				p.note(*result.Note)
			}
			return nil
		},
	}
	command.Flags().StringVar(&noteID, "note", "", "note to assign to the category")
	return command
}

func newCategoryRejectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reject <category id>",
		Short: "Delete a proposed category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.gate.Reject(cmd.Context(), args[0]); err != nil {
				return fmt.Errorf("reject category %s: %w", args[0], err)
			}
			newPrinter(cmd.OutOrStdout()).success("rejected category %s", args[0])
			return nil
		},
	}
}
