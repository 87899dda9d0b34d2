package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/noteflow/internal/chat"
)

func newChatCommand() *cobra.Command {
	chatCommand := &cobra.Command{
		Use:   "chat",
		Short: "Ask questions about your notes",
	}
	chatCommand.AddCommand(newChatNewCommand())
	chatCommand.AddCommand(newChatListCommand())
	chatCommand.AddCommand(newChatAskCommand())
	chatCommand.AddCommand(newChatHistoryCommand())
	return chatCommand
}

func newChatNewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "new [title]",
		Short: "Start a chat session",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			title := chat.DefaultSessionTitle
			if len(args) > 0 {
				title = args[0]
			}
			session, err := a.chat.NewSession(cmd.Context(), title)
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			p.success("started %q", session.Title)
			p.line("%s", session.ID)
			return nil
		},
	}
}

func newChatListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List chat sessions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			sessions, err := a.store.Chat.ListSessions(cmd.Context())
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, s := range sessions {
				p.line("%s  %s  %s", p.bold.Sprint(s.Title), s.UpdatedAt.Format("2006-01-02 15:04"), p.faint.Sprint(s.ID))
			}
			return nil
		},
	}
}

func newChatAskCommand() *cobra.Command {
	var showThinking bool
	command := &cobra.Command{
		Use:   "ask <session id> <question...>",
		Short: "Ask a question answered from the notes of the relevant folders",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(true)
			if err != nil {
				return err
			}
			defer a.Close()

			answer, err := a.chat.Query(cmd.Context(), args[0], strings.Join(args[1:], " "))
			if err != nil {
				return err
			}
			newPrinter(cmd.OutOrStdout()).chatMessage(*answer, showThinking)
			return nil
		},
	}
	command.Flags().BoolVar(&showThinking, "thinking", false, "show the selected folders and examined notes")
	return command
}

func newChatHistoryCommand() *cobra.Command {
	var showThinking bool
	command := &cobra.Command{
		Use:   "history <session id>",
		Short: "Show the messages of a chat session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(false)
			if err != nil {
				return err
			}
			defer a.Close()

			if _, err := a.store.Chat.GetSession(cmd.Context(), args[0]); err != nil {
				return err
			}
			messages, err := a.store.Chat.ListMessages(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			p := newPrinter(cmd.OutOrStdout())
			for _, m := range messages {
				p.chatMessage(m, showThinking)
			}
			return nil
		},
	}
	command.Flags().BoolVar(&showThinking, "thinking", false, "show the selected folders and examined notes")
	return command
}
