package cmd

import (
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var (
	conversationsLimit int
	messagesLimit      int
	forceDelete        bool
)

// conversationsCmd represents the conversations command
var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "Manage conversations",
	Long: `Manage conversations including listing, viewing, and deleting them.

Conversations are stored by the backend; these commands operate on the
history held server-side for the current user.`,
}

// conversationsListCmd represents the conversations list command
var conversationsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List conversations",
	Long:  `List the current user's conversations in the order the backend returns them.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		conversations, err := client.Conversations(cmd.Context(), conversationsLimit)
		if err != nil {
			return fmt.Errorf("listing conversations: %w", err)
		}

		if len(conversations) == 0 {
			fmt.Println("No conversations found.")
			fmt.Println("\nStart a new conversation with:")
			fmt.Println("  chatctl chat \"your message\"")
			return nil
		}

		// Print table header
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tCREATED\tUPDATED\tMESSAGES")
		fmt.Fprintln(w, "--\t-------\t-------\t--------")

		// Print each conversation
		for _, conv := range conversations {
			fmt.Fprintf(w, "%d\t%s\t%s\t%d\n",
				conv.ID,
				conv.CreatedAt.Format("2006-01-02 15:04"),
				conv.UpdatedAt.Format("2006-01-02 15:04"),
				conv.MessageCount,
			)
		}
		w.Flush()

		fmt.Println("\nUse 'chatctl conversations show <id>' to view the message history.")
		return nil
	},
}

// conversationsShowCmd represents the conversations show command
var conversationsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a conversation's message history",
	Long:  `Show all messages of a conversation in the order the backend returns them.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseConversationID(args[0])
		if err != nil {
			return err
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		messages, err := client.ConversationMessages(cmd.Context(), id, messagesLimit)
		if err != nil {
			return fmt.Errorf("fetching messages: %w", err)
		}

		fmt.Printf("Conversation: %d\n", id)
		fmt.Printf("Messages: %d\n", len(messages))
		fmt.Println()

		if len(messages) == 0 {
			fmt.Println("No messages in this conversation.")
			return nil
		}

		fmt.Println("Message History:")
		fmt.Println("----------------")
		for i, msg := range messages {
			roleLabel := "You"
			if msg.Role == "assistant" {
				roleLabel = "Assistant"
			}

			fmt.Printf("\n[%d] %s (%s):\n%s\n",
				i+1,
				roleLabel,
				msg.CreatedAt.Format("2006-01-02 15:04:05"),
				msg.Content,
			)
		}

		fmt.Printf("\nContinue this conversation with:\n  chatctl chat -c %d \"your message\"\n", id)
		return nil
	},
}

// conversationsDeleteCmd represents the conversations delete command
var conversationsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a conversation",
	Long: `Delete a conversation and all its messages permanently.

Warning: This action cannot be undone.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseConversationID(args[0])
		if err != nil {
			return err
		}

		// Confirm deletion
		if !forceDelete {
			fmt.Printf("Are you sure you want to delete conversation %d? [y/N]: ", id)
			var response string
			fmt.Scanln(&response)

			if response != "y" && response != "Y" {
				fmt.Println("Deletion cancelled.")
				return nil
			}
		}

		client, err := newClient()
		if err != nil {
			return err
		}

		if err := client.DeleteConversation(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting conversation: %w", err)
		}

		fmt.Printf("Conversation %d deleted successfully.\n", id)
		return nil
	},
}

// parseConversationID parses a numeric conversation id argument.
func parseConversationID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid conversation id %q: must be a number", arg)
	}
	return id, nil
}

func init() {
	rootCmd.AddCommand(conversationsCmd)
	conversationsCmd.AddCommand(conversationsListCmd)
	conversationsCmd.AddCommand(conversationsShowCmd)
	conversationsCmd.AddCommand(conversationsDeleteCmd)

	conversationsListCmd.Flags().IntVar(&conversationsLimit, "limit", 0, "Maximum number of conversations to return (default 50)")
	conversationsShowCmd.Flags().IntVar(&messagesLimit, "limit", 0, "Maximum number of messages to return (default 100)")
	conversationsDeleteCmd.Flags().BoolVarP(&forceDelete, "force", "f", false, "Delete without confirmation")
}
