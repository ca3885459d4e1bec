/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/taskchat/chatctl/internal/chatbot"
)

var (
	conversationID int64
	useEditor      bool
)

// chatCmd represents the chat command
var chatCmd = &cobra.Command{
	Use:   "chat [message]",
	Short: "Send a message to the assistant",
	Long: `Send a message to the AI assistant and print the response.
This command performs a one-time API call to the chat backend.

By default a new conversation is started. Use --conversation to continue
an existing one; the backend keeps the history, so nothing is stored locally.

If no message is provided as an argument, it reads from stdin.
If --editor flag is set, it opens the default editor (from EDITOR environment variable) to compose the message.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := newClient()
		if err != nil {
			return err
		}

		// Get message from arguments, editor, or stdin
		var message string
		if useEditor {
			message, err = getMessageFromEditor()
			if err != nil {
				return fmt.Errorf("getting message from editor: %w", err)
			}
		} else if len(args) > 0 {
			message = strings.Join(args, " ")
		} else {
			// Read from stdin
			input, err := io.ReadAll(os.Stdin)
			if err != nil {
				return fmt.Errorf("reading from stdin: %w", err)
			}
			message = strings.TrimSpace(string(input))
		}

		req := &chatbot.ChatRequest{Message: message}
		isNewConversation := true
		if cmd.Flags().Changed("conversation") {
			req.ConversationID = &conversationID
			isNewConversation = false

			if verbose {
				fmt.Fprintf(os.Stderr, "Continuing conversation: %d\n", conversationID)
			}
		}

		resp, err := client.SendMessage(cmd.Context(), req)
		if err != nil {
			return fmt.Errorf("chat request failed: %w", err)
		}

		// Print response
		fmt.Println(resp.Response)

		if verbose {
			for _, call := range resp.ToolCalls {
				fmt.Fprintf(os.Stderr, "Tool call: %s(%v) -> %v\n", call.Tool, call.Arguments, call.Result)
			}
			fmt.Fprintf(os.Stderr, "Response time: %.2fs\n", resp.ResponseTime)
		}

		// If new conversation, print conversation info
		if isNewConversation {
			fmt.Fprintf(os.Stderr, "\nConversation created: %d\n", resp.ConversationID)
			fmt.Fprintf(os.Stderr, "\nNext time, use:\n  chatctl chat -c %d \"your message\"\n", resp.ConversationID)
		}

		return nil
	},
}

// getMessageFromEditor opens the default editor and returns the edited message
func getMessageFromEditor() (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		return "", fmt.Errorf("EDITOR environment variable is not set")
	}

	// Create a temporary file
	tmpFile, err := os.CreateTemp("", "chatctl-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %v", err)
	}
	defer os.Remove(tmpFile.Name())

	// Open the editor
	cmd := exec.Command(editor, tmpFile.Name())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("failed to open editor: %v", err)
	}

	// Read the edited content
	content, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", fmt.Errorf("failed to read edited content: %v", err)
	}

	return strings.TrimSpace(string(content)), nil
}

func init() {
	rootCmd.AddCommand(chatCmd)

	// Add command options
	chatCmd.Flags().Int64VarP(&conversationID, "conversation", "c", 0, "Conversation ID to continue (omit to start a new conversation)")
	chatCmd.Flags().BoolVarP(&useEditor, "editor", "e", false, "Use default editor (from EDITOR environment variable) to compose message")
}
