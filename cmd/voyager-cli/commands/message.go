package commands

import (
	"log/slog"
	"strings"

	"voyager-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var sendConversation *string
var sendRecipients *[]string

func init() {
	sendConversation = sendCmd.Flags().String("conversation", "", "Conversation id to send into.")
	sendRecipients = sendCmd.Flags().StringSlice("recipient", nil, "Recipient profile urns for a new conversation.")
	sendCmd.MarkFlagsOneRequired("conversation", "recipient")
	sendCmd.MarkFlagsMutuallyExclusive("conversation", "recipient")

	rootCmd.AddCommand(conversationsCmd)
	rootCmd.AddCommand(sendCmd)
	rootCmd.AddCommand(seenCmd)
}

var conversationsCmd = &cobra.Command{
	Use:   "conversations",
	Short: "Lists the inbox conversations.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		conversations, err := client.GetConversations(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch conversations", err)
		}
		printJson(conversations)
	},
}

var sendCmd = &cobra.Command{
	Use:   "send (--conversation <id> | --recipient <urn>...) <message...>",
	Short: "Sends a message into a conversation or to new recipients.",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		err := client.SendMessage(cmd.Context(), *sendConversation, *sendRecipients, strings.Join(args, " "))
		if err != nil {
			serviceutil.Fatal("failed to send message", err)
		}
		slog.Info("message sent")
	},
}

var seenCmd = &cobra.Command{
	Use:   "seen <conversation-id>",
	Short: "Marks a conversation as read.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		err := client.MarkConversationSeen(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to mark conversation as seen", err)
		}
		slog.Info("conversation marked as seen", "conversation", args[0])
	},
}
