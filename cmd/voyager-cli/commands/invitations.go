package commands

import (
	"log/slog"

	"voyager-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var invitationsStart *int
var invitationsCount *int

func init() {
	invitationsStart = invitationsCmd.Flags().Int("start", 0, "Offset into the invitation list.")
	invitationsCount = invitationsCmd.Flags().Int("count", 20, "Number of invitations to fetch.")
	rootCmd.AddCommand(invitationsCmd)
	rootCmd.AddCommand(acceptCmd)
}

var invitationsCmd = &cobra.Command{
	Use:   "invitations [--start <n>] [--count <n>]",
	Short: "Lists pending received invitations.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		invitations, err := client.GetInvitations(cmd.Context(), *invitationsStart, *invitationsCount)
		if err != nil {
			serviceutil.Fatal("failed to fetch invitations", err)
		}
		printJson(invitations)
	},
}

var acceptCmd = &cobra.Command{
	Use:   "accept <invitation-urn> <shared-secret>",
	Short: "Accepts a pending invitation.",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		err := client.ReplyInvitation(cmd.Context(), args[0], args[1], "accept")
		if err != nil {
			serviceutil.Fatal("failed to accept invitation", err)
		}
		slog.Info("invitation accepted")
	},
}
