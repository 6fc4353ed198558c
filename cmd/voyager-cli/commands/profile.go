package commands

import (
	"strings"

	"voyager-client/lib/scrapers/voyager/api"
	"voyager-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(profileCmd)
	rootCmd.AddCommand(connectionsCmd)
	rootCmd.AddCommand(badgesCmd)
}

func profileRef(arg string) api.ProfileRef {
	if strings.HasPrefix(arg, "urn:") {
		return api.ProfileRef{URN: arg}
	}
	return api.ProfileRef{PublicID: arg}
}

var profileCmd = &cobra.Command{
	Use:   "profile <public-id | urn>",
	Short: "Fetches the full profile view of a member.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		view, err := client.GetProfile(cmd.Context(), profileRef(args[0]))
		if err != nil {
			serviceutil.Fatal("failed to fetch profile", err)
		}
		printJson(view)
	},
}

var connectionsCmd = &cobra.Command{
	Use:   "connections <urn>",
	Short: "Lists first-degree connections of the member behind a profile urn.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		connections, err := client.GetProfileConnections(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch connections", err)
		}
		printJson(connections)
	},
}

var badgesCmd = &cobra.Command{
	Use:   "badges <public-id>",
	Short: "Fetches the badge flags of a member.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		badges, err := client.GetProfileMemberBadges(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to fetch member badges", err)
		}
		printJson(badges)
	},
}
