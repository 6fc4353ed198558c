package commands

import (
	"voyager-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var updatesCompany *string
var updatesProfile *string
var updatesMax *int

func init() {
	updatesCompany = updatesCmd.Flags().String("company", "", "Universal name of the company to fetch updates for.")
	updatesProfile = updatesCmd.Flags().String("profile", "", "Profile id of the member to fetch updates for.")
	updatesMax = updatesCmd.Flags().Int("max", 20, "Maximum number of updates, 0 means unlimited.")
	updatesCmd.MarkFlagsOneRequired("company", "profile")
	updatesCmd.MarkFlagsMutuallyExclusive("company", "profile")
	rootCmd.AddCommand(updatesCmd)
}

var updatesCmd = &cobra.Command{
	Use:   "updates (--company <name> | --profile <id>) [--max <n>]",
	Short: "Fetches feed updates posted by a company or a member.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())

		if *updatesCompany != "" {
			updates, err := client.GetCompanyUpdates(cmd.Context(), *updatesCompany, *updatesMax)
			if err != nil {
				serviceutil.Fatal("failed to fetch company updates", err)
			}
			printJson(updates)
			return
		}

		updates, err := client.GetProfileUpdates(cmd.Context(), *updatesProfile, *updatesMax)
		if err != nil {
			serviceutil.Fatal("failed to fetch profile updates", err)
		}
		printJson(updates)
	},
}
