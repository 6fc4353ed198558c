package commands

import (
	"log/slog"

	"voyager-client/lib/configutil"
	"voyager-client/lib/keychain"
	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/scrapers/voyager/sessions"
	"voyager-client/lib/serviceutil"

	"github.com/spf13/cobra"
)

var keychainDb *string

func init() {
	keychainDb = accountCmd.PersistentFlags().String("keychain", "keychain.db", "Path to the keychain database.")
	accountCmd.AddCommand(accountSetCmd)
	accountCmd.AddCommand(accountTestCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(whoamiCmd)
}

var accountCmd = &cobra.Command{
	Use:   "account",
	Short: "Manages stored account credentials.",
}

func openKeychain() *keychain.Store {
	store, err := keychain.Open(*keychainDb)
	if err != nil {
		serviceutil.Fatal("failed to open keychain", err)
	}
	return store
}

var accountSetCmd = &cobra.Command{
	Use:   "set <id>",
	Short: "Stores the credentials from voyager.json5 under an account id.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := configutil.ReadRecursively[Config]("voyager.json5")
		if err != nil {
			serviceutil.Fatal("failed to read config", err)
		}

		store := openKeychain()
		defer store.Close()

		id := args[0]
		if cfg.Username != "" {
			err := store.SetUsernamePassword(cmd.Context(), "voyager", id, keychain.UsernamePassword{
				Username: cfg.Username,
				Password: cfg.Password,
			})
			if err != nil {
				serviceutil.Fatal("failed to store username/password", err)
			}
		}
		if cfg.AuthToken != "" || cfg.SessionCookie != "" {
			err := store.SetCookieIdentity(cmd.Context(), "voyager", id, keychain.CookieIdentity{
				AuthToken:     cfg.AuthToken,
				SessionCookie: cfg.SessionCookie,
			})
			if err != nil {
				serviceutil.Fatal("failed to store cookie identity", err)
			}
		}

		slog.Info("credentials stored", "id", id)
	},
}

var accountTestCmd = &cobra.Command{
	Use:   "test <id>",
	Short: "Establishes a session for a stored account and fetches its own profile.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		store := openKeychain()
		defer store.Close()

		cache := sessions.NewCache(store, core.ClientOptions{})
		client, err := cache.Get(cmd.Context(), args[0])
		if err != nil {
			serviceutil.Fatal("failed to establish session", err)
		}

		me, err := client.GetUserProfile(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch own profile", err)
		}
		printJson(me)
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Fetches the raw document describing the signed-in member.",
	Run: func(cmd *cobra.Command, args []string) {
		client := createClient(cmd.Context())
		me, err := client.GetUserProfile(cmd.Context())
		if err != nil {
			serviceutil.Fatal("failed to fetch own profile", err)
		}
		printJson(me)
	},
}
