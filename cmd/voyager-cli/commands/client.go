package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"voyager-client/lib/configutil"
	"voyager-client/lib/restyutil"
	"voyager-client/lib/scrapers/voyager/api"
	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/serviceutil"
)

type Config struct {
	Username      string `json:"username"`
	Password      string `json:"password"`
	AuthToken     string `json:"auth_token"`
	SessionCookie string `json:"session_cookie"`
	// optional override for the cookie file location
	CookieFile string `json:"cookie_file"`
	// forces a fresh login even when a cookie file exists
	RefreshCookies bool `json:"refresh_cookies"`
}

var debugHttp *bool

func init() {
	debugHttp = rootCmd.PersistentFlags().Bool("debug-http", false, "Dump request/response transcripts to .dev/resty/voyager.")
}

func createClient(ctx context.Context) api.Client {
	cfg, err := configutil.ReadRecursively[Config]("voyager.json5")
	if err != nil {
		serviceutil.Fatal("failed to read config", err)
	}
	if *debugHttp {
		core.SetRestyInstrumentOutput(restyutil.NewFilesystemOutput(".dev/resty/voyager"))
	}

	ctx, cancel := context.WithTimeout(ctx, time.Minute*2)
	defer cancel()

	client, err := api.NewClient(ctx, core.Identity{
		Username:      cfg.Username,
		Password:      cfg.Password,
		AuthToken:     cfg.AuthToken,
		SessionCookie: cfg.SessionCookie,
	}, cfg.RefreshCookies, core.ClientOptions{
		CookieFile: cfg.CookieFile,
	})
	if err != nil {
		serviceutil.Fatal("failed to authenticate", err)
	}
	return client
}

func printJson(value any) {
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		serviceutil.Fatal("failed to encode output", err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
