package core

import (
	"context"
	"net/http/cookiejar"
	"net/url"
	"time"

	"voyager-client/lib/restyutil"
	"voyager-client/lib/telemetry"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/voyager/core")

const (
	apiBaseUrl  = "https://www.linkedin.com/voyager/api"
	authBaseUrl = "https://www.linkedin.com"

	defaultCookieFile = ".cookies.json"
)

var restyInstrumentOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput enables request/response transcript dumps
// for clients created afterwards.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyInstrumentOutput = output
}

// Client owns one voyager session: the cookie jar, the durable copy of
// its cookies, and the paced http dispatcher. Construct it, call
// Authenticate once, then issue Get/Post. The cookie state is guarded
// internally so a client may be shared across goroutines.
type Client struct {
	http     *resty.Client
	cookies  *cookieStore
	evade    evadeFunc
	authBase string
}

type ClientOptions struct {
	// overrides the durable cookie file location, defaults to ".cookies.json"
	CookieFile string
	// length of one evasion delay unit, defaults to one second
	EvadeUnit time.Duration
	// override the data endpoint base, defaults to the voyager api
	BaseUrl string
	// override the login endpoint base, defaults to www.linkedin.com
	AuthBaseUrl string
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = apiBaseUrl
	}
	if opts.AuthBaseUrl == "" {
		opts.AuthBaseUrl = authBaseUrl
	}
	if opts.CookieFile == "" {
		opts.CookieFile = defaultCookieFile
	}
	if opts.EvadeUnit == 0 {
		opts.EvadeUnit = time.Second
	}

	authUrl, err := url.Parse(opts.AuthBaseUrl)
	if err != nil {
		return nil, err
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetCookieJar(jar)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	// the upstream fingerprints clients; these values match a known
	// desktop browser signature and must stay in sync as a set
	client.SetHeader("user-agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_13_5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/66.0.3359.181 Safari/537.36")
	client.SetHeader("accept-language", "en-AU,en-GB;q=0.9,en-US;q=0.8,en;q=0.7")
	client.SetHeader("x-li-lang", "en_US")
	client.SetHeader("x-restli-protocol-version", "2.0.0")

	telemetry.InstrumentResty(client, "scrapers/voyager/http")
	restyutil.InstrumentClient(client, restyInstrumentOutput)

	return &Client{
		http:     client,
		cookies:  newCookieStore(jar, authUrl, opts.CookieFile),
		evade:    evadeDelay(opts.EvadeUnit),
		authBase: opts.AuthBaseUrl,
	}, nil
}

// Get issues a paced GET against the data api. The response is
// returned raw; interpreting its status beyond transport failure is
// the caller's concern.
func (c *Client) Get(ctx context.Context, path string) (*resty.Response, error) {
	if err := c.evade(ctx); err != nil {
		return nil, err
	}
	return c.http.R().
		SetContext(ctx).
		SetHeader("csrf-token", c.cookies.sessionID()).
		Get(path)
}

// Post issues a paced POST against the data api with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (*resty.Response, error) {
	if err := c.evade(ctx); err != nil {
		return nil, err
	}
	return c.http.R().
		SetContext(ctx).
		SetHeader("csrf-token", c.cookies.sessionID()).
		SetHeader("content-type", "application/json").
		SetBody(body).
		Post(path)
}

// SessionID exposes the current session cookie value; it doubles as
// the csrf token on every dispatched request.
func (c *Client) SessionID() string {
	return c.cookies.sessionID()
}
