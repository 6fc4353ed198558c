package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"voyager-client/lib/scrapers/voyager/core"

	"github.com/stretchr/testify/require"
)

// newTestClient stands up a fake voyager upstream serving the given
// data handler and returns a client authenticated against it.
func newTestClient(t *testing.T, dataHandler http.Handler) Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /uas/authenticate", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "JSESSIONID", Value: "ajax:test", Path: "/"})
	})
	mux.HandleFunc("POST /uas/authenticate", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"login_result": "PASS"}`))
	})
	mux.Handle("/voyager/api/", http.StripPrefix("/voyager/api", dataHandler))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), core.Identity{
		Username:      "user@example.com",
		Password:      "hunter2",
		SessionCookie: `"ajax:test"`,
	}, true, core.ClientOptions{
		BaseUrl:     srv.URL + "/voyager/api",
		AuthBaseUrl: srv.URL,
		CookieFile:  filepath.Join(t.TempDir(), "cookies.json"),
		EvadeUnit:   time.Millisecond,
	})
	require.NoError(t, err)
	return client
}

func TestGetProfile(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/profiles/jsmith/profileView", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"entityUrn": "urn:li:fs_profileView:AbC123",
			"profile": {
				"entityUrn": "urn:li:fs_profile:AbC123",
				"firstName": "Jane",
				"lastName": "Smith",
				"headline": "Engineer",
				"locationName": "Sydney",
				"miniProfile": {
					"entityUrn": "urn:li:fs_miniProfile:AbC123",
					"publicIdentifier": "jsmith"
				}
			},
			"positionView": {
				"elements": [{"title": "Engineer", "companyName": "Initech"}],
				"paging": {"count": 1, "start": 0, "total": 1}
			}
		}`))
	})
	mux.HandleFunc("/identity/profiles/jsmith/skills", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "100", r.URL.Query().Get("count"))
		_, _ = w.Write([]byte(`{"elements": [{"name": "Go"}, {"name": "SQL"}]}`))
	})
	mux.HandleFunc("/identity/profiles/jsmith/profileContactInfo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"emailAddress": "jane@example.com",
			"websites": [
				{"url": "https://example.com", "type": {"com.linkedin.voyager.identity.profile.StandardWebsite": {"category": "PERSONAL"}}},
				{"url": "https://blog.example.com", "type": {"com.linkedin.voyager.identity.profile.CustomWebsite": {"label": "Blog"}}}
			],
			"twitterHandles": [{"name": "janesmith"}],
			"phoneNumbers": [{"number": "+61 400 000 000"}]
		}`))
	})

	client := newTestClient(t, mux)
	view, err := client.GetProfile(context.Background(), ProfileRef{PublicID: "jsmith"})
	require.NoError(t, err)

	require.Equal(t, "Jane", view.Profile.FirstName)
	require.Equal(t, "AbC123", view.Profile.ProfileID)
	require.Equal(t, []Skill{{Name: "Go"}, {Name: "SQL"}}, view.Skills)
	require.Equal(t, "jane@example.com", view.Profile.Contact.EmailAddress)
	require.Equal(t, []Website{
		{Url: "https://example.com", Label: "PERSONAL"},
		{Url: "https://blog.example.com", Label: "Blog"},
	}, view.Profile.Contact.Websites)
	require.Equal(t, []string{"janesmith"}, view.Profile.Contact.Twitter)
	require.Equal(t, []string{"+61 400 000 000"}, view.Profile.Contact.PhoneNumbers)
	require.Len(t, view.PositionView.Elements, 1)
}

func TestGetProfileByUrn(t *testing.T) {
	mux := http.NewServeMux()
	for _, path := range []string{
		"/identity/profiles/AbC123/profileView",
		"/identity/profiles/AbC123/skills",
		"/identity/profiles/AbC123/profileContactInfo",
	} {
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		})
	}

	client := newTestClient(t, mux)
	_, err := client.GetProfile(context.Background(), ProfileRef{URN: "urn:li:fs_profile:AbC123"})
	require.NoError(t, err)
}

func TestGetProfileMissingIdentifier(t *testing.T) {
	client := newTestClient(t, http.NewServeMux())
	_, err := client.GetProfile(context.Background(), ProfileRef{})
	require.ErrorIs(t, err, core.ErrMissingIdentifier)
	require.ErrorIs(t, err, core.ErrInvalidInput)
}

func TestGetProfileUpstreamFailure(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/profiles/jsmith/profileView", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	client := newTestClient(t, mux)
	_, err := client.GetProfile(context.Background(), ProfileRef{PublicID: "jsmith"})

	var status core.StatusError
	require.ErrorAs(t, err, &status)
	require.Equal(t, http.StatusTooManyRequests, status.Code)
}

func TestSearchPeople(t *testing.T) {
	var filters string
	mux := http.NewServeMux()
	mux.HandleFunc("/search/blended", func(w http.ResponseWriter, r *http.Request) {
		filters = r.URL.Query().Get("filters")
		if r.URL.Query().Get("start") != "0" {
			_, _ = w.Write([]byte(`{"data": {"elements": []}}`))
			return
		}
		_, _ = w.Write([]byte(`{
			"data": {
				"elements": [
					{"elements": [
						{"publicIdentifier": "jsmith", "targetUrn": "urn:li:fs_miniProfile:AbC123", "memberDistance": {"value": "DISTANCE_1"}},
						{"title": "a cluster entry without a public identifier"}
					]},
					{"elements": [
						{"publicIdentifier": "jdoe", "targetUrn": "urn:li:fs_miniProfile:DeF456", "memberDistance": {"value": "DISTANCE_2"}}
					]}
				]
			}
		}`))
	})

	client := newTestClient(t, mux)
	results, err := client.SearchPeople(context.Background(), SearchPeopleParams{
		Keywords:     "jane",
		NetworkDepth: "F",
	})
	require.NoError(t, err)

	require.Contains(t, filters, "resultType->PEOPLE")
	require.Contains(t, filters, "network->F")
	require.Equal(t, []PersonSearchResult{
		{UrnID: "AbC123", PublicID: "jsmith", Distance: "DISTANCE_1"},
		{UrnID: "DeF456", PublicID: "jdoe", Distance: "DISTANCE_2"},
	}, results)
}

func TestGetCompanyUpdates(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/feed/updates", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "companyFeedByUniversalName", r.URL.Query().Get("q"))
		require.Equal(t, "initech", r.URL.Query().Get("companyUniversalName"))
		require.Equal(t, "member-share", r.URL.Query().Get("moduleKey"))
		if r.URL.Query().Get("start") != "0" {
			_, _ = w.Write([]byte(`{"elements": []}`))
			return
		}
		_, _ = w.Write([]byte(`{"elements": [{"id": 1}, {"id": 2}]}`))
	})

	client := newTestClient(t, mux)
	updates, err := client.GetCompanyUpdates(context.Background(), "initech", 0)
	require.NoError(t, err)
	require.Len(t, updates, 2)

	_, err = client.GetCompanyUpdates(context.Background(), "", 0)
	require.ErrorIs(t, err, core.ErrMissingIdentifier)
}

func TestGetCompany(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/organization/companies", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "universalName", r.URL.Query().Get("q"))
		switch r.URL.Query().Get("universalName") {
		case "initech":
			_, _ = w.Write([]byte(`{"elements": [{"name": "Initech"}]}`))
		default:
			_, _ = w.Write([]byte(`{"status": 404, "message": "no such organization"}`))
		}
	})

	client := newTestClient(t, mux)
	company, err := client.GetCompany(context.Background(), "initech")
	require.NoError(t, err)
	require.Equal(t, "Initech", company.Name)

	_, err = client.GetCompany(context.Background(), "missing")
	require.ErrorContains(t, err, "no such organization")
}

func TestGetCurrentProfileViews(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/wvmpCards", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"elements": [{
				"value": {
					"com.linkedin.voyager.identity.me.wvmpOverview.WvmpViewersCard": {
						"insightCards": [{
							"value": {
								"com.linkedin.voyager.identity.me.wvmpOverview.WvmpSummaryInsightCard": {
									"numViews": 42
								}
							}
						}]
					}
				}
			}]
		}`))
	})

	client := newTestClient(t, mux)
	views, err := client.GetCurrentProfileViews(context.Background())
	require.NoError(t, err)
	require.EqualValues(t, 42, views)
}

func TestGetProfileMemberBadgesDegrades(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/identity/profiles/jsmith/memberBadges", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	client := newTestClient(t, mux)
	badges, err := client.GetProfileMemberBadges(context.Background(), "jsmith")
	require.NoError(t, err)
	require.Equal(t, MemberBadges{}, badges)
}

func TestGetInvitations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/relationships/invitationViews", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "receivedInvitation", r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(`{
			"elements": [
				{"invitation": {"entityUrn": "urn:li:fs_relInvitation:1", "sharedSecret": "s3cret"}},
				{"invitation": {"entityUrn": "urn:li:fs_relInvitation:2"}}
			]
		}`))
	})

	client := newTestClient(t, mux)
	invitations, err := client.GetInvitations(context.Background(), 0, 10)
	require.NoError(t, err)
	require.Equal(t, []Invitation{
		{EntityURN: "urn:li:fs_relInvitation:1", SharedSecret: "s3cret"},
	}, invitations)
}
