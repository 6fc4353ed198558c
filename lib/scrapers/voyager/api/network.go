package api

import (
	"context"
	"fmt"
	"net/http"

	"voyager-client/lib/jsonnav"
	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/urn"
)

// GetUserProfile fetches the raw document describing the signed-in
// member.
func (c Client) GetUserProfile(ctx context.Context) (jsonnav.Node, error) {
	data, _, err := c.getJson(ctx, "/me")
	return data, err
}

// GetCurrentProfileViews reports how many members viewed the signed-in
// member's profile recently. The count sits deep inside the "who
// viewed my profile" card stack; a missing card reads as zero.
func (c Client) GetCurrentProfileViews(ctx context.Context) (uint64, error) {
	data, _, err := c.getJson(ctx, "/identity/wvmpCards")
	if err != nil {
		return 0, err
	}

	views := data.
		Get("elements").Index(0).
		Get("value").
		Get("com.linkedin.voyager.identity.me.wvmpOverview.WvmpViewersCard").
		Get("insightCards").Index(0).
		Get("value").
		Get("com.linkedin.voyager.identity.me.wvmpOverview.WvmpSummaryInsightCard").
		Get("numViews")
	return uint64(views.Int()), nil
}

// GetInvitations lists pending received invitations. A failed request
// reads as an empty list since the endpoint refuses some accounts.
func (c Client) GetInvitations(ctx context.Context, start, limit int) ([]Invitation, error) {
	path := fmt.Sprintf(
		"/relationships/invitationViews?start=%d&count=%d&includeInsights=true&q=receivedInvitation",
		start, limit,
	)
	data, status, err := c.getJson(ctx, path)
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return nil, nil
	}

	var invitations []Invitation
	for _, element := range data.Get("elements").Arr() {
		invitation := element.Get("invitation")
		entityUrn := invitation.Get("entityUrn").Str()
		sharedSecret := invitation.Get("sharedSecret").Str()
		if entityUrn == "" || sharedSecret == "" {
			continue
		}
		invitations = append(invitations, Invitation{
			EntityURN:    entityUrn,
			SharedSecret: sharedSecret,
		})
	}
	return invitations, nil
}

// ReplyInvitation accepts or ignores a pending invitation. The action
// string is passed through to the upstream, typically "accept" or
// "ignore".
func (c Client) ReplyInvitation(ctx context.Context, invitationEntityUrn, sharedSecret, action string) error {
	parsed, err := urn.Parse(invitationEntityUrn)
	if err != nil {
		return fmt.Errorf("%w: %w", core.ErrInvalidInput, err)
	}

	payload := map[string]any{
		"invitationId":           parsed.ID,
		"invitationSharedSecret": sharedSecret,
		"isGenericInvitation":    false,
	}
	res, err := c.core.Post(ctx,
		fmt.Sprintf("/relationships/invitations/%s?action=%s", parsed.ID, action), payload)
	if err != nil {
		return err
	}
	if res.StatusCode() != http.StatusOK {
		return core.StatusError{Code: res.StatusCode()}
	}
	return nil
}

// RemoveConnection severs the connection with the given profile.
func (c Client) RemoveConnection(ctx context.Context, publicID string) error {
	res, err := c.core.Post(ctx,
		fmt.Sprintf("/identity/profiles/%s/profileActions?action=disconnect", publicID),
		map[string]any{})
	if err != nil {
		return err
	}
	if res.StatusCode() != http.StatusOK {
		return core.StatusError{Code: res.StatusCode()}
	}
	return nil
}

// GetProfilePrivacySettings fetches the privacy settings document of a
// profile. Profiles that do not expose their settings read as empty.
func (c Client) GetProfilePrivacySettings(ctx context.Context, publicID string) (map[string]jsonnav.Node, error) {
	data, status, err := c.getJson(ctx, fmt.Sprintf("/identity/profiles/%s/privacySettings", publicID))
	if err != nil {
		return nil, err
	}
	if status != http.StatusOK {
		return map[string]jsonnav.Node{}, nil
	}
	settings := data.Get("data").Map()
	if settings == nil {
		settings = map[string]jsonnav.Node{}
	}
	return settings, nil
}

// GetProfileMemberBadges fetches the badge flags of a profile,
// degrading to all-false when the endpoint refuses.
func (c Client) GetProfileMemberBadges(ctx context.Context, publicID string) (MemberBadges, error) {
	data, status, err := c.getJson(ctx, fmt.Sprintf("/identity/profiles/%s/memberBadges", publicID))
	if err != nil {
		return MemberBadges{}, err
	}
	if status != http.StatusOK {
		return MemberBadges{}, nil
	}

	badges := data.Get("data")
	return MemberBadges{
		Premium:    badges.Get("premium").Bool(),
		OpenLink:   badges.Get("openLink").Bool(),
		Influencer: badges.Get("influencer").Bool(),
		JobSeeker:  badges.Get("jobSeeker").Bool(),
	}, nil
}

// GetProfileNetworkInfo fetches follower statistics for a profile,
// degrading to zero when the endpoint refuses.
func (c Client) GetProfileNetworkInfo(ctx context.Context, publicID string) (NetworkInfo, error) {
	data, status, err := c.getJson(ctx, fmt.Sprintf("/identity/profiles/%s/networkinfo", publicID))
	if err != nil {
		return NetworkInfo{}, err
	}
	if status != http.StatusOK {
		return NetworkInfo{}, nil
	}

	return NetworkInfo{
		FollowersCount: uint64(data.Get("data").Get("followersCount").Int()),
	}, nil
}
