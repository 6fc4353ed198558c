package api

import (
	"context"
	"fmt"
	"net/url"

	"voyager-client/lib/jsonnav"
	"voyager-client/lib/scrapers/voyager/core"
)

// GetCompanyUpdates collects feed updates posted by a company,
// identified by its universal name. maxResults <= 0 collects until the
// feed runs dry.
func (c Client) GetCompanyUpdates(ctx context.Context, universalName string, maxResults int) ([]jsonnav.Node, error) {
	ctx, span := tracer.Start(ctx, "api:GetCompanyUpdates")
	defer span.End()

	if universalName == "" {
		return nil, core.ErrMissingIdentifier
	}
	return c.collectUpdates(ctx, url.Values{
		"companyUniversalName": {universalName},
		"q":                    {"companyFeedByUniversalName"},
	}, maxResults)
}

// GetProfileUpdates collects feed updates shared by a member.
func (c Client) GetProfileUpdates(ctx context.Context, profileID string, maxResults int) ([]jsonnav.Node, error) {
	ctx, span := tracer.Start(ctx, "api:GetProfileUpdates")
	defer span.End()

	if profileID == "" {
		return nil, core.ErrMissingIdentifier
	}
	return c.collectUpdates(ctx, url.Values{
		"profileId": {profileID},
		"q":         {"memberShareFeed"},
	}, maxResults)
}

func (c Client) collectUpdates(ctx context.Context, query url.Values, maxResults int) ([]jsonnav.Node, error) {
	query.Set("moduleKey", "member-share")
	query.Set("count", fmt.Sprint(maxUpdateCount))

	return core.CollectPages(ctx, maxUpdateCount, maxResults, func(ctx context.Context, offset int) ([]jsonnav.Node, error) {
		query.Set("start", fmt.Sprint(offset))
		data, _, err := c.getJson(ctx, "/feed/updates?"+query.Encode())
		if err != nil {
			return nil, err
		}
		return data.Get("elements").Arr(), nil
	})
}
