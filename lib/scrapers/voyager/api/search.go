package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"voyager-client/lib/jsonnav"
	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/urn"
)

// Search runs a blended search, paging through result clusters until
// the upstream runs dry or the limit is hit. Entries in params override
// the defaults; limit <= 0 collects everything the upstream offers.
//
// Results come back as raw documents since the shape varies by result
// type; SearchPeople is the typed entry point for people queries.
func (c Client) Search(ctx context.Context, params map[string]string, limit int) ([]jsonnav.Node, error) {
	ctx, span := tracer.Start(ctx, "api:Search")
	defer span.End()

	count := maxSearchCount
	if limit > 0 && limit < maxSearchCount {
		count = limit
	}

	query := url.Values{}
	query.Set("count", strconv.Itoa(count))
	query.Set("filters", "List()")
	query.Set("origin", "GLOBAL_SEARCH_HEADER")
	query.Set("q", "all")
	query.Set("queryContext", "List(spellCorrectionEnabled->true,relatedSearchesEnabled->true,kcardTypes->PROFILE|COMPANY)")
	for key, value := range params {
		query.Set(key, value)
	}

	return core.CollectPages(ctx, count, limit, func(ctx context.Context, offset int) ([]jsonnav.Node, error) {
		query.Set("start", strconv.Itoa(offset))
		data, _, err := c.getJson(ctx, "/search/blended?"+query.Encode())
		if err != nil {
			return nil, err
		}

		// hits are nested one level down, grouped into clusters by
		// result type
		var page []jsonnav.Node
		for _, cluster := range data.Get("data").Get("elements").Arr() {
			page = append(page, cluster.Get("elements").Arr()...)
		}
		return page, nil
	})
}

// SearchPeople runs a people search constrained by params.
func (c Client) SearchPeople(ctx context.Context, params SearchPeopleParams) ([]PersonSearchResult, error) {
	filters := []string{"resultType->PEOPLE"}
	if params.ConnectionOf != "" {
		filters = append(filters, "connectionOf->"+params.ConnectionOf)
	}
	if params.NetworkDepth != "" {
		filters = append(filters, "network->"+params.NetworkDepth)
	}
	if len(params.Regions) > 0 {
		filters = append(filters, "geoRegion->"+strings.Join(params.Regions, "|"))
	}
	if len(params.Industries) > 0 {
		filters = append(filters, "industry->"+strings.Join(params.Industries, "|"))
	}
	if len(params.CurrentCompany) > 0 {
		filters = append(filters, "currentCompany->"+strings.Join(params.CurrentCompany, "|"))
	}
	if len(params.PastCompanies) > 0 {
		filters = append(filters, "pastCompany->"+strings.Join(params.PastCompanies, "|"))
	}
	if len(params.ProfileLanguages) > 0 {
		filters = append(filters, "profileLanguage->"+strings.Join(params.ProfileLanguages, "|"))
	}
	if len(params.NonprofitInterests) > 0 {
		filters = append(filters, "nonprofitInterest->"+strings.Join(params.NonprofitInterests, "|"))
	}
	if len(params.Schools) > 0 {
		filters = append(filters, "schools->"+strings.Join(params.Schools, "|"))
	}

	searchParams := map[string]string{
		"filters": fmt.Sprintf("List(%s)", strings.Join(filters, ",")),
	}
	if params.Keywords != "" {
		searchParams["keywords"] = params.Keywords
	}

	data, err := c.Search(ctx, searchParams, params.Limit)
	if err != nil {
		return nil, err
	}

	var results []PersonSearchResult
	for _, item := range data {
		publicID := item.Get("publicIdentifier").Str()
		if publicID == "" {
			continue
		}
		results = append(results, PersonSearchResult{
			UrnID:    urn.IDOf(item.Get("targetUrn").Str()),
			PublicID: publicID,
			Distance: item.Get("memberDistance").Get("value").Str(),
		})
	}
	return results, nil
}

// GuidedPeopleSearch runs a keyword query against the guided people
// search vertical, returning the raw hit document. A failed request
// yields an empty document.
func (c Client) GuidedPeopleSearch(ctx context.Context, query string, count, start int) (jsonnav.Node, error) {
	path := fmt.Sprintf(
		"/search/hits?count=%d&guides=List%%28v-%%253EPEOPLE%%29&keywords=%s&origin=SWITCH_SEARCH_VERTICAL&q=guided",
		count, url.QueryEscape(query),
	)
	if start > 0 {
		path += fmt.Sprintf("&start=%d", start)
	}

	data, status, err := c.getJson(ctx, path)
	if err != nil {
		return jsonnav.Node{}, err
	}
	if status != 200 {
		return jsonnav.Wrap(map[string]any{}), nil
	}
	return data, nil
}
