package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"voyager-client/lib/scrapers/voyager/core"
	"voyager-client/lib/urn"

	"go.opentelemetry.io/otel/codes"
)

// GetProfile fetches the full profile view and enriches it with the
// skill list and contact info, which live on separate endpoints.
func (c Client) GetProfile(ctx context.Context, ref ProfileRef) (ProfileView, error) {
	ctx, span := tracer.Start(ctx, "api:GetProfile")
	defer span.End()

	id, err := ref.id()
	if err != nil {
		return ProfileView{}, err
	}

	res, err := c.core.Get(ctx, fmt.Sprintf("/identity/profiles/%s/profileView", id))
	if err != nil {
		span.SetStatus(codes.Error, "profile view request failed")
		return ProfileView{}, err
	}
	if res.StatusCode() != http.StatusOK {
		err := core.StatusError{Code: res.StatusCode()}
		span.SetStatus(codes.Error, err.Error())
		return ProfileView{}, err
	}

	var view ProfileView
	err = json.Unmarshal(res.Body(), &view)
	if err != nil {
		return ProfileView{}, fmt.Errorf("decode profile view: %w", err)
	}

	if view.Profile.MiniProfile != nil {
		if profileID := urn.IDOf(view.Profile.MiniProfile.EntityURN); profileID != "" {
			view.Profile.ProfileID = profileID
		}
	}

	view.Skills, err = c.GetProfileSkills(ctx, ref)
	if err != nil {
		return ProfileView{}, err
	}
	view.Profile.Contact, err = c.GetProfileContactInfo(ctx, ref)
	if err != nil {
		return ProfileView{}, err
	}

	return view, nil
}

// GetProfileContactInfo fetches the contact card for a profile. The
// upstream wraps website types in decorated union keys, which are
// flattened into plain labels here.
func (c Client) GetProfileContactInfo(ctx context.Context, ref ProfileRef) (ContactInfo, error) {
	id, err := ref.id()
	if err != nil {
		return ContactInfo{}, err
	}

	data, _, err := c.getJson(ctx, fmt.Sprintf("/identity/profiles/%s/profileContactInfo", id))
	if err != nil {
		return ContactInfo{}, err
	}

	info := ContactInfo{
		EmailAddress: data.Get("emailAddress").Str(),
		BirthDate:    data.Get("birthDateOn").Str(),
	}

	for _, website := range data.Get("websites").Arr() {
		site := Website{Url: website.Get("url").Str()}
		websiteType := website.Get("type")
		if standard := websiteType.Get("com.linkedin.voyager.identity.profile.StandardWebsite"); standard.Exists() {
			site.Label = standard.Get("category").Str()
		} else if custom := websiteType.Get("com.linkedin.voyager.identity.profile.CustomWebsite"); custom.Exists() {
			site.Label = custom.Get("label").Str()
		}
		info.Websites = append(info.Websites, site)
	}

	for _, handle := range data.Get("twitterHandles").Arr() {
		if name := handle.Get("name").Str(); name != "" {
			info.Twitter = append(info.Twitter, name)
		}
	}

	for _, phone := range data.Get("phoneNumbers").Arr() {
		if number := phone.Get("number").Str(); number != "" {
			info.PhoneNumbers = append(info.PhoneNumbers, number)
		}
	}

	return info, nil
}

// GetProfileSkills fetches the named skills of a profile.
func (c Client) GetProfileSkills(ctx context.Context, ref ProfileRef) ([]Skill, error) {
	id, err := ref.id()
	if err != nil {
		return nil, err
	}

	data, _, err := c.getJson(ctx, fmt.Sprintf("/identity/profiles/%s/skills?count=100&start=0", id))
	if err != nil {
		return nil, err
	}

	var skills []Skill
	for _, element := range data.Get("elements").Arr() {
		if name := element.Get("name").Str(); name != "" {
			skills = append(skills, Skill{Name: name})
		}
	}
	return skills, nil
}

// GetProfileConnections lists first-degree connections of the profile
// behind the given entity urn.
func (c Client) GetProfileConnections(ctx context.Context, profileUrn string) ([]Connection, error) {
	results, err := c.SearchPeople(ctx, SearchPeopleParams{
		ConnectionOf: profileUrn,
		NetworkDepth: "F",
	})
	if err != nil {
		return nil, err
	}

	connections := make([]Connection, 0, len(results))
	for _, result := range results {
		connections = append(connections, Connection{
			UrnID:    result.UrnID,
			PublicID: result.PublicID,
			Distance: result.Distance,
		})
	}
	return connections, nil
}
