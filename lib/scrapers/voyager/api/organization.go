package api

import (
	"context"
	"fmt"
)

const companyDecorationId = "com.linkedin.voyager.deco.organization.web.WebFullCompanyMain-12"

// GetSchool looks up a school by its universal name.
func (c Client) GetSchool(ctx context.Context, universalName string) (School, error) {
	name, err := c.getOrganizationName(ctx, universalName)
	if err != nil {
		return School{}, err
	}
	return School{Name: name}, nil
}

// GetCompany looks up a company by its universal name.
func (c Client) GetCompany(ctx context.Context, universalName string) (Company, error) {
	name, err := c.getOrganizationName(ctx, universalName)
	if err != nil {
		return Company{}, err
	}
	return Company{Name: name}, nil
}

// schools and companies share the organization endpoint; failures come
// back as 200s with an embedded status document
func (c Client) getOrganizationName(ctx context.Context, universalName string) (string, error) {
	path := fmt.Sprintf(
		"/organization/companies?decorationId=%s&q=universalName&universalName=%s",
		companyDecorationId, universalName,
	)
	data, _, err := c.getJson(ctx, path)
	if err != nil {
		return "", err
	}

	if status := data.Get("status"); status.Exists() && status.Int() != 200 {
		message := data.Get("message").Str()
		if message == "" {
			message = "organization lookup failed"
		}
		return "", fmt.Errorf("%s (embedded status %d)", message, status.Int())
	}

	organization := data.Get("elements").Index(0)
	if !organization.Exists() {
		return "", fmt.Errorf("no organization found for %q", universalName)
	}
	name := organization.Get("name").Str()
	if name == "" {
		return "", fmt.Errorf("organization %q has no name", universalName)
	}
	return name, nil
}
