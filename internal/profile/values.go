package profile

import (
	"slices"
	"strings"
)

// Values fill endpoint and feed placeholders. Empty values become wildcards.
type Values struct {
	Marketplace      string
	Endpoint         string
	MarketplaceGUID  string
	CampaignID       string
	SbermmCampaignID string
	LatinName        string
	Outlet           string
	Store            string
}

// Expand replaces placeholders of the template.
func (v Values) Expand(template string) string {
	return strings.NewReplacer(
		"{marketplace}", or(v.Marketplace),
		"{endpoint}", or(v.Endpoint),
		"{marketplace_guid}", or(v.MarketplaceGUID),
		"{campaign_id}", or(v.CampaignID),
		"{sbermm_campaign_id}", or(v.SbermmCampaignID),
		"{latin_name}", or(v.LatinName),
		"{outlet}", or(v.Outlet),
		"{store}", or(v.Store),
	).Replace(template)
}

// ExpandAll expands every template.
func (v Values) ExpandAll(templates []string) []string {
	expanded := make([]string, 0, len(templates))
	for _, t := range templates {
		expanded = append(expanded, v.Expand(t))
	}

	return expanded
}

func or(value string) string {
	if value == "" {
		return "*"
	}

	return value
}

// Missing returns placeholders of the template that have no value.
func (v Values) Missing(template string) []string {
	values := map[string]string{
		"{marketplace}":        v.Marketplace,
		"{endpoint}":           v.Endpoint,
		"{marketplace_guid}":   v.MarketplaceGUID,
		"{campaign_id}":        v.CampaignID,
		"{sbermm_campaign_id}": v.SbermmCampaignID,
		"{latin_name}":         v.LatinName,
		"{outlet}":             v.Outlet,
		"{store}":              v.Store,
	}

	var missing []string
	for placeholder, value := range values {
		if value == "" && strings.Contains(template, placeholder) {
			missing = append(missing, strings.Trim(placeholder, "{}"))
		}
	}
	slices.Sort(missing)

	return missing
}
