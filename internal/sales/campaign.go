package sales

import (
	"fmt"

	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/mathutil"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

// MsgNoMappings is shown when a campaign is saved without products.
const MsgNoMappings = "Please add at least one product mapping"

// CampaignStatus is the workflow state of a campaign.
type CampaignStatus string

// Campaign states.
const (
	StatusDraft     CampaignStatus = "Draft"
	StatusSubmitted CampaignStatus = "Submitted"
)

// Valid reports whether s is a known status.
func (s CampaignStatus) Valid() bool {
	return s == StatusDraft || s == StatusSubmitted
}

// Campaign option lists.
var (
	AdsPlatforms       = []string{"Meta Ads", "TikTok Ads", "Marketplace Ads"}
	CampaignObjectives = []string{"Awareness", "Traffic", "Conversion"}
	CampaignTypes      = []string{"Always-on", "Promo", "Launch"}
	BudgetTypes        = []string{"Daily", "Monthly"}
)

// ProductMapping is the share of a campaign attributed to one product.
type ProductMapping struct {
	SKU             string  `json:"sku"`
	ProductName     string  `json:"productName"`
	Category        string  `json:"category"`
	AvgUnitPerOrder float64 `json:"avgUnitPerOrder"`
	Contribution    float64 `json:"contributionPercentage"`
	ExpectedRevenue float64 `json:"expectedRevenue"`
}

// Campaign is an ads and marketing plan for one brand and channel.
type Campaign struct {
	ID string `json:"id"`
	Key
	Brand                string           `json:"brand"`
	AdsPlatform          string           `json:"adsPlatform"`
	Name                 string           `json:"campaignName"`
	Objective            string           `json:"campaignObjective"`
	Type                 string           `json:"campaignType"`
	AdsBudget            float64          `json:"adsBudget"`
	BudgetType           string           `json:"budgetType"`
	StartDate            string           `json:"startDate"`
	EndDate              string           `json:"endDate"`
	TargetROAS           float64          `json:"targetROAS"`
	TargetCPA            float64          `json:"targetCPA"`
	TargetCPC            float64          `json:"targetCPC"`
	TargetCTR            float64          `json:"targetCTR"`
	TargetConversionRate float64          `json:"targetConversionRate"`
	ExpectedRevenue      float64          `json:"expectedRevenue"`
	EstimatedOrders      float64          `json:"estimatedOrder"`
	EstimatedClicks      float64          `json:"estimatedClick"`
	EstimatedUnits       float64          `json:"estimatedUnit"`
	Mappings             []ProductMapping `json:"productMappings"`
	Notes                string           `json:"notes"`
	Status               CampaignStatus   `json:"status"`
	CreatedBy            string           `json:"createdBy"`
	CreatedDate          string           `json:"createdDate"`
}

// OwnerDivision returns the division campaigns belong to.
func (c Campaign) OwnerDivision() string { return owner() }

// ExpectedRevenue is the ads budget multiplied by the target return on ad spend.
func ExpectedRevenue(budget, roas float64) float64 {
	return budget * roas
}

// EstimatedOrders is the number of orders the budget buys at the target CPA.
func EstimatedOrders(budget, cpa float64) float64 {
	return mathutil.SafeDivide(budget, cpa)
}

// EstimatedClicks is the number of clicks the budget buys at the target CPC.
func EstimatedClicks(budget, cpc float64) float64 {
	return mathutil.SafeDivide(budget, cpc)
}

// EstimatedUnits is orders multiplied by the contribution-weighted units per order.
func EstimatedUnits(orders float64, mappings []ProductMapping) float64 {
	var perOrder float64
	for _, m := range mappings {
		perOrder += m.AvgUnitPerOrder * m.Contribution / constants.PercentageMultiplier
	}
	return orders * perOrder
}

// TotalContribution sums the contribution percentages of every mapping.
func (c Campaign) TotalContribution() float64 {
	var total float64
	for _, m := range c.Mappings {
		total += m.Contribution
	}
	return total
}

// Recalculate derives the expected revenue and estimates of the campaign
// and the expected revenue of every product mapping.
func (c *Campaign) Recalculate() {
	c.ExpectedRevenue = ExpectedRevenue(c.AdsBudget, c.TargetROAS)
	c.EstimatedOrders = EstimatedOrders(c.AdsBudget, c.TargetCPA)
	c.EstimatedClicks = EstimatedClicks(c.AdsBudget, c.TargetCPC)
	c.EstimatedUnits = EstimatedUnits(c.EstimatedOrders, c.Mappings)
	for i := range c.Mappings {
		c.Mappings[i].ExpectedRevenue = c.ExpectedRevenue * c.Mappings[i].Contribution / constants.PercentageMultiplier
	}
}

// Validate checks required fields, mappings and that contributions total 100%.
func (c Campaign) Validate() error {
	if err := c.Key.validate(false); err != nil {
		return err
	}
	if err := validation.Required(validation.Field{Name: "campaignName", Value: c.Name}); err != nil {
		return err
	}
	if len(c.Mappings) == 0 {
		return &validation.Error{Message: MsgNoMappings}
	}
	if total := c.TotalContribution(); !mathutil.WithinTolerance(total, constants.ContributionTotal, constants.CurrencyTolerance) {
		return &validation.Error{
			Message: fmt.Sprintf(validation.MsgContributionTotal, mathutil.Round(total)),
			Fields:  []string{"contributionPercentage"},
		}
	}
	if c.AdsBudget < 0 || c.TargetROAS < 0 || c.TargetCPA < 0 || c.TargetCPC < 0 {
		return validation.Failf("campaign amounts must not be negative")
	}
	if c.Status != "" && !c.Status.Valid() {
		return validation.Failf("unknown campaign status %q", string(c.Status))
	}
	return nil
}
