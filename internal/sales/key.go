// Package sales holds monthly sales targets, reported actual sales and ads
// campaigns per brand and sales channel, and derives the sales dashboard.
package sales

import (
	"fmt"
	"strconv"

	"github.com/iwvelando/marui-portal/pkg/constants"
	"github.com/iwvelando/marui-portal/pkg/datetime"
	"github.com/iwvelando/marui-portal/pkg/validation"
)

// Sales channels offered by the portal.
const (
	ChannelShopee    = "Shopee"
	ChannelTokopedia = "Tokopedia"
	ChannelTikTok    = "TikTok Shop"
	ChannelOffline   = "Offline"
)

// Channels lists every sales channel in display order.
var Channels = []string{ChannelShopee, ChannelTokopedia, ChannelTikTok, ChannelOffline}

// Key identifies the period, brand and channel a sales record covers.
type Key struct {
	Month     datetime.Month `json:"month"`
	Year      int            `json:"year"`
	BrandCode string         `json:"brandCode"`
	Channel   string         `json:"salesChannel"`
}

// String renders the key as "January-2026-BRD001-Shopee".
func (k Key) String() string {
	return fmt.Sprintf("%s-%d-%s-%s", k.Month, k.Year, k.BrandCode, k.Channel)
}

// Period renders the month and year, e.g. "January 2026".
func (k Key) Period() string {
	return fmt.Sprintf("%s %d", k.Month, k.Year)
}

// validate checks that every part of the key is present. Channel is only
// required when requireChannel is set.
func (k Key) validate(requireChannel bool) error {
	month := ""
	if k.Month.Valid() {
		month = k.Month.String()
	}
	year := ""
	if k.Year > 0 {
		year = strconv.Itoa(k.Year)
	}
	fields := []validation.Field{
		{Name: "month", Value: month},
		{Name: "year", Value: year},
		{Name: "brandCode", Value: k.BrandCode},
	}
	if requireChannel {
		fields = append(fields, validation.Field{Name: "salesChannel", Value: k.Channel})
	}
	return validation.Required(fields...)
}

// owner is the division every sales record belongs to.
func owner() string {
	return constants.DivisionSalesKomersial
}
