package fixtures

import (
	"github.com/iwvelando/marui-portal/internal/sales"
	"github.com/iwvelando/marui-portal/pkg/datetime"
)

// SalesYear is the year covered by the sales fixtures.
const SalesYear = 2026

var (
	gendesShopee = sales.Key{Month: datetime.January, Year: SalesYear, BrandCode: "BRD001", Channel: sales.ChannelShopee}
	kavelaTikTok = sales.Key{Month: datetime.February, Year: SalesYear, BrandCode: "BRD002", Channel: sales.ChannelTikTok}
)

// Targets returns the monthly sales targets. Header totals are kept as
// entered and are not derived from the lines.
func Targets() []sales.TargetSales {
	return []sales.TargetSales{
		{
			Key:          gendesShopee,
			Brand:        "Gendes",
			TotalRevenue: 150000000,
			TotalUnits:   4000,
			TotalOrders:  800,
			Lines: []sales.TargetLine{
				{
					SKU:          "GEN-FCH-001",
					ProductName:  "Gendes foam chocolate",
					Category:     "Feminine Hygiene",
					Price:        35000,
					Revenue:      70000000,
					Orders:       400,
					Units:        2000,
					DailyTarget:  2258065,
					WeeklyTarget: 17500000,
				},
				{
					SKU:          "GEN-SAF-002",
					ProductName:  "GENDES Sweet Aromatic Feminine Hygiene Bubblegum Foam 55ml",
					Category:     "Feminine Hygiene",
					Price:        42000,
					Revenue:      80000000,
					Orders:       400,
					Units:        2000,
					DailyTarget:  2580645,
					WeeklyTarget: 20000000,
				},
			},
			CreatedBy:   salesManager,
			CreatedDate: "2026-01-15",
		},
		{
			Key:          kavelaTikTok,
			Brand:        "Kavela",
			TotalRevenue: 120000000,
			TotalUnits:   4500,
			TotalOrders:  900,
			Lines: []sales.TargetLine{
				{
					SKU:          "KAV-MSB-001",
					ProductName:  "Mouth Spray Berry Mood 20 ml",
					Category:     "Mouth Care",
					Price:        28000,
					Revenue:      60000000,
					Orders:       450,
					Units:        2250,
					DailyTarget:  2142857,
					WeeklyTarget: 15000000,
				},
			},
			CreatedBy:   salesManager,
			CreatedDate: "2026-02-01",
		},
	}
}

// ActualSales returns the reported actual sales.
func ActualSales() []sales.ActualSales {
	return []sales.ActualSales{
		{
			Key:        gendesShopee,
			Brand:      "Gendes",
			DataSource: sales.SourceMarketplaceReport,
			Lines: []sales.ActualLine{
				{SKU: "GEN-FCH-001", Orders: 450, Units: 2200, Revenue: 77000000},
				{SKU: "GEN-SAF-002", Orders: 450, Units: 2200, Revenue: 88000000},
			},
			Notes:       "Strong performance in January, exceeded all targets.",
			CreatedBy:   salesManager,
			CreatedDate: "2026-02-01",
		},
		{
			Key:        kavelaTikTok,
			Brand:      "Kavela",
			DataSource: sales.SourceManualInput,
			Lines: []sales.ActualLine{
				{SKU: "KAV-MSB-001", Orders: 2100, Units: 6300, Revenue: 105000000},
			},
			Notes:       "Below target due to promotional discount strategy.",
			CreatedBy:   salesManager,
			CreatedDate: "2026-03-05",
		},
	}
}

// Campaigns returns the ads and marketing campaigns with their estimates
// derived.
func Campaigns() []sales.Campaign {
	campaigns := []sales.Campaign{
		{
			Key:                  sales.Key{Month: datetime.February, Year: SalesYear, BrandCode: "BRD001", Channel: sales.ChannelShopee},
			Brand:                "Gendes",
			AdsPlatform:          "Meta Ads",
			Name:                 "Gendes Valentine Promo 2026",
			Objective:            "Conversion",
			Type:                 "Promo",
			AdsBudget:            50000000,
			BudgetType:           "Monthly",
			StartDate:            "2026-02-01",
			EndDate:              "2026-02-28",
			TargetROAS:           5,
			TargetCPA:            125000,
			TargetCPC:            2500,
			TargetCTR:            3.5,
			TargetConversionRate: 2.0,
			Mappings: []sales.ProductMapping{
				{SKU: "GEN-FCH-001", ProductName: "Gendes foam chocolate", Category: "Feminine Hygiene", AvgUnitPerOrder: 4, Contribution: 60},
				{SKU: "GEN-SAF-002", ProductName: "GENDES Sweet Aromatic Feminine Hygiene Bubblegum Foam 55ml", Category: "Feminine Hygiene", AvgUnitPerOrder: 4, Contribution: 40},
			},
			Notes:       "Focus on female audience age 18-35. Creative assets ready by Jan 25.",
			Status:      sales.StatusSubmitted,
			CreatedBy:   "Marketing Manager",
			CreatedDate: "2026-01-20",
		},
		{
			Key:                  sales.Key{Month: datetime.March, Year: SalesYear, BrandCode: "BRD002", Channel: sales.ChannelTikTok},
			Brand:                "Kavela",
			AdsPlatform:          "TikTok Ads",
			Name:                 "Kavela Always-On March",
			Objective:            "Traffic",
			Type:                 "Always-on",
			AdsBudget:            30000000,
			BudgetType:           "Monthly",
			StartDate:            "2026-03-01",
			EndDate:              "2026-03-31",
			TargetROAS:           4,
			TargetCPA:            100000,
			TargetCPC:            2000,
			TargetCTR:            4.0,
			TargetConversionRate: 2.5,
			Mappings: []sales.ProductMapping{
				{SKU: "KAV-MSB-001", ProductName: "Mouth Spray Berry Mood 20 ml", Category: "Mouth Care", AvgUnitPerOrder: 3, Contribution: 100},
			},
			Notes:       "TikTok native content strategy. Daily posting schedule.",
			Status:      sales.StatusDraft,
			CreatedBy:   "Marketing Manager",
			CreatedDate: "2026-02-10",
		},
	}
	for i := range campaigns {
		campaigns[i].Recalculate()
	}
	return campaigns
}
