// Package sector resolves free-text sector descriptions to business-model
// archetypes and bundles the default economic parameters for each archetype.
package sector

import "strings"

// Archetype identifies one of the supported business-model archetypes.
type Archetype string

const (
	SaaS          Archetype = "saas"
	Ecommerce     Archetype = "ecommerce"
	IndustryB2B   Archetype = "industry_b2b"
	MobileApp     Archetype = "mobile_app"
	InfoB2C       Archetype = "info_b2c"
	LocalServices Archetype = "services_locaux"
	GenericB2B    Archetype = "generic_b2b"
)

// InvestmentDefault describes a default capital expenditure line for an
// archetype: amount in EUR, 1-based acquisition month, useful life in years.
type InvestmentDefault struct {
	Label     string
	Amount    float64
	Month     int
	LifeYears int
}

// Profile bundles the default economic parameters for a resolved archetype.
// Ratios are fractions (0.82 = 82%), money amounts are EUR per month unless
// stated otherwise.
type Profile struct {
	Archetype      Archetype
	Price          float64
	UnitsMonth1    float64
	GrowthMoM      float64
	GrossMargin    float64
	VariableRate   float64
	FixedOpex      float64
	Payroll        float64
	MarketingRatio float64
	Investments    []InvestmentDefault
	TaxRate        float64
	LoanRate       float64
	LoanYears      int
}

// archetypeKeywords maps substrings of the lowercased sector text to an
// archetype. Order matters: e-commerce wins over the broad "b2b" match.
var archetypeKeywords = []struct {
	archetype Archetype
	keywords  []string
}{
	{Ecommerce, []string{"e-com", "ecom", "boutique", "retail", "shop"}},
	{SaaS, []string{"saas", "logiciel", "b2b", "crm", "erp", "data"}},
	{IndustryB2B, []string{"industrie", "robot", "iot", "manufact", "usine"}},
	{MobileApp, []string{"mobile", "app", "application"}},
	{InfoB2C, []string{"formation", "coaching", "infoproduit"}},
	{LocalServices, []string{"service", "artisan", "local"}},
}

// aggressiveObjectiveKeywords flag a growth-at-all-costs objective, which
// shifts the defaults toward more spend and faster growth.
var aggressiveObjectiveKeywords = []string{"agress", "scale", "hyper", "x2"}

// ResolveArchetype maps free-text sector input to an archetype. Unknown or
// empty text resolves to GenericB2B.
func ResolveArchetype(sectorText string) Archetype {
	s := strings.ToLower(sectorText)
	for _, entry := range archetypeKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(s, kw) {
				return entry.archetype
			}
		}
	}
	return GenericB2B
}

// Resolve returns the default parameter profile for the given sector and
// objective text. Missing or unmatched sector text falls back to GenericB2B;
// an aggressive objective raises growth, marketing ratio, and fixed opex.
func Resolve(sectorText, objectiveText string) Profile {
	profile := defaults(ResolveArchetype(sectorText))

	obj := strings.ToLower(objectiveText)
	for _, kw := range aggressiveObjectiveKeywords {
		if strings.Contains(obj, kw) {
			profile.GrowthMoM *= 1.15
			profile.MarketingRatio *= 1.20
			profile.FixedOpex *= 1.10
			break
		}
	}
	return profile
}

// defaults returns the base parameter set for an archetype. Values are
// realistic but generic French-market orders of magnitude.
func defaults(a Archetype) Profile {
	switch a {
	case SaaS:
		return Profile{
			Archetype: SaaS, Price: 190.0, UnitsMonth1: 22, GrowthMoM: 0.09,
			GrossMargin: 0.82, VariableRate: 0.18, FixedOpex: 12000, Payroll: 16000,
			MarketingRatio: 0.22,
			Investments: []InvestmentDefault{
				{Label: "Dév. produit", Amount: 12000, Month: 1, LifeYears: 3},
				{Label: "Site & outils", Amount: 6000, Month: 1, LifeYears: 3},
			},
			TaxRate: 0.25, LoanRate: 0.055, LoanYears: 4,
		}
	case Ecommerce:
		return Profile{
			Archetype: Ecommerce, Price: 64.0, UnitsMonth1: 380, GrowthMoM: 0.07,
			GrossMargin: 0.45, VariableRate: 0.55, FixedOpex: 8000, Payroll: 9000,
			MarketingRatio: 0.15,
			Investments: []InvestmentDefault{
				{Label: "Stock initial", Amount: 15000, Month: 1, LifeYears: 3},
				{Label: "Site & shooting", Amount: 5000, Month: 1, LifeYears: 3},
			},
			TaxRate: 0.25, LoanRate: 0.06, LoanYears: 3,
		}
	case IndustryB2B:
		return Profile{
			Archetype: IndustryB2B, Price: 1400.0, UnitsMonth1: 6, GrowthMoM: 0.06,
			GrossMargin: 0.35, VariableRate: 0.65, FixedOpex: 14000, Payroll: 18000,
			MarketingRatio: 0.08,
			Investments: []InvestmentDefault{
				{Label: "Machines/Outillage", Amount: 30000, Month: 1, LifeYears: 5},
				{Label: "Logiciels/ERP", Amount: 10000, Month: 1, LifeYears: 4},
			},
			TaxRate: 0.25, LoanRate: 0.052, LoanYears: 5,
		}
	case MobileApp:
		return Profile{
			Archetype: MobileApp, Price: 10.0, UnitsMonth1: 2200, GrowthMoM: 0.08,
			GrossMargin: 0.85, VariableRate: 0.15, FixedOpex: 6000, Payroll: 14000,
			MarketingRatio: 0.20,
			Investments: []InvestmentDefault{
				{Label: "App & assets", Amount: 10000, Month: 1, LifeYears: 3},
			},
			TaxRate: 0.25, LoanRate: 0.055, LoanYears: 3,
		}
	case InfoB2C:
		return Profile{
			Archetype: InfoB2C, Price: 79.0, UnitsMonth1: 90, GrowthMoM: 0.08,
			GrossMargin: 0.75, VariableRate: 0.25, FixedOpex: 5000, Payroll: 9000,
			MarketingRatio: 0.18,
			Investments: []InvestmentDefault{
				{Label: "Plateforme & studio", Amount: 7000, Month: 1, LifeYears: 3},
			},
			TaxRate: 0.25, LoanRate: 0.055, LoanYears: 3,
		}
	case LocalServices:
		return Profile{
			Archetype: LocalServices, Price: 180.0, UnitsMonth1: 35, GrowthMoM: 0.07,
			GrossMargin: 0.70, VariableRate: 0.30, FixedOpex: 7000, Payroll: 9000,
			MarketingRatio: 0.10,
			Investments: []InvestmentDefault{
				{Label: "Véhicule/Matériel", Amount: 12000, Month: 1, LifeYears: 4},
			},
			TaxRate: 0.25, LoanRate: 0.055, LoanYears: 4,
		}
	default:
		return Profile{
			Archetype: GenericB2B, Price: 600.0, UnitsMonth1: 10, GrowthMoM: 0.07,
			GrossMargin: 0.60, VariableRate: 0.40, FixedOpex: 10000, Payroll: 14000,
			MarketingRatio: 0.15,
			Investments: []InvestmentDefault{
				{Label: "Site & outils", Amount: 6000, Month: 1, LifeYears: 3},
			},
			TaxRate: 0.25, LoanRate: 0.055, LoanYears: 4,
		}
	}
}
