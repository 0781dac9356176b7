package signup

import "github.com/swedensai/seo-website/pkg/seoapi"

// DefaultPlan is preselected on the pricing page.
const DefaultPlan = seoapi.PlanProfessional

// Plan is one subscription tier.
type Plan struct {
	ID          string
	Name        string
	Price       int // EUR per month
	Description string
	Features    []string
	Popular     bool
}

var plans = []Plan{
	{
		ID:          seoapi.PlanStarter,
		Name:        "Starter",
		Price:       199,
		Description: "Perfect for small businesses",
		Features: []string{
			"Up to 10 keywords tracking",
			"Monthly SEO reports",
			"Basic competitor analysis",
			"3 content ideas per month",
			"Email support",
		},
	},
	{
		ID:          seoapi.PlanProfessional,
		Name:        "Professional",
		Price:       349,
		Description: "Most popular for growing businesses",
		Popular:     true,
		Features: []string{
			"Up to 25 keywords tracking",
			"Detailed monthly SEO reports",
			"Advanced competitor analysis",
			"10 content ideas per month",
			"Technical SEO recommendations",
			"Priority email support",
			"Monthly strategy call",
		},
	},
	{
		ID:          seoapi.PlanEnterprise,
		Name:        "Enterprise",
		Price:       499,
		Description: "For established businesses",
		Features: []string{
			"Up to 50 keywords tracking",
			"Comprehensive monthly reports",
			"Full competitor intelligence",
			"Unlimited content ideas",
			"Technical SEO audit",
			"Dedicated account manager",
			"Weekly strategy calls",
			"Custom reporting",
		},
	},
}

// Plans returns the plan catalogue in display order.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// PlanByID looks up a plan.
func PlanByID(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}

// KeywordPlaceholder is the example text shown in the keywords field for
// the selected plan.
func KeywordPlaceholder(plan string) string {
	switch plan {
	case seoapi.PlanStarter:
		return "e.g., restaurant Stockholm (up to 10 keywords)"
	case seoapi.PlanProfessional:
		return "e.g., plumber Malmö, emergency plumbing (up to 25 keywords)"
	case seoapi.PlanEnterprise:
		return "e.g., enterprise software solutions, B2B marketing strategy (up to 50 keywords)"
	default:
		return "e.g., your keywords separated by commas"
	}
}
