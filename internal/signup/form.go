package signup

import (
	"fmt"
	"net/http"

	"github.com/swedensai/seo-website/pkg/seoapi"
)

// Form field names.
const (
	FieldWebsite  = "website"
	FieldKeywords = "keywords"
	FieldName     = "name"
	FieldEmail    = "email"
	FieldPlan     = "plan"
)

// Form is the signup form as typed by the visitor. Values are kept
// verbatim so a re-rendered form shows exactly what was entered.
type Form struct {
	Website  string
	Keywords string
	Name     string
	Email    string
	Plan     string
}

// NewForm returns an empty form with plan selected. Unknown plans select
// the default plan.
func NewForm(plan string) Form {
	return Form{Plan: normalizePlan(plan)}
}

// ParseForm reads the form from a POST body.
func ParseForm(r *http.Request) (Form, error) {
	if err := r.ParseForm(); err != nil {
		return Form{}, fmt.Errorf("parse signup form: %w", err)
	}
	return Form{
		Website:  r.PostForm.Get(FieldWebsite),
		Keywords: r.PostForm.Get(FieldKeywords),
		Name:     r.PostForm.Get(FieldName),
		Email:    r.PostForm.Get(FieldEmail),
		Plan:     normalizePlan(r.PostForm.Get(FieldPlan)),
	}, nil
}

// WithPlan returns a copy of f with plan selected and every typed value
// unchanged.
func (f Form) WithPlan(plan string) Form {
	f.Plan = normalizePlan(plan)
	return f
}

// Placeholder is the keyword example for the selected plan.
func (f Form) Placeholder() string {
	return KeywordPlaceholder(f.Plan)
}

// ToRequest maps the form onto the backend signup payload. Keywords are
// sent as typed.
func (f Form) ToRequest() *seoapi.CreateCustomerRequest {
	return &seoapi.CreateCustomerRequest{
		Name:             f.Name,
		Email:            f.Email,
		WebsiteURL:       f.Website,
		TargetKeywords:   f.Keywords,
		SubscriptionPlan: f.Plan,
	}
}

func normalizePlan(plan string) string {
	if _, ok := PlanByID(plan); ok {
		return plan
	}
	return DefaultPlan
}
