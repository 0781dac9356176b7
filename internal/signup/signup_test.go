package signup

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swedensai/seo-website/internal/flash"
	"github.com/swedensai/seo-website/internal/metrics"
	"github.com/swedensai/seo-website/pkg/seoapi"
	"github.com/swedensai/seo-website/pkg/seoapi/testutil"
)

const customersPath = "/api/seo/customers"

func newTestService(t *testing.T, baseURL string) (*Service, *metrics.Metrics) {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	api, err := seoapi.NewClient(seoapi.Options{BaseURL: baseURL, Timeout: 2 * time.Second, Logger: log})
	require.NoError(t, err)

	m := metrics.New(prometheus.NewRegistry())
	return NewService(api, m, log), m
}

func filledForm() Form {
	return Form{
		Website:  "https://malmoror.se",
		Keywords: "plumber Malmö,  emergency plumbing ,",
		Name:     "Anna Svensson",
		Email:    "anna@malmoror.se",
		Plan:     seoapi.PlanStarter,
	}
}

func TestKeywordPlaceholder(t *testing.T) {
	tests := map[string]string{
		"starter":      "e.g., restaurant Stockholm (up to 10 keywords)",
		"professional": "e.g., plumber Malmö, emergency plumbing (up to 25 keywords)",
		"enterprise":   "e.g., enterprise software solutions, B2B marketing strategy (up to 50 keywords)",
		"":             "e.g., your keywords separated by commas",
		"gold":         "e.g., your keywords separated by commas",
	}
	for plan, want := range tests {
		assert.Equal(t, want, KeywordPlaceholder(plan), plan)
	}
}

func TestPlans(t *testing.T) {
	ps := Plans()
	require.Len(t, ps, 3)

	assert.Equal(t, []int{199, 349, 499}, []int{ps[0].Price, ps[1].Price, ps[2].Price})
	assert.True(t, ps[1].Popular)
	assert.Equal(t, DefaultPlan, ps[1].ID)

	ps[0].Name = "changed"
	p, ok := PlanByID(seoapi.PlanStarter)
	require.True(t, ok)
	assert.Equal(t, "Starter", p.Name)
}

func TestNewFormDefaultsPlan(t *testing.T) {
	assert.Equal(t, DefaultPlan, NewForm("").Plan)
	assert.Equal(t, DefaultPlan, NewForm("platinum").Plan)
	assert.Equal(t, seoapi.PlanEnterprise, NewForm("enterprise").Plan)
}

func TestWithPlanKeepsTypedValues(t *testing.T) {
	f := filledForm()
	got := f.WithPlan(seoapi.PlanEnterprise)

	assert.Equal(t, seoapi.PlanEnterprise, got.Plan)
	assert.Equal(t, f.Website, got.Website)
	assert.Equal(t, f.Keywords, got.Keywords)
	assert.Equal(t, f.Name, got.Name)
	assert.Equal(t, f.Email, got.Email)
	assert.Equal(t, "e.g., enterprise software solutions, B2B marketing strategy (up to 50 keywords)", got.Placeholder())
}

func TestParseForm(t *testing.T) {
	values := url.Values{
		FieldWebsite:  {"https://example.se"},
		FieldKeywords: {" a, b ,c "},
		FieldName:     {"Erik"},
		FieldEmail:    {"erik@example.se"},
		FieldPlan:     {"enterprise"},
	}
	req := httptest.NewRequest(http.MethodPost, "/pricing", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	f, err := ParseForm(req)
	require.NoError(t, err)
	assert.Equal(t, Form{
		Website:  "https://example.se",
		Keywords: " a, b ,c ",
		Name:     "Erik",
		Email:    "erik@example.se",
		Plan:     "enterprise",
	}, f)
}

func TestToRequest(t *testing.T) {
	req := filledForm().ToRequest()

	assert.Equal(t, &seoapi.CreateCustomerRequest{
		Name:             "Anna Svensson",
		Email:            "anna@malmoror.se",
		WebsiteURL:       "https://malmoror.se",
		TargetKeywords:   "plumber Malmö,  emergency plumbing ,",
		SubscriptionPlan: "starter",
	}, req)
}

func TestSubmit_Created(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnJSON(http.MethodPost, customersPath, http.StatusCreated, testutil.FixtureCreateCustomerResponse())

	svc, m := newTestService(t, ms.URL)
	out := svc.Submit(context.Background(), filledForm())

	assert.Equal(t, ResultCreated, out.Result)
	assert.True(t, out.Redirect())
	assert.Equal(t, int64(12), out.CustomerID)
	assert.Equal(t, flash.Success, out.Notice.Kind)
	assert.Equal(t, msgCreated, out.Notice.Text)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.Signups.WithLabelValues("starter", "created")))

	req, ok := ms.LastRequest(http.MethodPost, customersPath)
	require.True(t, ok)
	body := testutil.DecodeBody(t, req)
	assert.Equal(t, "plumber Malmö,  emergency plumbing ,", body["target_keywords"])
	assert.Equal(t, "https://malmoror.se", body["website_url"])
	assert.Len(t, body, 5)
}

func TestSubmit_Rejected(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.OnError(http.MethodPost, customersPath, http.StatusBadRequest, "Email already exists")

	svc, m := newTestService(t, ms.URL)
	out := svc.Submit(context.Background(), filledForm())

	assert.Equal(t, ResultRejected, out.Result)
	assert.False(t, out.Redirect())
	assert.Equal(t, flash.Message{Kind: flash.Error, Text: "Error: Email already exists"}, out.Notice)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.Signups.WithLabelValues("starter", "rejected")))
}

func TestSubmit_RejectedWithoutMessage(t *testing.T) {
	ms := testutil.NewMockServer(t)
	ms.On(http.MethodPost, customersPath, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("<html><body>Internal Server Error</body></html>"))
	})

	svc, _ := newTestService(t, ms.URL)
	out := svc.Submit(context.Background(), filledForm())

	assert.Equal(t, ResultRejected, out.Result)
	assert.Equal(t, "Error: Failed to create account", out.Notice.Text)
}

func TestSubmit_Deferred(t *testing.T) {
	ms := testutil.NewMockServer(t)
	url := ms.URL
	ms.Close()

	svc, m := newTestService(t, url)
	out := svc.Submit(context.Background(), filledForm())

	assert.Equal(t, ResultDeferred, out.Result)
	assert.False(t, out.Redirect())
	assert.Equal(t, flash.Message{Kind: flash.Info, Text: msgDeferred}, out.Notice)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.BackendFallbacks.WithLabelValues("create_customer")))
}
