// Package signup holds the pricing catalogue and the signup flow.
package signup

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/swedensai/seo-website/internal/flash"
	"github.com/swedensai/seo-website/internal/metrics"
	"github.com/swedensai/seo-website/pkg/logger"
	"github.com/swedensai/seo-website/pkg/seoapi"
)

var Module = fx.Module("signup",
	fx.Provide(NewService),
)

const (
	msgCreated  = "Thank you! Your SEO service has been set up successfully. We will contact you shortly with your login details."
	msgDeferred = "Thank you! We will contact you shortly to set up your SEO service."
	msgFallback = "Failed to create account"
)

// Result classifies a signup attempt.
type Result string

const (
	// ResultCreated means the backend created the customer.
	ResultCreated Result = "created"
	// ResultRejected means the backend refused the signup (duplicate
	// email, invalid data).
	ResultRejected Result = "rejected"
	// ResultDeferred means the backend could not be reached. The visitor
	// is thanked and the signup is followed up by hand from the logs.
	ResultDeferred Result = "deferred"
)

// Outcome is the result of Submit.
type Outcome struct {
	Result     Result
	CustomerID int64
	Notice     flash.Message
}

// Redirect reports whether the visitor should be sent to the dashboard.
func (o Outcome) Redirect() bool {
	return o.Result == ResultCreated
}

// Service submits signups to the backend.
type Service struct {
	api     *seoapi.Client
	metrics *metrics.Metrics
	log     *slog.Logger
}

// NewService creates the signup service.
func NewService(api *seoapi.Client, m *metrics.Metrics, log *slog.Logger) *Service {
	return &Service{
		api:     api,
		metrics: m,
		log:     log.With(logger.Scope("signup")),
	}
}

// Submit sends the form to the backend as one create customer call.
func (s *Service) Submit(ctx context.Context, f Form) Outcome {
	resp, err := s.api.CreateCustomer(ctx, f.ToRequest())
	out := s.classify(resp, err)

	s.metrics.Signups.WithLabelValues(f.Plan, string(out.Result)).Inc()
	switch out.Result {
	case ResultCreated:
		s.metrics.ObserveBackend("create_customer", metrics.OutcomeSuccess)
		s.log.Info("customer signed up",
			slog.String("plan", f.Plan),
			slog.Int64("customer_id", out.CustomerID),
		)
	case ResultRejected:
		s.metrics.ObserveBackend("create_customer", metrics.OutcomeHTTPError)
		s.log.Info("signup rejected", slog.String("plan", f.Plan), logger.Error(err))
	case ResultDeferred:
		s.metrics.ObserveBackend("create_customer", metrics.OutcomeTransport)
		s.metrics.ObserveFallback("create_customer")
		// The visitor is told we will get in touch, so this line is the
		// only record of the request.
		s.log.Error("signup could not be delivered",
			slog.String("plan", f.Plan),
			slog.String("email", f.Email),
			slog.String("website", f.Website),
			logger.Error(err),
		)
	}
	return out
}

func (s *Service) classify(resp *seoapi.CreateCustomerResponse, err error) Outcome {
	if err == nil {
		id, _ := resp.CustomerID()
		return Outcome{
			Result:     ResultCreated,
			CustomerID: id,
			Notice:     flash.Message{Kind: flash.Success, Text: msgCreated},
		}
	}

	if apiErr, ok := seoapi.AsError(err); ok {
		text := apiErr.Message
		if text == "" {
			text = msgFallback
		}
		return Outcome{
			Result: ResultRejected,
			Notice: flash.Message{Kind: flash.Error, Text: "Error: " + text},
		}
	}

	return Outcome{
		Result: ResultDeferred,
		Notice: flash.Message{Kind: flash.Info, Text: msgDeferred},
	}
}
