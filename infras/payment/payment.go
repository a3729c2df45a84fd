package payment

//go:generate go run go.uber.org/mock/mockgen -source=./payment.go -destination=./mocks/payment_mock.go -package=mocks

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"nutricoach/config"
	"nutricoach/infras/otel"
	"nutricoach/shared/constant"
	"nutricoach/shared/logger"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusExpired   = "expired"
	StatusRefunded  = "refunded"
	StatusCancelled = "cancelled"

	otelAttrIntentID = "intent_id"
)

// Intent is a payment intent at the provider.
type Intent struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	CheckoutURL string `json:"checkout_url"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
}

type CreateIntentRequest struct {
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Description string `json:"description"`
	ReferenceID string `json:"reference_id"`
}

// Gateway talks to the external payment provider's REST API.
type Gateway interface {
	CreateIntent(ctx context.Context, req CreateIntentRequest) (Intent, error)
	GetIntent(ctx context.Context, intentID string) (Intent, error)
}

type gatewayImpl struct {
	config *config.Config
	client *http.Client
	otel   otel.Otel
}

func New(cfg *config.Config, otl otel.Otel) Gateway {
	log.Info().Str("baseURL", cfg.External.Payment.BaseURL).Msg("Payment gateway client initialized")

	return &gatewayImpl{
		config: cfg,
		client: &http.Client{
			Timeout: time.Duration(cfg.External.Payment.TimeoutSeconds) * time.Second,
		},
		otel: otl,
	}
}

func (g *gatewayImpl) CreateIntent(ctx context.Context, req CreateIntentRequest) (intent Intent, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".CreateIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	body, err := json.Marshal(req)
	if err != nil {
		logger.ErrorWithStack(err)

		return intent, fmt.Errorf("failed to marshal payment intent request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.config.External.Payment.BaseURL+"/v1/intents", bytes.NewReader(body))
	if err != nil {
		logger.ErrorWithStack(err)

		return intent, fmt.Errorf("failed to build payment intent request: %w", err)
	}

	return g.do(httpReq)
}

func (g *gatewayImpl) GetIntent(ctx context.Context, intentID string) (intent Intent, err error) {
	ctx, scope := g.otel.NewScope(ctx, constant.OtelPaymentScopeName, constant.OtelPaymentScopeName+".GetIntent")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttribute(otelAttrIntentID, intentID)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.config.External.Payment.BaseURL+"/v1/intents/"+intentID, nil)
	if err != nil {
		logger.ErrorWithStack(err)

		return intent, fmt.Errorf("failed to build payment intent request: %w", err)
	}

	return g.do(httpReq)
}

func (g *gatewayImpl) do(req *http.Request) (intent Intent, err error) {
	req.Header.Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer "+g.config.External.Payment.SecretKey)

	resp, err := g.client.Do(req)
	if err != nil {
		logger.ErrorWithStack(err)

		return intent, fmt.Errorf("payment provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		err = fmt.Errorf("payment provider returned status %d", resp.StatusCode)
		logger.ErrorWithStack(err)

		return intent, err
	}

	if err = json.NewDecoder(resp.Body).Decode(&intent); err != nil {
		logger.ErrorWithStack(err)

		return intent, fmt.Errorf("failed to decode payment provider response: %w", err)
	}

	return intent, nil
}
