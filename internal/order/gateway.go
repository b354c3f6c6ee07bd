package order

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"storefront/internal/logger"

	"go.uber.org/zap"
)

// Gateway sends an order to the external order-intake endpoint.
type Gateway interface {
	SubmitOrder(ctx context.Context, p Payload) (*Receipt, error)
}

type httpGateway struct {
	baseURL    string
	httpClient *http.Client
}

func NewHTTPGateway(baseURL string, timeout time.Duration) Gateway {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &httpGateway{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (g *httpGateway) SubmitOrder(ctx context.Context, p Payload) (*Receipt, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "gateway"),
		zap.String("method", "SubmitOrder"),
		zap.String("order_number", p.Order.OrderNumber),
		zap.Float64("total", p.Order.Total),
	)

	jsonBody, err := json.Marshal(p)
	if err != nil {
		log.Error("failed to marshal order payload", zap.Error(err))
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Error("failed creating request", zap.Error(err))
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if rid := logger.RequestIDFrom(ctx); rid != "" {
		req.Header.Set(logger.RequestIDHeader, rid)
	}

	log.Info("sending order to order service")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Error("order request failed", zap.Error(err))
		return nil, &SubmitError{Message: GenericSubmitMessage, Err: err}
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("failed to read response body", zap.Error(err))
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: GenericSubmitMessage, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		log.Error("order service returned non-success status",
			zap.Int("status", resp.StatusCode),
			zap.ByteString("response", bodyBytes),
		)
		return nil, &SubmitError{
			StatusCode: resp.StatusCode,
			Message:    serverMessage(bodyBytes),
			Err:        fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	var decoded map[string]any
	if err := json.Unmarshal(bodyBytes, &decoded); err != nil {
		log.Error("order service returned non-JSON body", zap.ByteString("response", bodyBytes))
		return nil, &SubmitError{StatusCode: resp.StatusCode, Message: GenericSubmitMessage, Err: ErrNonJSONResponse}
	}

	receipt := &Receipt{ID: receiptID(decoded), Raw: json.RawMessage(bodyBytes)}
	log.Info("order saved", zap.String("receipt_id", receipt.ID))
	return receipt, nil
}

// serverMessage pulls {"error": "..."} out of a failure body.
func serverMessage(body []byte) string {
	var e struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return GenericSubmitMessage
	}
	switch {
	case strings.TrimSpace(e.Error) != "":
		return e.Error
	case strings.TrimSpace(e.Message) != "":
		return e.Message
	}
	return GenericSubmitMessage
}

func receiptID(m map[string]any) string {
	for _, k := range []string{"id", "_id", "orderId", "order_id"} {
		switch v := m[k].(type) {
		case string:
			return v
		case float64:
			return fmt.Sprintf("%.0f", v)
		}
	}
	return ""
}
