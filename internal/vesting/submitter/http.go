// Package submitter implements the external transfer half of a claim: the
// approved amount is handed to a signer service which moves the tokens and
// returns the transaction signature.
package submitter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/tokenvote-labs/tokenvote-backend/internal/vesting/model"
)

const defaultTimeout = 30 * time.Second

// HTTPSubmitter submits claims to a signer service over HTTP.
type HTTPSubmitter struct {
	endpoint string
	client   *http.Client
	logger   *zap.Logger
}

// NewHTTPSubmitter builds an HTTPSubmitter against the given endpoint.
func NewHTTPSubmitter(endpoint string, timeout time.Duration, logger *zap.Logger) (*HTTPSubmitter, error) {
	if endpoint == "" {
		return nil, errors.New("signer endpoint is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &HTTPSubmitter{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
		logger:   logger.Named("claimSubmitter"),
	}, nil
}

type submitRequest struct {
	PoolID  string `json:"poolId"`
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

type submitResponse struct {
	Signature string `json:"signature"`
	Error     string `json:"error,omitempty"`
}

// Submit posts one transfer and returns its signature. Any non-2xx answer
// is an error; the caller treats the claim as not having happened.
func (s *HTTPSubmitter) Submit(ctx context.Context, poolID, address string, amount model.TokenAmount) (string, error) {
	payload, err := json.Marshal(submitRequest{
		PoolID:  poolID,
		Address: address,
		Amount:  amount.String(),
	})
	if err != nil {
		return "", fmt.Errorf("marshal submit request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build submit request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("submit transfer: %w", err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	var parsed submitResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return "", fmt.Errorf("decode submit response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if parsed.Error != "" {
			return "", fmt.Errorf("signer rejected transfer: %s", parsed.Error)
		}
		return "", fmt.Errorf("signer returned status %d", resp.StatusCode)
	}
	if parsed.Signature == "" {
		return "", errors.New("signer returned empty signature")
	}

	s.logger.Debug("transfer submitted",
		zap.String("pool", poolID),
		zap.String("address", address),
		zap.String("amount", amount.String()),
	)
	return parsed.Signature, nil
}
