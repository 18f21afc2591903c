package usecases

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"mailcraft.backend/internal/config"
)

// ErrSubscriptionFailed collapses every provider failure; the caller
// does not distinguish transient from permanent rejections.
var ErrSubscriptionFailed = errors.New("subscription failed")

// SubscribeUsecase forwards captured emails to the external form
// provider.
type SubscribeUsecase struct {
	httpClient *http.Client
	// loadConfig is called per request so rotated credentials apply
	// without a restart.
	loadConfig func() config.EmailCaptureConfig
}

// NewSubscribeUsecase creates a new subscribe usecase
func NewSubscribeUsecase(httpClient *http.Client) *SubscribeUsecase {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &SubscribeUsecase{
		httpClient: httpClient,
		loadConfig: config.LoadEmailCapture,
	}
}

// Subscribe submits the email to the provider's form endpoint.
func (u *SubscribeUsecase) Subscribe(ctx context.Context, email string) error {
	cfg := u.loadConfig()

	payload, err := json.Marshal(map[string]string{
		"api_key": cfg.APIKey,
		"email":   email,
	})
	if err != nil {
		return ErrSubscriptionFailed
	}

	url := fmt.Sprintf("%s/forms/%s/subscribe", cfg.APIBaseURL, cfg.FormID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return ErrSubscriptionFailed
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := u.httpClient.Do(req)
	if err != nil {
		return ErrSubscriptionFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return ErrSubscriptionFailed
	}
	return nil
}
