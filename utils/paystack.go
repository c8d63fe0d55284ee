package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"

	"techgetafrica/config"

	"github.com/go-resty/resty/v2"
)

// PaystackInitResponse represents the response from the transaction
// initialize API
type PaystackInitResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		AuthorizationURL string `json:"authorization_url"`
		AccessCode       string `json:"access_code"`
		Reference        string `json:"reference"`
	} `json:"data"`
}

// PaystackVerifyResponse represents the response from the transaction
// verify API
type PaystackVerifyResponse struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Status    string `json:"status"` // success, failed, abandoned
		Reference string `json:"reference"`
		Amount    int64  `json:"amount"`
		Currency  string `json:"currency"`
		Channel   string `json:"channel"`
		PaidAt    string `json:"paid_at"`
		ID        int64  `json:"id"`
	} `json:"data"`
}

// InitializePaystackTransaction starts a gateway transaction for the given
// payer email and amount (smallest currency unit) and returns the
// authorization URL the client is redirected to.
func InitializePaystackTransaction(email string, amount int64, reference string) (*PaystackInitResponse, error) {
	if config.AppConfig.PaystackSecretKey == "" {
		return nil, fmt.Errorf("payment gateway is not configured")
	}

	client := resty.New().SetBaseURL(config.AppConfig.PaystackBaseURL)

	var result PaystackInitResponse
	resp, err := client.R().
		SetAuthToken(config.AppConfig.PaystackSecretKey).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"email":        email,
			"amount":       amount,
			"reference":    reference,
			"callback_url": config.AppConfig.PaystackCallback,
		}).
		SetResult(&result).
		Post("/transaction/initialize")
	if err != nil {
		return nil, fmt.Errorf("failed to initialize transaction: %v", err)
	}

	if resp.IsError() || !result.Status {
		return nil, fmt.Errorf("gateway error: %s", result.Message)
	}

	return &result, nil
}

// VerifyPaystackTransaction confirms a transaction's state with the gateway
func VerifyPaystackTransaction(reference string) (*PaystackVerifyResponse, error) {
	if config.AppConfig.PaystackSecretKey == "" {
		return nil, fmt.Errorf("payment gateway is not configured")
	}

	client := resty.New().SetBaseURL(config.AppConfig.PaystackBaseURL)

	var result PaystackVerifyResponse
	resp, err := client.R().
		SetAuthToken(config.AppConfig.PaystackSecretKey).
		SetResult(&result).
		Get("/transaction/verify/" + reference)
	if err != nil {
		return nil, fmt.Errorf("failed to verify transaction: %v", err)
	}

	if resp.IsError() || !result.Status {
		return nil, fmt.Errorf("gateway error: %s", result.Message)
	}

	return &result, nil
}

// VerifyPaystackSignature checks the webhook signature header against an
// HMAC-SHA512 of the raw body using the gateway secret.
func VerifyPaystackSignature(body []byte, signature string) bool {
	if signature == "" {
		return false
	}
	mac := hmac.New(sha512.New, []byte(config.AppConfig.PaystackSecretKey))
	mac.Write(body)
	expected := hex.EncodeToString(mac.Sum(nil))
	return hmac.Equal([]byte(expected), []byte(signature))
}
