package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
)

// DoJSON выполняет запрос с JSON-телом (payload может быть nil).
// Непустой token уходит в заголовок Authorization: Bearer.
func DoJSON(ctx context.Context, method, url string, payload any, token string) (*http.Response, []byte, error) {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return nil, nil, err
		}
		body = bytes.NewReader(b)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, nil, err
	}
	defer resp.Body.Close()
	respBody, _ := io.ReadAll(resp.Body)
	return resp, respBody, nil
}

// GetJSON — GET с bearer-токеном.
func GetJSON(ctx context.Context, url, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodGet, url, nil, token)
}

// PostJSON — POST с bearer-токеном.
func PostJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodPost, url, payload, token)
}

// PatchJSON — PATCH с bearer-токеном.
func PatchJSON(ctx context.Context, url string, payload any, token string) (*http.Response, []byte, error) {
	return DoJSON(ctx, http.MethodPatch, url, payload, token)
}
