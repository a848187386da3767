package repository

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"

	alphaview_errors "alphaview/internal"
	"alphaview/internal/domain"

	"github.com/golang/glog"
	"github.com/tidwall/gjson"
)

const Function_Overview = "OVERVIEW"

// keys alpha vantage answers with instead of data when a request is refused,
// e.g. an unknown symbol or a rate limit
var upstreamMessageKeys = map[string]bool{
	"Error Message": true,
	"Note":          true,
	"Information":   true,
}

type AlphaVantageRepository interface {
	GetOverview(ctx context.Context, symbol string) (domain.Document, error)
	GetTimeSeries(ctx context.Context, granularity domain.Granularity, symbol string) (domain.Document, error)
}

type alphaVantageRepositoryHandler struct {
	HttpClient *http.Client
	BaseURL    string
	ApiKey     string
}

func NewAlphaVantageRepository(httpClient *http.Client, baseURL, apiKey string) AlphaVantageRepository {
	return alphaVantageRepositoryHandler{
		HttpClient: httpClient,
		BaseURL:    baseURL,
		ApiKey:     apiKey,
	}
}

func (h alphaVantageRepositoryHandler) GetOverview(ctx context.Context, symbol string) (domain.Document, error) {
	return h.query(ctx, Function_Overview, symbol)
}

func (h alphaVantageRepositoryHandler) GetTimeSeries(ctx context.Context, granularity domain.Granularity, symbol string) (domain.Document, error) {
	return h.query(ctx, string(granularity), symbol)
}

// query issues one GET against the API. Data bodies are returned as is.
// An empty body is an ErrEmptyResponse and a body made only of notes is an
// ErrUpstream.
func (h alphaVantageRepositoryHandler) query(ctx context.Context, function, symbol string) (domain.Document, error) {
	u, err := url.Parse(h.BaseURL)
	if err != nil {
		return domain.Document{}, fmt.Errorf("invalid alpha vantage url %q: %w", h.BaseURL, err)
	}
	params := u.Query()
	params.Set("function", function)
	params.Set("symbol", symbol)
	params.Set("apikey", h.ApiKey)
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return domain.Document{}, err
	}
	glog.V(1).Infof("alpha vantage request function=%s symbol=%s", function, symbol)

	response, err := h.HttpClient.Do(req)
	if err != nil {
		return domain.Document{}, fmt.Errorf("alpha vantage %s request for %s failed: %w", function, symbol, err)
	}
	defer response.Body.Close()

	responseBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return domain.Document{}, fmt.Errorf("failed to read alpha vantage response: %w", err)
	}
	if response.StatusCode != http.StatusOK {
		return domain.Document{}, fmt.Errorf("alpha vantage %s request for %s returned status %d", function, symbol, response.StatusCode)
	}

	doc := domain.NewDocument(responseBytes)
	if len(doc.Raw()) > 0 && !gjson.ValidBytes(doc.Raw()) {
		return domain.Document{}, fmt.Errorf("alpha vantage %s response for %s is not valid json", function, symbol)
	}
	if doc.IsEmpty() {
		return domain.Document{}, alphaview_errors.ErrEmptyResponse{
			Function: function,
			Symbol:   symbol,
		}
	}
	if msg, ok := upstreamMessage(doc); ok {
		return domain.Document{}, alphaview_errors.ErrUpstream{
			Function: function,
			Symbol:   symbol,
			Message:  msg,
		}
	}

	return doc, nil
}

func upstreamMessage(doc domain.Document) (string, bool) {
	keys := doc.Keys()
	if len(keys) == 0 {
		return "", false
	}
	for _, key := range keys {
		if !upstreamMessageKeys[key] {
			return "", false
		}
	}
	for _, key := range keys {
		if msg := doc.Field(key); msg.Valid && msg.String != "" {
			return msg.String, true
		}
	}
	return "", false
}
