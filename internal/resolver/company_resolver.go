package resolver

import (
	"context"
	"fmt"
	"strings"

	api_types "alphaview/api-types"
)

const companyNotFoundMessage = "Company doesn't exist."

func (r resolverHandler) SearchCompany(ctx context.Context, req api_types.CompanySearchRequest) (*api_types.CompanyView, error) {
	out := &api_types.CompanyView{
		Form: req,
	}

	symbol := normalizeSymbol(req.Ticker)
	companyData, err := r.AlphaVantageRepository.GetOverview(ctx, symbol)
	if flash, ok := upstreamFlash(err, companyNotFoundMessage); ok {
		out.Flashes = append(out.Flashes, flash)
		return out, nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to get overview for %s: %w", symbol, err)
	}

	out.CompanyResult = &companyData
	return out, nil
}

func (r resolverHandler) ListTickers(ctx context.Context) (*api_types.TickersView, error) {
	tickers, err := r.TickerRepository.List()
	if err != nil {
		return nil, err
	}

	return &api_types.TickersView{
		Tickers: *tickers,
	}, nil
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
