package iexcloud

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strings"

	"quickstocks/internal/provider"
)

// maxLogoBytes caps downloaded logo size.
const maxLogoBytes = 2 << 20

type logoResponse struct {
	URL string `json:"url"`
}

// FetchLogo resolves the logo URL for symbol and downloads the image.
func (c *Client) FetchLogo(ctx context.Context, symbol provider.Symbol) (provider.Logo, error) {
	const op = "iexcloud logo"
	var body logoResponse
	if err := c.getJSON(ctx, op, symbol, c.endpoint("/stock/"+url.PathEscape(string(symbol))+"/logo"), &body); err != nil {
		return provider.Logo{}, err
	}
	if strings.TrimSpace(body.URL) == "" {
		return provider.Logo{}, provider.Declined(op, symbol, fmt.Errorf("no logo url"))
	}

	res, err := c.get(ctx, op, symbol, body.URL)
	if err != nil {
		return provider.Logo{}, err
	}
	defer res.Body.Close()
	data, err := io.ReadAll(io.LimitReader(res.Body, maxLogoBytes+1))
	if err != nil {
		return provider.Logo{}, provider.Networking(op, symbol, fmt.Errorf("reading image: %w", err))
	}
	if len(data) > maxLogoBytes {
		return provider.Logo{}, provider.Parsing(op, symbol, fmt.Errorf("image exceeds %d bytes", maxLogoBytes))
	}
	return provider.DecodeLogo(symbol, data)
}
