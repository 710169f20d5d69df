package provider

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
)

// DecodeLogo validates data as an image and records its format and size.
// Data that is not a supported image is a parsing error.
func DecodeLogo(symbol Symbol, data []byte) (Logo, error) {
	cfg, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return Logo{}, Parsing("decode logo", symbol, err)
	}
	return Logo{
		Symbol:      symbol,
		Data:        data,
		ContentType: "image/" + format,
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
