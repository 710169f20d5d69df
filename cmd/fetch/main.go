package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	flag "github.com/spf13/pflag"

	"quickstocks/internal/app"
	"quickstocks/internal/config"
	"quickstocks/internal/logger"
	"quickstocks/internal/provider"
)

func main() {
	var (
		kind       string
		symbolsCSV string
		query      string
		outDir     string
		timeout    int
		configPath string
		logLevel   string
	)
	flag.StringVarP(&kind, "kind", "k", "quote", "what to fetch: quote, logo, index, indices, search, history")
	flag.StringVarP(&symbolsCSV, "symbols", "s", getenv("SYMBOLS", "AAPL"), "comma-separated symbols")
	flag.StringVarP(&query, "query", "q", "", "search query (kind=search)")
	flag.StringVar(&outDir, "out", ".", "directory logos are written to (kind=logo)")
	flag.IntVar(&timeout, "timeout", 15, "overall timeout seconds")
	flag.StringVar(&configPath, "config", getenv("CONFIG_FILE", ""), "path to config.json (optional)")
	flag.StringVar(&logLevel, "log-level", "warn", "log level")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	zl, err := logger.New(logLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	a, err := app.New(cfg, zl)
	if err != nil {
		log.Fatalf("service: %v", err)
	}
	svc := a.Service

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(timeout)*time.Second)
	defer cancel()

	symbols := make([]provider.Symbol, 0)
	for _, s := range splitCSV(symbolsCSV) {
		symbols = append(symbols, provider.Symbol(s))
	}
	if len(symbols) == 0 && kind != "search" && kind != "indices" {
		log.Fatal("no symbols provided")
	}

	var out any
	switch kind {
	case "quote":
		out, err = svc.ProvideQuotes(ctx, symbols)
	case "index":
		out, err = svc.ProvideIndex(ctx, symbols[0])
	case "indices":
		out = svc.SupportedIndices()
	case "search":
		out, err = svc.SearchSymbols(ctx, query)
	case "history":
		out, err = svc.ProvideHistory(ctx, symbols[0])
	case "logo":
		out, err = writeLogos(ctx, svc.ProvideLogo, symbols, outDir)
	default:
		log.Fatalf("unknown kind %q", kind)
	}
	if err != nil {
		log.Fatalf("%s: %v (%s)", kind, err, provider.KindOf(err))
	}

	b, _ := json.MarshalIndent(out, "", "  ")
	fmt.Println(string(b))
}

type logoFunc func(context.Context, provider.Symbol) (provider.Logo, error)

// writeLogos saves each logo as <dir>/<symbol>.<format> and returns the paths.
func writeLogos(ctx context.Context, fetch logoFunc, symbols []provider.Symbol, dir string) ([]string, error) {
	paths := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		logo, err := fetch(ctx, sym)
		if err != nil {
			return nil, err
		}
		ext := strings.TrimPrefix(logo.ContentType, "image/")
		path := filepath.Join(dir, string(sym)+"."+ext)
		if err := os.WriteFile(path, logo.Data, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
