package main

import (
	"log"
	"net/http"

	"pricesuggest/internal/cache"
	"pricesuggest/internal/config"
	"pricesuggest/internal/engine"
	"pricesuggest/internal/httpapi"
	"pricesuggest/internal/observability"
	"pricesuggest/internal/scraper"
)

func main() {
	cfg := config.Load()
	observability.Start(cfg.MetricsPort)

	var store cache.Cache
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("redis: %v", err)
		}
		store = redisCache
		log.Println("using redis cache")
	} else {
		store = cache.NewMemory(cfg.CacheTTL)
		log.Println("using in-memory cache")
	}

	fetcher := scraper.NewHTTPFetcher(cfg.FetchTimeout)
	eng := engine.New(scraper.New(fetcher, cfg.SourceLimit), store, cfg.SourceDelay)

	mux := http.NewServeMux()
	mux.HandleFunc("/", httpapi.Root())
	mux.HandleFunc("/health", httpapi.Health())
	mux.HandleFunc("/api/price-suggestion", httpapi.PriceSuggestion(eng))
	mux.HandleFunc("/api/validate-price", httpapi.ValidatePrice(eng))

	log.Printf("price suggestion API listening on :%s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, mux); err != nil {
		log.Fatal(err)
	}
}
