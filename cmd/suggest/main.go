package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"pricesuggest/internal/cache"
	"pricesuggest/internal/config"
	"pricesuggest/internal/engine"
	"pricesuggest/internal/scraper"
)

// go run cmd/suggest/main.go -product="iPhone 13" -condition=nhu-moi
// go run cmd/suggest/main.go -product="tủ lạnh Samsung" -price=8000000
func main() {
	product := flag.String("product", "", "Tên sản phẩm cần định giá")
	condition := flag.String("condition", "nhu-moi", "Tình trạng: moi, nhu-moi, 99%, con-bao-hanh, het-bao-hanh")
	price := flag.Int64("price", 0, "Giá muốn bán, để kiểm tra so với thị trường (tùy chọn)")
	flag.Parse()

	if *product == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Load()
	fetcher := scraper.NewHTTPFetcher(cfg.FetchTimeout)
	eng := engine.New(scraper.New(fetcher, cfg.SourceLimit), cache.NewMemory(cfg.CacheTTL), cfg.SourceDelay)

	ctx := context.Background()
	result, err := eng.Suggest(ctx, *product, *condition)
	if err != nil {
		log.Fatalf("Không thể định giá %q: %v", *product, err)
	}

	out, _ := json.MarshalIndent(result, "", "  ")
	fmt.Println(string(out))

	if *price > 0 {
		_, validation, err := eng.Validate(ctx, *product, *condition, *price)
		if err != nil {
			log.Fatalf("Không thể kiểm tra giá: %v", err)
		}
		fmt.Printf("%s %s\n", validation.Icon, validation.Message)
	}
}
