package lib

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"os"
	"time"

	"culturebites/src/types"

	"github.com/tidwall/gjson"
)

const photoCacheTTL = 6 * time.Hour

var photoHTTPClient = &http.Client{Timeout: 10 * time.Second}

// SearchPhotos queries the Pexels search API for event imagery. Results
// are cached in redis per query so repeated catalog loads do not burn
// through the API quota. Any upstream failure returns an empty slice,
// never an error, because photos are decoration on top of the catalog.
func SearchPhotos(ctx context.Context, query string, perPage int) []types.Photo {
	if perPage <= 0 {
		perPage = 6
	}
	cacheKey := fmt.Sprintf("photos:%s:%d", query, perPage)
	raw := CacheGet(ctx, cacheKey)
	if raw == "" {
		body, err := fetchPhotos(ctx, query, perPage)
		if err != nil {
			log.Printf("[pexels] request failed: %s\n", err.Error())
			return []types.Photo{}
		}
		raw = body
		CacheSet(ctx, cacheKey, raw, photoCacheTTL)
	}

	photos := []types.Photo{}
	for _, p := range gjson.Get(raw, "photos").Array() {
		photos = append(photos, types.Photo{
			ID:           p.Get("id").Int(),
			URL:          p.Get("src.medium").String(),
			LargeURL:     p.Get("src.large2x").String(),
			Photographer: p.Get("photographer").String(),
		})
	}
	return photos
}

func fetchPhotos(ctx context.Context, query string, perPage int) (string, error) {
	apiKey := os.Getenv("PEXELS_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("PEXELS_API_KEY not set")
	}
	baseURL := os.Getenv("PEXELS_API_URL")
	if baseURL == "" {
		baseURL = "https://api.pexels.com/v1"
	}
	endpoint := fmt.Sprintf("%s/search?query=%s&per_page=%d", baseURL, url.QueryEscape(query), perPage)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", apiKey)
	res, err := photoHTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status: %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
