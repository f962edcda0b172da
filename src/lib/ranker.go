package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"culturebites/src/models"
	"culturebites/src/types"

	"github.com/tidwall/gjson"
)

var rankerHTTPClient = &http.Client{Timeout: 15 * time.Second}

// FetchRecommendations asks the external ranking service to order the
// candidate events for a guest. Callers treat any returned error as a
// signal to fall back to local scoring.
func FetchRecommendations(ctx context.Context, interests []string, events []models.Event) ([]types.Recommendation, error) {
	rankerURL := os.Getenv("RANKER_URL")
	if rankerURL == "" {
		return nil, fmt.Errorf("RANKER_URL not set")
	}

	payload, err := json.Marshal(map[string]any{
		"interests": interests,
		"events":    events,
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, rankerURL, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if apiKey := os.Getenv("RANKER_API_KEY"); apiKey != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", apiKey))
	}

	res, err := rankerHTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	recs := gjson.GetBytes(body, "recommendations")
	if !recs.IsArray() {
		return nil, fmt.Errorf("malformed response: missing recommendations array")
	}
	out := []types.Recommendation{}
	for _, r := range recs.Array() {
		id := r.Get("id")
		reason := r.Get("reason")
		if !id.Exists() || !reason.Exists() {
			return nil, fmt.Errorf("malformed response: recommendation missing id or reason")
		}
		out = append(out, types.Recommendation{
			ID:     uint(id.Uint()),
			Reason: reason.String(),
		})
	}
	log.Printf("[ranker] received %d recommendations\n", len(out))
	return out, nil
}
