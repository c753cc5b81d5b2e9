package seed

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"net/http"
	"runtime"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
)

type Options struct {
	TargetURL          string
	Count              int
	Workers            int
	ValidityMinutes    int
	Timeout            time.Duration
	InsecureSkipVerify bool
}

type createRequest struct {
	URL      string `json:"url"`
	Validity int    `json:"validity,omitempty"`
}

type createResponse struct {
	Shortlink string `json:"shortlink"`
}

// Run creates opts.Count links and returns their shortcodes in creation order.
func Run(ctx context.Context, opts Options) ([]string, error) {
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU() * 2
	}
	fmt.Printf("Seeding %d links (workers: %d)...\n", opts.Count, workers)

	client := &http.Client{
		Timeout: opts.Timeout,
		Transport: &http.Transport{
			TLSClientConfig:     &tls.Config{InsecureSkipVerify: opts.InsecureSkipVerify},
			MaxIdleConns:        workers * 2,
			MaxIdleConnsPerHost: workers * 2,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	codes := make([]string, opts.Count)
	var progress atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range opts.Count {
		g.Go(func() error {
			code, err := create(ctx, client, opts, i)
			if err != nil {
				return fmt.Errorf("failed to create link %d: %w", i, err)
			}
			codes[i] = code
			if done := progress.Add(1); done%1000 == 0 || int(done) == opts.Count {
				fmt.Printf("\rProgress: %d/%d", done, opts.Count)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	fmt.Printf("\nSeeding complete: %d codes\n", len(codes))
	return codes, nil
}

func create(ctx context.Context, client *http.Client, opts Options, i int) (string, error) {
	body, err := json.Marshal(createRequest{
		URL:      fmt.Sprintf("https://example.com/seed/%d", i),
		Validity: opts.ValidityMinutes,
	})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, opts.TargetURL+"/shorturls", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusCreated {
		return "", fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result createResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}

	idx := strings.LastIndexByte(result.Shortlink, '/')
	if idx < 0 || idx == len(result.Shortlink)-1 {
		return "", fmt.Errorf("malformed shortlink %q", result.Shortlink)
	}
	return result.Shortlink[idx+1:], nil
}
