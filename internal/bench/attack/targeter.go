package attack

import (
	"fmt"
	"math/rand/v2"
	"net/http"
	"sync/atomic"

	vegeta "github.com/tsenart/vegeta/v12/lib"
)

var urlCounter atomic.Uint64

func CreateTargeter(targetURL string) vegeta.Targeter {
	header := http.Header{"Content-Type": []string{"application/json"}}
	url := targetURL + "/shorturls"

	return func(t *vegeta.Target) error {
		t.Method = http.MethodPost
		t.URL = url
		t.Header = header
		t.Body = fmt.Appendf(nil, `{"url":"https://example.com/bench/%d"}`, urlCounter.Add(1))
		return nil
	}
}

func RedirectTargeter(targetURL string, codes []string) vegeta.Targeter {
	header := http.Header{"Referer": []string{"https://bench.example.com/"}}

	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = targetURL + "/" + codes[rand.IntN(len(codes))]
		t.Header = header
		t.Body = nil
		return nil
	}
}

func StatsTargeter(targetURL string, codes []string) vegeta.Targeter {
	return func(t *vegeta.Target) error {
		t.Method = http.MethodGet
		t.URL = targetURL + "/shorturls/" + codes[rand.IntN(len(codes))]
		t.Header = nil
		t.Body = nil
		return nil
	}
}

// MixedTargeter splits traffic between create, stats and redirect by ratio.
// Whatever the two ratios leave over goes to redirects.
func MixedTargeter(targetURL string, codes []string, createRatio, statsRatio float64) vegeta.Targeter {
	createTarget := CreateTargeter(targetURL)
	statsTarget := StatsTargeter(targetURL, codes)
	redirectTarget := RedirectTargeter(targetURL, codes)

	return func(t *vegeta.Target) error {
		switch p := rand.Float64(); {
		case p < createRatio:
			return createTarget(t)
		case p < createRatio+statsRatio:
			return statsTarget(t)
		default:
			return redirectTarget(t)
		}
	}
}
