package attack

import (
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"time"

	vegeta "github.com/tsenart/vegeta/v12/lib"

	"shortlink/internal/bench/config"
)

var errNoCodes = errors.New("attack requires seeded codes")

type Config struct {
	TargetURL          string
	Codes              []string
	Type               string
	Rate               int
	Duration           time.Duration
	CreateRatio        float64
	StatsRatio         float64
	Connections        int
	MaxWorkers         uint64
	InsecureSkipVerify bool
}

func Targeter(cfg *Config) (vegeta.Targeter, error) {
	if cfg.Type != config.TypeCreate && len(cfg.Codes) == 0 {
		return nil, fmt.Errorf("%s: %w", cfg.Type, errNoCodes)
	}

	switch cfg.Type {
	case config.TypeCreate:
		return CreateTargeter(cfg.TargetURL), nil
	case config.TypeRedirect:
		return RedirectTargeter(cfg.TargetURL, cfg.Codes), nil
	case config.TypeStats:
		return StatsTargeter(cfg.TargetURL, cfg.Codes), nil
	case config.TypeMixed:
		return MixedTargeter(cfg.TargetURL, cfg.Codes, cfg.CreateRatio, cfg.StatsRatio), nil
	default:
		return nil, fmt.Errorf("unknown attack type: %s", cfg.Type)
	}
}

// Run attacks the target and writes a text report to out.
func Run(cfg *Config, out io.Writer) error {
	targeter, err := Targeter(cfg)
	if err != nil {
		return err
	}

	opts := []func(*vegeta.Attacker){
		vegeta.Redirects(vegeta.NoFollow),
		vegeta.KeepAlive(true),
		vegeta.Connections(cfg.Connections),
		vegeta.Timeout(5 * time.Second),
		vegeta.MaxBody(0),
		vegeta.HTTP2(false),
		vegeta.TLSConfig(&tls.Config{InsecureSkipVerify: cfg.InsecureSkipVerify}),
	}
	if cfg.MaxWorkers > 0 {
		opts = append(opts, vegeta.MaxWorkers(cfg.MaxWorkers))
	}
	attacker := vegeta.NewAttacker(opts...)

	rate := vegeta.Rate{Freq: cfg.Rate, Per: time.Second}
	fmt.Fprintf(out, "Starting %s attack: rate=%d/s duration=%s\n", cfg.Type, cfg.Rate, cfg.Duration)

	var metrics vegeta.Metrics
	for res := range attacker.Attack(targeter, rate, cfg.Duration, cfg.Type) {
		metrics.Add(res)
	}
	metrics.Close()

	return vegeta.NewTextReporter(&metrics).Report(out)
}
