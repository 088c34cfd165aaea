package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"time"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type loadClaims struct {
	Sub string `json:"sub"`
	JTI string `json:"jti"`
	IAT int64  `json:"iat"`
}

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Dev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}

	code := run(logger, cfg)
	_ = logger.Sync()
	os.Exit(code)
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func run(logger *zap.Logger, cfg config) int {
	logger.Info("starting load test",
		zap.Int("tokens", cfg.Tokens),
		zap.Int("concurrency", cfg.Concurrency),
		zap.Int("ops", cfg.Ops),
		zap.Stringer("alg", cfg.alg),
		zap.String("kid", cfg.KeyID),
	)

	header := cfg.header()
	secret := []byte(cfg.Secret)

	startSeed := time.Now()
	claims, tokens, err := seedTokens(header, secret, cfg.Tokens)
	if err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return 1
	}
	logger.Info("seeded tokens", zap.Int("count", len(tokens)), zap.Duration("elapsed", time.Since(startSeed)))

	encodeStats, encodeErr := runPhase(cfg.Ops, cfg.Concurrency, func(r *rand.Rand) error {
		_, err := goJWT.Encode(header, claims[r.Intn(len(claims))], secret)
		return err
	})
	decodeStats, decodeErr := runPhase(cfg.Ops, cfg.Concurrency, func(r *rand.Rand) error {
		idx := r.Intn(len(tokens))
		data, err := goJWT.Decode[loadClaims](tokens[idx], secret, cfg.alg)
		if err != nil {
			return err
		}
		if data.Claims != claims[idx] {
			return fmt.Errorf("token %d decoded to %+v", idx, data.Claims)
		}
		return nil
	})
	wrongSecret := append([]byte("x"), secret...)
	rejectStats, rejectErr := runPhase(cfg.Ops, cfg.Concurrency, func(r *rand.Rand) error {
		_, err := goJWT.Decode[loadClaims](tokens[r.Intn(len(tokens))], wrongSecret, cfg.alg)
		if !errors.Is(err, goJWT.ErrInvalidSignature) {
			return fmt.Errorf("expected invalid signature, got %v", err)
		}
		return nil
	})

	logStats(logger, "encode", encodeStats, encodeErr)
	logStats(logger, "decode", decodeStats, decodeErr)
	logStats(logger, "reject", rejectStats, rejectErr)

	if encodeStats.failures+decodeStats.failures+rejectStats.failures > 0 {
		return 1
	}
	return 0
}

func seedTokens(header goJWT.Header, secret []byte, n int) ([]loadClaims, []string, error) {
	claims := make([]loadClaims, n)
	tokens := make([]string, n)
	now := time.Now().Unix()
	for i := range claims {
		claims[i] = loadClaims{Sub: uuid.NewString(), JTI: uuid.NewString(), IAT: now}
		token, err := goJWT.Encode(header, claims[i], secret)
		if err != nil {
			return nil, nil, fmt.Errorf("encode token %d: %w", i, err)
		}
		tokens[i] = token
	}
	return claims, tokens, nil
}

// runPhase executes op ops times across concurrency workers and returns latency stats
// together with the first failure seen.
func runPhase(ops, concurrency int, op func(r *rand.Rand) error) (phaseStats, error) {
	var (
		wg       sync.WaitGroup
		cursor   int64
		failures int64
		errOnce  sync.Once
		firstErr error
		perWork  = make([][]time.Duration, concurrency)
	)

	start := time.Now()
	for w := 0; w < concurrency; w++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			r := rand.New(rand.NewSource(time.Now().UnixNano() + int64(worker)*7919))
			latencies := make([]time.Duration, 0, ops/concurrency+1)
			for {
				if int(atomic.AddInt64(&cursor, 1))-1 >= ops {
					break
				}
				t0 := time.Now()
				err := op(r)
				latencies = append(latencies, time.Since(t0))
				if err != nil {
					atomic.AddInt64(&failures, 1)
					errOnce.Do(func() { firstErr = err })
				}
			}
			perWork[worker] = latencies
		}(w)
	}
	wg.Wait()
	total := time.Since(start)

	samples := make([]time.Duration, 0, ops)
	for _, l := range perWork {
		samples = append(samples, l...)
	}
	return computeStats(total, samples, failures), firstErr
}

func logStats(logger *zap.Logger, name string, s phaseStats, firstErr error) {
	fields := []zap.Field{
		zap.String("phase", name),
		zap.Int("ops", s.ops),
		zap.Int64("failures", s.failures),
		zap.Duration("total", s.total.Round(time.Millisecond)),
		zap.Float64("ops_per_sec", s.opsPerS),
		zap.Duration("p50", s.p50),
		zap.Duration("p95", s.p95),
		zap.Duration("p99", s.p99),
		zap.Duration("max", s.max),
	}
	if firstErr != nil {
		logger.Warn("phase finished with failures", append(fields, zap.Error(firstErr))...)
		return
	}
	logger.Info("phase finished", fields...)
}
