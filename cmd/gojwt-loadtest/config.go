package main

import (
	"errors"
	"flag"
	"fmt"

	goJWT "github.com/MrEthical07/goJWT"
	"github.com/caarlos0/env/v11"
)

// config is read from the environment first; flags override each field.
type config struct {
	Tokens      int    `env:"GOJWT_LOADTEST_TOKENS" envDefault:"10000"`
	Concurrency int    `env:"GOJWT_LOADTEST_CONCURRENCY" envDefault:"64"`
	Ops         int    `env:"GOJWT_LOADTEST_OPS" envDefault:"200000"`
	Algorithm   string `env:"GOJWT_LOADTEST_ALG" envDefault:"HS256"`
	Secret      string `env:"GOJWT_LOADTEST_SECRET" envDefault:"loadtest-secret"`
	KeyID       string `env:"GOJWT_LOADTEST_KID"`
	Dev         bool   `env:"GOJWT_LOADTEST_DEV"`

	alg goJWT.Algorithm
}

func loadConfig(args []string) (config, error) {
	var cfg config
	if err := env.Parse(&cfg); err != nil {
		return config{}, fmt.Errorf("parse environment: %w", err)
	}

	fs := flag.NewFlagSet("gojwt-loadtest", flag.ContinueOnError)
	fs.IntVar(&cfg.Tokens, "tokens", cfg.Tokens, "number of distinct tokens to pre-generate")
	fs.IntVar(&cfg.Concurrency, "concurrency", cfg.Concurrency, "number of concurrent workers")
	fs.IntVar(&cfg.Ops, "ops", cfg.Ops, "operations per phase (encode, decode, reject)")
	fs.StringVar(&cfg.Algorithm, "alg", cfg.Algorithm, "signing algorithm: HS256, HS384 or HS512")
	fs.StringVar(&cfg.Secret, "secret", cfg.Secret, "HMAC secret")
	fs.StringVar(&cfg.KeyID, "kid", cfg.KeyID, "optional key id placed in every header")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "human-readable development logging")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	if err := cfg.validate(); err != nil {
		return config{}, err
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.Tokens <= 0 || c.Concurrency <= 0 || c.Ops <= 0 {
		return errors.New("tokens, concurrency, and ops must be > 0")
	}
	if c.Secret == "" {
		return errors.New("secret must not be empty")
	}
	alg, err := goJWT.ParseAlgorithm(c.Algorithm)
	if err != nil {
		return fmt.Errorf("alg: %w", err)
	}
	c.alg = alg
	return nil
}

func (c config) header() goJWT.Header {
	h := goJWT.NewHeader(c.alg)
	h.KeyID = c.KeyID
	return h
}
