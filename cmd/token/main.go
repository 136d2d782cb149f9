// Command token mints a bearer token for the jobstats API.
//
//	go run ./cmd/token -sub grafana -ttl 720h
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/artem13815/jobstats/pkg/config"
	"github.com/artem13815/jobstats/pkg/logger"
	"github.com/artem13815/jobstats/pkg/security/jwt"
)

func main() {
	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	sub := flag.String("sub", "", "token subject (required)")
	client := flag.String("client", "", "optional client name")
	ttl := flag.Duration("ttl", time.Duration(cfg.JWTTTLMinutes)*time.Minute, "token lifetime")
	flag.Parse()

	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET не задан")
	}
	token, err := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, *ttl).Generate(*sub, *client)
	if err != nil {
		log.Fatal("generate token: %v", err)
	}
	fmt.Fprintln(os.Stdout, token)
}
