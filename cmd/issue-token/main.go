// Command issue-token signs a development access token with the configured
// JWT secret so the proposal endpoints can be exercised locally.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/workshop-portal/stats-api/internal/models"
	"github.com/workshop-portal/stats-api/internal/service"
	"github.com/workshop-portal/stats-api/pkg/config"
	"github.com/workshop-portal/stats-api/pkg/logger"
)

func main() {
	userID := flag.String("user", "", "user id placed in the token")
	role := flag.String("role", string(models.RoleCoordinator), "COORDINATOR or INSTRUCTOR")
	email := flag.String("email", "", "user email")
	name := flag.String("name", "", "user full name")
	ttl := flag.Duration("ttl", 0, "token lifetime, defaults to JWT_EXPIRATION")
	flag.Parse()

	if *userID == "" {
		fmt.Fprintln(os.Stderr, "usage: issue-token -user <id> [-role COORDINATOR|INSTRUCTOR]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.Env == config.EnvProduction {
		log.Fatal("refusing to issue tokens in production")
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	expiry := cfg.JWT.Expiration
	if *ttl > time.Duration(0) {
		expiry = *ttl
	}
	auth := service.NewAuthService(logr, service.AuthConfig{
		AccessTokenSecret: cfg.JWT.Secret,
		AccessTokenExpiry: expiry,
		Issuer:            "issue-token",
	})

	token, expiresAt, err := auth.IssueToken(*userID, models.UserRole(strings.ToUpper(*role)), *email, *name)
	if err != nil {
		log.Fatalf("failed to issue token: %v", err)
	}
	fmt.Println(token)
	fmt.Fprintf(os.Stderr, "expires at %s\n", expiresAt.Format(time.RFC3339))
}
