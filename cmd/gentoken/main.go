// Command gentoken issues a bearer token for an API client. The secret comes
// from JWT_SECRET, the same variable the server validates against.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	jwtmw "chart_backend/internal/platform/jwt"
)

func main() {
	client := flag.String("client", "", "client ID to embed in the token (required)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	if *client == "" {
		flag.Usage()
		os.Exit(2)
	}

	secret := os.Getenv(jwtmw.EnvKeyJWTSecret)
	if secret == "" {
		log.Fatalf("%s is not set", jwtmw.EnvKeyJWTSecret)
	}

	token, err := jwtmw.NewGenerator(secret, *ttl).GenerateToken(*client)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
