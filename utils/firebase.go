// utils/firebase.go
package utils

import (
	"context"
	"log"

	"github.com/emersonmaddock/sophros/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

var AuthClient *auth.Client

// FirebaseInit initializes the Firebase App and Auth client used to verify
// identity-provider bearer tokens. Skipped when no credentials file is
// configured; the auth middleware then accepts only dev tokens.
func FirebaseInit() {
	if config.AppConfig.FirebaseCredentialsFile == "" {
		log.Println("firebase: no credentials configured, identity verification disabled")
		return
	}

	ctx := context.Background()
	opt := option.WithCredentialsFile(config.AppConfig.FirebaseCredentialsFile)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatalf("firebase: error initializing app: %v", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		log.Fatalf("firebase: error getting Auth client: %v", err)
	}

	AuthClient = client
}

// GetAuthClient returns the Firebase Auth client, or nil when identity
// verification is disabled.
func GetAuthClient() *auth.Client {
	return AuthClient
}
