package firebase

import (
	"context"
	"fmt"
	"os"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/identitytoolkit/v3"
	"google.golang.org/api/option"
)

// App holds the initialized Firebase app, its auth client and the Identity
// Toolkit service used for password sign-in.
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
	Toolkit     *identitytoolkit.Service
}

// InitFirebase initializes the Firebase application from a service account
// file and the Identity Toolkit client from the web API key.
func InitFirebase(ctx context.Context, credentialsPath, apiKey string, log *logrus.Logger) (*App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("firebase credentials path not provided")
	}
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("firebase credentials file not found at %s", credentialsPath)
	}
	if apiKey == "" {
		return nil, fmt.Errorf("firebase web API key not provided")
	}

	firebaseApp, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	toolkit, err := identitytoolkit.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating identity toolkit client: %w", err)
	}

	log.Info("Firebase app and auth client initialized")
	return &App{FirebaseApp: firebaseApp, AuthClient: authClient, Toolkit: toolkit}, nil
}
