package firebase

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/firestore"
	fbapp "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"marketseed/pkg/config"
	"marketseed/pkg/errors"
	"marketseed/pkg/logger"
)

// Client owns the Firebase app plus the Firestore and Auth handles behind
// an explicit lifecycle: Connect once at startup, Disconnect on shutdown.
// Nothing initializes implicitly.
type Client struct {
	cfg       *config.Config
	app       *fbapp.App
	firestore *firestore.Client
	auth      *auth.Client
	connected bool
}

func NewClient(cfg *config.Config) *Client {
	return &Client{cfg: cfg}
}

func (c *Client) Connect(ctx context.Context) error {
	if c.connected {
		return nil
	}

	opt, err := c.credentials()
	if err != nil {
		return err
	}

	app, err := fbapp.NewApp(ctx, &fbapp.Config{ProjectID: c.cfg.FirebaseProject}, opt)
	if err != nil {
		return errors.SetupFailure("failed to initialize Firebase app", err)
	}

	authClient, err := app.Auth(ctx)
	if err != nil {
		return errors.SetupFailure("failed to initialize Firebase Auth", err)
	}

	firestoreClient, err := firestore.NewClient(ctx, c.cfg.FirebaseProject, opt)
	if err != nil {
		return errors.SetupFailure("failed to create Firestore client", err)
	}

	c.app = app
	c.auth = authClient
	c.firestore = firestoreClient
	c.connected = true
	logger.Info("Firebase initialized successfully")
	return nil
}

// credentials resolves the service account: the env JSON wins, then the
// configured key file path.
func (c *Client) credentials() (option.ClientOption, error) {
	if c.cfg.ServiceAccountJSON != "" {
		logger.Info("Using Firebase service account from environment variable")
		return option.WithCredentialsJSON([]byte(c.cfg.ServiceAccountJSON)), nil
	}

	path := c.cfg.ServiceAccountPath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, errors.SetupFailure(fmt.Sprintf("service account file does not exist: %s", path), err)
	}
	logger.Info("Using Firebase service account from file: %s", path)
	return option.WithCredentialsFile(path), nil
}

func (c *Client) IsConnected() bool {
	return c.connected
}

func (c *Client) Disconnect() error {
	if !c.connected {
		return nil
	}
	c.connected = false
	return c.firestore.Close()
}

func (c *Client) Firestore() *firestore.Client {
	return c.firestore
}

func (c *Client) Auth() *auth.Client {
	return c.auth
}
