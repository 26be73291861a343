package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// CreateAccount registers an account and returns its UID. An empty uid
// lets the provider assign one.
func (f *FirebaseAuthClient) CreateAccount(ctx context.Context, uid, email, password, displayName string) (string, error) {
	params := (&auth.UserToCreate{}).
		Email(email).
		Password(password).
		DisplayName(displayName)
	if uid != "" {
		params = params.UID(uid)
	}

	user, err := f.client.CreateUser(ctx, params)
	if err != nil {
		return "", err
	}

	return user.UID, nil
}

func (f *FirebaseAuthClient) AccountExists(ctx context.Context, uid string) (bool, error) {
	_, err := f.client.GetUser(ctx, uid)
	if err != nil {
		if auth.IsUserNotFound(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (f *FirebaseAuthClient) DeleteAccount(ctx context.Context, uid string) error {
	return f.client.DeleteUser(ctx, uid)
}

func (f *FirebaseAuthClient) ListAccounts(ctx context.Context) ([]string, error) {
	iter := f.client.Users(ctx, "")

	var uids []string
	for {
		user, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		uids = append(uids, user.UID)
	}
	return uids, nil
}
