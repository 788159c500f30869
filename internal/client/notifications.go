package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	gorillaws "github.com/gorilla/websocket"

	"github.com/yigit/unidash/internal/pkg/websocket"
)

// ErrNotSignedIn is returned by calls that need a stored token
var ErrNotSignedIn = errors.New("not signed in")

// Notifications streams the signed-in user's live notifications to fn until ctx
// ends or the server closes the stream. A cancelled ctx is not an error.
func (c *Client) Notifications(ctx context.Context, fn func(websocket.Notification)) error {
	token, ok := c.store.Get(TokenKey)
	if !ok || token == "" {
		return ErrNotSignedIn
	}

	endpoint, err := c.notificationsURL(token)
	if err != nil {
		return err
	}

	conn, resp, err := gorillaws.DefaultDialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusUnauthorized {
			c.signOut()
			return &APIError{StatusCode: resp.StatusCode, Message: "Invalid or expired token"}
		}
		return fmt.Errorf("failed to open notification stream: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() { conn.Close() })
	defer stop()

	for {
		var n websocket.Notification
		if err := conn.ReadJSON(&n); err != nil {
			if ctx.Err() != nil || gorillaws.IsCloseError(err, gorillaws.CloseNormalClosure) {
				return nil
			}
			return fmt.Errorf("notification stream: %w", err)
		}
		fn(n)
	}
}

func (c *Client) notificationsURL(token string) (string, error) {
	u, err := url.Parse(c.baseURL + "/ws/notifications")
	if err != nil {
		return "", fmt.Errorf("invalid base URL: %w", err)
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.RawQuery = url.Values{"token": {token}}.Encode()
	return u.String(), nil
}
