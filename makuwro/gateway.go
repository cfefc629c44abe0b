package makuwro

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
)

// OpenGateway dials the endpoint's realtime gateway. The connection is a
// long-lived resource with a lifecycle independent of REST calls; opening an
// already-open gateway is a no-op. No message protocol is defined beyond
// connect and disconnect.
func (c *Client) OpenGateway(ctx context.Context) error {
	if c.gateway != nil {
		return nil
	}
	if c.endpoint.Gateway == "" {
		return fmt.Errorf("endpoint has no gateway URL: %w", ErrMissingArgument)
	}

	header := http.Header{}
	if c.token != "" {
		header.Set("token", c.token)
	}

	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.endpoint.Gateway, header)
	if err != nil {
		return fmt.Errorf("failed to connect to gateway: %w", err)
	}
	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	c.gateway = conn
	c.logger.Debug().Str("url", c.endpoint.Gateway).Msg("Gateway connection opened")
	return nil
}

// CloseGateway closes the realtime connection if one is open.
func (c *Client) CloseGateway() error {
	if c.gateway == nil {
		return nil
	}

	// Best-effort close handshake before dropping the connection.
	deadline := time.Now().Add(time.Second)
	_ = c.gateway.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)

	err := c.gateway.Close()
	c.gateway = nil
	c.logger.Debug().Msg("Gateway connection closed")
	return err
}
