package makuwro

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGatewayLifecycle(t *testing.T) {
	upgrader := websocket.Upgrader{}

	var receivedToken string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedToken = r.Header.Get("token")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		// Hold the connection open until the client closes it.
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer server.Close()

	gatewayURL := "ws" + strings.TrimPrefix(server.URL, "http")
	client, err := NewClient(Endpoint{API: "http://localhost:1", Gateway: gatewayURL}, zerolog.Nop(), WithToken("tok"))
	require.NoError(t, err)

	require.NoError(t, client.OpenGateway(context.Background()))
	assert.Equal(t, "tok", receivedToken)
	require.NotNil(t, client.gateway)

	// Opening again is a no-op on the same connection.
	existing := client.gateway
	require.NoError(t, client.OpenGateway(context.Background()))
	assert.Same(t, existing, client.gateway)

	require.NoError(t, client.CloseGateway())
	assert.Nil(t, client.gateway)

	// Closing an already-closed gateway is a no-op.
	require.NoError(t, client.CloseGateway())
}

func TestOpenGatewayWithoutURL(t *testing.T) {
	client := newTestClient(t, "http://localhost:1")
	assert.ErrorIs(t, client.OpenGateway(context.Background()), ErrMissingArgument)
}
