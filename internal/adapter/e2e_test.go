package adapter_test

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-internal-auth/internal/adapter"
	"github.com/MKhiriev/go-internal-auth/internal/auth"
	"github.com/MKhiriev/go-internal-auth/internal/config"
	handlerhttp "github.com/MKhiriev/go-internal-auth/internal/handler/http"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/service"
	"github.com/MKhiriev/go-internal-auth/models"
)

const (
	e2eHeader   = "X-Service-Auth"
	e2eCallerID = "orders-service"
)

func newCallee(t *testing.T, secret string) *httptest.Server {
	t.Helper()

	services, err := service.NewServices(config.App{Version: "3.1.0"}, models.NewAppBuildInfo("", "", ""), logger.Nop())
	require.NoError(t, err)

	guard := auth.NewGuard(auth.NewSharedSecret(e2eHeader, secret), e2eCallerID, logger.Nop())
	h := handlerhttp.NewHandler(services, guard, []string{"/api/internal/**"}, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func newCaller(t *testing.T, url, secret string) service.ClientPeerService {
	t.Helper()

	issuer := auth.NewIssuer(auth.NewSharedSecret(e2eHeader, secret), e2eCallerID)
	peer, err := adapter.NewHTTPPeerAdapter(config.Adapter{HTTPAddress: url, RequestTimeout: 5 * time.Second}, issuer, logger.Nop())
	require.NoError(t, err)

	return service.NewClientServices(peer, logger.Nop()).PeerService
}

func TestInternalCall_SharedSecretAccepted(t *testing.T) {
	srv := newCallee(t, "123455")
	caller := newCaller(t, srv.URL, "123455")

	status, err := caller.CheckPeer(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "3.1.0", status.Version)
	assert.True(t, status.Health.InternalAuth)

	echo, err := caller.Echo(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", echo.Message)
	assert.Equal(t, "/api/internal/echo", echo.Path)
	assert.Equal(t, auth.RuleUniqueCallID.String(), echo.Rule)
	assert.Equal(t, e2eCallerID, echo.CallerID)
	assert.NotEmpty(t, echo.TraceID)
}

func TestInternalCall_DifferentSecretRejected(t *testing.T) {
	srv := newCallee(t, "123455")
	caller := newCaller(t, srv.URL, "654321")

	_, err := caller.CheckPeer(context.Background())
	require.NoError(t, err, "unprotected routes stay reachable")

	_, err = caller.Echo(context.Background(), "hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), auth.ErrTokenMismatch.Error())
}

func TestInternalCall_TokenInWrongHeaderRejected(t *testing.T) {
	srv := newCallee(t, "123455")

	issuer := auth.NewIssuer(auth.NewSharedSecret("X-Other-Auth", "123455"), e2eCallerID)
	peer, err := adapter.NewHTTPPeerAdapter(config.Adapter{HTTPAddress: srv.URL}, issuer, logger.Nop())
	require.NoError(t, err)

	_, err = peer.Echo(context.Background(), models.EchoRequest{Message: "hello"})
	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
	assert.Contains(t, err.Error(), auth.ErrMissingToken.Error())
}
