package client

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-internal-auth/internal/adapter"
	"github.com/MKhiriev/go-internal-auth/internal/logger"
	"github.com/MKhiriev/go-internal-auth/internal/mock"
	"github.com/MKhiriev/go-internal-auth/internal/service"
	"github.com/MKhiriev/go-internal-auth/models"
)

func newTestApp(t *testing.T, message string) (*App, *mock.MockPeerAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	peer := mock.NewMockPeerAdapter(ctrl)

	app, err := NewApp(service.NewClientServices(peer, logger.Nop()), message, logger.Nop())
	require.NoError(t, err)
	return app, peer
}

func TestNewApp_NoServices(t *testing.T) {
	app, err := NewApp(nil, "hi", logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, errNoServices)
}

func TestApp_Run_Success(t *testing.T) {
	app, peer := newTestApp(t, "")

	gomock.InOrder(
		peer.EXPECT().Health(gomock.Any()).Return(models.ServiceHealth{Status: "ok", InternalAuth: true}, nil),
		peer.EXPECT().Version(gomock.Any()).Return("1.0.0", nil),
		peer.EXPECT().Echo(gomock.Any(), models.EchoRequest{Message: DefaultMessage}).
			Return(models.EchoResponse{Message: DefaultMessage, Rule: "unique_call_id"}, nil),
	)

	assert.NoError(t, app.Run())
}

func TestApp_Run_PeerUnhealthy(t *testing.T) {
	app, peer := newTestApp(t, "hello")

	peer.EXPECT().Health(gomock.Any()).Return(models.ServiceHealth{Status: "degraded"}, nil)

	err := app.Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, service.ErrPeerUnhealthy)
}

func TestApp_Run_Rejected(t *testing.T) {
	app, peer := newTestApp(t, "hello")

	peer.EXPECT().Health(gomock.Any()).Return(models.ServiceHealth{Status: "ok", InternalAuth: true}, nil)
	peer.EXPECT().Version(gomock.Any()).Return("1.0.0", nil)
	peer.EXPECT().Echo(gomock.Any(), models.EchoRequest{Message: "hello"}).
		Return(models.EchoResponse{}, errors.Join(adapter.ErrUnauthorized, errors.New("internal auth token mismatch")))

	err := app.Run()

	require.Error(t, err)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)
}
