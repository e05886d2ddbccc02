package handler

import (
	"net/http"
	"testing"

	"efood/internal/domain/entity"
	mockUsecase "efood/internal/mocks/usecase"
	"efood/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceHandlerFixtures holds all test dependencies for device handler tests.
type deviceHandlerFixtures struct {
	handler  *DeviceHandler
	deviceUC *mockUsecase.MockDeviceUsecase
}

func createTestDeviceHandler(t *testing.T) deviceHandlerFixtures {
	deviceUC := mockUsecase.NewMockDeviceUsecase(t)

	return deviceHandlerFixtures{
		handler:  NewDeviceHandler(DeviceHandlerParams{DeviceUC: deviceUC, Logger: newTestLogger()}),
		deviceUC: deviceUC,
	}
}

func TestDeviceHandler_RegisterDevice(t *testing.T) {
	fx := createTestDeviceHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/devices",
		body:    `{"fcm_token":"fcm-1","platform":"android"}`,
		session: testSessionID,
	})

	fx.deviceUC.EXPECT().
		RegisterDevice(mock.Anything, testSessionID, &usecase.DeviceInfo{FCMToken: "fcm-1", Platform: "android"}).
		Return(&entity.Device{SessionID: testSessionID, FCMToken: "fcm-1", Platform: "android", Language: "en"}, nil)

	require.NoError(t, fx.handler.RegisterDevice(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "fcm-1", decodeSuccess[entity.Device](t, rec).FCMToken)
}

func TestDeviceHandler_RegisterDevice_UnknownPlatform(t *testing.T) {
	fx := createTestDeviceHandler(t)
	c, rec := newTestContext(testRequest{
		method:  http.MethodPost,
		target:  "/api/v1/devices",
		body:    `{"fcm_token":"fcm-1","platform":"symbian"}`,
		session: testSessionID,
	})

	require.NoError(t, fx.handler.RegisterDevice(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_FAILED", decodeError(t, rec).Code)
}

func TestDeviceHandler_ForgetDevice(t *testing.T) {
	fx := createTestDeviceHandler(t)
	c, rec := newTestContext(testRequest{method: http.MethodDelete, target: "/api/v1/devices", session: testSessionID})

	fx.deviceUC.EXPECT().ForgetDevice(mock.Anything, testSessionID).Return(nil)

	require.NoError(t, fx.handler.ForgetDevice(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
