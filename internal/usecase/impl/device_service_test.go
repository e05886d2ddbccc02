package impl

import (
	"context"
	"testing"

	deliverycontext "efood/internal/delivery/context"
	"efood/internal/domain/entity"
	domainerrors "efood/internal/domain/errors"
	"efood/internal/domain/repository"
	mockRepo "efood/internal/mocks/repository"
	mockService "efood/internal/mocks/service"
	"efood/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// deviceServiceFixtures holds all test dependencies for device service tests.
type deviceServiceFixtures struct {
	service    usecase.DeviceUsecase
	deviceRepo *mockRepo.MockDeviceRepository
	orderAPI   *mockService.MockOrderAPI
}

func createTestDeviceService(t *testing.T) deviceServiceFixtures {
	deviceRepo := mockRepo.NewMockDeviceRepository(t)
	orderAPI := mockService.NewMockOrderAPI(t)
	service := NewDeviceService(deviceRepo, orderAPI, newTestLogger())

	return deviceServiceFixtures{
		service:    service,
		deviceRepo: deviceRepo,
		orderAPI:   orderAPI,
	}
}

func TestDeviceService_RegisterDevice_Anonymous(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := deliverycontext.WithUpstream(context.Background(), deliverycontext.Upstream{AcceptLanguage: "el-GR,el;q=0.9,en;q=0.8"})
	info := &usecase.DeviceInfo{FCMToken: "  fcm-token  ", Platform: "web"}

	fx.deviceRepo.EXPECT().
		SaveDevice(ctx, mock.MatchedBy(func(d *entity.Device) bool {
			return d.SessionID == sessionID && d.FCMToken == "fcm-token"
		})).
		Return(nil)

	device, err := fx.service.RegisterDevice(ctx, sessionID, info)
	require.NoError(t, err)
	assert.Equal(t, "fcm-token", device.FCMToken)
	assert.Equal(t, "web", device.Platform)
	assert.Equal(t, "el", device.Language)
	assert.False(t, device.RegisteredAt.IsZero())
}

func TestDeviceService_RegisterDevice_SignedInLinksUpstream(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := deliverycontext.WithUpstream(context.Background(), deliverycontext.Upstream{Authorization: "Bearer abc"})
	info := &usecase.DeviceInfo{FCMToken: "fcm-token", Language: "en"}

	fx.deviceRepo.EXPECT().SaveDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
	fx.orderAPI.EXPECT().RegisterDeviceToken(ctx, "fcm-token").Return(nil)

	device, err := fx.service.RegisterDevice(ctx, sessionID, info)
	require.NoError(t, err)
	assert.Equal(t, "en", device.Language)
}

func TestDeviceService_RegisterDevice_UpstreamFailureIsNotFatal(t *testing.T) {
	fx := createTestDeviceService(t)

	ctx := deliverycontext.WithUpstream(context.Background(), deliverycontext.Upstream{Authorization: "Bearer abc"})

	fx.deviceRepo.EXPECT().SaveDevice(ctx, mock.AnythingOfType("*entity.Device")).Return(nil)
	fx.orderAPI.EXPECT().RegisterDeviceToken(ctx, "fcm-token").Return(domainerrors.ErrOrderRejected)

	device, err := fx.service.RegisterDevice(ctx, sessionID, &usecase.DeviceInfo{FCMToken: "fcm-token"})
	require.NoError(t, err)
	assert.NotNil(t, device)
}

func TestDeviceService_RegisterDevice_Errors(t *testing.T) {
	t.Run("blank token", func(t *testing.T) {
		fx := createTestDeviceService(t)

		device, err := fx.service.RegisterDevice(context.Background(), sessionID, &usecase.DeviceInfo{FCMToken: "   "})

		assert.Nil(t, device)
		assert.ErrorIs(t, err, domainerrors.ErrDeviceTokenInvalid)
	})

	t.Run("storage failure", func(t *testing.T) {
		fx := createTestDeviceService(t)
		ctx := context.Background()
		storageErr := errors.New("connection refused")

		fx.deviceRepo.EXPECT().SaveDevice(ctx, mock.Anything).Return(storageErr)

		device, err := fx.service.RegisterDevice(ctx, sessionID, &usecase.DeviceInfo{FCMToken: "fcm-token"})

		assert.Nil(t, device)
		assert.ErrorIs(t, err, storageErr)
	})
}

func TestDeviceService_ForgetDevice(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr bool
	}{
		{name: "registered", repoErr: nil},
		{name: "never registered", repoErr: repository.ErrDeviceNotFound},
		{name: "storage failure", repoErr: errors.New("timeout"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestDeviceService(t)
			ctx := context.Background()

			fx.deviceRepo.EXPECT().DeleteDevice(ctx, sessionID).Return(tt.repoErr)

			err := fx.service.ForgetDevice(ctx, sessionID)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			assert.NoError(t, err)
		})
	}
}
