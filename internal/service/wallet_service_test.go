package service

import (
	"context"
	"errors"
	"io"
	"testing"

	"digiplay-sdk/internal/core/domain"
	"digiplay-sdk/internal/core/ports/mocks"
	"digiplay-sdk/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

func TestWalletService_Init_GeneratesWhenNoMaterial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockKeys := mocks.NewMockKeyProvider(ctrl)
	mockKeys.EXPECT().Generate(gomock.Any()).
		Return(domain.KeyHandle("generated-handle"), "D8SampleAddress1234567890", nil)

	svc := NewWalletService(mockKeys, newTestLogger())
	wallet, err := svc.Init(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, domain.KeyHandle("generated-handle"), wallet.KeyHandle)
	assert.Equal(t, "D8SampleAddress1234567890", wallet.Address)
}

func TestWalletService_Init_DerivesFromSuppliedMaterial(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	material := domain.KeyHandle("supplied-handle")
	mockKeys := mocks.NewMockKeyProvider(ctrl)
	mockKeys.EXPECT().DeriveAddress(gomock.Any(), material).
		Return("D8DerivedAddressFromKey", nil)

	svc := NewWalletService(mockKeys, newTestLogger())
	wallet, err := svc.Init(context.Background(), material)
	require.NoError(t, err)

	assert.Equal(t, material, wallet.KeyHandle)
	assert.Equal(t, "D8DerivedAddressFromKey", wallet.Address)
}

func TestWalletService_Init_GenerateFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerErr := errors.New("hsm unavailable")
	mockKeys := mocks.NewMockKeyProvider(ctrl)
	mockKeys.EXPECT().Generate(gomock.Any()).Return(nil, "", providerErr)

	svc := NewWalletService(mockKeys, newTestLogger())
	wallet, err := svc.Init(context.Background(), nil)

	assert.Nil(t, wallet)
	assert.True(t, apperror.HasCode(err, apperror.CodeKeyInitialization))
	assert.True(t, errors.Is(err, providerErr))
}

func TestWalletService_Init_DeriveFailurePropagates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	providerErr := errors.New("unsupported key format")
	mockKeys := mocks.NewMockKeyProvider(ctrl)
	mockKeys.EXPECT().DeriveAddress(gomock.Any(), gomock.Any()).Return("", providerErr)

	svc := NewWalletService(mockKeys, newTestLogger())
	wallet, err := svc.Init(context.Background(), domain.KeyHandle("bad-material"))

	assert.Nil(t, wallet)
	assert.True(t, apperror.HasCode(err, apperror.CodeKeyInitialization))
	assert.True(t, errors.Is(err, providerErr))
}
