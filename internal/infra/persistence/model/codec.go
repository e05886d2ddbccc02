package model

import (
	"encoding/json"
	"time"

	"efood/internal/domain/entity"

	"github.com/pkg/errors"
)

// EncodeCartSession serialises a cart state as a versioned document.
func EncodeCartSession(state entity.CartState, now time.Time) ([]byte, error) {
	raw, err := json.Marshal(FromCartState(state, now))

	return raw, errors.WithStack(err)
}

// DecodeCartSession parses a stored cart session document.
func DecodeCartSession(raw []byte) (entity.CartState, error) {
	var doc CartSessionModel
	if err := json.Unmarshal(raw, &doc); err != nil {
		return entity.CartState{}, errors.WithStack(err)
	}
	if doc.Version > CartSessionVersion {
		return entity.CartState{}, errors.Errorf("unsupported cart session version %d", doc.Version)
	}

	return doc.ToCartState(), nil
}

// EncodeDevice serialises a device registration.
func EncodeDevice(device *entity.Device) ([]byte, error) {
	raw, err := json.Marshal(FromDevice(device))

	return raw, errors.WithStack(err)
}

// DecodeDevice parses a stored device registration.
func DecodeDevice(raw []byte) (*entity.Device, error) {
	var doc DeviceModel
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WithStack(err)
	}

	return doc.ToDevice(), nil
}
