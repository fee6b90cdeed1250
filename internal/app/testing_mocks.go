//go:build unit
// +build unit

package app

import (
	"github.com/stretchr/testify/mock"
)

// MockRandomStringGenerator is a mock implementation of RandomStringGenerator
type MockRandomStringGenerator struct {
	mock.Mock
}

func (m *MockRandomStringGenerator) RandomString(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}
