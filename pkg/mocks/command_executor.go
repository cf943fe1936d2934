package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockCommandExecutor is a testify mock for node.CommandExecutor.
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) LookPath(file string) (string, error) {
	args := m.Called(file)
	return args.String(0), args.Error(1)
}

func (m *MockCommandExecutor) Run(name string, cmdArgs ...string) error {
	args := m.Called(name, cmdArgs)
	return args.Error(0)
}

func (m *MockCommandExecutor) Output(name string, cmdArgs ...string) ([]byte, error) {
	args := m.Called(name, cmdArgs)
	out, _ := args.Get(0).([]byte)
	return out, args.Error(1)
}
