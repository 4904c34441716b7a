package testutil

import (
	"context"
	"errors"
)

// MockCommandExecutor is a mock implementation of ports.CommandExecutor.
type MockCommandExecutor struct {
	ExecuteFunc func(ctx context.Context, pipeline string) (stdout string, stderr string, err error)
}

// Execute calls the mock ExecuteFunc.
func (m *MockCommandExecutor) Execute(ctx context.Context, pipeline string) (string, string, error) {
	if m.ExecuteFunc != nil {
		return m.ExecuteFunc(ctx, pipeline)
	}
	return "", "", errors.New("MockCommandExecutor.ExecuteFunc not implemented")
}
