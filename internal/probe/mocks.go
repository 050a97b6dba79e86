package probe

import (
	"context"
	"strconv"

	"github.com/stretchr/testify/mock"
)

// MockProber is a mock implementation of the Prober interface.
type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context, req Request) Outcome {
	args := m.Called(ctx, req)
	return args.Get(0).(Outcome)
}

// MockCommandExecutor is a mock implementation of the CommandExecutor interface.
type MockCommandExecutor struct {
	mock.Mock
}

func (m *MockCommandExecutor) RunCommand(ctx context.Context, name string, arg ...string) (string, error) {
	// Variadic args are flattened so expectations read like the command line.
	argsSlice := make([]interface{}, 0, len(arg)+2)
	argsSlice = append(argsSlice, ctx, name)
	for _, a := range arg {
		argsSlice = append(argsSlice, a)
	}

	args := m.Called(argsSlice...)
	return args.String(0), args.Error(1)
}

// ExitError is a fake process exit status for tests and mocks.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string { return "exit status " + strconv.Itoa(e.Code) }

// ExitCode mirrors (*exec.ExitError).ExitCode.
func (e *ExitError) ExitCode() int { return e.Code }
