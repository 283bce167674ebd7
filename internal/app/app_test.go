package app

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
	"go.uber.org/mock/gomock"

	"coinscope/internal/app/cli"
	"coinscope/internal/config/logger"
)

// mockLifecycle implements fx.Lifecycle for testing
type mockLifecycle struct {
	onAppend func(fx.Hook)
}

func (m *mockLifecycle) Append(hook fx.Hook) {
	if m.onAppend != nil {
		m.onAppend(hook)
	}
}

// mockShutdowner implements fx.Shutdowner for testing
type mockShutdowner struct {
	calls int
	err   error
}

func (m *mockShutdowner) Shutdown(...fx.ShutdownOption) error {
	m.calls++
	return m.err
}

func Test_NewApp(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	application := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	assert.NotNil(t, application)
	assert.Equal(t, mockCLI, application.cli)
	assert.Equal(t, mockLogger, application.log)
}

func Test_execute(t *testing.T) {
	tests := []struct {
		name     string
		before   func(mockCLI *cli.MockCLI, mockLogger *logger.MockLogger)
		expected int
	}{
		{
			name: "Success",
			before: func(mockCLI *cli.MockCLI, mockLogger *logger.MockLogger) {
				mockCLI.EXPECT().Execute().Return(0, nil)
			},
			expected: 0,
		},
		{
			name: "Failure",
			before: func(mockCLI *cli.MockCLI, mockLogger *logger.MockLogger) {
				mockCLI.EXPECT().Execute().Return(1, errors.New("coin not found"))
				mockLogger.EXPECT().Debug().Return(nil)
			},
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockCLI := cli.NewMockCLI(ctrl)
			mockLogger := logger.NewMockLogger(ctrl)
			tt.before(mockCLI, mockLogger)

			app := &App{cli: mockCLI, log: mockLogger}

			assert.Equal(t, tt.expected, app.execute())
		})
	}
}

func Test_App_Run(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &mockShutdowner{err: errors.New("already stopping")}

	mockCLI.EXPECT().Execute().Return(0, nil)
	mockLogger.EXPECT().Error().Return(nil)

	app := NewApp(mockCLI, shutdowner, mockLogger)
	app.Run()

	assert.Equal(t, 1, shutdowner.calls)

	select {
	case <-app.done:
	default:
		t.Fatal("done channel not closed")
	}
}

func Test_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

	var capturedHook fx.Hook

	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	assert.NotNil(t, capturedHook.OnStart)
	assert.NotNil(t, capturedHook.OnStop)
}

func Test_Register_OnStopHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)

	t.Run("Returns once the CLI is done", func(t *testing.T) {
		app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)
		close(app.done)

		var capturedHook fx.Hook
		Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

		assert.NoError(t, capturedHook.OnStop(context.Background()))
	})

	t.Run("Gives up when the stop context ends", func(t *testing.T) {
		app := NewApp(mockCLI, &mockShutdowner{}, mockLogger)

		var capturedHook fx.Hook
		Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.ErrorIs(t, capturedHook.OnStop(ctx), context.Canceled)
	})
}

func Test_Register_OnStartHook(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCLI := cli.NewMockCLI(ctrl)
	mockLogger := logger.NewMockLogger(ctrl)
	shutdowner := &mockShutdowner{}

	mockCLI.EXPECT().Execute().Return(0, nil)

	app := NewApp(mockCLI, shutdowner, mockLogger)

	var capturedHook fx.Hook
	Register(&mockLifecycle{onAppend: func(hook fx.Hook) { capturedHook = hook }}, app)

	assert.NoError(t, capturedHook.OnStart(context.Background()))
	<-app.done
}
