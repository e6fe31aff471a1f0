package cmd

import (
	"bytes"
	"context"
	"os"
	"testing"

	log "github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"

	"github.com/maxgio92/cyclemark/pkg/cmd/bench"
)

func TestNewCommand(t *testing.T) {
	logger := log.New(log.ConsoleWriter{Out: os.Stderr})
	ctx := context.Background()

	tests := []struct {
		name     string
		options  *Options
		validate func(*testing.T, *cobra.Command)
	}{
		{
			name: "default command creation",
			options: NewOptions(
				WithContext(ctx),
				WithLogger(logger),
			),
			validate: func(t *testing.T, cmd *cobra.Command) {
				require.Equal(t, "cyclemark", cmd.Name())
				require.Contains(t, cmd.Short, "CPU cycle profiler")
				require.True(t, cmd.HasSubCommands())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewCommand(tt.options)
			require.NotNil(t, cmd)

			if tt.validate != nil {
				tt.validate(t, cmd)
			}
		})
	}
}

func TestCommandFlags(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	flag := cmd.PersistentFlags().Lookup("log-level")
	require.NotNil(t, flag)
	require.Equal(t, "string", flag.Value.Type())
	require.Equal(t, "info", flag.DefValue)
	require.Contains(t, flag.Usage, "log level")
}

func TestCommandSubcommands(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	expectedSubcommands := []string{"bench", "calibrate"}
	actualSubcommands := make([]string, 0)

	for _, subCmd := range cmd.Commands() {
		actualSubcommands = append(actualSubcommands, subCmd.Name())
	}

	for _, expected := range expectedSubcommands {
		require.Contains(t, actualSubcommands, expected)
	}
}

func TestCommandHelp(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{"--help"})

	require.NoError(t, cmd.Execute())

	helpOutput := output.String()
	require.Contains(t, helpOutput, "cyclemark")
	require.Contains(t, helpOutput, "Available Commands:")
	require.Contains(t, helpOutput, "bench")
	require.Contains(t, helpOutput, "calibrate")
}

func TestCommandInvalidFlag(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	var output bytes.Buffer
	cmd.SetErr(&output)
	cmd.SetArgs([]string{"--invalid-flag"})

	require.Error(t, cmd.Execute())
	require.Contains(t, output.String(), "unknown flag")
}

func TestCommandExecutionWithoutSubcommand(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())
	require.Contains(t, output.String(), "Available Commands:")
}

func TestCommandDisableAutoGenTag(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	require.True(t, NewCommand(opts).DisableAutoGenTag)
}

func TestBenchValidationThroughRoot(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"bench", "--rounds=0"})

	require.ErrorIs(t, cmd.Execute(), bench.ErrRounds)
}

func TestBenchRunThroughRoot(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"bench", "--rounds=2", "--size=4096"})

	require.NoError(t, cmd.Execute())
}

func TestCalibrateRunThroughRoot(t *testing.T) {
	opts := NewOptions(WithContext(context.Background()), WithLogger(log.Nop()))
	cmd := NewCommand(opts)

	cmd.SetOut(new(bytes.Buffer))
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs([]string{"calibrate", "--samples=1", "--window=2ms"})

	require.NoError(t, cmd.Execute())
}
