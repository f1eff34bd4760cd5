// SPDX-License-Identifier: MIT

package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger is the global sugared logger.
	Logger *zap.SugaredLogger
	// JSONOutput records whether Initialize selected JSON output.
	JSONOutput bool
)

func init() {
	Logger = zap.NewNop().Sugar()
}

// Verbosity levels counted from repeated -v flags.
const (
	VerbosityUser  = 0 // results and errors only
	VerbosityInfo  = 1 // -v: progress, backend selection
	VerbosityDebug = 2 // -vv: polling, request details
)

// VerbosityToLevel maps a -v count to a zap level: warn, info, then debug.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch {
	case verbosity <= VerbosityUser:
		return zapcore.WarnLevel
	case verbosity == VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// Initialize replaces Logger. jsonOutput selects zap's production JSON
// encoder on stdout; otherwise a console encoder writes to stderr so command
// output on stdout stays clean.
func Initialize(jsonOutput bool, verbosity int) error {
	level := zap.NewAtomicLevelAt(VerbosityToLevel(verbosity))

	var (
		zapLogger *zap.Logger
		err       error
	)
	if jsonOutput {
		config := zap.NewProductionConfig()
		config.Level = level
		config.OutputPaths = []string{"stdout"}
		config.ErrorOutputPaths = []string{"stderr"}
		zapLogger, err = config.Build()
	} else {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoderConfig.EncodeCaller = nil
		zapLogger = zap.New(zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.AddSync(os.Stderr),
			level,
		))
	}
	if err != nil {
		return err
	}

	JSONOutput = jsonOutput
	Logger = zapLogger.Sugar()

	return nil
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func Sync() {
	_ = Logger.Sync()
}
