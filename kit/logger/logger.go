package logger

import (
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

type Level = zapcore.Level

const (
	DebugLevel = zapcore.DebugLevel
	InfoLevel  = zapcore.InfoLevel
	WarnLevel  = zapcore.WarnLevel
	ErrorLevel = zapcore.ErrorLevel
)

type Logger struct {
	*zap.Logger
}

type options struct {
	noStdout  bool
	rotateLog *lumberjack.Logger
}

type Option func(*options)

var NoStdout Option = func(o *options) {
	o.noStdout = true
}

func WithRotateLog(maxSizeMB, maxBackups, maxAgeDays int) Option {
	return func(o *options) {
		o.rotateLog = &lumberjack.Logger{
			MaxSize:    maxSizeMB,
			MaxBackups: maxBackups,
			MaxAge:     maxAgeDays,
		}
	}
}

func NewLogger(filePath string, level Level, opts ...Option) (*Logger, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoder := zapcore.NewJSONEncoder(encoderConfig)

	var fileWriter zapcore.WriteSyncer
	if o.rotateLog != nil {
		o.rotateLog.Filename = filePath
		fileWriter = zapcore.AddSync(o.rotateLog)
	} else {
		file, err := os.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file failed")
		}
		fileWriter = zapcore.AddSync(file)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, fileWriter, level),
	}
	if !o.noStdout {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level))
	}

	return &Logger{
		Logger: zap.New(zapcore.NewTee(cores...), zap.AddCaller()),
	}, nil
}

func (l *Logger) With(fields ...Field) *Logger {
	return &Logger{Logger: l.Logger.With(fields...)}
}
