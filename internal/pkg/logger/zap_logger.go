package logger

import (
	"os"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/musafir-app/musafir/internal/pkg/models"
)

// ZapLogger wraps zap.Logger with service-level defaults.
type ZapLogger struct {
	*zap.Logger
	serviceName string
}

// NewZapLogger creates a JSON logger writing to stdout and, when configured,
// a log file.
func NewZapLogger(serviceName string, cfg models.LoggerConfig) (*ZapLogger, error) {
	level := zapcore.InfoLevel
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "timestamp",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewJSONEncoder(encoderConfig)
	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	if cfg.FilePath != "" {
		file, err := os.OpenFile(cfg.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	zapLogger := zap.New(
		zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	).With(zap.String("service", serviceName))

	return &ZapLogger{Logger: zapLogger, serviceName: serviceName}, nil
}

// NewNopLogger returns a logger that discards everything. Test helper.
func NewNopLogger() *ZapLogger {
	return &ZapLogger{Logger: zap.NewNop(), serviceName: "test"}
}

// ServiceName returns the service this logger reports as.
func (l *ZapLogger) ServiceName() string {
	return l.serviceName
}

// LogHTTPRequest emits a single access-log entry for a completed request.
func (l *ZapLogger) LogHTTPRequest(method, path, clientIP, userID, requestID string, statusCode int, latency time.Duration, err error) {
	fields := []Field{
		String("method", method),
		String("path", path),
		String("client_ip", clientIP),
		Int("status_code", statusCode),
		Duration("latency", latency),
	}
	if userID != "" {
		fields = append(fields, String("user_id", userID))
	}
	if requestID != "" {
		fields = append(fields, String("request_id", requestID))
	}
	if err != nil {
		fields = append(fields, Err(err))
		l.Error("HTTP request failed", fields...)
		return
	}
	if statusCode >= 500 {
		l.Error("HTTP request completed with server error", fields...)
	} else if statusCode >= 400 {
		l.Warn("HTTP request completed with client error", fields...)
	} else {
		l.Info("HTTP request completed", fields...)
	}
}

// Sync flushes buffered log entries.
func (l *ZapLogger) Sync() error {
	return l.Logger.Sync()
}
