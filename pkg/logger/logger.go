package logger

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm/logger"
)

var Logger = logrus.New()

type contextKey struct{}

func Init(environment string) {
	Logger.SetOutput(os.Stdout)
	if environment == "production" {
		Logger.SetFormatter(&logrus.JSONFormatter{})
		Logger.SetLevel(logrus.InfoLevel)
		return
	}
	Logger.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "15:04:05",
		ForceColors:     true,
		PadLevelText:    true,
	})
	Logger.SetLevel(logrus.DebugLevel)
}

func Close() {
	// stdout needs no teardown, kept so main can defer symmetrically
}

// ContextWithFields attaches log fields (request id and the like) to the
// context so downstream log lines carry them.
func ContextWithFields(ctx context.Context, fields map[string]interface{}) context.Context {
	existing := fieldsFromContext(ctx)
	merged := make(logrus.Fields, len(existing)+len(fields))
	for k, v := range existing {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return context.WithValue(ctx, contextKey{}, merged)
}

func fieldsFromContext(ctx context.Context) logrus.Fields {
	if ctx == nil {
		return nil
	}
	if fields, ok := ctx.Value(contextKey{}).(logrus.Fields); ok {
		return fields
	}
	return nil
}

// FromContext returns an entry carrying the fields previously attached with
// ContextWithFields.
func FromContext(ctx context.Context) *logrus.Entry {
	return Logger.WithFields(fieldsFromContext(ctx))
}

// InfoCtx logs with any fields attached to ctx, such as the request id.
func InfoCtx(ctx context.Context, msg string, fields map[string]interface{}) {
	FromContext(ctx).WithFields(logrus.Fields(fields)).Info(msg)
}

// ErrorCtx logs with any fields attached to ctx, such as the request id.
func ErrorCtx(ctx context.Context, msg string, fields map[string]interface{}) {
	FromContext(ctx).WithFields(logrus.Fields(fields)).Error(msg)
}

// DebugCtx logs with any fields attached to ctx, such as the request id.
func DebugCtx(ctx context.Context, msg string, fields map[string]interface{}) {
	FromContext(ctx).WithFields(logrus.Fields(fields)).Debug(msg)
}

func Info(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Info(msg)
}

func Error(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Error(msg)
}

func Warn(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Warn(msg)
}

func Debug(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Debug(msg)
}

func Fatal(msg string, fields map[string]interface{}) {
	Logger.WithFields(fields).Fatal(msg)
}

func GinLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		raw := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()
		if raw != "" {
			path += "?" + raw
		}

		fields := logrus.Fields{
			"ip":     c.ClientIP(),
			"method": c.Request.Method,
			"path":   path,
			"status": status,
			"took":   duration,
		}
		if requestID := c.GetString("request_id"); requestID != "" {
			fields["request_id"] = requestID
		}

		switch {
		case status >= 500:
			Logger.WithFields(fields).Error("Server error")
		case status >= 400:
			Logger.WithFields(fields).Warn("Client error")
		default:
			Logger.WithFields(fields).Info("Request completed")
		}
	}
}

type GormLogger struct {
	SlowThreshold time.Duration
}

func NewGormLogger() logger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
	}
}

func (l *GormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	Logger.Infof(msg, data...)
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	Logger.Warnf(msg, data...)
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	Logger.Errorf(msg, data...)
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()

	fields := logrus.Fields{
		"sql":  sql,
		"rows": rows,
		"time": elapsed,
	}
	switch {
	case err != nil:
		Logger.WithError(err).WithFields(fields).Error("Database query error")
	case elapsed > l.SlowThreshold:
		Logger.WithFields(fields).Warn("Slow query")
	default:
		Logger.WithFields(fields).Debug("Query executed")
	}
}
