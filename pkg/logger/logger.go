package logger

import (
	"io"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"
)

// Fields represents a map of fields for structured logging
type Fields = logrus.Fields

// New creates a logrus logger with the given level and format ("json" or "text").
func New(level, format string, out io.Writer) (*logrus.Logger, error) {
	log := logrus.New()

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	log.SetLevel(lvl)

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	default:
		log.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
		})
	}

	if out == nil {
		out = os.Stdout
	}
	log.SetOutput(out)
	return log, nil
}

// RequestLogger returns an echo middleware that writes one entry per request.
// profileKey names the echo context key holding the authenticated profile id, if any.
func RequestLogger(log *logrus.Logger, profileKey string) echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogRemoteIP:  true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := Fields{
				"method":     v.Method,
				"uri":        v.URI,
				"status":     v.Status,
				"latency_ms": float64(v.Latency) / float64(time.Millisecond),
				"request_id": v.RequestID,
				"remote_ip":  v.RemoteIP,
				"type":       "request",
			}
			if id, ok := c.Get(profileKey).(string); ok && id != "" {
				fields["profile_id"] = id
			}
			entry := log.WithFields(fields)
			switch {
			case v.Error != nil && v.Status >= 500:
				entry.WithError(v.Error).Error("HTTP request")
			case v.Status >= 400:
				entry.Warn("HTTP request")
			default:
				entry.Info("HTTP request")
			}
			return nil
		},
	})
}
