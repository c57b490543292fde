package benchmark

import (
	"io"
	"log/slog"
	"testing"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tvanholt/consolog/console"
	"github.com/tvanholt/consolog/core"
	"github.com/tvanholt/consolog/logger"
)

// ---------------------------------------------------------------------------
// Helpers – identical sink for every framework (io.Discard / no-op console)
// ---------------------------------------------------------------------------

// newConsologLogger returns a consolog logger writing plain text to
// io.Discard.
func newConsologLogger() *logger.Logger {
	p := logger.NewProvider(logger.Config{Target: console.NewPlain(io.Discard)})
	return p.CreateLogger("bench")
}

// newZapLogger returns a zap.Logger writing console output to io.Discard.
func newZapLogger() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.DebugLevel)
	return zap.New(zc)
}

// newSlogLogger returns an slog.Logger writing text to io.Discard.
func newSlogLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// newLogrusLogger returns a logrus.Logger writing text to io.Discard.
func newLogrusLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{})
	l.SetLevel(logrus.DebugLevel)
	return l
}

// newZerologLogger returns a zerolog.Logger writing to io.Discard.
func newZerologLogger() zerolog.Logger {
	return zerolog.New(io.Discard).Level(zerolog.DebugLevel)
}

// ---------------------------------------------------------------------------
// Scenario 1 – Info message, no fields
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoNoFields(b *testing.B) {
	b.Run("consolog", func(b *testing.B) {
		l := newConsologLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("benchmark message")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info().Msg("benchmark message")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 2 – Info message with three fields
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_InfoThreeFields(b *testing.B) {
	b.Run("consolog", func(b *testing.B) {
		l := newConsologLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				logger.String("method", "GET"),
				logger.String("path", "/health"),
				logger.Int("status", 200),
			)
		}
	})

	b.Run("zap", func(b *testing.B) {
		l := newZapLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				zap.String("method", "GET"),
				zap.String("path", "/health"),
				zap.Int("status", 200),
			)
		}
	})

	b.Run("slog", func(b *testing.B) {
		l := newSlogLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info("request handled",
				slog.String("method", "GET"),
				slog.String("path", "/health"),
				slog.Int("status", 200),
			)
		}
	})

	b.Run("logrus", func(b *testing.B) {
		l := newLogrusLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.WithFields(logrus.Fields{
				"method": "GET",
				"path":   "/health",
				"status": 200,
			}).Info("request handled")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := newZerologLogger()
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Info().
				Str("method", "GET").
				Str("path", "/health").
				Int("status", 200).
				Msg("request handled")
		}
	})
}

// ---------------------------------------------------------------------------
// Scenario 3 – disabled level
// ---------------------------------------------------------------------------

func BenchmarkCompetitive_Disabled(b *testing.B) {
	b.Run("consolog", func(b *testing.B) {
		p := logger.NewProvider(logger.Config{
			Target: console.NewPlain(io.Discard),
			Filter: logger.MinimumLevel(core.CriticalLevel),
		})
		l := p.CreateLogger("bench")
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Debug("dropped")
		}
	})

	b.Run("zap", func(b *testing.B) {
		enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		zc := zapcore.NewCore(enc, zapcore.AddSync(io.Discard), zap.ErrorLevel)
		l := zap.New(zc)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Debug("dropped")
		}
	})

	b.Run("zerolog", func(b *testing.B) {
		l := zerolog.New(io.Discard).Level(zerolog.ErrorLevel)
		b.ReportAllocs()
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			l.Debug().Msg("dropped")
		}
	})
}
