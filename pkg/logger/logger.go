package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Config มาจาก LOG_* env ผ่าน pkg/config
type Config struct {
	Level      string // debug, info, warn, error
	Format     string // json, text
	Output     string // stdout, file, both
	FilePath   string
	MaxSize    int // MB ต่อไฟล์ก่อน rotate
	MaxBackups int
	MaxAge     int // วัน
	Compress   bool
}

type ctxKey struct{}

// requestIDKey ใช้ฝัง request id ลง context ให้ *Context functions หยิบไปใส่ log
var requestIDKey ctxKey

var base *slog.Logger

var levelNames = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Init ตั้ง logger กลางของ process เรียกครั้งเดียวตอน start
// ก่อน Init ทุก convenience function ตกไปที่ slog.Default()
func Init(cfg Config) error {
	level, ok := levelNames[cfg.Level]
	if !ok {
		level = slog.LevelInfo
	}

	writer, err := newWriter(cfg)
	if err != nil {
		return err
	}

	opts := &slog.HandlerOptions{
		Level: level,
		// source ช่วยตอน debug แต่ทำ log prod บวม เปิดเฉพาะ level debug
		AddSource: level == slog.LevelDebug,
	}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(writer, opts)
	} else {
		handler = slog.NewJSONHandler(writer, opts)
	}

	base = slog.New(handler)
	slog.SetDefault(base)
	return nil
}

// newWriter ประกอบ output ตาม config: stdout, ไฟล์ (พร้อม rotation) หรือทั้งคู่
func newWriter(cfg Config) (io.Writer, error) {
	var writers []io.Writer

	if cfg.Output != "file" {
		writers = append(writers, os.Stdout)
	}

	if cfg.Output == "file" || cfg.Output == "both" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, err
		}
		writers = append(writers, &lumberjack.Logger{
			Filename:   cfg.FilePath,
			MaxSize:    cfg.MaxSize,
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAge,
			Compress:   cfg.Compress,
		})
	}

	if len(writers) == 1 {
		return writers[0], nil
	}
	return io.MultiWriter(writers...), nil
}

func current() *slog.Logger {
	if base == nil {
		return slog.Default()
	}
	return base
}

// ContextWithRequestID ฝัง request id ให้ทุก log ใน request เดียวกัน correlate ได้
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// fromContext คืน logger ที่ติด request_id ถ้า context มี
func fromContext(ctx context.Context) *slog.Logger {
	if requestID, ok := ctx.Value(requestIDKey).(string); ok && requestID != "" {
		return current().With("request_id", requestID)
	}
	return current()
}

func Debug(msg string, args ...any) {
	current().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	current().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	current().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	current().Error(msg, args...)
}

func InfoContext(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Info(msg, args...)
}

func WarnContext(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Warn(msg, args...)
}

func ErrorContext(ctx context.Context, msg string, args ...any) {
	fromContext(ctx).Error(msg, args...)
}
