// Copyright 2025 Root Lock Defense
// SPDX-License-Identifier: AGPL-3.0-or-later

package shared

import (
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/lmittmann/tint"
	"gorm.io/gorm"
)

type Server = *echo.Group
type MiddlewareFunc = echo.MiddlewareFunc
type Context = echo.Context
type DB = *gorm.DB

func Ptr[T any](t T) *T {
	return &t
}

func SanitizeParam(s string) string {
	// remove trailing or leading slashes
	return strings.Trim(s, "/")
}

// InitLogger initializes the logger with a tint handler.
// tint is a simple logging library that allows to add colors to the log output.
// this is obviously not required, but it makes the logs easier to read.
func InitLogger() {
	w := os.Stderr

	slog.SetDefault(slog.New(
		tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			AddSource:  true,
			TimeFormat: time.Kitchen,
		}),
	))
}

func LoadConfig() error {
	return godotenv.Load()
}

var V = validator.New()

// GetEnv returns the value of the environment variable or the provided
// fallback when unset or blank.
func GetEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// EvidenceDir is the directory PoC uploads are stored in.
func EvidenceDir() string {
	return GetEnv("EVIDENCE_DIR", "/app/uploads/vapt-pocs")
}

// ReportsDir is the directory generated report artifacts are written to.
func ReportsDir() string {
	return GetEnv("REPORTS_DIR", "/app/reports")
}

// ReportFontFile points to the TTF used by the PDF renderer.
func ReportFontFile() string {
	return GetEnv("REPORT_FONT_FILE", "/app/fonts/DejaVuSans.ttf")
}

func JWTSecret() []byte {
	return []byte(GetEnv("JWT_SECRET", "defectrix-dev-secret"))
}
