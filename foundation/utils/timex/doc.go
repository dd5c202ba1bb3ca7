// Package timex provides named time layouts for templates.
//
// Package: timex
// Title: Time Formatting
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Usage:
//   timex.Format(now, "european")      // "25.12.2023 15:30:45"
//   timex.Format(now, "iso8601-date")  // "2023-12-25"
//   timex.Format(now, "2006/01")       // Go layout, "2023/12"
package timex
