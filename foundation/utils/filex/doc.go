// Package filex provides the file helpers of the template host: locating
// configuration files and writing generated artifacts atomically.
//
// Package: filex
// Title: File Utilities
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
package filex
