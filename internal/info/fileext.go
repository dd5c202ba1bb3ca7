// File: fileext.go
// Title: File Name Decomposition
// Description: A file path broken into the parts templates commonly need:
//              name with and without extension, extension and parent
//              directory.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package info

import (
	"path/filepath"
	"strings"
)

// FileExt describes a file involved in template expansion
type FileExt struct {
	// Path is the path as given
	Path string

	// AbsolutePath is Path made absolute; equal to Path if that fails
	AbsolutePath string

	// Name is the last path element, e.g. "frames.c"
	Name string

	// RawName is Name without its extension, e.g. "frames"
	RawName string

	// Ext is the extension without the dot, e.g. "c". Empty if there is none.
	Ext string

	// Parent is the directory part of Path
	Parent string
}

// NewFileExt decomposes path
func NewFileExt(path string) *FileExt {
	name := filepath.Base(path)
	ext := filepath.Ext(name)

	// ".profile" has no extension
	if ext == name {
		ext = ""
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	return &FileExt{
		Path:         path,
		AbsolutePath: abs,
		Name:         name,
		RawName:      strings.TrimSuffix(name, ext),
		Ext:          strings.TrimPrefix(ext, "."),
		Parent:       filepath.Dir(path),
	}
}

// String returns the path as given
func (f *FileExt) String() string {
	return f.Path
}
