package scad

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Render returns the code for a sequence of top-level objects, each followed
// by a newline.
func Render(objects ...*Object) string {
	var b strings.Builder
	writeObjects(&b, objects)
	return b.String()
}

func writeObjects(b *strings.Builder, objects []*Object) {
	for _, o := range objects {
		o.WriteCode(b)
		b.WriteByte('\n')
	}
}

// Document is a complete .scad file: top-level objects plus the global
// $fn detail level.
type Document struct {
	objects []*Object

	// Detail is written as $fn=<Detail>; at the top of the file when > 0.
	Detail int
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Add appends top-level objects.
func (d *Document) Add(objects ...*Object) {
	d.objects = append(d.objects, objects...)
}

// SetDetail sets the $fn value written at the top of the file.
func (d *Document) SetDetail(fn int) {
	d.Detail = fn
}

// Objects returns the top-level objects. The slice must not be modified.
func (d *Document) Objects() []*Object { return d.objects }

// Code returns the full text of the document.
func (d *Document) Code() string {
	var b strings.Builder
	if d.Detail > 0 {
		b.WriteString("$fn=")
		b.WriteString(strconv.Itoa(d.Detail))
		b.WriteString(";\n")
	}
	writeObjects(&b, d.objects)
	return b.String()
}

// WriteTo writes the document text to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.Code())
	return int64(n), err
}

// Save writes the document to path. Failures are *PersistError.
func (d *Document) Save(path string) error {
	return WriteFile(path, d.Code())
}

// PersistError reports a failure to store generated code. Generating code
// never fails; only storing it can.
type PersistError struct {
	Path string
	Err  error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saving %s: %v", e.Path, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// WriteFile writes code to path verbatim, creating parent directories.
func WriteFile(path, code string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &PersistError{Path: path, Err: err}
		}
	}
	if err := os.WriteFile(path, []byte(code), 0644); err != nil {
		return &PersistError{Path: path, Err: err}
	}
	return nil
}
