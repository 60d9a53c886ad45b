/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package logs

import (
	"io"
	"sync"
)

// sourcedWriter turns any writer into a WriterWithSource. The source is only recorded.
type sourcedWriter struct {
	mu     sync.Mutex
	writer io.Writer
	source string
}

func (w *sourcedWriter) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.writer.Write(p)
}

func (w *sourcedWriter) Close() error {
	if closer, ok := w.writer.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

func (w *sourcedWriter) SetSource(source string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.source = source
	return nil
}

// NewWriterWithSource wraps a writer so that it can be used by loggers requiring a WriterWithSource.
// Writes are serialised.
func NewWriterWithSource(writer io.Writer) WriterWithSource {
	if ws, ok := writer.(WriterWithSource); ok {
		return ws
	}
	if writer == nil {
		writer = io.Discard
	}
	return &sourcedWriter{writer: writer}
}
