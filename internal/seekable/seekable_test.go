// SPDX-License-Identifier: EPL-2.0

package seekable

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestFrom_PassesThroughSeekers(t *testing.T) {
	t.Parallel()

	r := bytes.NewReader([]byte("abc"))
	rs, err := From(r)
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}
	if rs != io.ReadSeeker(r) {
		t.Error("From() wrapped a reader that can already seek")
	}
}

func TestFrom_BuffersPlainReaders(t *testing.T) {
	t.Parallel()

	rs, err := From(io.LimitReader(strings.NewReader("hello world"), 5))
	if err != nil {
		t.Fatalf("From() error = %v", err)
	}

	if _, err := rs.Seek(1, io.SeekStart); err != nil {
		t.Fatalf("Seek() error = %v", err)
	}
	got, err := io.ReadAll(rs)
	if err != nil {
		t.Fatalf("ReadAll() error = %v", err)
	}
	if string(got) != "ello" {
		t.Errorf("ReadAll() = %q, want %q", got, "ello")
	}
}

func TestFrom_ReadError(t *testing.T) {
	t.Parallel()

	if _, err := From(errReader{}); err == nil {
		t.Error("From() error = nil, want read error")
	}
}
