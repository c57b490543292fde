package console

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
)

// failWriter fails every write
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestANSI_WriteLine(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlain(&buf)

	if err := c.WriteLine("hello"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	if got, want := buf.String(), "hello\n"; got != want {
		t.Errorf("WriteLine() wrote %q, want %q", got, want)
	}
}

func TestANSI_ColorEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := &ANSI{w: &buf, colors: true}

	c.SetForegroundColor(color.FgRed)
	c.SetBackgroundColor(color.BgRed)
	if err := c.WriteLine("boom"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	c.ResetColor()

	want := "\x1b[31m\x1b[41mboom\n\x1b[0m"
	if got := buf.String(); got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestANSI_PlainSuppressesEscapes(t *testing.T) {
	var buf bytes.Buffer
	c := NewPlain(&buf)

	c.SetForegroundColor(color.FgRed)
	c.WriteLine("ok")
	c.ResetColor()

	if got, want := buf.String(), "ok\n"; got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestNewANSI_WritesText(t *testing.T) {
	var buf bytes.Buffer
	c := NewANSI(&buf)

	if err := c.WriteLine("text"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	// Color enablement tracks the global color.NoColor; the text
	// itself is always present.
	if !bytes.Contains(buf.Bytes(), []byte("text\n")) {
		t.Errorf("Expected text in output, got %q", buf.String())
	}
}

func TestWrapFile_NonTTYIsColorless(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out")
	f, err := os.Create(name)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	defer f.Close()

	c := wrapFile(f)
	if c.colors {
		t.Error("Expected color disabled for a non-TTY file")
	}

	c.SetForegroundColor(color.FgRed)
	if err := c.WriteLine("plain"); err != nil {
		t.Fatalf("WriteLine() error = %v", err)
	}
	c.ResetColor()

	data, err := os.ReadFile(name)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if got, want := string(data), "plain\n"; got != want {
		t.Errorf("Expected %q without escapes, got %q", want, got)
	}
}

func TestNewStdoutAndStderr(t *testing.T) {
	if NewStdout() == nil {
		t.Error("NewStdout() returned nil")
	}
	if NewStderr() == nil {
		t.Error("NewStderr() returned nil")
	}
}

func TestANSI_WriteError(t *testing.T) {
	c := NewPlain(failWriter{})

	err := c.WriteLine("doomed")
	if err == nil {
		t.Fatal("Expected error from failing writer")
	}
	if err.Error() != "write failed" {
		t.Errorf("Expected the writer's error unmodified, got %v", err)
	}
}
