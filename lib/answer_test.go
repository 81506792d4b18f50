package lib

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofrs/uuid"
	"golang.org/x/sync/errgroup"
)

func writeArtifact(t *testing.T, content string) string {
	t.Helper()
	pth := filepath.Join(t.TempDir(), DefaultArtifactName)
	err := os.WriteFile(pth, []byte(content), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return pth
}

func checkHeaders(t *testing.T, resp *Response) {
	t.Helper()
	if len(resp.Headers) != 2 {
		t.Errorf("got headers %v, want exactly two", resp.Headers)
	}
	if resp.Headers["content-type"] != "text/plain; charset=utf-8" {
		t.Errorf("content-type: got %q", resp.Headers["content-type"])
	}
	if resp.Headers["cache-control"] != "no-store" {
		t.Errorf("cache-control: got %q", resp.Headers["cache-control"])
	}
}

func TestHandleReturnsArtifact(t *testing.T) {
	type test struct {
		name    string
		content string
	}
	tests := []test{
		{"single line", `key = "alpha"`},
		{"trailing newline", "key = \"alpha\"\n"},
		{"empty", ""},
		{"multi line", "[answer]\nvalue = 42\n\n# comment\n"},
		{"unicode", "answer = \"réponse ✓\"\n"},
		{"crlf kept", "a = 1\r\nb = 2\r\n"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			h := NewHandler(&FileArtifact{Path: writeArtifact(t, test.content)})
			resp, err := h.Handle(context.Background(), Request{})
			if err != nil {
				t.Fatal(err)
			}
			if resp.StatusCode != 200 {
				t.Errorf("got status %d, want 200", resp.StatusCode)
			}
			if string(resp.Body) != test.content {
				t.Errorf("got:\n%q\nwant:\n%q\n", resp.Body, test.content)
			}
			checkHeaders(t, resp)
		})
	}
}

func TestHandleReadsCurrentContent(t *testing.T) {
	pth := writeArtifact(t, "first\n")
	h := NewHandler(&FileArtifact{Path: pth})
	for range 3 {
		want := uuid.Must(uuid.NewV4()).String()
		err := os.WriteFile(pth, []byte(want), 0o644)
		if err != nil {
			t.Fatal(err)
		}
		resp, err := h.Handle(context.Background(), Request{})
		if err != nil {
			t.Fatal(err)
		}
		if string(resp.Body) != want {
			t.Errorf("got %q, want %q", resp.Body, want)
		}
	}
}

func TestHandleHeadersNotShared(t *testing.T) {
	h := NewHandler(&FileArtifact{Path: writeArtifact(t, "x")})
	first, err := h.Handle(context.Background(), Request{})
	if err != nil {
		t.Fatal(err)
	}
	first.Headers["cache-control"] = "max-age=60"
	second, err := h.Handle(context.Background(), Request{})
	if err != nil {
		t.Fatal(err)
	}
	checkHeaders(t, second)
}

func TestHandleMissingArtifact(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "missing.toml")
	h := NewHandler(&FileArtifact{Path: pth})
	resp, err := h.Handle(context.Background(), Request{})
	if err == nil {
		t.Fatalf("expected error, got response %+v", resp)
	}
	if resp != nil {
		t.Errorf("expected no response alongside error, got %+v", resp)
	}
	if !errors.Is(err, ErrReadFailure) {
		t.Errorf("expected ErrReadFailure, got %v", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("expected cause fs.ErrNotExist, got %v", err)
	}
}

func TestHandleDeletedArtifact(t *testing.T) {
	pth := writeArtifact(t, "here\n")
	h := NewHandler(&FileArtifact{Path: pth})
	_, err := h.Handle(context.Background(), Request{})
	if err != nil {
		t.Fatal(err)
	}
	err = os.Remove(pth)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := h.Handle(context.Background(), Request{})
	if !errors.Is(err, ErrReadFailure) {
		t.Fatalf("expected ErrReadFailure, got %v %+v", err, resp)
	}
}

func TestHandleUnreadableArtifact(t *testing.T) {
	t.Run("directory", func(t *testing.T) {
		h := NewHandler(&FileArtifact{Path: t.TempDir()})
		_, err := h.Handle(context.Background(), Request{})
		if !errors.Is(err, ErrReadFailure) {
			t.Errorf("expected ErrReadFailure, got %v", err)
		}
	})
	t.Run("permission", func(t *testing.T) {
		if os.Geteuid() == 0 {
			t.Skip("root ignores file permissions")
		}
		pth := writeArtifact(t, "secret\n")
		err := os.Chmod(pth, 0)
		if err != nil {
			t.Fatal(err)
		}
		h := NewHandler(&FileArtifact{Path: pth})
		_, err = h.Handle(context.Background(), Request{})
		if !errors.Is(err, ErrReadFailure) {
			t.Errorf("expected ErrReadFailure, got %v", err)
		}
		if !errors.Is(err, fs.ErrPermission) {
			t.Errorf("expected cause fs.ErrPermission, got %v", err)
		}
	})
}

func TestHandleConcurrent(t *testing.T) {
	content := `key = "alpha"` + "\n"
	h := NewHandler(&FileArtifact{Path: writeArtifact(t, content)})
	bodies := make([]string, 32)
	var g errgroup.Group
	for i := range bodies {
		g.Go(func() error {
			resp, err := h.Handle(context.Background(), Request{})
			if err != nil {
				return err
			}
			if resp.StatusCode != 200 {
				return errors.New("non 200 status")
			}
			bodies[i] = string(resp.Body)
			return nil
		})
	}
	err := g.Wait()
	if err != nil {
		t.Fatal(err)
	}
	for i, body := range bodies {
		if body != content {
			t.Errorf("invocation %d got %q, want %q", i, body, content)
		}
	}
}
