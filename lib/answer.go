package lib

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	HeaderContentType  = "content-type"
	HeaderCacheControl = "cache-control"

	ContentTypeText = "text/plain; charset=utf-8"
	CacheNoStore    = "no-store"
)

// ErrReadFailure is wrapped by every error Handle returns.
var ErrReadFailure = errors.New("ErrReadFailure")

// Request carries nothing. The answer does not depend on method, headers,
// query or body.
type Request struct{}

type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       []byte
}

type Handler struct {
	artifact Artifact
}

func NewHandler(artifact Artifact) *Handler {
	return &Handler{artifact: artifact}
}

// Handle reads the whole artifact and returns it unmodified.
func (h *Handler) Handle(ctx context.Context, _ Request) (*Response, error) {
	var d *Debug
	if doDebug {
		d = &Debug{start: time.Now(), name: "Handle"}
		defer func() { d.Log() }()
	}
	body, err := h.artifact.Read(ctx)
	if err != nil {
		err = fmt.Errorf("%w: %s: %w", ErrReadFailure, h.artifact, err)
		Logger.Println("error:", err)
		return nil, err
	}
	if d != nil {
		d.Bytes = len(body)
	}
	return &Response{
		StatusCode: http.StatusOK,
		Headers: map[string]string{
			HeaderContentType:  ContentTypeText,
			HeaderCacheControl: CacheNoStore,
		},
		Body: body,
	}, nil
}
