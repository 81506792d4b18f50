package lib

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// Artifact is the read-only text served by the handler.
type Artifact interface {
	Read(ctx context.Context) ([]byte, error)
	String() string
}

type FileArtifact struct {
	Path string
}

func (a *FileArtifact) Read(_ context.Context) ([]byte, error) {
	return os.ReadFile(a.Path)
}

func (a *FileArtifact) String() string {
	return a.Path
}

type S3GetObjectAPI interface {
	GetObject(ctx context.Context, input *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type S3Artifact struct {
	Bucket string
	Key    string
	Client S3GetObjectAPI
}

func (a *S3Artifact) Read(ctx context.Context) ([]byte, error) {
	if doDebug {
		d := &Debug{start: time.Now(), name: "S3Artifact.Read"}
		defer d.Log()
	}
	client := a.Client
	if client == nil {
		var err error
		client, err = S3Client(ctx)
		if err != nil {
			return nil, err
		}
	}
	out, err := client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(a.Bucket),
		Key:    aws.String(a.Key),
	})
	if err != nil {
		return nil, err
	}
	defer func() { _ = out.Body.Close() }()
	return io.ReadAll(out.Body)
}

func (a *S3Artifact) String() string {
	return "s3://" + a.Bucket + "/" + a.Key
}

// ParseArtifact turns a location into an Artifact. An s3:// location needs
// both bucket and key. Anything else is a file path, made absolute against
// root when relative.
func ParseArtifact(location, root string) (Artifact, error) {
	if location == "" {
		return nil, fmt.Errorf("empty artifact location")
	}
	if strings.HasPrefix(location, "s3://") {
		bucket, key, err := SplitOnce(strings.TrimPrefix(location, "s3://"), "/")
		if err != nil || bucket == "" || key == "" {
			return nil, fmt.Errorf("s3 artifact needs s3://bucket/key, got: %s", location)
		}
		return &S3Artifact{Bucket: bucket, Key: key}, nil
	}
	if !filepath.IsAbs(location) {
		location = filepath.Join(root, location)
	}
	return &FileArtifact{Path: filepath.Clean(location)}, nil
}
