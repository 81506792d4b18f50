package lib

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultArtifactName = "answer.toml"
	EnvArtifact         = "ANSWER_PATH"
	EnvTaskRoot         = "LAMBDA_TASK_ROOT"
)

type Config struct {
	Artifact        string `yaml:"artifact,omitempty"`
	Addr            string `yaml:"addr,omitempty"`
	Region          string `yaml:"region,omitempty"`
	AccessKeyID     string `yaml:"access-key-id,omitempty"`
	SecretAccessKey string `yaml:"secret-access-key,omitempty"`
}

// ConfigLoad reads a yaml config, expanding ${VAR} references from the
// environment first. An empty file is an empty config.
func ConfigLoad(pth string) (*Config, error) {
	data, err := os.ReadFile(pth)
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	conf := &Config{}
	decoder := yaml.NewDecoder(strings.NewReader(os.ExpandEnv(string(data))))
	decoder.KnownFields(true)
	err = decoder.Decode(conf)
	if err != nil && !errors.Is(err, io.EOF) {
		Logger.Println("error:", err)
		return nil, err
	}
	return conf, nil
}

func ConfigFromEnv() *Config {
	return &Config{Artifact: os.Getenv(EnvArtifact)}
}

// ArtifactRoot is the deployment root. On lambda that is the task root,
// otherwise two directories above the directory holding the executable,
// which lives at netlify/functions/answer in the bundle.
func ArtifactRoot() (string, error) {
	if root := os.Getenv(EnvTaskRoot); root != "" {
		return filepath.Abs(root)
	}
	exe, err := os.Executable()
	if err != nil {
		Logger.Println("error:", err)
		return "", err
	}
	exe, err = filepath.EvalSymlinks(exe)
	if err != nil {
		Logger.Println("error:", err)
		return "", err
	}
	return filepath.Join(filepath.Dir(exe), "..", ".."), nil
}

// NewArtifact resolves the configured location once. The result is what
// every invocation reads.
func NewArtifact(ctx context.Context, conf *Config) (Artifact, error) {
	location := conf.Artifact
	if location == "" {
		location = DefaultArtifactName
	}
	root, err := ArtifactRoot()
	if err != nil {
		return nil, err
	}
	artifact, err := ParseArtifact(location, root)
	if err != nil {
		Logger.Println("error:", err)
		return nil, err
	}
	s3Artifact, ok := artifact.(*S3Artifact)
	if !ok {
		return artifact, nil
	}
	switch {
	case conf.AccessKeyID != "" && conf.SecretAccessKey != "":
		s3Artifact.Client, err = S3ClientExplicit(ctx, conf.AccessKeyID, conf.SecretAccessKey, conf.Region)
	case conf.Region != "":
		s3Artifact.Client, err = S3ClientRegion(ctx, conf.Region)
	default:
		s3Artifact.Client, err = S3Client(ctx)
	}
	if err != nil {
		return nil, err
	}
	return s3Artifact, nil
}

// Merge overlays non-empty fields of other onto c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if other.Artifact != "" {
		c.Artifact = other.Artifact
	}
	if other.Addr != "" {
		c.Addr = other.Addr
	}
	if other.Region != "" {
		c.Region = other.Region
	}
	if other.AccessKeyID != "" {
		c.AccessKeyID = other.AccessKeyID
	}
	if other.SecretAccessKey != "" {
		c.SecretAccessKey = other.SecretAccessKey
	}
}
