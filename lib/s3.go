package lib

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

var s3Client *s3.Client
var s3ClientLock sync.RWMutex
var s3ClientsRegional = make(map[string]*s3.Client)

func S3Client(ctx context.Context) (*s3.Client, error) {
	s3ClientLock.Lock()
	defer s3ClientLock.Unlock()
	if s3Client == nil {
		cfg, err := AwsConfig(ctx)
		if err != nil {
			return nil, err
		}
		s3Client = s3.NewFromConfig(cfg)
	}
	return s3Client, nil
}

func S3ClientRegion(ctx context.Context, region string) (*s3.Client, error) {
	s3ClientLock.Lock()
	defer s3ClientLock.Unlock()
	client, ok := s3ClientsRegional[region]
	if !ok {
		cfg, err := AwsConfigRegion(ctx, region)
		if err != nil {
			return nil, err
		}
		client = s3.NewFromConfig(cfg)
		s3ClientsRegional[region] = client
	}
	return client, nil
}

func S3ClientExplicit(ctx context.Context, accessKeyID, accessKeySecret, region string) (*s3.Client, error) {
	cfg, err := AwsConfigExplicit(ctx, accessKeyID, accessKeySecret, region)
	if err != nil {
		return nil, err
	}
	return s3.NewFromConfig(cfg), nil
}
