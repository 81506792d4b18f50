package lib

import (
	"context"
	"sync"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

var awsCfg *aws.Config
var awsCfgLock sync.RWMutex
var awsCfgRegional = make(map[string]*aws.Config)

// SDK retries stay off. A failed read surfaces to the caller immediately.
func awsLoadOptions(region string) []func(*config.LoadOptions) error {
	opts := []func(*config.LoadOptions) error{
		config.WithRetryMaxAttempts(1),
	}
	if region != "" {
		opts = append(opts, config.WithRegion(region))
	}
	return opts
}

func AwsConfig(ctx context.Context) (aws.Config, error) {
	awsCfgLock.Lock()
	defer awsCfgLock.Unlock()
	if awsCfg == nil {
		cfg, err := config.LoadDefaultConfig(ctx, awsLoadOptions("")...)
		if err != nil {
			Logger.Println("error:", err)
			return aws.Config{}, err
		}
		awsCfg = &cfg
	}
	return *awsCfg, nil
}

func AwsConfigRegion(ctx context.Context, region string) (aws.Config, error) {
	awsCfgLock.Lock()
	defer awsCfgLock.Unlock()
	cfg, ok := awsCfgRegional[region]
	if !ok {
		loaded, err := config.LoadDefaultConfig(ctx, awsLoadOptions(region)...)
		if err != nil {
			Logger.Println("error:", err)
			return aws.Config{}, err
		}
		cfg = &loaded
		awsCfgRegional[region] = cfg
	}
	return *cfg, nil
}

func AwsConfigExplicit(ctx context.Context, accessKeyID, accessKeySecret, region string) (aws.Config, error) {
	opts := awsLoadOptions(region)
	opts = append(opts, config.WithCredentialsProvider(
		credentials.NewStaticCredentialsProvider(accessKeyID, accessKeySecret, ""),
	))
	cfg, err := config.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		Logger.Println("error:", err)
		return aws.Config{}, err
	}
	return cfg, nil
}
