// Package bootstrap builds the optional storage and cloud adapters from the
// loaded configuration. Shared by the api and ingestor binaries.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/cloud"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/config"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/database"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/repository"
	"github.com/ANIKETSHETTY47/hydrogen-ops-dashboard/internal/service"
)

// Archive opens the configured insight archive. The returned close func is
// never nil. A nil Archive means archiving is off.
func Archive(ctx context.Context) (service.Archive, func(), error) {
	noop := func() {}
	switch config.ArchiveBackend() {
	case config.ArchivePostgres:
		db, err := database.Connect(ctx, config.DatabaseDSN())
		if err != nil {
			return nil, noop, err
		}
		if err := database.Migrate(ctx, db); err != nil {
			db.Close()
			return nil, noop, err
		}
		log.Info().Msg("archiving insight reports to postgres")
		return repository.New(db), func() { db.Close() }, nil
	case config.ArchiveDynamoDB:
		c, err := cloud.NewDynamoDBClient(ctx, config.AWSRegion(), config.DynamoDBTable())
		if err != nil {
			return nil, noop, err
		}
		log.Info().Str("table", config.DynamoDBTable()).Msg("archiving insight reports to dynamodb")
		return c, noop, nil
	case config.ArchiveNone:
		return nil, noop, nil
	default:
		return nil, noop, fmt.Errorf("unknown archive backend %q", config.ArchiveBackend())
	}
}

// Cloud returns the S3 export store and the SNS notifier when
// USE_CLOUD_SERVICES is set. Either is nil when its resource is not
// configured.
func Cloud(ctx context.Context) (service.ObjectStore, service.Notifier, error) {
	if !config.UseCloudServices() {
		return nil, nil, nil
	}
	var (
		objects  service.ObjectStore
		notifier service.Notifier
	)
	if bucket := config.S3Bucket(); bucket != "" {
		s3c, err := cloud.NewS3Client(ctx, config.AWSRegion(), bucket)
		if err != nil {
			return nil, nil, err
		}
		objects = s3c
	}
	if arn := config.SNSTopicArn(); arn != "" {
		snsc, err := cloud.NewSNSClient(ctx, config.AWSRegion(), arn)
		if err != nil {
			return nil, nil, err
		}
		notifier = snsc
	} else {
		log.Warn().Msg("AWS_SNS_TOPIC_ARN not set; recommendation digests disabled")
	}
	return objects, notifier, nil
}
