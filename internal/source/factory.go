package source

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Environment variables:
//
//	ANTHROMORPH_TAXONOMY_SOURCE   embedded|fs|s3|sqlite|postgres (default embedded)
//	ANTHROMORPH_TAXONOMY_PATH     fs: document path
//	ANTHROMORPH_TAXONOMY_VERSION  sqlite/postgres: pinned version (default latest)
//	ANTHROMORPH_S3_BUCKET         s3: bucket (required)
//	ANTHROMORPH_S3_KEY            s3: object key (required)
//	ANTHROMORPH_S3_REGION         s3: region (default us-east-1)
//	ANTHROMORPH_S3_ENDPOINT       s3: custom endpoint, for MinIO-alikes
//	ANTHROMORPH_S3_PATH_STYLE     s3: true|false (default false)
//	ANTHROMORPH_S3_ACCESS_KEY     s3: static credentials (default chain otherwise)
//	ANTHROMORPH_S3_SECRET_KEY     s3: static credentials
//	ANTHROMORPH_SQLITE_PATH       sqlite: database file
//	ANTHROMORPH_POSTGRES_DSN      postgres: connection string

// Open selects a taxonomy source from the process environment. An unset
// or empty selector means the embedded dataset; the memory driver has no
// environment form.
func Open(ctx context.Context) (Source, error) {
	driver := Driver(strings.ToLower(strings.TrimSpace(os.Getenv("ANTHROMORPH_TAXONOMY_SOURCE"))))
	switch driver {
	case "", DriverEmbedded:
		return NewEmbedded(), nil
	case DriverFS:
		return NewFS(os.Getenv("ANTHROMORPH_TAXONOMY_PATH"))
	case DriverS3:
		return NewS3(ctx, S3Config{
			Bucket:          os.Getenv("ANTHROMORPH_S3_BUCKET"),
			Key:             os.Getenv("ANTHROMORPH_S3_KEY"),
			Region:          os.Getenv("ANTHROMORPH_S3_REGION"),
			Endpoint:        os.Getenv("ANTHROMORPH_S3_ENDPOINT"),
			AccessKeyID:     os.Getenv("ANTHROMORPH_S3_ACCESS_KEY"),
			SecretAccessKey: os.Getenv("ANTHROMORPH_S3_SECRET_KEY"),
			PathStyle:       strings.EqualFold(os.Getenv("ANTHROMORPH_S3_PATH_STYLE"), "true"),
		})
	case DriverSQLite:
		return NewSQLite(os.Getenv("ANTHROMORPH_SQLITE_PATH"), os.Getenv("ANTHROMORPH_TAXONOMY_VERSION"))
	case DriverPostgres:
		return NewPostgres(os.Getenv("ANTHROMORPH_POSTGRES_DSN"), os.Getenv("ANTHROMORPH_TAXONOMY_VERSION"))
	default:
		return nil, fmt.Errorf("unknown taxonomy source driver %q", driver)
	}
}
