// Package archive uploads finished Reports to S3 for long-term audit
// retention (SPEC_FULL.md §11). It is entirely optional: callers that
// never configure a bucket never construct an Archiver.
package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/spiffler33/taxhawk/internal/model"
)

// Archiver uploads Reports to a single S3 bucket.
type Archiver struct {
	uploader *manager.Uploader
	bucket   string
}

// New builds an Archiver for bucket in region, loading AWS credentials
// from the default provider chain (environment, shared config, or
// instance role — whichever the deployment environment supplies).
func New(ctx context.Context, bucket, region string) (*Archiver, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}
	client := s3.NewFromConfig(cfg)
	return &Archiver{
		uploader: manager.NewUploader(client),
		bucket:   bucket,
	}, nil
}

// Put uploads report as JSON under a key derived from its financial
// year and ID (see archiveKey), returning the object key written.
func (a *Archiver) Put(ctx context.Context, report model.Report) (string, error) {
	payload, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal report: %w", err)
	}

	key := archiveKey(report)
	_, err = a.uploader.Upload(ctx, &s3.PutObjectInput{
		Bucket:      &a.bucket,
		Key:         &key,
		Body:        bytes.NewReader(payload),
		ContentType: strPtr("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("upload report %s: %w", report.ReportID, err)
	}
	return key, nil
}

// PutWithTimeout is a convenience wrapper bounding the upload to d.
func (a *Archiver) PutWithTimeout(ctx context.Context, report model.Report, d time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, d)
	defer cancel()
	return a.Put(ctx, report)
}

func strPtr(s string) *string { return &s }

// archiveKey derives the S3 object key a report is stored under,
// partitioned by financial year so a bucket listing groups reports by
// FY the way the audit trail is reviewed.
func archiveKey(report model.Report) string {
	return fmt.Sprintf("reports/%s/%s.json", report.FinancialYear, report.ReportID)
}
