package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	v4 "github.com/aws/aws-sdk-go-v2/aws/signer/v4"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/dmitrijs2005/galacticquest/internal/common"
	"github.com/dmitrijs2005/galacticquest/internal/logging"
	sc "github.com/dmitrijs2005/galacticquest/internal/server/config"
	"github.com/dmitrijs2005/galacticquest/internal/server/models"
	"github.com/dmitrijs2005/galacticquest/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// ExportURLValidity is how long a presigned download link stays usable.
const ExportURLValidity = 15 * time.Minute

var (
	loadDefaultAWSConfig = config.LoadDefaultConfig

	newS3ClientFromConfig = func(cfg aws.Config, optFns ...func(*s3.Options)) *s3.Client {
		return s3.NewFromConfig(cfg, optFns...)
	}

	putObject = func(c *s3.Client, ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
		return c.PutObject(ctx, in, optFns...)
	}

	newS3PresignClient = func(c *s3.Client) *s3.PresignClient {
		return s3.NewPresignClient(c)
	}

	presignGetObject = func(pc *s3.PresignClient, ctx context.Context, in *s3.GetObjectInput, optFns ...func(*s3.PresignOptions)) (*v4.PresignedHTTPRequest, error) {
		return pc.PresignGetObject(ctx, in, optFns...)
	}
)

// ExportResult locates an uploaded ledger archive.
type ExportResult struct {
	Key       string
	URL       string
	Count     int
	ExpiresAt time.Time
}

type exportedLog struct {
	ID       string    `json:"id"`
	SkillID  string    `json:"skill_id"`
	Minutes  int64     `json:"minutes"`
	XPEarned int64     `json:"xp_earned"`
	Note     *string   `json:"note,omitempty"`
	LoggedAt time.Time `json:"logged_at"`
}

type exportDocument struct {
	UserID     string        `json:"user_id"`
	ExportedAt time.Time     `json:"exported_at"`
	Count      int           `json:"count"`
	TimeLogs   []exportedLog `json:"time_logs"`
}

type ExportService struct {
	repos  repomanager.RepositoryManager
	config *sc.Config
	logger logging.Logger
	now    func() time.Time
}

func NewExportService(m repomanager.RepositoryManager, cfg *sc.Config, logger logging.Logger) *ExportService {
	return &ExportService{repos: m, config: cfg, logger: logger.With("module", "export"), now: time.Now}
}

// ExportKey is the object key for an archive created at t.
func ExportKey(userID string, t time.Time) string {
	t = t.UTC()
	return fmt.Sprintf("exports/%s/%04d/%02d/%02d/%s.json", userID, t.Year(), t.Month(), t.Day(), uuid.New())
}

func (s *ExportService) getS3Client(ctx context.Context) (*s3.Client, error) {
	cfg, err := loadDefaultAWSConfig(ctx,
		config.WithRegion(s.config.S3Region),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	return newS3ClientFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
		o.UsePathStyle = true
	}), nil
}

func encodeExport(userID string, at time.Time, logs []models.TimeLog) ([]byte, error) {
	doc := exportDocument{UserID: userID, ExportedAt: at, Count: len(logs), TimeLogs: make([]exportedLog, 0, len(logs))}
	for _, l := range logs {
		doc.TimeLogs = append(doc.TimeLogs, exportedLog{
			ID: l.ID, SkillID: l.SkillID, Minutes: l.Minutes, XPEarned: l.XPEarned, Note: l.Note, LoggedAt: l.LoggedAt,
		})
	}
	return json.MarshalIndent(doc, "", "  ")
}

// ExportTimeLogs uploads the user's whole ledger as JSON and returns a
// presigned link to it.
func (s *ExportService) ExportTimeLogs(ctx context.Context, userID string) (*ExportResult, error) {
	if s.config.S3Bucket == "" {
		s.logger.Error(ctx, "export requested but no bucket is configured", "user_id", userID)
		return nil, common.ErrorInternal
	}

	logs, err := s.repos.TimeLogs(s.repos.Conn()).List(ctx, userID, "", 0)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	body, err := encodeExport(userID, now, logs)
	if err != nil {
		return nil, err
	}

	client, err := s.getS3Client(ctx)
	if err != nil {
		return nil, err
	}

	bucket := s.config.S3Bucket
	key := ExportKey(userID, now)

	if _, err := putObject(client, ctx, &s3.PutObjectInput{
		Bucket:      &bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	}); err != nil {
		s.logger.Error(ctx, "export upload failed", "user_id", userID, "key", key, "error", err)
		return nil, err
	}

	req, err := presignGetObject(newS3PresignClient(client), ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(ExportURLValidity))
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "ledger exported", "user_id", userID, "key", key, "count", len(logs))
	return &ExportResult{Key: key, URL: req.URL, Count: len(logs), ExpiresAt: now.Add(ExportURLValidity)}, nil
}
