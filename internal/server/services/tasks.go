package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sc "github.com/andrejsm/taskkeeper/internal/server/config"
	"github.com/google/uuid"

	"github.com/andrejsm/taskkeeper/internal/common"
	"github.com/andrejsm/taskkeeper/internal/server/models"
	"github.com/andrejsm/taskkeeper/internal/server/repositories/repomanager"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

const presignExpiry = 15 * time.Minute

type TaskService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	config      *sc.Config
}

func NewTaskService(db *sql.DB, m repomanager.RepositoryManager, cfg *sc.Config) *TaskService {
	return &TaskService{
		db:          db,
		repomanager: m,
		config:      cfg,
	}
}

// List returns userID's live tasks, newest first. status filters when it
// names a concrete status; empty or ALL means no filter.
func (s *TaskService) List(ctx context.Context, userID string, status string) ([]*models.Task, error) {

	switch {
	case status == "" || status == models.TaskStatusAll:
		status = ""
	case !models.ValidTaskStatus(status):
		return nil, common.ErrorInvalidStatus
	}

	repo := s.repomanager.Tasks(s.db)

	tasks, err := repo.ListByUser(ctx, userID, status)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}

	return tasks, nil
}

// Create inserts a new PENDING task for userID.
func (s *TaskService) Create(ctx context.Context, userID, title, description string) (*models.Task, error) {

	if title == "" {
		return nil, common.ErrorTitleRequired
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.Create(ctx, &models.Task{
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      models.TaskStatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// UpdateStatus moves the owner's task to the given status.
func (s *TaskService) UpdateStatus(ctx context.Context, userID, taskID, status string) (*models.Task, error) {

	if !models.ValidTaskStatus(status) {
		return nil, common.ErrorInvalidStatus
	}

	repo := s.repomanager.Tasks(s.db)

	task, err := repo.UpdateStatus(ctx, taskID, userID, status)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorTaskNotFound
		}
		return nil, fmt.Errorf("error updating task: %w", err)
	}

	return task, nil
}

// Delete soft-deletes the owner's task.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {

	repo := s.repomanager.Tasks(s.db)

	err := repo.SoftDelete(ctx, taskID, userID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorTaskNotFound
		}
		return fmt.Errorf("error deleting task: %w", err)
	}

	return nil
}

// AttachmentLink pairs an attachment row with a presigned URL the client
// can use directly against the object store.
type AttachmentLink struct {
	Attachment *models.Attachment
	URL        string
}

// AttachFile registers a new attachment on the owner's task and returns
// it together with a presigned PUT URL, valid for 15 minutes. The file
// bytes never pass through this server.
func (s *TaskService) AttachFile(ctx context.Context, userID, taskID, fileName string) (*AttachmentLink, error) {

	tasksRepo := s.repomanager.Tasks(s.db)
	if _, err := tasksRepo.GetByIDForUser(ctx, taskID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorTaskNotFound
		}
		return nil, fmt.Errorf("error resolving task: %w", err)
	}

	key := randomStorageKey()

	url, err := s.presignPut(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("error presigning upload: %w", err)
	}

	repo := s.repomanager.Attachments(s.db)
	attachment, err := repo.Create(ctx, &models.Attachment{
		TaskID:     taskID,
		FileName:   fileName,
		StorageKey: key,
	})
	if err != nil {
		return nil, fmt.Errorf("error creating attachment: %w", err)
	}

	return &AttachmentLink{Attachment: attachment, URL: url}, nil
}

// ListAttachments returns the task's attachments with presigned GET URLs.
func (s *TaskService) ListAttachments(ctx context.Context, userID, taskID string) ([]*AttachmentLink, error) {

	tasksRepo := s.repomanager.Tasks(s.db)
	if _, err := tasksRepo.GetByIDForUser(ctx, taskID, userID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorTaskNotFound
		}
		return nil, fmt.Errorf("error resolving task: %w", err)
	}

	repo := s.repomanager.Attachments(s.db)
	rows, err := repo.ListByTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("error listing attachments: %w", err)
	}

	links := make([]*AttachmentLink, 0, len(rows))
	for _, a := range rows {
		url, err := s.presignGet(ctx, a.StorageKey)
		if err != nil {
			return nil, fmt.Errorf("error presigning download: %w", err)
		}
		links = append(links, &AttachmentLink{Attachment: a, URL: url})
	}

	return links, nil
}

// randomStorageKey spreads objects by date to keep bucket listings sane.
func randomStorageKey() string {
	d := time.Now()
	return fmt.Sprintf("tasks/%d/%d/%d/%v", d.Year(), d.Month(), d.Day(), uuid.New())
}

func (s *TaskService) getPresignClient(ctx context.Context) (*s3.PresignClient, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(s.config.S3Region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			s.config.S3RootUser,
			s.config.S3RootPassword,
			"",
		)))
	if err != nil {
		return nil, err
	}

	client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(s.config.S3BaseEndpoint)
	})

	return s3.NewPresignClient(client), nil
}

func (s *TaskService) presignPut(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func (s *TaskService) presignGet(ctx context.Context, key string) (string, error) {

	presignClient, err := s.getPresignClient(ctx)
	if err != nil {
		return "", err
	}

	bucket := s.config.S3Bucket

	req, err := presignClient.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: &bucket,
		Key:    &key,
	}, s3.WithPresignExpires(presignExpiry))
	if err != nil {
		return "", err
	}

	return req.URL, nil
}
