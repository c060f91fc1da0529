package upload

import (
	"context"
	"fmt"
	"os"
)

const maxFileSize = 10 << 20 // 10MB

type UploadService interface {
	ValidateUpload(fileSize int64, mimeType string) error
	SaveFile(ctx context.Context, file *StoredFile) error
	GetFile(ctx context.Context, fileID string) (*StoredFile, error)
	GetFilesByRecord(ctx context.Context, module, recordID string) ([]*StoredFile, error)
	DeleteFile(ctx context.Context, fileID string, userID string) error
}

type UploadServiceImpl struct {
	Repo UploadRepository
}

func NewUploadService(repo UploadRepository) UploadService {
	return &UploadServiceImpl{
		Repo: repo,
	}
}

func (s *UploadServiceImpl) ValidateUpload(fileSize int64, mimeType string) error {
	if fileSize > maxFileSize {
		return fmt.Errorf("file too large (max %dMB)", maxFileSize>>20)
	}
	return nil
}

func (s *UploadServiceImpl) SaveFile(ctx context.Context, file *StoredFile) error {
	return s.Repo.Save(ctx, file)
}

func (s *UploadServiceImpl) GetFile(ctx context.Context, fileID string) (*StoredFile, error) {
	return s.Repo.Get(ctx, fileID)
}

func (s *UploadServiceImpl) GetFilesByRecord(ctx context.Context, module, recordID string) ([]*StoredFile, error) {
	return s.Repo.FindByRecord(ctx, module, recordID)
}

// DeleteFile removes the metadata and the file on disk. Only the
// uploader may delete their own file.
func (s *UploadServiceImpl) DeleteFile(ctx context.Context, fileID string, userID string) error {
	file, err := s.Repo.Get(ctx, fileID)
	if err != nil {
		return fmt.Errorf("file not found: %w", err)
	}

	if file.UploadedBy != userID {
		return fmt.Errorf("unauthorized: you can only delete your own files")
	}

	if err := os.Remove(file.Path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file from disk: %w", err)
	}

	return s.Repo.Delete(ctx, fileID)
}
