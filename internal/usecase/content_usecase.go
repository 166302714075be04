package usecase

//go:generate mockgen -source=$GOFILE -destination=../adapter/http/handlers/mocks/content_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"io"
	"strings"

	"go.uber.org/zap"

	"clientportal/internal/domain/entities"
	"clientportal/internal/usecase/interfaces"
)

// ContentFilesRoute prefixes the URL of every uploaded content file.
const ContentFilesRoute = "/api/content/files/"

type IContentUseCase interface {
	List(ctx context.Context, category entities.ContentCategory, clientID string) ([]entities.ContentItem, error)
	Add(ctx context.Context, in AddContentInput) (entities.ContentItem, error)
	Delete(ctx context.Context, category entities.ContentCategory, id string) error
	UploadFile(ctx context.Context, in UploadContentInput) (entities.ContentItem, error)
	Download(ctx context.Context, storagePath string) (io.ReadCloser, error)
}

type AddContentInput struct {
	Category    entities.ContentCategory
	Title       string
	Description string
	URL         string
	Type        entities.ContentType
	ClientIDs   []string
}

type UploadContentInput struct {
	Category    entities.ContentCategory
	Title       string
	Description string
	ClientIDs   []string
	Filename    string
	ContentType string
	Data        io.Reader
}

type ContentUseCase struct {
	repo    interfaces.IContentRepository
	storage interfaces.IFileStorage
	logger  *zap.Logger
}

var _ IContentUseCase = (*ContentUseCase)(nil)

func NewContentUseCase(repo interfaces.IContentRepository, storage interfaces.IFileStorage, logger *zap.Logger) *ContentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ContentUseCase{repo: repo, storage: storage, logger: logger}
}

func checkCategory(category entities.ContentCategory) error {
	if !category.IsValid() {
		return invalid(ErrInvalidContent, "unknown category "+string(category))
	}
	return nil
}

// List returns the category; a non-empty clientID keeps only items visible to it.
func (u *ContentUseCase) List(ctx context.Context, category entities.ContentCategory, clientID string) ([]entities.ContentItem, error) {
	if err := checkCategory(category); err != nil {
		return nil, err
	}
	items, err := u.repo.List(ctx, category)
	if err != nil {
		return nil, err
	}
	clientID = strings.TrimSpace(clientID)
	if clientID == "" {
		return items, nil
	}
	out := make([]entities.ContentItem, 0, len(items))
	for _, it := range items {
		if it.VisibleTo(clientID) {
			out = append(out, it)
		}
	}
	return out, nil
}

func cleanClientIDs(in []string) []string {
	var out []string
	for _, id := range in {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}

func (u *ContentUseCase) Add(ctx context.Context, in AddContentInput) (entities.ContentItem, error) {
	if err := checkCategory(in.Category); err != nil {
		return entities.ContentItem{}, err
	}
	if in.Type == "" {
		in.Type = entities.ContentTypeLink
	}
	if !in.Type.IsValid() {
		return entities.ContentItem{}, invalid(ErrInvalidContent, "unknown type "+string(in.Type))
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.URL) == "" {
		return entities.ContentItem{}, invalid(ErrInvalidContent, "title and url are required")
	}

	item, err := u.repo.Add(ctx, entities.ContentItem{
		Category:    in.Category,
		Title:       strings.TrimSpace(in.Title),
		Description: strings.TrimSpace(in.Description),
		URL:         strings.TrimSpace(in.URL),
		Type:        in.Type,
		ClientIDs:   cleanClientIDs(in.ClientIDs),
	})
	if err != nil {
		return entities.ContentItem{}, err
	}
	u.logger.Info("[content][usecase] item added",
		zap.String("content_id", item.ID), zap.String("category", string(item.Category)))
	return item, nil
}

// Delete removes the item; the backing file of an uploaded item is removed
// best-effort.
func (u *ContentUseCase) Delete(ctx context.Context, category entities.ContentCategory, id string) error {
	if err := checkCategory(category); err != nil {
		return err
	}
	removed, ok, err := u.repo.Delete(ctx, category, strings.TrimSpace(id))
	if err != nil {
		return err
	}
	if !ok {
		return ErrContentNotFound
	}
	if removed.Type == entities.ContentTypeFile && u.storage != nil && strings.HasPrefix(removed.URL, ContentFilesRoute) {
		path := strings.TrimPrefix(removed.URL, ContentFilesRoute)
		if err := u.storage.Delete(ctx, path); err != nil && !errors.Is(err, interfaces.ErrFileNotFound) {
			u.logger.Warn("[content][usecase] failed deleting stored file", zap.String("path", path), zap.Error(err))
		}
	}
	u.logger.Info("[content][usecase] item deleted", zap.String("content_id", removed.ID))
	return nil
}

func (u *ContentUseCase) UploadFile(ctx context.Context, in UploadContentInput) (entities.ContentItem, error) {
	if err := checkCategory(in.Category); err != nil {
		return entities.ContentItem{}, err
	}
	if in.Data == nil || strings.TrimSpace(in.Filename) == "" {
		return entities.ContentItem{}, invalid(ErrInvalidContent, "file is required")
	}
	if u.storage == nil {
		return entities.ContentItem{}, errors.New("file storage not configured")
	}
	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = strings.TrimSpace(in.Filename)
	}

	path, size, err := u.storage.Upload(ctx, in.Filename, in.ContentType, in.Data)
	if err != nil {
		return entities.ContentItem{}, err
	}
	u.logger.Info("[content][usecase] file stored", zap.String("path", path), zap.Int64("size", size))

	item, err := u.repo.Add(ctx, entities.ContentItem{
		Category:    in.Category,
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		URL:         ContentFilesRoute + path,
		Type:        entities.ContentTypeFile,
		ClientIDs:   cleanClientIDs(in.ClientIDs),
	})
	if err != nil {
		if delErr := u.storage.Delete(ctx, path); delErr != nil {
			u.logger.Warn("[content][usecase] orphaned stored file", zap.String("path", path), zap.Error(delErr))
		}
		return entities.ContentItem{}, err
	}
	return item, nil
}

func (u *ContentUseCase) Download(ctx context.Context, storagePath string) (io.ReadCloser, error) {
	storagePath = strings.TrimPrefix(strings.TrimSpace(storagePath), "/")
	if storagePath == "" || u.storage == nil {
		return nil, ErrContentFileNotFound
	}
	rc, err := u.storage.Download(ctx, storagePath)
	if err != nil {
		if errors.Is(err, interfaces.ErrFileNotFound) {
			return nil, ErrContentFileNotFound
		}
		return nil, err
	}
	return rc, nil
}
