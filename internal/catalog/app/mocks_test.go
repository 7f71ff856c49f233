package app

import (
	"context"
	"io"

	"github.com/justifyman/alansar/internal/catalog/domain"

	"github.com/stretchr/testify/mock"
)

// MockCategoryRepo Mock CategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockCategoryRepo) Create(category *domain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(id string) (*domain.Category, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCategoryRepo) ListOrdered() ([]domain.Category, error) {
	args := m.Called()
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCategoryRepo) Count() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockCategoryRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockVideoRepo Mock VideoRepo
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockVideoRepo) Create(video *domain.Video) error {
	args := m.Called(video)
	return args.Error(0)
}
func (m *MockVideoRepo) Upsert(video *domain.Video) error {
	args := m.Called(video)
	return args.Error(0)
}
func (m *MockVideoRepo) GetByID(id string) (*domain.Video, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) ListAll() ([]domain.Video, error) {
	args := m.Called()
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockVideoRepo) CountByCategory(categoryID string) (int64, error) {
	args := m.Called(categoryID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockVideoRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockAnnouncementRepo Mock AnnouncementRepo
type MockAnnouncementRepo struct {
	mock.Mock
}

func (m *MockAnnouncementRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockAnnouncementRepo) Create(announcement *domain.Announcement) error {
	args := m.Called(announcement)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) ListOrdered() ([]domain.Announcement, error) {
	args := m.Called()
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Announcement), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockAnnouncementRepo) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockAnnouncementRepo) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

// MockHeroRepo Mock HeroRepo
type MockHeroRepo struct {
	mock.Mock
}

func (m *MockHeroRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockHeroRepo) Get() (*domain.Hero, error) {
	args := m.Called()
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Hero), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockHeroRepo) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}

// MockBlobStore Mock BlobStoreRepo
type MockBlobStore struct {
	mock.Mock
}

func (m *MockBlobStore) Upload(ctx context.Context, bucket, objectName string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, bucket, objectName, reader, size, contentType)
	return args.Error(0)
}
func (m *MockBlobStore) PublicURL(bucket, objectName string) string {
	args := m.Called(bucket, objectName)
	return args.String(0)
}
