package app

import (
	"context"
	"io"

	catalogdomain "github.com/justifyman/alansar/internal/catalog/domain"
	"github.com/justifyman/alansar/internal/moderation/domain"

	"github.com/stretchr/testify/mock"
)

// MockSubmissionRepo Mock SubmissionRepo
type MockSubmissionRepo struct {
	mock.Mock
}

func (m *MockSubmissionRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockSubmissionRepo) Create(sub *domain.Submission) error {
	args := m.Called(sub)
	return args.Error(0)
}
func (m *MockSubmissionRepo) GetByID(id string) (*domain.Submission, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*domain.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSubmissionRepo) ListByStatus(status domain.SubmissionStatus) ([]domain.Submission, error) {
	args := m.Called(status)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSubmissionRepo) ListByUser(userID string) ([]domain.Submission, error) {
	args := m.Called(userID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.Submission), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockSubmissionRepo) UpdateFields(id string, fields map[string]interface{}) error {
	args := m.Called(id, fields)
	return args.Error(0)
}
func (m *MockSubmissionRepo) TransitionStatus(id string, from, to domain.SubmissionStatus) (bool, error) {
	args := m.Called(id, from, to)
	return args.Bool(0), args.Error(1)
}

// MockCategoryRepo Mock catalog CategoryRepo
type MockCategoryRepo struct {
	mock.Mock
}

func (m *MockCategoryRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockCategoryRepo) Create(category *catalogdomain.Category) error {
	args := m.Called(category)
	return args.Error(0)
}
func (m *MockCategoryRepo) GetByID(id string) (*catalogdomain.Category, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*catalogdomain.Category), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockCategoryRepo) ListOrdered() ([]catalogdomain.Category, error) {
	args := m.Called()
	if args.Get(0) != nil {
		return args.Get(0).([]catalogdomain.Category), args.Error(1)
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

// MockVideoRepo Mock catalog VideoRepo
type MockVideoRepo struct {
	mock.Mock
}

func (m *MockVideoRepo) AutoMigrate() error {
	args := m.Called()
	return args.Error(0)
}
func (m *MockVideoRepo) Create(video *catalogdomain.Video) error {
	args := m.Called(video)
	return args.Error(0)
}
func (m *MockVideoRepo) Upsert(video *catalogdomain.Video) error {
	args := m.Called(video)
	return args.Error(0)
}
func (m *MockVideoRepo) GetByID(id string) (*catalogdomain.Video, error) {
	args := m.Called(id)
	if args.Get(0) != nil {
		return args.Get(0).(*catalogdomain.Video), args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *MockVideoRepo) ListAll() ([]catalogdomain.Video, error) {
	args := m.Called()
	if args.Get(0) != nil {
		return args.Get(0).([]catalogdomain.Video), args.Error(1)
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

// MockAuditRepo Mock AuditRepo
type MockAuditRepo struct {
	mock.Mock
}

func (m *MockAuditRepo) Insert(ctx context.Context, entry *domain.AuditEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
func (m *MockAuditRepo) ListBySubmission(ctx context.Context, submissionID string) ([]domain.AuditEntry, error) {
	args := m.Called(ctx, submissionID)
	if args.Get(0) != nil {
		return args.Get(0).([]domain.AuditEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockKafkaRepo Mock KafkaRepo
type MockKafkaRepo struct {
	mock.Mock
}

func (m *MockKafkaRepo) Publish(ctx context.Context, key, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}
func (m *MockKafkaRepo) Close() error {
	args := m.Called()
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
