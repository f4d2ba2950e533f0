package repository

import (
	"context"
	"doclib/internal/core/domain"
	"doclib/internal/core/port"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockDocumentRepository struct {
	mock.Mock
}

func NewMockDocumentRepository() *MockDocumentRepository {
	return &MockDocumentRepository{}
}

func (m *MockDocumentRepository) Create(ctx context.Context, doc domain.Document) error {
	args := m.Called(ctx, doc)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Document), args.Error(1)
}

func (m *MockDocumentRepository) UpdateFavorite(ctx context.Context, id uuid.UUID, value bool) error {
	args := m.Called(ctx, id, value)
	return args.Error(0)
}

func (m *MockDocumentRepository) FindFavorites(ctx context.Context, school *string, limit int) ([]domain.Document, error) {
	args := m.Called(ctx, school, limit)
	return args.Get(0).([]domain.Document), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func NewMockTagRepository() *MockTagRepository {
	return &MockTagRepository{}
}

func (m *MockTagRepository) CreateMany(ctx context.Context, tags []string) (int, error) {
	args := m.Called(ctx, tags)
	return args.Int(0), args.Error(1)
}

func (m *MockTagRepository) FindByNames(ctx context.Context, names []string) (map[string]uuid.UUID, error) {
	args := m.Called(ctx, names)
	return args.Get(0).(map[string]uuid.UUID), args.Error(1)
}

func (m *MockTagRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Tag, error) {
	args := m.Called(ctx, ids)
	return args.Get(0).([]domain.Tag), args.Error(1)
}

type MockDocumentTagRepository struct {
	mock.Mock
}

func (m *MockDocumentTagRepository) CreateMany(ctx context.Context, documentID uuid.UUID, tagIDs []uuid.UUID) (int, error) {
	args := m.Called(ctx, documentID, tagIDs)
	return args.Int(0), args.Error(1)
}

func (m *MockDocumentTagRepository) FindByDocumentID(ctx context.Context, documentID uuid.UUID) ([]domain.DocumentTag, error) {
	args := m.Called(ctx, documentID)
	return args.Get(0).([]domain.DocumentTag), args.Error(1)
}

type MockProvisionalUploadRepository struct {
	mock.Mock
}

func NewMockProvisionalUploadRepository() *MockProvisionalUploadRepository {
	return &MockProvisionalUploadRepository{}
}

func (m *MockProvisionalUploadRepository) Create(ctx context.Context, entry domain.LedgerEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockProvisionalUploadRepository) FindBySlot(ctx context.Context, slot domain.UploadSlot) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, slot)
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}

func (m *MockProvisionalUploadRepository) MarkStored(ctx context.Context, slot domain.UploadSlot, sizeBytes int64, pageCount int) error {
	args := m.Called(ctx, slot, sizeBytes, pageCount)
	return args.Error(0)
}

func (m *MockProvisionalUploadRepository) MarkAttached(ctx context.Context, slot domain.UploadSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockProvisionalUploadRepository) Touch(ctx context.Context, slot domain.UploadSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockProvisionalUploadRepository) Delete(ctx context.Context, slot domain.UploadSlot) error {
	args := m.Called(ctx, slot)
	return args.Error(0)
}

func (m *MockProvisionalUploadRepository) FindUnattached(ctx context.Context, before time.Time) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, before)
	return args.Get(0).([]domain.LedgerEntry), args.Error(1)
}

type MockUnitOfWork struct {
	mock.Mock
	documentRepo          *MockDocumentRepository
	tagRepo               *MockTagRepository
	documentTagRepo       *MockDocumentTagRepository
	provisionalUploadRepo *MockProvisionalUploadRepository
}

func NewMockUnitOfWork() *MockUnitOfWork {
	return &MockUnitOfWork{
		documentRepo:          &MockDocumentRepository{},
		tagRepo:               &MockTagRepository{},
		documentTagRepo:       &MockDocumentTagRepository{},
		provisionalUploadRepo: &MockProvisionalUploadRepository{},
	}
}

func (m *MockUnitOfWork) DocumentRepo() port.DocumentRepository {
	return m.documentRepo
}

func (m *MockUnitOfWork) TagRepo() port.TagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) DocumentTagRepo() port.DocumentTagRepository {
	return m.documentTagRepo
}

func (m *MockUnitOfWork) ProvisionalUploadRepo() port.ProvisionalUploadRepository {
	return m.provisionalUploadRepo
}

func (m *MockUnitOfWork) Execute(ctx context.Context, fn func(uow port.UnitOfWork) error) error {
	args := m.Called(ctx, fn)

	if err := fn(m); err != nil {
		return err
	}

	return args.Error(0)
}

func (m *MockUnitOfWork) GetDocumentRepoMock() *MockDocumentRepository {
	return m.documentRepo
}

func (m *MockUnitOfWork) GetTagRepoMock() *MockTagRepository {
	return m.tagRepo
}

func (m *MockUnitOfWork) GetDocumentTagRepoMock() *MockDocumentTagRepository {
	return m.documentTagRepo
}

func (m *MockUnitOfWork) GetProvisionalUploadRepoMock() *MockProvisionalUploadRepository {
	return m.provisionalUploadRepo
}
