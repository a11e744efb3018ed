package impl

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"walletpass/internal/bundle"
	"walletpass/internal/domain/entity"
	mockRepo "walletpass/internal/mocks/repository"
	mockSvc "walletpass/internal/mocks/service"
	"walletpass/internal/usecase"

	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// bundleServiceFixtures holds all test dependencies for bundle service tests.
type bundleServiceFixtures struct {
	service     usecase.BundleUsecase
	subjectRepo *mockRepo.MockSubjectRepository
	delegate    *mockSvc.MockWalletDelegate
	signer      *mockSvc.MockSigner
}

func createTestBundleService(t *testing.T) bundleServiceFixtures {
	subjectRepo := mockRepo.NewMockSubjectRepository(t)
	delegate := mockSvc.NewMockWalletDelegate(t)
	signer := mockSvc.NewMockSigner(t)
	packager := bundle.NewPackager(signer, delegate)
	service := NewBundleService(subjectRepo, delegate, packager)

	return bundleServiceFixtures{
		service:     service,
		subjectRepo: subjectRepo,
		delegate:    delegate,
		signer:      signer,
	}
}

func writeTemplateDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "icon.png"), []byte("png bytes"), 0o644))

	return dir
}

func TestBundleService_SubjectBundle_NotModifiedShortCircuits(t *testing.T) {
	fx := createTestBundleService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	since := subject.UpdatedAt.Add(time.Minute)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	// No delegate, packaging or signing calls are expected.
	_, err := fx.service.SubjectBundle(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, &since)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNotModified))
}

func TestBundleService_SubjectBundle_EqualWatermarkNotModified(t *testing.T) {
	fx := createTestBundleService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	subject.UpdatedAt = subject.UpdatedAt.Truncate(time.Second)
	since := subject.UpdatedAt

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	_, err := fx.service.SubjectBundle(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, &since)
	require.Error(t, err)
	assert.True(t, errors.Is(err, usecase.ErrNotModified))
}

func TestBundleService_SubjectBundle_BuildsSignedArchive(t *testing.T) {
	fx := createTestBundleService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	templateDir := writeTemplateDir(t)
	content := []byte(`{"serialNumber":"` + subject.SerialNumber() + `"}`)
	signature := []byte("signature bytes")

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.delegate.EXPECT().TemplateDir(ctx, subject).Return(templateDir, nil)
	fx.delegate.EXPECT().Encode(ctx, subject).Return(content, nil)
	fx.delegate.EXPECT().PersonalizationContent(ctx, subject).Return(nil, nil)
	fx.delegate.EXPECT().SignManifest(ctx, mock.Anything, mock.Anything).Return(false, nil)
	fx.signer.EXPECT().Sign(ctx, mock.Anything).Return(signature, nil)

	result, err := fx.service.SubjectBundle(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, nil)
	require.NoError(t, err)
	assert.Equal(t, "application/vnd.apple.pkpass", result.MIMEType)
	assert.Equal(t, subject.UpdatedAt, result.LastModified)

	members := readArchiveMembers(t, result.Archive)
	assert.Equal(t, content, members["pass.json"])
	assert.Equal(t, signature, members["signature"])
	assert.Contains(t, members, "manifest.json")
	assert.Contains(t, members, "icon.png")
	assert.NotContains(t, members, "personalization.json")
}

func TestBundleService_SubjectBundle_PendingPersonalizationIncluded(t *testing.T) {
	fx := createTestBundleService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	templateDir := writeTemplateDir(t)
	content := []byte(`{"serialNumber":"` + subject.SerialNumber() + `"}`)
	personalization := []byte(`{"requiredPersonalizationFields":["name"]}`)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	fx.delegate.EXPECT().TemplateDir(ctx, subject).Return(templateDir, nil)
	fx.delegate.EXPECT().Encode(ctx, subject).Return(content, nil)
	fx.delegate.EXPECT().PersonalizationContent(ctx, subject).Return(personalization, nil)
	fx.delegate.EXPECT().SignManifest(ctx, mock.Anything, mock.Anything).Return(false, nil)
	fx.signer.EXPECT().Sign(ctx, mock.Anything).Return([]byte("sig"), nil)

	result, err := fx.service.SubjectBundle(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, nil)
	require.NoError(t, err)

	members := readArchiveMembers(t, result.Archive)
	assert.Equal(t, personalization, members["personalization.json"])
}

func TestBundleService_SubjectBundle_CompletedPersonalizationOmitted(t *testing.T) {
	fx := createTestBundleService(t)

	ctx := context.Background()
	subject := testSubject(entity.KindPass)
	subject.Personalization = &entity.UserPersonalization{ID: 1, SubjectID: subject.ID}
	templateDir := writeTemplateDir(t)
	content := []byte(`{"serialNumber":"` + subject.SerialNumber() + `"}`)

	fx.subjectRepo.EXPECT().
		FindSubject(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID).
		Return(subject, nil)

	// PersonalizationContent is never consulted once the flow completed.
	fx.delegate.EXPECT().TemplateDir(ctx, subject).Return(templateDir, nil)
	fx.delegate.EXPECT().Encode(ctx, subject).Return(content, nil)
	fx.delegate.EXPECT().SignManifest(ctx, mock.Anything, mock.Anything).Return(false, nil)
	fx.signer.EXPECT().Sign(ctx, mock.Anything).Return([]byte("sig"), nil)

	result, err := fx.service.SubjectBundle(ctx, entity.KindPass, subject.TypeIdentifier, subject.ID, nil)
	require.NoError(t, err)

	members := readArchiveMembers(t, result.Archive)
	assert.NotContains(t, members, "personalization.json")
}

func TestBundleService_SubjectBundleSet_SizeBounds(t *testing.T) {
	fx := createTestBundleService(t)

	ctx := context.Background()

	_, err := fx.service.SubjectBundleSet(ctx, "pass.com.example.coupon", []uuid.UUID{uuid.New()})
	require.Error(t, err)
	assert.True(t, errors.Is(err, bundle.ErrSetSize))

	tooMany := make([]uuid.UUID, 11)
	for i := range tooMany {
		tooMany[i] = uuid.New()
	}
	_, err = fx.service.SubjectBundleSet(ctx, "pass.com.example.coupon", tooMany)
	require.Error(t, err)
	assert.True(t, errors.Is(err, bundle.ErrSetSize))
}

func readArchiveMembers(t *testing.T, archive []byte) map[string][]byte {
	t.Helper()

	reader, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	require.NoError(t, err)

	members := make(map[string][]byte, len(reader.File))
	for _, file := range reader.File {
		rc, err := file.Open()
		require.NoError(t, err)

		var buf bytes.Buffer
		_, err = buf.ReadFrom(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		members[file.Name] = buf.Bytes()
	}

	return members
}
