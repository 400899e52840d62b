package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/domain/identity"
	"github.com/shopledger/backend/internal/domain/record"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/snapshot"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// =============================================================================
// Mocks
// =============================================================================

// MockWorkspaceRepository is a mock implementation of workspace.Repository
type MockWorkspaceRepository struct {
	mock.Mock
}

func (m *MockWorkspaceRepository) FindByID(ctx context.Context, id int64) (*workspace.Workspace, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*workspace.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) FindByOwner(ctx context.Context, ownerID int64) ([]workspace.Workspace, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).([]workspace.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) FindAccessible(ctx context.Context, userID int64) ([]workspace.Workspace, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]workspace.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) Save(ctx context.Context, ws *workspace.Workspace) error {
	args := m.Called(ctx, ws)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) FindMembers(ctx context.Context, workspaceID int64) ([]workspace.Member, error) {
	args := m.Called(ctx, workspaceID)
	return args.Get(0).([]workspace.Member), args.Error(1)
}

func (m *MockWorkspaceRepository) AddMember(ctx context.Context, member *workspace.Member) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) RemoveMember(ctx context.Context, workspaceID, userID int64) error {
	args := m.Called(ctx, workspaceID, userID)
	return args.Error(0)
}

func (m *MockWorkspaceRepository) ResolveRole(ctx context.Context, workspaceID, userID int64) (workspace.Role, error) {
	args := m.Called(ctx, workspaceID, userID)
	return args.Get(0).(workspace.Role), args.Error(1)
}

var _ workspace.Repository = (*MockWorkspaceRepository)(nil)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindByID(ctx context.Context, id int64) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*identity.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

// MockWorkspaceStore is a mock implementation of snapshot.WorkspaceStore
type MockWorkspaceStore struct {
	mock.Mock
}

func (m *MockWorkspaceStore) BuildSnapshot(ctx context.Context, workspaceID int64) (*snapshot.Data, error) {
	args := m.Called(ctx, workspaceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*snapshot.Data), args.Error(1)
}

func (m *MockWorkspaceStore) WipeAndRestore(ctx context.Context, actor workspace.ActorContext, doc *snapshot.Document) (*snapshot.RestoreResult, error) {
	args := m.Called(ctx, actor, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*snapshot.RestoreResult), args.Error(1)
}

var _ snapshot.WorkspaceStore = (*MockWorkspaceStore)(nil)

// MockRestoreLock is a mock implementation of lock.RestoreLock
type MockRestoreLock struct {
	mock.Mock
}

func (m *MockRestoreLock) Acquire(ctx context.Context, workspaceID int64, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, workspaceID, ttl)
	return args.Bool(0), args.Error(1)
}

func (m *MockRestoreLock) Release(ctx context.Context, workspaceID int64) error {
	args := m.Called(ctx, workspaceID)
	return args.Error(0)
}

// =============================================================================
// Test Helpers
// =============================================================================

const (
	testUserID      = int64(11)
	testWorkspaceID = int64(7)
)

func testUser() *identity.User {
	return &identity.User{ID: testUserID, Username: "alice"}
}

func testWorkspace(storageType workspace.StorageType) *workspace.Workspace {
	ws := &workspace.Workspace{
		Name:        "Main Shop",
		OwnerID:     testUserID,
		StorageType: storageType,
	}
	ws.ID = testWorkspaceID
	return ws
}

func validSnapshotRaw() []byte {
	return []byte(`{
		"exportInfo": {"username": "alice", "workspaceName": "Main Shop", "workspaceId": 7},
		"data": {"suppliers": [{"id": 1, "name": "Acme"}]}
	}`)
}

type serviceFixture struct {
	workspaceRepo *MockWorkspaceRepository
	userRepo      *MockUserRepository
	localStore    *MockWorkspaceStore
	remoteStore   *MockWorkspaceStore
	restoreLock   *MockRestoreLock
	service       *Service
}

func newServiceFixture() *serviceFixture {
	f := &serviceFixture{
		workspaceRepo: new(MockWorkspaceRepository),
		userRepo:      new(MockUserRepository),
		localStore:    new(MockWorkspaceStore),
		remoteStore:   new(MockWorkspaceStore),
		restoreLock:   new(MockRestoreLock),
	}
	f.service = NewService(
		f.workspaceRepo, f.userRepo,
		f.localStore, f.remoteStore,
		f.restoreLock, time.Minute, "1.2.0", nil,
	)
	return f
}

func (f *serviceFixture) expectActor(ws *workspace.Workspace, role workspace.Role) {
	f.workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(ws, nil)
	f.userRepo.On("FindByID", mock.Anything, testUserID).Return(testUser(), nil)
	f.workspaceRepo.On("ResolveRole", mock.Anything, testWorkspaceID, testUserID).Return(role, nil)
}

// =============================================================================
// Export Tests
// =============================================================================

func TestService_Export_Success(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleViewer)

	data := &snapshot.Data{Suppliers: []snapshot.PartyRecord{{ID: 1, Name: "Acme"}}}
	f.localStore.On("BuildSnapshot", mock.Anything, testWorkspaceID).Return(data, nil)

	doc, err := f.service.Export(context.Background(), testUserID, testWorkspaceID)

	require.NoError(t, err)
	assert.Equal(t, "alice", doc.ExportInfo.Username)
	assert.Equal(t, "Main Shop", doc.ExportInfo.WorkspaceName)
	assert.Equal(t, testWorkspaceID, doc.ExportInfo.WorkspaceID)
	assert.Equal(t, "1.2.0", doc.ExportInfo.Version)
	assert.False(t, doc.ExportInfo.ExportTime.IsZero())
	assert.Len(t, doc.Data.Suppliers, 1)
	f.localStore.AssertExpectations(t)
}

func TestService_Export_ServerWorkspaceUsesRemoteStore(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageServer)
	f.expectActor(ws, workspace.RoleEditor)

	f.remoteStore.On("BuildSnapshot", mock.Anything, testWorkspaceID).Return(&snapshot.Data{}, nil)

	_, err := f.service.Export(context.Background(), testUserID, testWorkspaceID)

	require.NoError(t, err)
	f.remoteStore.AssertExpectations(t)
	f.localStore.AssertNotCalled(t, "BuildSnapshot", mock.Anything, mock.Anything)
}

func TestService_Export_WorkspaceNotFound(t *testing.T) {
	f := newServiceFixture()
	f.workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(nil, shared.ErrNotFound)

	_, err := f.service.Export(context.Background(), testUserID, testWorkspaceID)

	assert.ErrorIs(t, err, shared.ErrSourceUnavailable)
}

func TestService_Export_NoAccess(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(ws, nil)
	f.userRepo.On("FindByID", mock.Anything, testUserID).Return(testUser(), nil)
	f.workspaceRepo.On("ResolveRole", mock.Anything, testWorkspaceID, testUserID).
		Return(workspace.Role(""), shared.ErrNotFound)

	_, err := f.service.Export(context.Background(), testUserID, testWorkspaceID)

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	f.localStore.AssertNotCalled(t, "BuildSnapshot", mock.Anything, mock.Anything)
}

// =============================================================================
// Restore Tests
// =============================================================================

func TestService_Restore_Success(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(true, nil)
	f.restoreLock.On("Release", mock.Anything, testWorkspaceID).Return(nil)

	result := &snapshot.RestoreResult{
		BeforeCounts: snapshot.Counts{record.KindSupplier: 3},
		AfterCounts:  snapshot.Counts{record.KindSupplier: 1},
	}
	f.localStore.On("WipeAndRestore", mock.Anything, mock.Anything, mock.Anything).Return(result, nil)

	resp, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.TotalBefore)
	assert.Equal(t, int64(1), resp.TotalAfter)
	assert.Equal(t, int64(1), resp.AfterCounts["suppliers"])
	assert.Empty(t, resp.Warnings)
	f.restoreLock.AssertExpectations(t)
	f.localStore.AssertExpectations(t)
}

func TestService_Restore_ActorPassedToStore(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(true, nil)
	f.restoreLock.On("Release", mock.Anything, testWorkspaceID).Return(nil)

	expectedActor := workspace.ActorContext{
		UserID:      testUserID,
		Username:    "alice",
		WorkspaceID: testWorkspaceID,
		Role:        workspace.RoleOwner,
	}
	f.localStore.On("WipeAndRestore", mock.Anything, expectedActor, mock.Anything).
		Return(&snapshot.RestoreResult{}, nil)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	require.NoError(t, err)
	f.localStore.AssertExpectations(t)
}

func TestService_Restore_DeniedForEditor(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageServer)
	f.expectActor(ws, workspace.RoleEditor)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	f.remoteStore.AssertNotCalled(t, "WipeAndRestore", mock.Anything, mock.Anything, mock.Anything)
	f.restoreLock.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Restore_AdminDeniedOnLocalWorkspace(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleAdmin)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
}

func TestService_Restore_AdminAllowedOnServerWorkspace(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageServer)
	f.expectActor(ws, workspace.RoleAdmin)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(true, nil)
	f.restoreLock.On("Release", mock.Anything, testWorkspaceID).Return(nil)
	f.remoteStore.On("WipeAndRestore", mock.Anything, mock.Anything, mock.Anything).
		Return(&snapshot.RestoreResult{}, nil)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	require.NoError(t, err)
	f.remoteStore.AssertExpectations(t)
}

func TestService_Restore_MalformedDocument(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, []byte(`{"data": {}}`))

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "MALFORMED_SNAPSHOT", domainErr.Code)
	f.restoreLock.AssertNotCalled(t, "Acquire", mock.Anything, mock.Anything, mock.Anything)
	f.localStore.AssertNotCalled(t, "WipeAndRestore", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_Restore_LockContention(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(false, nil)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	assert.ErrorIs(t, err, shared.ErrRestoreInProgress)
	f.localStore.AssertNotCalled(t, "WipeAndRestore", mock.Anything, mock.Anything, mock.Anything)
	f.restoreLock.AssertNotCalled(t, "Release", mock.Anything, mock.Anything)
}

func TestService_Restore_StoreFailureReleasesLock(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(true, nil)
	f.restoreLock.On("Release", mock.Anything, testWorkspaceID).Return(nil)
	f.localStore.On("WipeAndRestore", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, errors.New("connection reset"))

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	assert.ErrorIs(t, err, shared.ErrStoreFailure)
	f.restoreLock.AssertExpectations(t)
}

func TestService_Restore_SourceMismatchWarnings(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(true, nil)
	f.restoreLock.On("Release", mock.Anything, testWorkspaceID).Return(nil)
	f.localStore.On("WipeAndRestore", mock.Anything, mock.Anything, mock.Anything).
		Return(&snapshot.RestoreResult{}, nil)

	raw := []byte(`{
		"exportInfo": {"username": "bob", "workspaceName": "Other Shop", "workspaceId": 3},
		"data": {}
	}`)
	resp, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, raw)

	require.NoError(t, err)
	assert.Len(t, resp.Warnings, 3)
	f.localStore.AssertExpectations(t)
}

func TestService_Restore_AuditWriteFailedWarning(t *testing.T) {
	f := newServiceFixture()
	ws := testWorkspace(workspace.StorageLocal)
	f.expectActor(ws, workspace.RoleOwner)

	f.restoreLock.On("Acquire", mock.Anything, testWorkspaceID, time.Minute).Return(true, nil)
	f.restoreLock.On("Release", mock.Anything, testWorkspaceID).Return(nil)
	f.localStore.On("WipeAndRestore", mock.Anything, mock.Anything, mock.Anything).
		Return(&snapshot.RestoreResult{AuditWriteFailed: true}, nil)

	resp, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	require.NoError(t, err)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "audit log entry")
}

func TestService_Restore_ServerWorkspaceWithoutRemoteStore(t *testing.T) {
	f := newServiceFixture()
	f.service = NewService(
		f.workspaceRepo, f.userRepo,
		f.localStore, nil,
		f.restoreLock, time.Minute, "1.2.0", nil,
	)
	ws := testWorkspace(workspace.StorageServer)
	f.expectActor(ws, workspace.RoleOwner)

	_, err := f.service.Restore(context.Background(), testUserID, testWorkspaceID, validSnapshotRaw())

	assert.ErrorIs(t, err, shared.ErrSourceUnavailable)
}
