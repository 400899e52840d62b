package workspace

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shopledger/backend/internal/domain/identity"
	"github.com/shopledger/backend/internal/domain/shared"
	"github.com/shopledger/backend/internal/domain/workspace"
)

// ===================================
// Mock Repositories
// ===================================

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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]workspace.Workspace), args.Error(1)
}

func (m *MockWorkspaceRepository) FindAccessible(ctx context.Context, userID int64) ([]workspace.Workspace, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
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

// ===================================
// Test Helpers
// ===================================

const (
	testOwnerID     = int64(11)
	testWorkspaceID = int64(7)
)

func testWorkspace() *workspace.Workspace {
	ws := &workspace.Workspace{
		Name:        "Main Shop",
		OwnerID:     testOwnerID,
		StorageType: workspace.StorageLocal,
	}
	ws.ID = testWorkspaceID
	return ws
}

func newTestService() (*Service, *MockWorkspaceRepository, *MockUserRepository) {
	workspaceRepo := new(MockWorkspaceRepository)
	userRepo := new(MockUserRepository)
	return NewService(workspaceRepo, userRepo, nil), workspaceRepo, userRepo
}

// ===================================
// Workspace Lifecycle Tests
// ===================================

func TestService_Create_Success(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	workspaceRepo.On("Save", mock.Anything, mock.MatchedBy(func(ws *workspace.Workspace) bool {
		return ws.Name == "Main Shop" && ws.OwnerID == testOwnerID && ws.StorageType == workspace.StorageLocal
	})).Return(nil)

	resp, err := svc.Create(context.Background(), testOwnerID, CreateWorkspaceRequest{
		Name:        "  Main Shop  ",
		StorageType: "local",
	})

	require.NoError(t, err)
	assert.Equal(t, "Main Shop", resp.Name)
	assert.Equal(t, "local", resp.StorageType)
	workspaceRepo.AssertExpectations(t)
}

func TestService_Create_DefaultsToServerStorage(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	workspaceRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Create(context.Background(), testOwnerID, CreateWorkspaceRequest{Name: "Main Shop"})

	require.NoError(t, err)
	assert.Equal(t, "server", resp.StorageType)
}

func TestService_Create_EmptyName(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	_, err := svc.Create(context.Background(), testOwnerID, CreateWorkspaceRequest{Name: "   "})

	require.Error(t, err)
	workspaceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Create_InvalidStorageType(t *testing.T) {
	svc, _, _ := newTestService()

	_, err := svc.Create(context.Background(), testOwnerID, CreateWorkspaceRequest{
		Name:        "Main Shop",
		StorageType: "cloud",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
}

func TestService_Get_MemberCanRead(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()
	memberID := int64(22)

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)
	workspaceRepo.On("ResolveRole", mock.Anything, testWorkspaceID, memberID).Return(workspace.RoleViewer, nil)

	resp, err := svc.Get(context.Background(), memberID, testWorkspaceID)

	require.NoError(t, err)
	assert.Equal(t, testWorkspaceID, resp.ID)
}

func TestService_Get_NoAccess(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()
	strangerID := int64(99)

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)
	workspaceRepo.On("ResolveRole", mock.Anything, testWorkspaceID, strangerID).
		Return(workspace.Role(""), shared.ErrNotFound)

	_, err := svc.Get(context.Background(), strangerID, testWorkspaceID)

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
}

func TestService_Update_OwnerOnly(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()
	editorID := int64(22)

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)

	_, err := svc.Update(context.Background(), editorID, testWorkspaceID, UpdateWorkspaceRequest{Name: "Renamed"})

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	workspaceRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestService_Update_Success(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)
	workspaceRepo.On("Save", mock.Anything, mock.Anything).Return(nil)

	resp, err := svc.Update(context.Background(), testOwnerID, testWorkspaceID, UpdateWorkspaceRequest{
		Name:        "Renamed Shop",
		Description: "after the move",
	})

	require.NoError(t, err)
	assert.Equal(t, "Renamed Shop", resp.Name)
	assert.Equal(t, "after the move", resp.Description)
}

func TestService_Delete_OwnerOnly(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)

	err := svc.Delete(context.Background(), int64(22), testWorkspaceID)

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	workspaceRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

// ===================================
// Membership Tests
// ===================================

func TestService_AddMember_Success(t *testing.T) {
	svc, workspaceRepo, userRepo := newTestService()

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)
	userRepo.On("FindByID", mock.Anything, int64(22)).
		Return(&identity.User{ID: 22, Username: "bob"}, nil)
	workspaceRepo.On("AddMember", mock.Anything, mock.MatchedBy(func(m *workspace.Member) bool {
		return m.WorkspaceID == testWorkspaceID && m.UserID == 22 && m.Role == workspace.RoleEditor
	})).Return(nil)
	workspaceRepo.On("Save", mock.Anything, mock.MatchedBy(func(ws *workspace.Workspace) bool {
		return ws.IsShared
	})).Return(nil)

	resp, err := svc.AddMember(context.Background(), testOwnerID, testWorkspaceID, AddMemberRequest{
		UserID: 22,
		Role:   "editor",
	})

	require.NoError(t, err)
	assert.Equal(t, "bob", resp.Username)
	assert.Equal(t, "editor", resp.Role)
	workspaceRepo.AssertExpectations(t)
}

func TestService_AddMember_RejectsOwnerRole(t *testing.T) {
	svc, workspaceRepo, userRepo := newTestService()

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)

	_, err := svc.AddMember(context.Background(), testOwnerID, testWorkspaceID, AddMemberRequest{
		UserID: 22,
		Role:   "owner",
	})

	require.Error(t, err)
	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	userRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestService_AddMember_RejectsOwnerAsMember(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)

	_, err := svc.AddMember(context.Background(), testOwnerID, testWorkspaceID, AddMemberRequest{
		UserID: testOwnerID,
		Role:   "admin",
	})

	require.Error(t, err)
	workspaceRepo.AssertNotCalled(t, "AddMember", mock.Anything, mock.Anything)
}

func TestService_ListMembers_RequiresMembership(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()
	strangerID := int64(99)

	workspaceRepo.On("ResolveRole", mock.Anything, testWorkspaceID, strangerID).
		Return(workspace.Role(""), shared.ErrNotFound)

	_, err := svc.ListMembers(context.Background(), strangerID, testWorkspaceID)

	assert.ErrorIs(t, err, shared.ErrPermissionDenied)
	workspaceRepo.AssertNotCalled(t, "FindMembers", mock.Anything, mock.Anything)
}

func TestService_RemoveMember_Success(t *testing.T) {
	svc, workspaceRepo, _ := newTestService()

	workspaceRepo.On("FindByID", mock.Anything, testWorkspaceID).Return(testWorkspace(), nil)
	workspaceRepo.On("RemoveMember", mock.Anything, testWorkspaceID, int64(22)).Return(nil)

	err := svc.RemoveMember(context.Background(), testOwnerID, testWorkspaceID, 22)

	require.NoError(t, err)
	workspaceRepo.AssertExpectations(t)
}
