package impl

import (
	"context"
	"testing"

	"steakz/internal/domain/entity"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	mockRepo "steakz/internal/mocks/repository"
	mockSvc "steakz/internal/mocks/service"
	"steakz/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service    usecase.UserUsecase
	userRepo   *mockRepo.MockUserRepository
	branchRepo *mockRepo.MockBranchRepository
	hasher     *mockSvc.MockPasswordHasher
	tokenSvc   *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	branchRepo := mockRepo.NewMockBranchRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenSvc := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:   userRepo,
		BranchRepo: branchRepo,
		Hasher:     hasher,
		TokenSvc:   tokenSvc,
		Logger:     newDiscardLogger(),
	})

	return userServiceFixtures{
		service:    service,
		userRepo:   userRepo,
		branchRepo: branchRepo,
		hasher:     hasher,
		tokenSvc:   tokenSvc,
	}
}

func adminIdentity() policy.Identity {
	return policy.Identity{UserID: 1, Role: entity.RoleAdmin}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     "Ada Diner",
		Email:    "ada@example.com",
		Password: "Password123!",
	}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).
		Return(nil)
	fx.tokenSvc.EXPECT().
		GenerateTokens(mock.AnythingOfType("*entity.User")).
		Return("access_token", "refresh_token", nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "access_token", output.AccessToken)
	assert.Equal(t, "refresh_token", output.RefreshToken)
	assert.Equal(t, uint(42), output.User.ID)
	assert.Equal(t, entity.RoleCustomer, output.User.Role)
	assert.Nil(t, output.User.BranchID)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(&entity.User{ID: 1, Email: input.Email}, nil)

	_, err := fx.service.Register(ctx, input)

	requireErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_Register_CreateRace(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.RegisterInput{Name: "Ada", Email: "ada@example.com", Password: "Password123!"}

	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, input.Email).
		Return(nil, repository.ErrUserNotFound)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	// The unique email constraint catches the concurrent registration.
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateEmail)

	_, err := fx.service.Register(ctx, input)

	requireErrorCode(t, err, "USER_ALREADY_EXISTS")
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{
		ID:           42,
		Email:        "ada@example.com",
		PasswordHash: "hashed_password",
		Role:         entity.RoleCustomer,
	}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", user.PasswordHash).Return(true)
	fx.tokenSvc.EXPECT().GenerateTokens(user).Return("access_token", "refresh_token", nil)

	output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, uint(42), output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	user := &entity.User{ID: 42, Email: "ada@example.com", PasswordHash: "hashed_password"}

	fx.userRepo.EXPECT().FindUserByEmail(ctx, user.Email).Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", user.PasswordHash).Return(false)

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: user.Email, Password: "wrong"})

	requireErrorCode(t, err, "INVALID_LOGIN")
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.userRepo.EXPECT().
		FindUserByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	// Unknown account and wrong password are indistinguishable to the caller.
	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})

	requireErrorCode(t, err, "INVALID_LOGIN")
}

func TestUserService_CreateStaff_BranchScopedRole(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateStaffInput{
		Name:     "Bob Chef",
		Email:    "bob@example.com",
		Password: "Password123!",
		Role:     entity.RoleChef,
		BranchID: uintPtr(3),
	}

	fx.branchRepo.EXPECT().FindBranchByID(ctx, uint(3)).Return(&entity.Branch{ID: 3}, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		CreateUser(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			user.ID = 8
		}).
		Return(nil)

	summary, err := fx.service.CreateStaff(ctx, adminIdentity(), input)

	require.NoError(t, err)
	assert.Equal(t, uint(8), summary.ID)
	assert.Equal(t, entity.RoleChef, summary.Role)
	require.NotNil(t, summary.BranchID)
	assert.Equal(t, uint(3), *summary.BranchID)
}

func TestUserService_CreateStaff_Validation(t *testing.T) {
	cases := []struct {
		name  string
		input *usecase.CreateStaffInput
	}{
		{
			"customer is not a staff role",
			&usecase.CreateStaffInput{Name: "X", Email: "x@example.com", Password: "Password123!", Role: entity.RoleCustomer},
		},
		{
			"unknown role",
			&usecase.CreateStaffInput{Name: "X", Email: "x@example.com", Password: "Password123!", Role: entity.Role("waiter")},
		},
		{
			"branch-scoped role without a branch",
			&usecase.CreateStaffInput{Name: "X", Email: "x@example.com", Password: "Password123!", Role: entity.RoleChef},
		},
		{
			"management role with a branch",
			&usecase.CreateStaffInput{Name: "X", Email: "x@example.com", Password: "Password123!", Role: entity.RoleAdmin, BranchID: uintPtr(1)},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := createTestUserService(t)

			_, err := fx.service.CreateStaff(context.Background(), adminIdentity(), tc.input)

			requireErrorCode(t, err, "VALIDATION_FAILED")
		})
	}
}

func TestUserService_CreateStaff_UnknownBranch(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	input := &usecase.CreateStaffInput{
		Name:     "Bob Chef",
		Email:    "bob@example.com",
		Password: "Password123!",
		Role:     entity.RoleChef,
		BranchID: uintPtr(999),
	}

	fx.branchRepo.EXPECT().
		FindBranchByID(ctx, uint(999)).
		Return(nil, repository.ErrBranchNotFound)

	_, err := fx.service.CreateStaff(ctx, adminIdentity(), input)

	requireErrorCode(t, err, "BRANCH_NOT_FOUND")
}

func TestUserService_CreateStaff_RequiresManagement(t *testing.T) {
	fx := createTestUserService(t)

	input := &usecase.CreateStaffInput{
		Name:     "Bob Chef",
		Email:    "bob@example.com",
		Password: "Password123!",
		Role:     entity.RoleChef,
		BranchID: uintPtr(3),
	}

	identity := policy.Identity{UserID: 7, Role: entity.RoleBranchManager, BranchID: uintPtr(3)}
	_, err := fx.service.CreateStaff(context.Background(), identity, input)

	requireErrorCode(t, err, "ROLE_NOT_PERMITTED")
}

func TestUserService_ListStaff_BranchManagerSeesOwnBranchOnly(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	staff := []*entity.User{
		{ID: 8, Name: "Bob", Email: "bob@example.com", Role: entity.RoleChef, BranchID: uintPtr(3)},
	}

	fx.userRepo.EXPECT().
		ListStaff(ctx, mock.MatchedBy(func(branchID *uint) bool {
			return branchID != nil && *branchID == 3
		})).
		Return(staff, nil)

	identity := policy.Identity{UserID: 7, Role: entity.RoleBranchManager, BranchID: uintPtr(3)}

	// The requested branch is ignored in favor of the caller's own.
	summaries, err := fx.service.ListStaff(ctx, identity, uintPtr(3))

	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "bob@example.com", summaries[0].Email)
}
