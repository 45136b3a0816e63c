package impl

import (
	"context"
	"log/slog"

	deliverycontext "steakz/internal/delivery/context"
	"steakz/internal/domain/entity"
	domainerrors "steakz/internal/domain/errors"
	"steakz/internal/domain/policy"
	"steakz/internal/domain/repository"
	"steakz/internal/domain/service"
	"steakz/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo   repository.UserRepository
	branchRepo repository.BranchRepository
	hasher     service.PasswordHasher
	tokenSvc   service.TokenService
	logger     *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo   repository.UserRepository
	BranchRepo repository.BranchRepository
	Hasher     service.PasswordHasher
	TokenSvc   service.TokenService
	Logger     *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo:   params.UserRepo,
		branchRepo: params.BranchRepo,
		hasher:     params.Hasher,
		tokenSvc:   params.TokenSvc,
		logger:     params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a customer account and logs it in.
func (srv *userService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.LoginOutput, error) {
	_, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrUserAlreadyExists
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing account")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         entity.RoleCustomer,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create account")
	}

	srv.log(ctx).Info("Customer registered", slog.Uint64("userID", uint64(user.ID)))

	return srv.issueTokens(user)
}

// Login verifies credentials and issues a token pair.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindUserByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidLogin
		}

		return nil, errors.Wrap(err, "failed to find account")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidLogin
	}

	return srv.issueTokens(user)
}

func (srv *userService) issueTokens(user *entity.User) (*usecase.LoginOutput, error) {
	access, refresh, err := srv.tokenSvc.GenerateTokens(user)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	return &usecase.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         toUserSummary(user),
	}, nil
}

// CreateStaff creates a staff account with a role and branch assignment.
func (srv *userService) CreateStaff(ctx context.Context, identity policy.Identity, input *usecase.CreateStaffInput) (*usecase.UserSummary, error) {
	if _, err := policy.CanPerform(identity, policy.ActionManageStaff, policy.Target{}); err != nil {
		return nil, err
	}

	if !input.Role.IsStaff() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("staff role must be one of chef, cashier, branch_manager, general_manager, admin")
	}

	// Branch-scoped roles need an assignment; management roles must not have one.
	if input.Role.IsBranchScoped() {
		if input.BranchID == nil {
			return nil, domainerrors.ErrValidationFailed.WithDetails("role " + input.Role.String() + " requires a branch assignment")
		}
		if _, err := srv.branchRepo.FindBranchByID(ctx, *input.BranchID); err != nil {
			if errors.Is(err, repository.ErrBranchNotFound) {
				return nil, domainerrors.ErrBranchNotFound
			}

			return nil, errors.Wrap(err, "failed to find branch")
		}
	} else if input.BranchID != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role " + input.Role.String() + " is branch-agnostic")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Role:         input.Role,
		BranchID:     input.BranchID,
	}

	if err := srv.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		return nil, errors.Wrap(err, "failed to create staff account")
	}

	srv.log(ctx).Info("Staff account created",
		slog.Uint64("userID", uint64(user.ID)),
		slog.String("role", user.Role.String()),
	)

	return toUserSummary(user), nil
}

// ListStaff retrieves staff accounts visible to the identity.
func (srv *userService) ListStaff(ctx context.Context, identity policy.Identity, branchID *uint) ([]*usecase.UserSummary, error) {
	scope, err := policy.CanPerform(identity, policy.ActionViewStaff, policy.Target{BranchID: branchID})
	if err != nil {
		return nil, err
	}

	if scope.BranchID != nil {
		branchID = scope.BranchID
	}

	staff, err := srv.userRepo.ListStaff(ctx, branchID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list staff")
	}

	summaries := make([]*usecase.UserSummary, 0, len(staff))
	for _, user := range staff {
		summaries = append(summaries, toUserSummary(user))
	}

	return summaries, nil
}

func toUserSummary(user *entity.User) *usecase.UserSummary {
	return &usecase.UserSummary{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Role:     user.Role,
		BranchID: user.BranchID,
	}
}
