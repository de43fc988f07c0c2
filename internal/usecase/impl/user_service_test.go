package impl

import (
	"context"
	"testing"

	"rental/internal/domain/entity"
	domainerrors "rental/internal/domain/errors"
	"rental/internal/domain/repository"
	mockRepo "rental/internal/mocks/repository"
	mockSvc "rental/internal/mocks/service"
	"rental/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return userServiceFixtures{
		service: NewUserService(UserServiceParams{
			UserRepo:     userRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       newDiscardLogger(),
		}),
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Signup_Success(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash("Password123!").Return("hashed_password", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Email == "test@example.com" && u.PasswordHash == "hashed_password" && u.Name == "Test User"
		})).
		Run(func(_ context.Context, user *entity.User) { user.ID = uuid.New() }).
		Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(mock.AnythingOfType("uuid.UUID")).Return("access", nil)

	output, err := fx.service.Signup(ctx, &usecase.SignupInput{
		Name:     " Test User ",
		Email:    " Test@Example.com",
		Password: "Password123!",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", output.AccessToken)
	assert.Equal(t, "test@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_Signup_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)

	ctx := context.Background()
	fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed_password", nil)
	fx.userRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrEmailTaken)

	_, err := fx.service.Signup(ctx, &usecase.SignupInput{Name: "A", Email: "a@example.com", Password: "Password123!"})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Signup_HashFailure(t *testing.T) {
	fx := createTestUserService(t)

	fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("cost too high"))

	_, err := fx.service.Signup(context.Background(), &usecase.SignupInput{Name: "A", Email: "a@example.com", Password: "x"})

	assert.ErrorIs(t, err, domainerrors.ErrPasswordHashFailed)
}

func TestUserService_Login(t *testing.T) {
	user := &entity.User{ID: uuid.New(), Email: "test@example.com", PasswordHash: "hashed"}

	tests := []struct {
		name     string
		setup    func(fx userServiceFixtures, ctx context.Context)
		password string
		wantErr  error
	}{
		{
			name: "success",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("right", "hashed").Return(true)
				fx.tokenService.EXPECT().GenerateAccessToken(user.ID).Return("access", nil)
			},
			password: "right",
		},
		{
			name: "wrong password",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(user, nil)
				fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)
			},
			password: "wrong",
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
		{
			name: "unknown email",
			setup: func(fx userServiceFixtures, ctx context.Context) {
				fx.userRepo.EXPECT().FindByEmail(ctx, "test@example.com").Return(nil, repository.ErrUserNotFound)
			},
			password: "right",
			wantErr:  domainerrors.ErrInvalidCredentials,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			ctx := context.Background()
			tt.setup(fx, ctx)

			output, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "TEST@example.com", Password: tt.password})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", output.AccessToken)
			assert.Equal(t, user.ID, output.User.ID)
		})
	}
}
