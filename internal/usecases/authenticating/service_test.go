package authenticating

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/campaign-manager-api/infrastructure/repository/mocks"
	"github.com/vfg2006/campaign-manager-api/internal/config"
	"github.com/vfg2006/campaign-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func stringPtr(s string) *string {
	return &s
}

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.Auth{
			Secret:          "test-secret",
			TokenTTLMinutes: 60,
		},
	}
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockRepo, cfg: testConfig()}

	tests := []struct {
		name     string
		request  *domain.RegisterUserRequest
		setup    func()
		validate func(t *testing.T, user *domain.User, err error)
	}{
		{
			name: "Senha fraca - rejeitada antes de consultar o banco",
			request: &domain.RegisterUserRequest{
				Email:    "user@example.com",
				Password: "abc123",
			},
			setup: func() {},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)

				var authErr *AuthError
				assert.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, authErr.Err, ErrWeakPassword)
			},
		},
		{
			name: "Email já cadastrado",
			request: &domain.RegisterUserRequest{
				Email:    "User@Example.com",
				Password: "Str0ngPass",
			},
			setup: func() {
				// Email é normalizado antes da consulta
				mockRepo.EXPECT().
					GetUserByEmail("user@example.com").
					Return(&domain.User{ID: "usr_001", Email: "user@example.com"}, nil)
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.Nil(t, user)

				var authErr *AuthError
				assert.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, authErr.Err, ErrUserAlreadyExists)
			},
		},
		{
			name: "Cadastro válido - usuário ativo com papel USER e hash sem vazamento",
			request: &domain.RegisterUserRequest{
				Email:     "new@example.com",
				Password:  "Str0ngPass",
				FirstName: stringPtr("Maria"),
				LastName:  stringPtr("Silva"),
			},
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("new@example.com").
					Return(nil, nil)

				mockRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) error {
						assert.Equal(t, domain.RoleUser, user.Role)
						assert.True(t, user.Active)
						assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Str0ngPass")))
						return nil
					})
			},
			validate: func(t *testing.T, user *domain.User, err error) {
				assert.NoError(t, err)
				assert.Empty(t, user.PasswordHash)
				assert.Equal(t, "new@example.com", user.Email)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			user, err := service.Register(tt.request)

			tt.validate(t, user, err)
		})
	}
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockUserRepository(ctrl)
	service := &Service{userRepo: mockRepo, cfg: testConfig()}

	hash, err := bcrypt.GenerateFromPassword([]byte("Str0ngPass"), bcrypt.DefaultCost)
	assert.NoError(t, err)

	activeUser := &domain.User{
		ID:           "usr_001",
		Email:        "user@example.com",
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		Active:       true,
	}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func()
		validate func(t *testing.T, token string, err error)
	}{
		{
			name:     "Credenciais válidas - token assinado que valida com as mesmas claims",
			email:    "user@example.com",
			password: "Str0ngPass",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("user@example.com").
					Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.NoError(t, err)
				assert.NotEmpty(t, token)

				claims, err := service.ValidateToken(token)
				assert.NoError(t, err)
				assert.Equal(t, "usr_001", claims.UserID)
				assert.Equal(t, domain.RoleUser, claims.UserRole)
			},
		},
		{
			name:     "Senha incorreta",
			email:    "user@example.com",
			password: "WrongPass1",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("user@example.com").
					Return(activeUser, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)

				var authErr *AuthError
				assert.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, authErr.Err, ErrInvalidCredentials)
			},
		},
		{
			name:     "Conta desativada",
			email:    "user@example.com",
			password: "Str0ngPass",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("user@example.com").
					Return(&domain.User{
						ID:           "usr_001",
						Email:        "user@example.com",
						PasswordHash: string(hash),
						Active:       false,
					}, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)

				var authErr *AuthError
				assert.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, authErr.Err, ErrUserDisabled)
			},
		},
		{
			name:     "Usuário inexistente",
			email:    "missing@example.com",
			password: "Str0ngPass",
			setup: func() {
				mockRepo.EXPECT().
					GetUserByEmail("missing@example.com").
					Return(nil, nil)
			},
			validate: func(t *testing.T, token string, err error) {
				assert.Empty(t, token)

				var authErr *AuthError
				assert.True(t, errors.As(err, &authErr))
				assert.ErrorIs(t, authErr.Err, ErrUserNotFound)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			token, err := service.Login(tt.email, tt.password)

			tt.validate(t, token, err)
		})
	}
}

func TestValidatePasswordStrength(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{name: "Senha válida", password: "Str0ngPass", wantErr: false},
		{name: "Curta demais", password: "Ab1", wantErr: true},
		{name: "Sem maiúscula", password: "str0ngpass", wantErr: true},
		{name: "Sem minúscula", password: "STR0NGPASS", wantErr: true},
		{name: "Sem número", password: "StrongPass", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePasswordStrength(tt.password)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
