package auth_test

import (
	"context"
	"testing"
	"time"

	"shop/internal/domain/model"
	auth "shop/internal/usecase/auth_usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type plainVerifier struct{}

func (v *plainVerifier) Verify(plain string, hashed string) bool {
	return hashed == "hashed:"+plain
}

type issuerStub struct{}

func (i *issuerStub) Issue(userID int64, now time.Time) (string, time.Time, error) {
	return "token-for-user", now.Add(15 * time.Minute), nil
}

func newLoginFixture(t *testing.T) (*auth.LoginUsecase, *UserRepoMock, *fixedClock) {
	t.Helper()
	userRepo := new(UserRepoMock)
	clock := &fixedClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	return auth.NewLoginUsecase(userRepo, &plainVerifier{}, &issuerStub{}, clock), userRepo, clock
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	uc, userRepo, clock := newLoginFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&model.User{ID: 7, Email: "user@example.com", PasswordHash: "hashed:correct-horse-battery"}, nil)
	userRepo.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
		return u.LastLoginAt != nil && u.LastLoginAt.Equal(clock.now)
	})).Return(nil)

	out, err := uc.Execute(ctx, auth.LoginInput{
		Email:    "user@example.com",
		Password: "correct-horse-battery",
	})
	assert.NoError(t, err)

	assert.Equal(t, "token-for-user", out.Token.AccessToken)
	assert.Equal(t, 15*60, out.Token.ExpiresIn)
	userRepo.AssertExpectations(t)
}

func TestLogin_UnknownEmail(t *testing.T) {
	ctx := context.Background()
	uc, userRepo, _ := newLoginFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, nil)

	_, err := uc.Execute(ctx, auth.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever-password",
	})

	//存在しないユーザーとパスワード違いは区別しない
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	uc, userRepo, _ := newLoginFixture(t)

	userRepo.On("FindByEmail", mock.Anything, "user@example.com").
		Return(&model.User{ID: 7, Email: "user@example.com", PasswordHash: "hashed:correct-horse-battery"}, nil)

	_, err := uc.Execute(ctx, auth.LoginInput{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_EmptyInput(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newLoginFixture(t)

	_, err := uc.Execute(ctx, auth.LoginInput{Email: "", Password: ""})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
