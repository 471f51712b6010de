package authService

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"Dermalens/internal/api/auth"
	authRepository "Dermalens/internal/api/auth/repository"
	"Dermalens/internal/entity"

	"github.com/sirupsen/logrus"
)

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) SetOTP(_ context.Context, key string, code string, _ time.Duration) error {
	f.store[key] = code
	return nil
}

func (f *fakeRedis) GetOTP(_ context.Context, key string) (string, error) {
	code, ok := f.store[key]
	if !ok {
		return "", errors.New("otp not found")
	}
	return code, nil
}

func (f *fakeRedis) DeleteOTP(_ context.Context, key string) error {
	delete(f.store, key)
	return nil
}

type fakeMailer struct {
	sentTo   string
	sentCode string
	err      error
}

func (f *fakeMailer) CreateSmtp(userEmail string, otp string) error {
	if f.err != nil {
		return f.err
	}
	f.sentTo = userEmail
	f.sentCode = otp
	return nil
}

type fakeUserRows struct {
	byEmail  map[string]entity.User
	verified map[string]bool
}

func (f *fakeUserRows) CreateUser(context.Context, entity.User) error { return nil }

func (f *fakeUserRows) GetByID(context.Context, string) (entity.User, error) {
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUserRows) GetByEmail(_ context.Context, email string) (entity.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return entity.User{}, auth.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRows) GetByUsername(context.Context, string) (entity.User, error) {
	return entity.User{}, auth.ErrUserNotFound
}

func (f *fakeUserRows) UpdateUser(context.Context, entity.User) error { return nil }

func (f *fakeUserRows) UpdatePassword(context.Context, string, string) error { return nil }

func (f *fakeUserRows) UpdateVerifiedStatus(_ context.Context, id string, verified bool) error {
	f.verified[id] = verified
	return nil
}

func (f *fakeUserRows) UpdateProfilePhoto(context.Context, string, string) error { return nil }

func (f *fakeUserRows) DeleteUser(context.Context, string) error { return nil }

type fakeAuthRepo struct {
	users     *fakeUserRows
	committed bool
}

func (f *fakeAuthRepo) NewClient(bool) (authRepository.Client, error) {
	return authRepository.Client{
		Users:    f.users,
		Commit:   func() error { f.committed = true; return nil },
		Rollback: func() error { return nil },
	}, nil
}

func newOTPTestDomain(redis *fakeRedis, mailer *fakeMailer, repo *fakeAuthRepo) *authDomainImpl {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return &authDomainImpl{
		log:         logger,
		repo:        repo,
		redisServer: redis,
		smtpMailer:  mailer,
	}
}

func TestEmailOTPFlow(t *testing.T) {
	const email = "ana@example.com"

	newFixture := func() (*fakeRedis, *fakeMailer, *fakeAuthRepo, *authDomainImpl) {
		redis := newFakeRedis()
		mailer := &fakeMailer{}
		repo := &fakeAuthRepo{users: &fakeUserRows{
			byEmail:  map[string]entity.User{email: {ID: "user-1", Email: email}},
			verified: make(map[string]bool),
		}}
		return redis, mailer, repo, newOTPTestDomain(redis, mailer, repo)
	}

	t.Run("send stores a five digit code and mails it", func(t *testing.T) {
		redis, mailer, _, domain := newFixture()

		if err := domain.SendEmailOTP(context.Background(), email); err != nil {
			t.Fatalf("SendEmailOTP() error = %v", err)
		}

		code, ok := redis.store[email]
		if !ok {
			t.Fatal("expected OTP to be stored for the email")
		}
		if len(code) != 5 {
			t.Errorf("OTP length = %d, want 5", len(code))
		}
		if mailer.sentTo != email {
			t.Errorf("mailed to %q, want %q", mailer.sentTo, email)
		}
		if mailer.sentCode != code {
			t.Errorf("mailed code %q does not match stored code %q", mailer.sentCode, code)
		}
	})

	t.Run("send fails when the mailer fails", func(t *testing.T) {
		_, mailer, _, domain := newFixture()
		mailer.err = errors.New("smtp down")

		if err := domain.SendEmailOTP(context.Background(), email); err == nil {
			t.Fatal("expected an error when the mailer fails")
		}
	})

	t.Run("verify with the stored code marks the user verified", func(t *testing.T) {
		redis, _, repo, domain := newFixture()
		redis.store[email] = "12345"

		if err := domain.VerifyEmailOTP(context.Background(), email, "12345"); err != nil {
			t.Fatalf("VerifyEmailOTP() error = %v", err)
		}

		if !repo.users.verified["user-1"] {
			t.Error("expected the user to be marked verified")
		}
		if !repo.committed {
			t.Error("expected the transaction to be committed")
		}
		if _, ok := redis.store[email]; ok {
			t.Error("expected the OTP to be deleted after verification")
		}
	})

	t.Run("verify with a wrong code", func(t *testing.T) {
		redis, _, repo, domain := newFixture()
		redis.store[email] = "12345"

		err := domain.VerifyEmailOTP(context.Background(), email, "54321")
		if !errors.Is(err, auth.ErrInvalidOTP) {
			t.Fatalf("VerifyEmailOTP() error = %v, want ErrInvalidOTP", err)
		}
		if repo.users.verified["user-1"] {
			t.Error("user must not be verified on a wrong code")
		}
	})

	t.Run("verify with no stored code", func(t *testing.T) {
		_, _, _, domain := newFixture()

		err := domain.VerifyEmailOTP(context.Background(), email, "12345")
		if !errors.Is(err, auth.ErrorTokenExpired) {
			t.Fatalf("VerifyEmailOTP() error = %v, want ErrorTokenExpired", err)
		}
	})
}
