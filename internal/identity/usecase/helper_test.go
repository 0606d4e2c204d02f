package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/caredent/caredent/internal/identity/entity"
	"github.com/caredent/caredent/internal/pkg/config"
	"github.com/caredent/caredent/internal/pkg/goerror"
	"github.com/caredent/caredent/internal/pkg/hash"
	"github.com/caredent/caredent/internal/pkg/instrument"
	"github.com/caredent/caredent/internal/pkg/jwt"
	"github.com/caredent/caredent/internal/pkg/otp"
	"github.com/caredent/caredent/internal/pkg/uid"
	"github.com/caredent/caredent/internal/pkg/validator"
)

type memRepo struct {
	usersByEmail    map[string]*entity.User
	usersByPhone    map[string]*entity.User
	usersByUsername map[string]*entity.User
	passwordUpdates map[string]string
	failWith        error
}

func newMemRepo(users ...*entity.User) *memRepo {
	r := &memRepo{
		usersByEmail:    map[string]*entity.User{},
		usersByPhone:    map[string]*entity.User{},
		usersByUsername: map[string]*entity.User{},
		passwordUpdates: map[string]string{},
	}
	for _, u := range users {
		r.usersByEmail[u.Email] = u
		r.usersByPhone[u.Phone] = u
		r.usersByUsername[u.Username] = u
	}

	return r
}

func (r *memRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.usersByEmail[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return u, nil
}

func (r *memRepo) GetUserByPhone(_ context.Context, phone string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.usersByPhone[phone]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return u, nil
}

func (r *memRepo) GetUserByUsername(_ context.Context, username string) (*entity.User, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	u, ok := r.usersByUsername[username]
	if !ok {
		return nil, goerror.ErrNotFound
	}

	return u, nil
}

func (r *memRepo) UpdatePasswordByEmail(_ context.Context, email, hashed string) (int64, error) {
	if r.failWith != nil {
		return 0, r.failWith
	}
	if _, ok := r.usersByEmail[email]; !ok {
		return 0, nil
	}
	r.passwordUpdates[email] = hashed

	return 1, nil
}

func (r *memRepo) UpdatePassword(_ context.Context, userID int64, hashed string) error {
	if r.failWith != nil {
		return r.failWith
	}
	for _, u := range r.usersByEmail {
		if u.ID == userID {
			u.Password = hashed
			return nil
		}
	}

	return goerror.ErrNotFound
}

func (r *memRepo) UpdateEmail(_ context.Context, userID int64, email string) error {
	if r.failWith != nil {
		return r.failWith
	}
	if _, ok := r.usersByEmail[email]; ok {
		return goerror.ErrConflict
	}
	for old, u := range r.usersByEmail {
		if u.ID == userID {
			delete(r.usersByEmail, old)
			u.Email = email
			r.usersByEmail[email] = u

			return nil
		}
	}

	return goerror.ErrNotFound
}

type memStore struct {
	codes  map[string]string
	ttls   map[string]time.Duration
	setErr error
	getErr error
	delErr error
}

func newMemStore() *memStore {
	return &memStore{codes: map[string]string{}, ttls: map[string]time.Duration{}}
}

func (s *memStore) Set(_ context.Context, key, code string, ttl time.Duration) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.codes[key] = code
	s.ttls[key] = ttl

	return nil
}

func (s *memStore) Get(_ context.Context, key string) (string, error) {
	if s.getErr != nil {
		return "", s.getErr
	}
	code, ok := s.codes[key]
	if !ok {
		return "", goerror.ErrNotFound
	}

	return code, nil
}

func (s *memStore) Del(_ context.Context, key string) error {
	if s.delErr != nil {
		return s.delErr
	}
	delete(s.codes, key)

	return nil
}

type memNotifier struct {
	emailCodes map[string]string
	smsCodes   map[string]string
	emailErr   error
	smsErr     error
}

func newMemNotifier() *memNotifier {
	return &memNotifier{emailCodes: map[string]string{}, smsCodes: map[string]string{}}
}

func (n *memNotifier) SendOTPEmail(_ context.Context, to, code string) error {
	if n.emailErr != nil {
		return n.emailErr
	}
	n.emailCodes[to] = code

	return nil
}

func (n *memNotifier) SendOTPSMS(_ context.Context, to, code string) error {
	if n.smsErr != nil {
		return n.smsErr
	}
	n.smsCodes[to] = code

	return nil
}

func newTestUsecase(t *testing.T, repo *memRepo, store *memStore, notif *memNotifier) *Usecase {
	t.Helper()

	v, err := validator.NewV10Validator()
	if err != nil {
		t.Fatalf("NewV10Validator() error = %v", err)
	}

	cfg, err := config.NewViperFromBytes("yaml", []byte("modules:\n  identity:\n    otp_ttl_seconds: 300\n"))
	if err != nil {
		t.Fatalf("NewViperFromBytes() error = %v", err)
	}

	testJWT, err := jwt.NewHS512(jwt.Config{
		Secret:    []byte("0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"),
		Issuer:    "caredent-test",
		Audiences: []string{"caredent-test"},
		TTL:       time.Hour,
		Clock:     fixedClock{now: time.Now()},
		UUID:      uid.NewUUID(),
	})
	if err != nil {
		t.Fatalf("NewHS512() error = %v", err)
	}

	return New(Dependency{
		RepoDB:     repo,
		CodeStore:  store,
		Notifier:   notif,
		Validator:  v,
		Config:     cfg,
		Bcrypt:     hash.NewBcrypt(4, ""),
		OTP:        otp.NewNumericGenerator(6),
		JWT:        testJWT,
		Instrument: instrument.NewNoop(),
	})
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func assertErrorStatus(t *testing.T, err error, status int, msg string) {
	t.Helper()

	var ge *goerror.Error
	if !errors.As(err, &ge) {
		t.Fatalf("error is not *goerror.Error: %v", err)
	}
	if ge.StatusCode() != status {
		t.Fatalf("StatusCode() = %d, want %d (err: %v)", ge.StatusCode(), status, err)
	}
	if msg != "" && ge.Msg() != msg {
		t.Fatalf("Msg() = %q, want %q", ge.Msg(), msg)
	}
}
