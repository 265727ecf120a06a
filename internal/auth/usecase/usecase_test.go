package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/juniorhq/junior/internal/auth/entity"
	"github.com/juniorhq/junior/internal/pkg/config"
	"github.com/juniorhq/junior/internal/pkg/goerror"
	"github.com/juniorhq/junior/internal/pkg/goroutine"
	"github.com/juniorhq/junior/internal/pkg/hash"
	"github.com/juniorhq/junior/internal/pkg/instrument"
	"github.com/juniorhq/junior/internal/pkg/otp"
	"github.com/juniorhq/junior/internal/pkg/session"
	"github.com/juniorhq/junior/internal/pkg/validator"
)

const testSID = "sid1"

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func sidCtx() context.Context {
	return session.WithSID(context.Background(), testSID)
}

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type fixedUID int64

func (f fixedUID) Generate() int64 { return int64(f) }

type fakeConfig struct {
	config.Config
}

func (fakeConfig) GetSecond(key string) time.Duration {
	if key == "modules.auth.otp_ttl_seconds" {
		return 300 * time.Second
	}
	return 0
}

func (fakeConfig) GetHour(key string) time.Duration {
	if key == "modules.auth.session_ttl_hours" {
		return 24 * time.Hour
	}
	return 0
}

type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	ttls    map[string]time.Duration
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		data: make(map[string][]byte),
		ttls: make(map[string]time.Duration),
	}
}

func (f *fakeStore) Get(_ context.Context, sid string) (*session.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	raw, ok := f.data[sid]
	if !ok {
		return &session.Session{}, nil
	}

	var s session.Session
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (f *fakeStore) Save(_ context.Context, sid string, s *session.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}

	raw, err := json.Marshal(s)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[sid] = raw
	return nil
}

func (f *fakeStore) SaveWithExpiry(ctx context.Context, sid string, s *session.Session, ttl time.Duration) error {
	if err := f.Save(ctx, sid, s); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[sid] = ttl
	return nil
}

func (f *fakeStore) SetExpiry(_ context.Context, sid string, ttl time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ttls[sid] = ttl
	return nil
}

func (f *fakeStore) Delete(_ context.Context, sid string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, sid)
	delete(f.ttls, sid)
	return nil
}

func (f *fakeStore) mustGet(t *testing.T, sid string) *session.Session {
	t.Helper()

	s, err := f.Get(context.Background(), sid)
	require.NoError(t, err)
	return s
}

func (f *fakeStore) ttl(sid string) time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.ttls[sid]
}

type fakeRepo struct {
	mu        sync.Mutex
	byEmail   map[string]*entity.User
	byID      map[int64]*entity.User
	created   []entity.NewUser
	lastLogin map[int64]time.Time
	existsErr error
	createErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		byEmail:   make(map[string]*entity.User),
		byID:      make(map[int64]*entity.User),
		lastLogin: make(map[int64]time.Time),
	}
}

func (f *fakeRepo) addUser(u entity.User) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.byEmail[u.Email] = &u
	f.byID[u.ID] = &u
}

func (f *fakeRepo) CreateUser(_ context.Context, in entity.NewUser, passwordHash string, joinedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.createErr != nil {
		return f.createErr
	}

	u := entity.User{
		ID:           in.ID,
		Email:        in.Email,
		PasswordHash: passwordHash,
		FullName:     in.FullName,
		Phone:        in.Phone,
		IsActive:     true,
		DateJoined:   joinedAt,
		UpdatedAt:    joinedAt,
	}
	f.byEmail[u.Email] = &u
	f.byID[u.ID] = &u
	f.created = append(f.created, in)
	return nil
}

func (f *fakeRepo) GetUserByEmail(_ context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byEmail[email]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) GetUserByID(_ context.Context, id int64) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	u, ok := f.byID[id]
	if !ok {
		return nil, goerror.ErrNotFound
	}
	return u, nil
}

func (f *fakeRepo) ExistsUserByEmail(_ context.Context, email string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.existsErr != nil {
		return false, f.existsErr
	}
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeRepo) UpdateLastLogin(_ context.Context, id int64, at time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastLogin[id] = at
	return nil
}

type sentMail struct {
	email, name, otp string
}

type fakeNotifier struct {
	mu   sync.Mutex
	sent []sentMail
}

func (f *fakeNotifier) SendOTP(_ context.Context, email, name, otp string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{email: email, name: name, otp: otp})
	return nil
}

func (f *fakeNotifier) all() []sentMail {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMail(nil), f.sent...)
}

type testDeps struct {
	uc       *Usecase
	repo     *fakeRepo
	store    *fakeStore
	notifier *fakeNotifier
	mgr      *goroutine.Manager
	bcrypt   hash.Hash
}

func newTestUsecase(t *testing.T) *testDeps {
	t.Helper()

	v10, err := validator.NewV10Validator()
	require.NoError(t, err)

	d := &testDeps{
		repo:     newFakeRepo(),
		store:    newFakeStore(),
		notifier: &fakeNotifier{},
		mgr:      goroutine.NewManager(4),
		bcrypt:   hash.NewBcrypt(4, ""),
	}

	d.uc = New(Dependency{
		RepoDB:     d.repo,
		Notifier:   d.notifier,
		Sessions:   d.store,
		Validator:  v10,
		Config:     fakeConfig{},
		Bcrypt:     d.bcrypt,
		UID:        fixedUID(7),
		OTP:        otp.Fixed("123456"),
		Clock:      fixedClock{now: testNow},
		Instrument: instrument.NewNoop(),
		Goroutine:  d.mgr,
	})

	return d
}

// flushMail waits for fire-and-forget mail goroutines to finish.
func (d *testDeps) flushMail(t *testing.T) {
	t.Helper()
	require.NoError(t, d.mgr.Wait())
}

func (d *testDeps) addActiveUser(t *testing.T, id int64, email, name, password string) {
	t.Helper()

	hashed, err := d.bcrypt.Hash(password)
	require.NoError(t, err)

	d.repo.addUser(entity.User{
		ID:           id,
		Email:        email,
		PasswordHash: string(hashed),
		FullName:     name,
		IsActive:     true,
	})
}

func (d *testDeps) stagePending(t *testing.T) {
	t.Helper()

	require.NoError(t, d.store.SaveWithExpiry(context.Background(), testSID, &session.Session{
		PendingRegistration: &session.PendingRegistration{
			FullName:  "Jane Doe",
			Email:     "jane@example.com",
			Password:  "Str0ngPass!",
			OTP:       "123456",
			ExpiresAt: testNow.Add(300 * time.Second),
		},
		EmailForOTP: "jane@example.com",
	}, 300*time.Second))
}

func asGoError(t *testing.T, err error) *goerror.Error {
	t.Helper()

	var gerr *goerror.Error
	require.ErrorAs(t, err, &gerr)
	return gerr
}

// fieldsOf extracts the per-field validation messages from an error chain.
func fieldsOf(t *testing.T, err error) map[string]string {
	t.Helper()

	var ve validator.V10ValidationError
	if errors.As(err, &ve) {
		return ve.Values()
	}

	gerr := asGoError(t, err)
	require.NotEmpty(t, gerr.Fields())
	return gerr.Fields()
}
