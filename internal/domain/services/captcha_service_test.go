package services

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCaptchaStore struct {
	mu    sync.Mutex
	codes map[string]string
	at    map[string]time.Time
}

func newMemoryCaptchaStore() *memoryCaptchaStore {
	return &memoryCaptchaStore{codes: map[string]string{}, at: map[string]time.Time{}}
}

func (m *memoryCaptchaStore) Save(_ context.Context, id, code string, createdAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.codes[id] = code
	m.at[id] = createdAt
	return nil
}

func (m *memoryCaptchaStore) Take(_ context.Context, id string) (string, time.Time, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	code, ok := m.codes[id]
	if !ok {
		return "", time.Time{}, ErrCaptchaNotFound
	}
	at := m.at[id]
	delete(m.codes, id)
	delete(m.at, id)
	return code, at, nil
}

func (m *memoryCaptchaStore) PurgeExpired(context.Context, time.Time) (int64, error) { return 0, nil }

func TestCaptchaSingleUse(t *testing.T) {
	store := newMemoryCaptchaStore()
	svc := NewCaptchaService(store, testConfig()).(*CaptchaService)
	ctx := context.Background()

	c, err := svc.Generate(ctx)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(c.Image, "data:image/png;base64,"))
	answer := store.codes[c.CaptchaID]
	require.Len(t, answer, 4)

	assert.True(t, svc.Verify(ctx, c.CaptchaID, " "+answer+" "))
	assert.False(t, svc.Verify(ctx, c.CaptchaID, answer))
}

func TestCaptchaWrongCodeIsConsumed(t *testing.T) {
	store := newMemoryCaptchaStore()
	svc := NewCaptchaService(store, testConfig())
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "id1", "1234", time.Now()))
	assert.False(t, svc.Verify(ctx, "id1", "9999"))
	assert.False(t, svc.Verify(ctx, "id1", "1234"))
	assert.False(t, svc.Verify(ctx, "", "1234"))
}

func TestCaptchaExpired(t *testing.T) {
	store := newMemoryCaptchaStore()
	svc := NewCaptchaService(store, testConfig()).(*CaptchaService)
	svc.now = func() time.Time { return fixedNow }
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "old", "1234", fixedNow.Add(-6*time.Minute)))
	assert.False(t, svc.Verify(ctx, "old", "1234"))
}

func TestDBCaptchaStoreTakeRace(t *testing.T) {
	h, mock := newHelper(t)
	store := NewDBCaptchaStore(h)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT SESSIONID, CODE, CREATE_AT FROM CAPTCHASESSION WHERE SESSIONID = ?")).
		WithArgs("id1").
		WillReturnRows(sqlmock.NewRows([]string{"SESSIONID", "CODE", "CREATE_AT"}).AddRow("id1", "1234", fixedNow))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM CAPTCHASESSION WHERE SESSIONID = ?")).
		WithArgs("id1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, _, err := store.Take(context.Background(), "id1")
	assert.ErrorIs(t, err, ErrCaptchaNotFound)
}

func TestCaptchaPurgeExpired(t *testing.T) {
	h, mock := newHelper(t)
	svc := NewCaptchaService(NewDBCaptchaStore(h), testConfig()).(*CaptchaService)
	svc.now = func() time.Time { return fixedNow }

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM CAPTCHASESSION WHERE CREATE_AT < ?")).
		WithArgs(fixedNow.Add(-5 * time.Minute)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := svc.PurgeExpired(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)
}
