package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"factory-monitor-service/internal/infrastructure/database"
	"factory-monitor-service/internal/test/mockdb"

	"github.com/DATA-DOG/go-sqlmock"
)

var fixedNow = time.Date(2026, 5, 18, 10, 30, 0, 0, time.UTC)

func newHelper(t *testing.T) (*database.Helper, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := mockdb.New(t)
	return database.NewHelper(db), mock
}

type recordingNotifier struct {
	mu      sync.Mutex
	reasons []string
	err     error
}

func (n *recordingNotifier) PublishRefresh(_ context.Context, reason string) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.reasons = append(n.reasons, reason)
	return n.err
}

func (n *recordingNotifier) Close() {}

func (n *recordingNotifier) Reasons() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.reasons...)
}

type fakeRefreshFlag struct {
	sets []string
	err  error
}

func (f *fakeRefreshFlag) Get(context.Context) (string, error) { return FlagNo, nil }

func (f *fakeRefreshFlag) Set(_ context.Context, value string) error {
	f.sets = append(f.sets, value)
	return f.err
}

func (f *fakeRefreshFlag) Consume(context.Context) (bool, error) { return false, nil }
