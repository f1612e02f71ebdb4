package maintenance

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/anonto42/localflow/pkg/metrics"
	"github.com/sirupsen/logrus"
)

type fakeDeleter struct {
	cutoff time.Time
	n      int64
	err    error
}

func (f *fakeDeleter) DeleteOlderThan(_ context.Context, cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.n, f.err
}

type purgeRecorder struct {
	metrics.Nop
	purged int64
}

func (r *purgeRecorder) RecordNotificationsPurged(n int64) { r.purged += n }

func discard() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func TestPurgeNotificationsUsesSevenDayCutoff(t *testing.T) {
	d := &fakeDeleter{n: 3}
	rec := &purgeRecorder{}
	p := NewPurger(d, rec, discard())
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	n, err := p.PurgeNotifications(context.Background())
	if err != nil || n != 3 {
		t.Fatalf("n=%d err=%v", n, err)
	}
	if want := time.Date(2024, 6, 8, 12, 0, 0, 0, time.UTC); !d.cutoff.Equal(want) {
		t.Errorf("cutoff = %v, want %v", d.cutoff, want)
	}
	if rec.purged != 3 {
		t.Errorf("recorded = %d", rec.purged)
	}
}

func TestPurgeNotificationsError(t *testing.T) {
	boom := errors.New("db down")
	rec := &purgeRecorder{}
	p := NewPurger(&fakeDeleter{err: boom}, rec, discard())
	if _, err := p.PurgeNotifications(context.Background()); !errors.Is(err, boom) {
		t.Errorf("err = %v", err)
	}
	if rec.purged != 0 {
		t.Error("nothing should be recorded on failure")
	}
}
