package notify_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/RoyceAzure/lab/storefront/internal/infra/notify"
	"github.com/RoyceAzure/lab/storefront/internal/infra/notify/mock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func sampleNotification(id string) notify.OrderNotification {
	return notify.OrderNotification{OrderID: id, CustomerName: "Meena", Total: 425, PaymentStatus: "confirmed"}
}

func TestDispatcherFansOutAndCounts(t *testing.T) {
	ctrl := gomock.NewController(t)
	ok := mock.NewMockNotifier(ctrl)
	broken := mock.NewMockNotifier(ctrl)

	ok.EXPECT().Name().Return("ok").AnyTimes()
	broken.EXPECT().Name().Return("broken").AnyTimes()
	ok.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(nil).Times(2)
	broken.EXPECT().Notify(gomock.Any(), gomock.Any()).Return(errors.New("smtp down")).Times(2)

	d := notify.NewDispatcher(nil, []notify.Notifier{ok, broken, notify.NewWhatsAppNotifier("", "")}, notify.WithWorkers(2))
	d.Start()

	require.True(t, d.Dispatch(sampleNotification("RG-1-AAAA")))
	require.True(t, d.Dispatch(sampleNotification("RG-1-BBBB")))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, d.Shutdown(ctx))

	stats := d.Stats()
	require.Equal(t, uint64(2), stats.Dispatched)
	require.Equal(t, uint64(2), stats.Sent)
	require.Equal(t, uint64(2), stats.Failed)
	require.Equal(t, uint64(2), stats.Skipped)
	require.Equal(t, uint64(0), stats.Dropped)
}

// blockingNotifier holds the only worker until released.
type blockingNotifier struct {
	release chan struct{}
	once    sync.Once
	started chan struct{}
}

func (b *blockingNotifier) Name() string { return "blocking" }

func (b *blockingNotifier) Notify(ctx context.Context, n notify.OrderNotification) error {
	b.once.Do(func() { close(b.started) })
	<-b.release
	return nil
}

func TestDispatcherNeverBlocksWhenQueueFull(t *testing.T) {
	blocker := &blockingNotifier{release: make(chan struct{}), started: make(chan struct{})}
	d := notify.NewDispatcher(nil, []notify.Notifier{blocker}, notify.WithWorkers(1), notify.WithQueueSize(1))
	d.Start()

	require.True(t, d.Dispatch(sampleNotification("first")))
	<-blocker.started
	require.True(t, d.Dispatch(sampleNotification("queued")))

	done := make(chan bool)
	go func() { done <- d.Dispatch(sampleNotification("overflow")) }()
	select {
	case accepted := <-done:
		require.False(t, accepted)
	case <-time.After(time.Second):
		t.Fatal("dispatch blocked on a full queue")
	}

	close(blocker.release)
	require.NoError(t, d.Shutdown(context.Background()))
	require.Equal(t, uint64(1), d.Stats().Dropped)
	require.Equal(t, uint64(2), d.Stats().Sent)

	require.False(t, d.Dispatch(sampleNotification("after-close")))
}

func TestDispatcherRecoversNotifierPanic(t *testing.T) {
	ctrl := gomock.NewController(t)
	bad := mock.NewMockNotifier(ctrl)
	bad.EXPECT().Name().Return("bad").AnyTimes()
	bad.EXPECT().Notify(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, n notify.OrderNotification) error {
		panic("boom")
	})

	d := notify.NewDispatcher(nil, []notify.Notifier{bad})
	d.Start()
	require.True(t, d.Dispatch(sampleNotification("RG-1-PANIC")))
	require.NoError(t, d.Shutdown(context.Background()))
	require.Equal(t, uint64(1), d.Stats().Failed)
}
