package checkout

import (
	"testing"
	"time"

	"github.com/yogendra-08/vastraverse-api/models"
)

func TestPlaybackWalksTheSequence(t *testing.T) {
	got := make(chan models.OrderStatus, len(StatusSequence))
	p := StartPlayback(time.Millisecond, func(s models.OrderStatus) {
		got <- s
	})

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("playback did not finish")
	}
	close(got)

	want := []models.OrderStatus{
		models.OrderStatusPacked,
		models.OrderStatusShipped,
		models.OrderStatusOutForDelivery,
		models.OrderStatusDelivered,
	}
	var seen []models.OrderStatus
	for s := range got {
		seen = append(seen, s)
	}
	if len(seen) != len(want) {
		t.Fatalf("got %d transitions %v, want %d", len(seen), seen, len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("transition %d = %q, want %q", i, seen[i], want[i])
		}
	}
}

func TestPlaybackStops(t *testing.T) {
	applied := make(chan models.OrderStatus, len(StatusSequence))
	p := StartPlayback(time.Hour, func(s models.OrderStatus) {
		applied <- s
	})

	p.Stop()
	p.Stop() // idempotent

	select {
	case <-p.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("Stop did not end the playback")
	}
	select {
	case s := <-applied:
		t.Errorf("unexpected transition %q after Stop", s)
	default:
	}
}
