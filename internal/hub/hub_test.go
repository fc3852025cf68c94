package hub_test

import (
	"context"
	"testing"
	"time"

	"github.com/CobSammich/nba-scores-cli/internal/client"
	"github.com/CobSammich/nba-scores-cli/internal/hub"
	"github.com/CobSammich/nba-scores-cli/internal/testutil"
	"github.com/CobSammich/nba-scores-cli/pkg/models"
)

func startHub(t *testing.T) (*hub.Hub, context.CancelFunc) {
	t.Helper()
	h := hub.NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go h.Run(ctx)
	t.Cleanup(cancel)
	return h, cancel
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met before deadline")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func receive(t *testing.T, c *client.Client) models.ServerMessage {
	t.Helper()
	select {
	case msg, ok := <-c.Messages():
		if !ok {
			t.Fatal("client queue closed")
		}
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("no message received")
	}
	return models.ServerMessage{}
}

func TestHub_DeliverFiltersPerClient(t *testing.T) {
	h, _ := startHub(t)

	all := client.NewClient("all", nil, h)
	boston := client.NewClient("boston", nil, h)
	boston.SetFilter(models.SubscriptionFilter{Teams: []string{"Boston"}})
	miami := client.NewClient("miami", nil, h)
	miami.SetFilter(models.SubscriptionFilter{Teams: []string{"Miami"}})

	for _, c := range []*client.Client{all, boston, miami} {
		h.Register(c)
	}
	waitFor(t, func() bool { return h.GetClientCount() == 3 })

	sb := testutil.Scoreboard(
		testutil.LiveGame("LA Lakers", "Boston", 88, 90, "4th 5:12"),
		testutil.ScheduledGame("Utah", "Denver", "9:00p"),
	)
	if err := h.Deliver(context.Background(), sb); err != nil {
		t.Fatalf("Deliver() error = %v", err)
	}

	msg := receive(t, all)
	if msg.Type != models.MessageTypeScoreboard {
		t.Fatalf("message type = %s, want scoreboard", msg.Type)
	}
	if update := msg.Payload.(models.ScoreboardUpdate); len(update.Games) != 2 {
		t.Errorf("unfiltered client got %d games, want 2", len(update.Games))
	}

	update := receive(t, boston).Payload.(models.ScoreboardUpdate)
	if len(update.Games) != 1 || update.Games[0].HomeTeam.Name != "Boston" {
		t.Errorf("filtered client got %+v", update.Games)
	}

	select {
	case msg := <-miami.Messages():
		t.Errorf("client with no matching games received %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}

	waitFor(t, func() bool { return h.GetMetrics()["total_messages"].(int64) == 1 })
}

func TestHub_NewClientGetsLatest(t *testing.T) {
	h, _ := startHub(t)

	first := client.NewClient("first", nil, h)
	h.Register(first)

	h.Deliver(context.Background(), testutil.Scoreboard(testutil.ScheduledGame("Utah", "Denver", "9:00p")))
	receive(t, first)

	late := client.NewClient("late", nil, h)
	h.Register(late)

	update := receive(t, late).Payload.(models.ScoreboardUpdate)
	if len(update.Games) != 1 || update.Games[0].Matchup() != "Utah@Denver" {
		t.Errorf("late client got %+v", update.Games)
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	h, _ := startHub(t)

	slow := client.NewClient("slow", nil, h)
	h.Register(slow)
	waitFor(t, func() bool { return h.GetClientCount() == 1 })

	sb := testutil.Scoreboard(testutil.ScheduledGame("Utah", "Denver", "9:00p"))
	for i := 0; i <= client.SendBufferSize; i++ {
		h.Deliver(context.Background(), sb)
		// Let the hub drain the broadcast buffer so nothing is dropped there
		waitFor(t, func() bool { return h.GetMetrics()["broadcast_usage"].(int) == 0 })
	}

	waitFor(t, func() bool { return h.GetClientCount() == 0 })
	if dropped := h.GetMetrics()["dropped_clients"].(int64); dropped != 1 {
		t.Errorf("dropped_clients = %d, want 1", dropped)
	}
}

func TestHub_UnregisterAndShutdown(t *testing.T) {
	h, cancel := startHub(t)

	a := client.NewClient("a", nil, h)
	b := client.NewClient("b", nil, h)
	h.Register(a)
	h.Register(b)
	waitFor(t, func() bool { return h.GetClientCount() == 2 })

	h.Unregister(a)
	waitFor(t, func() bool { return h.GetClientCount() == 1 })
	if _, ok := <-a.Messages(); ok {
		t.Error("unregistered client queue should be closed")
	}

	cancel()
	waitFor(t, func() bool { return h.GetClientCount() == 0 })
	if _, ok := <-b.Messages(); ok {
		t.Error("client queue should be closed on shutdown")
	}

	// Calls after shutdown must not block
	done := make(chan struct{})
	go func() {
		h.Unregister(b)
		h.Register(client.NewClient("c", nil, h))
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Register/Unregister blocked after shutdown")
	}
}
