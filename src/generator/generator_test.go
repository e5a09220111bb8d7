package generator

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"elevsim/src/building"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestResidentialPassengers(t *testing.T) {
	b, _ := building.New(6)
	g := New(b, time.Millisecond, 42, testLogger())

	fromBottom := 0
	for range 200 {
		p := g.ResidentialPassenger()
		if p.Origin == p.Destination {
			t.Fatalf("passenger %v goes nowhere", p)
		}
		if p.Origin != b.BottomFloor() && p.Destination != b.BottomFloor() {
			t.Fatalf("passenger %v does not touch the bottom floor", p)
		}
		if p.Origin == b.BottomFloor() {
			fromBottom++
		}
	}
	if fromBottom == 0 || fromBottom == 200 {
		t.Errorf("%d of 200 passengers started at the bottom floor", fromBottom)
	}
	if g.Generated() != 200 {
		t.Errorf("Generated() = %d", g.Generated())
	}
	if b.WaitingCount() != 200 {
		t.Errorf("WaitingCount() = %d, expected 200", b.WaitingCount())
	}
}

func TestSameSeedSameSequence(t *testing.T) {
	b1, _ := building.New(5)
	b2, _ := building.New(5)
	g1 := New(b1, time.Millisecond, 7, testLogger())
	g2 := New(b2, time.Millisecond, 7, testLogger())
	for i := range 20 {
		p1, p2 := g1.ResidentialPassenger(), g2.ResidentialPassenger()
		if p1.Origin != p2.Origin || p1.Destination != p2.Destination {
			t.Fatalf("passenger %d differs: %v vs %v", i, p1, p2)
		}
	}
}

func TestCreatePassenger(t *testing.T) {
	b, _ := building.New(5)
	g := New(b, time.Millisecond, 1, testLogger())
	p := g.CreatePassenger(4, 2)
	if !b.CallButtons().IsPressed(4) {
		t.Error("call button 4 should be pressed")
	}
	waiting := b.Floor(4).Waiting()
	if len(waiting) != 1 || waiting[0].ID != p.ID {
		t.Errorf("waiting = %v", waiting)
	}
}

func TestRunStops(t *testing.T) {
	b, _ := building.New(5)
	g := New(b, time.Millisecond, 3, testLogger())
	done := make(chan error, 1)
	go func() { done <- g.Run(context.Background()) }()

	deadline := time.Now().Add(5 * time.Second)
	for b.WaitingCount() < 3 {
		if time.Now().After(deadline) {
			t.Fatal("generator produced no passengers")
		}
		time.Sleep(time.Millisecond)
	}
	g.Stop()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("generator did not stop")
	}
}
