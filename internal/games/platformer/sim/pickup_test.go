package sim

import "testing"

func TestCoinCollectionMonotonic(t *testing.T) {
	s := playing(t, testLevel(t, Cell{Col: 0, Row: 3},
		[]Cell{{Col: 2, Row: 3}, {Col: 4, Row: 3}, {Col: 6, Row: 3}, {Col: 8, Row: 3}, {Col: 5, Row: 0}},
		nil, flatLevel...))
	standOn(s, 0, 4)

	seen := make([]bool, len(s.Coins))
	for step := 0; step < 240; step++ {
		s.Tick(InputFrame{MoveRight: true}, testDT)

		collected := 0
		for i, c := range s.Coins {
			if seen[i] && !c.Collected {
				t.Fatalf("coin %d reverted on substep %d", i, step)
			}
			seen[i] = c.Collected
			if c.Collected {
				collected++
			}
		}
		if s.Stats.CoinsCollected != collected {
			t.Fatalf("substep %d: counter %d, flags %d", step, s.Stats.CoinsCollected, collected)
		}
	}

	if s.Stats.CoinsCollected != 4 {
		t.Errorf("collected %d coins, want the 4 on the ground", s.Stats.CoinsCollected)
	}
	if s.Coins[4].Collected {
		t.Error("coin out of reach was collected")
	}
	if s.Stats.Score != 4*s.tuning.CoinScore {
		t.Errorf("score = %d", s.Stats.Score)
	}
	if n := countEvents(s.DrainEvents(), EventCoin); n != 4 {
		t.Errorf("coin events = %d, want 4", n)
	}
}

func TestDeadPlayerCollectsNothing(t *testing.T) {
	s := playing(t, testLevel(t, Cell{Col: 0, Row: 3}, []Cell{{Col: 0, Row: 3}}, nil, flatLevel...))
	s.killPlayer(CauseHazard)

	updatePickups(s)

	if s.Coins[0].Collected {
		t.Error("dead player collected a coin")
	}
}
