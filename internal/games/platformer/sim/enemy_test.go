package sim

import "testing"

func TestStompVersusDamage(t *testing.T) {
	tests := []struct {
		name      string
		bottom    float64 // player bottom relative to enemy top
		vy        float64
		wantStomp bool
	}{
		{"falling onto the top half", 2, 100, true},
		{"falling, just above midpoint", 9.5, 100, true},
		{"falling, at midpoint", 10, 100, false},
		{"falling into the lower half", 12, 100, false},
		{"rising", 2, -100, false},
		{"standing still", 2, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := playing(t, testLevel(t, Cell{Col: 0, Row: 3}, nil,
				[]EnemySpawn{{Col: 5, Row: 3, PatrolLeft: 3, PatrolRight: 7}},
				flatLevel...))
			e := &s.Enemies[0]
			e.Speed = 0
			s.Player.X = e.X
			s.Player.Y = e.Y + tt.bottom - s.Player.H
			s.Player.VY = tt.vy

			updateEnemies(s, testDT)

			if tt.wantStomp {
				if e.Alive {
					t.Error("enemy survived a stomp")
				}
				if !s.Player.Alive {
					t.Error("player died on a stomp")
				}
				if want := s.tuning.JumpSpeed * s.tuning.StompBounce; s.Player.VY != want {
					t.Errorf("bounce vy = %g, want %g", s.Player.VY, want)
				}
				if s.Stats.Score != s.tuning.StompScore {
					t.Errorf("score = %d, want %d", s.Stats.Score, s.tuning.StompScore)
				}
				return
			}
			if !e.Alive {
				t.Error("enemy died without a stomp")
			}
			if s.Player.Alive {
				t.Error("player survived enemy contact")
			}
			if s.DeathTimer != s.tuning.DeathDuration {
				t.Errorf("death timer = %g", s.DeathTimer)
			}
		})
	}
}

func TestEnemiesResolveInListOrder(t *testing.T) {
	spawn := EnemySpawn{Col: 5, Row: 3, PatrolLeft: 3, PatrolRight: 7}
	s := playing(t, testLevel(t, Cell{Col: 0, Row: 3}, nil, []EnemySpawn{spawn, spawn}, flatLevel...))
	for i := range s.Enemies {
		s.Enemies[i].Speed = 0
	}
	s.Player.X = s.Enemies[0].X
	s.Player.Y = s.Enemies[0].Y + 2 - s.Player.H
	s.Player.VY = 100

	updateEnemies(s, testDT)

	if s.Enemies[0].Alive {
		t.Error("first enemy was not stomped")
	}
	if !s.Enemies[1].Alive {
		t.Error("second enemy was stomped by the same fall")
	}
	if s.Player.Alive {
		t.Error("bounce off the first enemy should leave the player exposed to the second")
	}

	events := s.DrainEvents()
	if len(events) != 2 || events[0].Kind != EventStomp || events[1].Kind != EventDeath {
		t.Fatalf("events = %+v, want stomp then death", events)
	}
	if events[0].Index != 0 || events[1].Cause != CauseEnemy {
		t.Errorf("unexpected event details: %+v", events)
	}
}

func TestPatrolContainment(t *testing.T) {
	s := playing(t, testLevel(t, Cell{Col: 0, Row: 3}, nil,
		[]EnemySpawn{
			{Col: 3, Row: 3, PatrolLeft: 3, PatrolRight: 4},
			{Col: 9, Row: 3, PatrolLeft: 5, PatrolRight: 9},
			{Col: 6, Row: 2, PatrolLeft: 6, PatrolRight: 6},
		},
		flatLevel...))

	flips := make([]int, len(s.Enemies))
	last := make([]int, len(s.Enemies))
	for i, e := range s.Enemies {
		last[i] = e.Direction
	}

	for step := 0; step < 3000; step++ {
		s.Tick(InputFrame{}, testDT)
		for i, e := range s.Enemies {
			if !e.Alive {
				t.Fatalf("enemy %d died at substep %d", i, step)
			}
			if e.X < e.PatrolStart || e.X > e.PatrolEnd {
				t.Fatalf("enemy %d at x=%g left [%g, %g] on substep %d", i, e.X, e.PatrolStart, e.PatrolEnd, step)
			}
			if e.Direction != last[i] {
				flips[i]++
				last[i] = e.Direction
			}
		}
	}

	for i, n := range flips {
		if n < 2 {
			t.Errorf("enemy %d turned %d times, want a ping-pong patrol", i, n)
		}
	}
}

func TestEnemySpawnPlacement(t *testing.T) {
	s := playing(t, testLevel(t, Cell{Col: 0, Row: 3}, nil,
		[]EnemySpawn{{Col: 4, Row: 3, PatrolLeft: 2, PatrolRight: 4}},
		flatLevel...))
	e := s.Enemies[0]

	if e.PatrolStart != 64 || e.PatrolEnd != 160-e.W {
		t.Errorf("patrol = [%g, %g], want [64, %g]", e.PatrolStart, e.PatrolEnd, 160-e.W)
	}
	if e.X != 4*32+enemyInset {
		t.Errorf("x = %g, want %d", e.X, 4*32+enemyInset)
	}
	if e.Direction != 1 || e.VX != e.Speed {
		t.Errorf("direction = %d vx = %g, want walking right", e.Direction, e.VX)
	}
	if e.Y+e.H != 128 {
		t.Errorf("enemy bottom = %g, want it resting on the floor at 128", e.Y+e.H)
	}
}
