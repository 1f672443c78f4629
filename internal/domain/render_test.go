package domain

import "testing"

func TestParseChipType(t *testing.T) {
	for in, want := range map[string]ChipType{"t": T, " T ": T, "o": O, "O\n": O} {
		got, err := ParseChipType(in)
		if err != nil || got != want {
			t.Fatalf("ParseChipType(%q): expected %v, got %v (%v)", in, want, got, err)
		}
	}
	if _, err := ParseChipType("x"); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRenderUsesFixedAlphabet(t *testing.T) {
	b, _ := NewBoard(2, 3)
	b.Insert(0, Cell{Mover: MarkP1, Chip: T})
	b.Insert(2, Cell{Mover: MarkP2, Chip: T})
	b.Insert(2, Cell{Mover: MarkP1, Chip: O})

	if got, want := Render(b), "_ _ O \nT _ T \n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
	if got, want := RenderMovers(b), "_ _ R \nR _ Y \n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestChipGridMatchesVisualRows(t *testing.T) {
	b, _ := NewBoard(2, 2)
	b.Insert(1, Cell{Mover: MarkP1, Chip: O})

	grid := ChipGrid(b)
	if grid[1][1] != -1 || grid[0][1] != 0 {
		t.Fatalf("unexpected grid %v", grid)
	}
}
