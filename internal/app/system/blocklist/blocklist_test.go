package blocklist_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/uyghurconnect/uyghurlearn/internal/app/system/blocklist"
	"github.com/uyghurconnect/uyghurlearn/internal/domain/models"
)

func assertContiguous(t *testing.T, blocks []models.Block) {
	t.Helper()
	for i, b := range blocks {
		if b.Position() != i {
			t.Fatalf("block %d (%s) has order %d, want %d", i, b.BlockID(), b.Position(), i)
		}
	}
}

func ids(blocks []models.Block) []string {
	out := make([]string, len(blocks))
	for i, b := range blocks {
		out[i] = b.BlockID()
	}
	return out
}

func sameIDs(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("ids = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("ids = %v, want %v", got, want)
		}
	}
}

func TestRenumber(t *testing.T) {
	in := []models.Block{
		models.TextBlock{ID: "a", Order: 7},
		models.SpacerBlock{ID: "b", Order: 7},
		models.ImageBlock{ID: "c", Order: -1},
	}
	out := blocklist.Renumber(in)
	assertContiguous(t, out)
	sameIDs(t, ids(out), []string{"a", "b", "c"})

	// Input is not modified.
	if in[0].Position() != 7 {
		t.Errorf("Renumber modified its input: order = %d", in[0].Position())
	}
}

func TestRenumber_Empty(t *testing.T) {
	out := blocklist.Renumber(nil)
	if len(out) != 0 {
		t.Errorf("Renumber(nil) len = %d, want 0", len(out))
	}
}

func TestNew_Renumbers(t *testing.T) {
	l := blocklist.New([]models.Block{
		models.TextBlock{ID: "a", Order: 3},
		models.TextBlock{ID: "b", Order: 9},
	})
	assertContiguous(t, l.Blocks())
}

func TestAppend(t *testing.T) {
	l := blocklist.New(nil)
	for i, kind := range models.AllBlockKinds() {
		b, err := l.Append(kind)
		if err != nil {
			t.Fatalf("Append(%s) error = %v", kind, err)
		}
		if b.Kind() != kind {
			t.Errorf("Append(%s) kind = %s", kind, b.Kind())
		}
		if b.Position() != i {
			t.Errorf("Append(%s) order = %d, want %d", kind, b.Position(), i)
		}
		if b.BlockID() == "" {
			t.Errorf("Append(%s) returned empty id", kind)
		}
		if rec := models.ToRecord(b); rec.Content != "" {
			t.Errorf("Append(%s) content = %q, want empty", kind, rec.Content)
		}
		last := l.Blocks()[l.Len()-1]
		if last.BlockID() != b.BlockID() {
			t.Errorf("appended block is not last")
		}
	}
	assertContiguous(t, l.Blocks())
}

func TestAppend_UnknownKind(t *testing.T) {
	l := blocklist.New(nil)
	if _, err := l.Append("table"); !errors.Is(err, models.ErrUnknownBlockKind) {
		t.Errorf("Append(table) error = %v, want ErrUnknownBlockKind", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestRemove_SecondOfThree(t *testing.T) {
	l := blocklist.New([]models.Block{
		models.TextBlock{ID: "a", Content: "one"},
		models.TextBlock{ID: "b", Content: "two"},
		models.TextBlock{ID: "c", Content: "three"},
	})

	if err := l.Remove("b"); err != nil {
		t.Fatalf("Remove() error = %v", err)
	}

	got := l.Blocks()
	sameIDs(t, ids(got), []string{"a", "c"})
	if got[0].Position() != 0 || got[1].Position() != 1 {
		t.Errorf("orders = %d,%d, want 0,1", got[0].Position(), got[1].Position())
	}
}

func TestRemove_NotFound(t *testing.T) {
	l := blocklist.New([]models.Block{models.TextBlock{ID: "a"}})
	if err := l.Remove("zzz"); !errors.Is(err, blocklist.ErrBlockNotFound) {
		t.Errorf("Remove() error = %v, want ErrBlockNotFound", err)
	}
	if l.Len() != 1 {
		t.Errorf("Len() = %d, want 1", l.Len())
	}
}

func TestUpdate(t *testing.T) {
	l := blocklist.New([]models.Block{
		models.TextBlock{ID: "a"},
		models.ImageBlock{ID: "b"},
	})

	// The caller's order value is ignored; the slot keeps its position.
	err := l.Update(models.ImageBlock{ID: "b", Order: 42, URL: "https://example.com/x.png", Caption: "cat"})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	b, ok := l.Find("b")
	if !ok {
		t.Fatal("Find(b) not found")
	}
	img := b.(models.ImageBlock)
	if img.URL != "https://example.com/x.png" || img.Caption != "cat" {
		t.Errorf("Update() stored %+v", img)
	}
	if img.Order != 1 {
		t.Errorf("order = %d, want 1", img.Order)
	}
	assertContiguous(t, l.Blocks())
}

func TestUpdate_Errors(t *testing.T) {
	l := blocklist.New([]models.Block{models.TextBlock{ID: "a"}})

	if err := l.Update(models.TextBlock{ID: "missing"}); !errors.Is(err, blocklist.ErrBlockNotFound) {
		t.Errorf("Update(missing) error = %v, want ErrBlockNotFound", err)
	}
	if err := l.Update(models.QuoteBlock{ID: "a"}); !errors.Is(err, blocklist.ErrKindChanged) {
		t.Errorf("Update(kind change) error = %v, want ErrKindChanged", err)
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name     string
		src, dst int
		want     []string
	}{
		{"first to last", 0, 3, []string{"b", "c", "d", "a"}},
		{"last to first", 3, 0, []string{"d", "a", "b", "c"}},
		{"middle down", 1, 2, []string{"a", "c", "b", "d"}},
		{"middle up", 2, 1, []string{"a", "c", "b", "d"}},
		{"same index", 2, 2, []string{"a", "b", "c", "d"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := blocklist.New([]models.Block{
				models.TextBlock{ID: "a"},
				models.TextBlock{ID: "b"},
				models.TextBlock{ID: "c"},
				models.TextBlock{ID: "d"},
			})
			if err := l.Reorder(tt.src, tt.dst); err != nil {
				t.Fatalf("Reorder() error = %v", err)
			}
			sameIDs(t, ids(l.Blocks()), tt.want)
			assertContiguous(t, l.Blocks())
		})
	}
}

func TestReorder_OutOfRange(t *testing.T) {
	l := blocklist.New([]models.Block{models.TextBlock{ID: "a"}, models.TextBlock{ID: "b"}})
	for _, c := range [][2]int{{-1, 0}, {0, 2}, {2, 0}, {0, -1}} {
		if err := l.Reorder(c[0], c[1]); !errors.Is(err, blocklist.ErrIndexOutOfRange) {
			t.Errorf("Reorder(%d,%d) error = %v, want ErrIndexOutOfRange", c[0], c[1], err)
		}
	}
	sameIDs(t, ids(l.Blocks()), []string{"a", "b"})
}

func TestMove(t *testing.T) {
	l := blocklist.New([]models.Block{
		models.TextBlock{ID: "a"},
		models.TextBlock{ID: "b"},
		models.TextBlock{ID: "c"},
	})
	if err := l.Move("c", 0); err != nil {
		t.Fatalf("Move() error = %v", err)
	}
	sameIDs(t, ids(l.Blocks()), []string{"c", "a", "b"})
	if err := l.Move("nope", 0); !errors.Is(err, blocklist.ErrBlockNotFound) {
		t.Errorf("Move(nope) error = %v, want ErrBlockNotFound", err)
	}
}

func TestBlocks_ReturnsCopy(t *testing.T) {
	l := blocklist.New([]models.Block{models.TextBlock{ID: "a"}})
	got := l.Blocks()
	got[0] = models.SpacerBlock{ID: "x"}
	if b, _ := l.Find("a"); b == nil {
		t.Error("mutating Blocks() result changed the list")
	}
}

// Random structural operations must leave orders contiguous after every step.
func TestOrdersStayContiguous(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	kinds := models.AllBlockKinds()
	l := blocklist.New(nil)

	for step := 0; step < 500; step++ {
		switch op := rng.Intn(3); {
		case op == 0 || l.Len() == 0:
			if _, err := l.Append(kinds[rng.Intn(len(kinds))]); err != nil {
				t.Fatalf("step %d: Append() error = %v", step, err)
			}
		case op == 1:
			victim := l.Blocks()[rng.Intn(l.Len())]
			if err := l.Remove(victim.BlockID()); err != nil {
				t.Fatalf("step %d: Remove() error = %v", step, err)
			}
		default:
			if err := l.Reorder(rng.Intn(l.Len()), rng.Intn(l.Len())); err != nil {
				t.Fatalf("step %d: Reorder() error = %v", step, err)
			}
		}
		assertContiguous(t, l.Blocks())
	}
}
