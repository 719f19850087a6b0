package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/types"
)

// grab 在实体中心按下
func (f *testField) grab(name string) {
	f.t.Helper()
	box, ok := f.world.Box(f.id(name))
	if !ok {
		f.t.Fatalf("%s has no box", name)
	}
	cx, cy := box.Center()
	if !f.drag.BeginAt(cx, cy) {
		f.t.Fatalf("Expected to start dragging %s", name)
	}
}

func TestDragRunnerFollowsPointerOffset(t *testing.T) {
	f := newTestField(t)
	runner := f.id("red-R")

	// red-R 在 (60, 56)，中心 (80, 76)
	f.grab("red-R")
	if !f.drag.MoveTo(480, 376) {
		t.Fatal("Move should be applied")
	}

	if x, y := f.pos(runner); x != 460 || y != 356 {
		t.Errorf("Expected runner at (460, 356), got (%v, %v)", x, y)
	}
	if active, ok := f.drag.Active(); !ok || active != runner {
		t.Error("Expected red-R to be the active drag")
	}
}

func TestDragClampedToField(t *testing.T) {
	f := newTestField(t)
	runner := f.id("red-R")

	f.grab("red-R")
	f.drag.MoveTo(-500, -500)
	if x, y := f.pos(runner); x != 0 || y != 0 {
		t.Errorf("Expected runner clamped to (0, 0), got (%v, %v)", x, y)
	}

	f.drag.MoveTo(5000, 5000)
	if x, y := f.pos(runner); x != testFieldWidth-40 || y != testFieldHeight-40 {
		t.Errorf("Expected runner clamped to (%v, %v), got (%v, %v)", testFieldWidth-40, testFieldHeight-40, x, y)
	}
}

func TestDragGuardianConfinedToBase(t *testing.T) {
	f := newTestField(t)
	guardian := f.id("red-G")

	f.grab("red-G")
	f.drag.MoveTo(500, 300)

	// 红队基地 (20,24)-(200,180)
	if x, y := f.pos(guardian); x != 160 || y != 140 {
		t.Errorf("Expected guardian clamped to (160, 140), got (%v, %v)", x, y)
	}

	f.drag.MoveTo(-100, -100)
	if x, y := f.pos(guardian); x != 20 || y != 24 {
		t.Errorf("Expected guardian clamped to (20, 24), got (%v, %v)", x, y)
	}
}

func TestDragTaggerRevertsWhenEnteringBase(t *testing.T) {
	f := newTestField(t)
	tagger := f.id("red-T")

	// red-T 在 (210, 82)，中心 (230, 102)
	f.grab("red-T")

	// 中心 (150, 102) 落入红队基地，回退
	f.drag.MoveTo(150, 102)
	if x, y := f.pos(tagger); x != 210 || y != 82 {
		t.Errorf("Expected tagger reverted to (210, 82), got (%v, %v)", x, y)
	}

	f.drag.MoveTo(400, 300)
	if x, y := f.pos(tagger); x != 380 || y != 280 {
		t.Errorf("Expected tagger at (380, 280), got (%v, %v)", x, y)
	}

	// 进入其他队伍的基地同样回退
	f.drag.MoveTo(900, 300)
	if x, y := f.pos(tagger); x != 380 || y != 280 {
		t.Errorf("Expected tagger to stay at (380, 280), got (%v, %v)", x, y)
	}
}

func TestDragCarriesFlag(t *testing.T) {
	f := newTestField(t)
	runner := f.id("blue-R")
	flagID := f.id("flag-red-0")

	f.pickUp(runner, flagID)

	f.grab("blue-R")
	f.drag.MoveTo(500, 300)

	rx, ry := f.pos(runner)
	fx, fy := f.pos(flagID)
	if rx != fx || ry != fy {
		t.Errorf("Carried flag should follow the runner: runner (%v, %v), flag (%v, %v)", rx, ry, fx, fy)
	}
}

func TestDragOnFlagDoesNotStart(t *testing.T) {
	f := newTestField(t)

	// flag-red-2 在 (120, 44)，该点上方没有玩家
	if f.drag.BeginAt(140, 50) {
		t.Error("Flags are not draggable")
	}
	if _, ok := f.drag.Active(); ok {
		t.Error("No drag should be active")
	}
	if f.drag.MoveTo(300, 300) {
		t.Error("Move without an active drag should be ignored")
	}
}

func TestDragOnEmptySpaceDoesNotStart(t *testing.T) {
	f := newTestField(t)
	if f.drag.BeginAt(500, 300) {
		t.Error("Pressing on empty field should not start a drag")
	}
}

func TestHitTestPrefersPlayerOverRestingFlag(t *testing.T) {
	f := newTestField(t)

	// red-R (60..100, 56..96) 压在 flag-red-0 (40..70, 44..74) 上
	id, ok := f.drag.HitTest(65, 60)
	if !ok || id != f.id("red-R") {
		t.Errorf("Expected red-R on top, got %s", f.world.Name(id))
	}
}

func TestHitTestSkipsCarriedFlag(t *testing.T) {
	f := newTestField(t)
	runner := f.id("blue-R")
	f.pickUp(runner, f.id("flag-red-0"))
	f.place(runner, 500, 300)

	id, ok := f.drag.HitTest(510, 310)
	if !ok || id != runner {
		t.Errorf("Expected hit on the carrier, got %s", f.world.Name(id))
	}
}

func TestDragSkipsUnchangedPointer(t *testing.T) {
	f := newTestField(t)
	f.grab("red-R")

	if !f.drag.MoveTo(300, 300) {
		t.Fatal("First move should apply")
	}
	scans := f.world.ScanCount
	if f.drag.MoveTo(300, 300) {
		t.Error("Unchanged pointer should be skipped")
	}
	if f.world.ScanCount != scans {
		t.Error("Skipped move should not run a scan")
	}
}

func TestDragRunsInteractionScan(t *testing.T) {
	f := newTestField(t)
	runner := f.id("blue-R")

	// blue-R 在 (840, 56)，中心 (860, 76)；指针偏移 (20, 20)
	f.grab("blue-R")
	f.drag.MoveTo(60, 64)

	p, _ := f.world.Player(runner)
	if !p.IsCarrying() || p.CarryingFlag.Value != f.id("flag-red-0") {
		t.Error("Drag move should trigger a pickup")
	}
}

func TestDragCancelledWhenPlayerStartsReturning(t *testing.T) {
	f := newTestField(t)
	runner := f.id("blue-R")
	flagID := f.id("flag-red-0")

	f.pickUp(runner, flagID)
	f.grab("blue-R")

	// 拖入红队守卫所在位置触发回城
	f.drag.MoveTo(120, 120)
	if !f.world.IsReturning(runner) {
		t.Fatal("Expected guardian tag to start the return")
	}

	f.drag.Update()
	if _, ok := f.drag.Active(); ok {
		t.Error("Drag should be cancelled once the player is pointer-disabled")
	}
	if f.drag.MoveTo(300, 300) {
		t.Error("Moves after cancellation should be ignored")
	}
}

func TestDragEnd(t *testing.T) {
	f := newTestField(t)
	f.grab("red-R")
	f.drag.End()

	if _, ok := f.drag.Active(); ok {
		t.Error("End should clear the active drag")
	}
	if f.drag.MoveTo(300, 300) {
		t.Error("Move after End should be ignored")
	}
}

// TestRandomDragsKeepInvariants 随机拖拽任意玩家，检查全局性质始终成立
func TestRandomDragsKeepInvariants(t *testing.T) {
	f := newTestField(t)
	rng := rand.New(rand.NewPCG(7, 42))
	players := f.world.Players()

	for gesture := 0; gesture < 200; gesture++ {
		id := players[rng.IntN(len(players))]
		if !f.world.IsInteractive(id) {
			f.advance(0.1)
			continue
		}
		box, _ := f.world.Box(id)
		cx, cy := box.Center()
		if !f.drag.BeginAt(cx, cy) {
			f.advance(0.05)
			continue
		}
		for step := 0; step < 10; step++ {
			f.drag.MoveTo(rng.Float64()*testFieldWidth, rng.Float64()*testFieldHeight)
			f.advance(config.TickDeltaTime)
			f.checkInvariants()
		}
		f.drag.End()
	}

	// 所有动画和计时结束后再检查一次
	f.advance(3)
	f.checkInvariants()

	// 未被携带的旗帜总数 + 被携带的旗帜总数保持不变
	carried := 0
	for _, id := range f.world.Players() {
		p, _ := f.world.Player(id)
		if p.IsCarrying() {
			if p.Role != types.RoleRunner {
				t.Errorf("%s is not a runner but carries a flag", p.Name)
			}
			carried++
		}
	}
	resting := 0
	for _, id := range f.world.Flags() {
		flag, _ := f.world.Flag(id)
		if !flag.IsCarried() {
			resting++
		}
	}
	if carried+resting != f.world.Rules.TotalFlags() {
		t.Errorf("Expected %d flags in total, got %d carried + %d resting", f.world.Rules.TotalFlags(), carried, resting)
	}
}
