package game

import (
	"testing"

	"github.com/decker502/flagfield/pkg/ecs"
)

func TestSchedulerFiresAfterDelay(t *testing.T) {
	s := NewScheduler()
	fired := 0
	key := TaskKey{Entity: 1, Kind: TaskScoring}

	s.Schedule(key, 0.3, func() { fired++ })

	s.Update(0.1)
	s.Update(0.1)
	if fired != 0 {
		t.Fatalf("Task should not fire before its delay, fired=%d", fired)
	}
	if !s.Pending(key) {
		t.Error("Task should still be pending")
	}

	s.Update(0.1)
	if fired != 1 {
		t.Fatalf("Expected task to fire once at 0.3s, fired=%d", fired)
	}
	if s.Pending(key) {
		t.Error("Fired task should no longer be pending")
	}

	s.Update(1.0)
	if fired != 1 {
		t.Errorf("One-shot task fired again, fired=%d", fired)
	}
}

func TestSchedulerFixedTickAccumulation(t *testing.T) {
	s := NewScheduler()
	fired := false
	s.Schedule(TaskKey{Entity: 1, Kind: TaskScoring}, 0.3, func() { fired = true })

	// 18 帧 × 1/60 秒 = 0.3 秒，浮点累加误差不应推迟触发
	for i := 0; i < 18; i++ {
		s.Update(1.0 / 60.0)
	}
	if !fired {
		t.Errorf("Task should fire after 18 ticks, now=%v", s.Now())
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := NewScheduler()
	fired := false
	key := TaskKey{Entity: 7, Kind: TaskScoring}

	s.Schedule(key, 0.3, func() { fired = true })
	s.Update(0.1)

	if !s.Cancel(key) {
		t.Fatal("Cancel should report the pending task")
	}
	if s.Cancel(key) {
		t.Error("Second cancel should report nothing to cancel")
	}

	s.Update(1.0)
	if fired {
		t.Error("Cancelled task must not fire")
	}
}

func TestSchedulerReplaceSameKey(t *testing.T) {
	s := NewScheduler()
	var order []string
	key := TaskKey{Entity: 2, Kind: TaskTagIndicator}

	s.Schedule(key, 0.8, func() { order = append(order, "first") })
	s.Update(0.5)
	s.Schedule(key, 0.8, func() { order = append(order, "second") })

	s.Update(0.5) // t=1.0，第一个任务若未被替换此时应触发
	if len(order) != 0 {
		t.Fatalf("Replaced task must not fire, got %v", order)
	}

	s.Update(0.3) // t=1.3
	if len(order) != 1 || order[0] != "second" {
		t.Errorf("Expected only the replacement to fire, got %v", order)
	}
}

func TestSchedulerOrderAndChaining(t *testing.T) {
	s := NewScheduler()
	var order []string

	s.Schedule(TaskKey{Entity: 1, Kind: TaskReturnStage}, 0.5, func() {
		order = append(order, "stage1")
		s.Schedule(TaskKey{Entity: 1, Kind: TaskReturnStage}, 0.5, func() {
			order = append(order, "stage2")
		})
	})
	s.Schedule(TaskKey{Entity: 2, Kind: TaskScoring}, 0.3, func() {
		order = append(order, "score")
	})
	s.Schedule(TaskKey{Entity: ecs.InvalidEntity, Kind: TaskCounterRefresh}, 0.3, func() {
		order = append(order, "counter")
	})

	// 一次跨过全部到期时间：链式任务在本次 Update 内不应提前触发
	s.Update(0.6)
	want := []string{"score", "counter", "stage1"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("Expected %v, got %v", want, order)
		}
	}

	s.Update(0.5)
	if order[len(order)-1] != "stage2" {
		t.Errorf("Expected stage2 to fire last, got %v", order)
	}
}

func TestSchedulerCallbackCancelsLaterTask(t *testing.T) {
	s := NewScheduler()
	laterFired := false
	later := TaskKey{Entity: 3, Kind: TaskTagIndicator}

	s.Schedule(TaskKey{Entity: 3, Kind: TaskScoring}, 0.1, func() {
		s.Cancel(later)
	})
	s.Schedule(later, 0.2, func() { laterFired = true })

	s.Update(0.5)
	if laterFired {
		t.Error("Task cancelled by an earlier callback in the same Update must not fire")
	}
}

func TestSchedulerCancelEntity(t *testing.T) {
	s := NewScheduler()
	s.Schedule(TaskKey{Entity: 5, Kind: TaskScoring}, 1, func() {})
	s.Schedule(TaskKey{Entity: 5, Kind: TaskTagIndicator}, 1, func() {})
	s.Schedule(TaskKey{Entity: 6, Kind: TaskScoring}, 1, func() {})

	s.CancelEntity(5)
	if s.PendingCount() != 1 {
		t.Errorf("Expected 1 pending task, got %d", s.PendingCount())
	}
	if !s.Pending(TaskKey{Entity: 6, Kind: TaskScoring}) {
		t.Error("Other entity's task should remain")
	}
}
