package audio

import (
	"math/rand"
	"testing"
	"time"

	"github.com/gonewx/bladefury/pkg/event"
)

// drain 读完整个流，返回采样数，并检查采样值范围
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for j := 0; j < n; j++ {
			if buf[j][0] < -1 || buf[j][0] > 1 || buf[j][1] < -1 || buf[j][1] > 1 {
				t.Fatalf("采样 %d 超出 [-1, 1]: %v", total+j, buf[j])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
	t.Fatal("音效流没有结束")
	return total
}

func TestNewNoteLength(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	tests := []struct {
		name string
		n    note
	}{
		{"定频", note{from: 440, to: 440, duration: 50 * time.Millisecond}},
		{"滑音", note{from: 880, to: 220, duration: 80 * time.Millisecond}},
		{"噪声", note{duration: 30 * time.Millisecond, noise: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(t, newNote(tt.n, rng))
			if want := sampleRate.N(tt.n.duration); got != want {
				t.Errorf("采样数 = %d, want %d", got, want)
			}
		})
	}
}

func TestNewSoundCoversEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for typ, s := range eventSounds {
		t.Run(string(typ), func(t *testing.T) {
			streamer := newSound(typ, rng)
			if streamer == nil {
				t.Fatal("newSound() = nil")
			}

			var want int
			for _, n := range s.notes {
				want += sampleRate.N(n.duration)
			}
			if got := drain(t, streamer); got != want {
				t.Errorf("采样数 = %d, want %d", got, want)
			}
		})
	}
}

func TestNewSoundUnknownEvent(t *testing.T) {
	if newSound(event.LevelStarted, rand.New(rand.NewSource(1))) != nil {
		t.Error("没有配置音效的事件应返回 nil")
	}
}

func TestFadeOutEndsNearSilence(t *testing.T) {
	total := sampleRate.N(20 * time.Millisecond)
	f := &fadeOut{streamer: &sweep{total: total, rng: rand.New(rand.NewSource(3))}, total: total}

	buf := make([][2]float64, total)
	n, _ := f.Stream(buf)
	if n != total {
		t.Fatalf("n = %d, want %d", n, total)
	}
	last := buf[total-1][0]
	if last > 0.05 || last < -0.05 {
		t.Errorf("淡出后最后一个采样应接近 0，实际 %v", last)
	}
}

func TestSoundPlayerIgnoresEventsBeforeInit(t *testing.T) {
	p := NewSoundPlayer()
	// 未打开音频设备时不应 panic
	p.OnEvent(event.Event{Type: event.PlayerHit})
	p.Close()
}
