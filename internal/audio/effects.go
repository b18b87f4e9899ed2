// Package audio 合成终端前端的音效
//
// 音效全部在运行时用振荡器合成，不依赖音频文件。
package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/gonewx/bladefury/pkg/event"
)

const sampleRate = beep.SampleRate(44100)

// note 一个音符
// from 与 to 不同时频率线性滑动，noise 为 true 时输出白噪声
type note struct {
	from, to float64
	duration time.Duration
	noise    bool
}

// sound 一个音效：按顺序播放的音符和整体音量
type sound struct {
	notes  []note
	volume float64
}

// eventSounds 每种游戏事件对应的音效，没有列出的事件不发声
var eventSounds = map[event.Type]sound{
	event.PlayerAttacked: {
		notes:  []note{{from: 880, to: 660, duration: 60 * time.Millisecond}},
		volume: 0.4,
	},
	event.DefenseDestroyed: {
		notes:  []note{{duration: 250 * time.Millisecond, noise: true}},
		volume: 0.3,
	},
	event.ProjectileFired: {
		notes:  []note{{from: 330, to: 330, duration: 40 * time.Millisecond}},
		volume: 0.15,
	},
	event.PlayerHit: {
		notes:  []note{{from: 160, to: 90, duration: 150 * time.Millisecond}},
		volume: 0.5,
	},
	event.LevelComplete: {
		notes: []note{
			{from: 523.25, to: 523.25, duration: 120 * time.Millisecond},
			{from: 783.99, to: 783.99, duration: 200 * time.Millisecond},
		},
		volume: 0.4,
	},
	event.GameOver: {
		notes:  []note{{from: 440, to: 110, duration: 600 * time.Millisecond}},
		volume: 0.4,
	},
	event.Victory: {
		notes: []note{
			{from: 523.25, to: 523.25, duration: 120 * time.Millisecond},
			{from: 659.25, to: 659.25, duration: 120 * time.Millisecond},
			{from: 783.99, to: 783.99, duration: 120 * time.Millisecond},
			{from: 1046.5, to: 1046.5, duration: 300 * time.Millisecond},
		},
		volume: 0.4,
	},
}

// newSound 为事件创建音效流，事件没有音效时返回 nil
func newSound(t event.Type, rng *rand.Rand) beep.Streamer {
	s, ok := eventSounds[t]
	if !ok {
		return nil
	}

	streamers := make([]beep.Streamer, 0, len(s.notes))
	for _, n := range s.notes {
		streamers = append(streamers, newNote(n, rng))
	}
	return newVolume(beep.Seq(streamers...), s.volume)
}

// newNote 生成单个音符，结尾淡出避免爆音
func newNote(n note, rng *rand.Rand) beep.Streamer {
	total := sampleRate.N(n.duration)

	var src beep.Streamer
	switch {
	case n.noise:
		src = &sweep{total: total, rng: rng}
	case n.from == n.to:
		tone, err := generators.SineTone(sampleRate, n.from)
		if err != nil {
			// 频率超出采样率允许的范围，输出静音
			tone = &sweep{total: total}
		}
		src = tone
	default:
		src = &sweep{from: n.from, to: n.to, total: total}
	}

	return &fadeOut{streamer: beep.Take(total, src), total: total}
}

// newVolume 线性音量转换为 effects.Volume 的对数音量
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// sweep 频率从 from 线性滑动到 to 的正弦波
// rng 不为 nil 时输出白噪声
type sweep struct {
	from, to float64
	total    int
	pos      int
	phase    float64
	rng      *rand.Rand
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}

		var v float64
		if s.rng != nil {
			v = s.rng.Float64()*2 - 1
		} else {
			progress := float64(s.pos) / float64(s.total)
			freq := s.from + (s.to-s.from)*progress
			v = math.Sin(2 * math.Pi * s.phase)
			s.phase += freq / float64(sampleRate)
			s.phase -= math.Floor(s.phase)
		}

		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// fadeOut 在最后 20% 的采样内线性淡出
type fadeOut struct {
	streamer beep.Streamer
	total    int
	pos      int
}

func (f *fadeOut) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	releaseStart := f.total * 4 / 5
	for i := 0; i < n; i++ {
		if f.pos >= releaseStart && f.total > releaseStart {
			gain := float64(f.total-f.pos) / float64(f.total-releaseStart)
			samples[i][0] *= gain
			samples[i][1] *= gain
		}
		f.pos++
	}
	return n, ok
}

func (f *fadeOut) Err() error { return f.streamer.Err() }
