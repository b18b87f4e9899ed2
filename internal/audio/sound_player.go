package audio

import (
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/gonewx/bladefury/pkg/event"
)

// SoundPlayer 订阅游戏事件并播放对应音效
//
// 未初始化（或初始化失败）时所有事件都被忽略，游戏照常运行。
type SoundPlayer struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	rng         *rand.Rand
	initialized bool
	muted       bool
}

// NewSoundPlayer 创建音效播放器
func NewSoundPlayer() *SoundPlayer {
	return &SoundPlayer{
		mixer: &beep.Mixer{},
		rng:   rand.New(rand.NewSource(1)),
	}
}

// Init 打开音频设备
// 设备不可用时返回错误，调用方可以选择静音继续运行
func (p *SoundPlayer) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("failed to init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.initialized = true
	log.Printf("[Audio] 音频设备已打开，采样率 %d", sampleRate)
	return nil
}

// SetMuted 开关静音
func (p *SoundPlayer) SetMuted(muted bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.muted = muted
}

// OnEvent 实现 event.Listener
func (p *SoundPlayer) OnEvent(e event.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return
	}
	s := newSound(e.Type, p.rng)
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close 停止播放并关闭音频设备
func (p *SoundPlayer) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}
