package scenes

import (
	"io"
	"log"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected currentScene to be nil initially")
	}
	if sm.QuitRequested() {
		t.Error("Expected no quit request initially")
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	sm.Update(1.0 / 60.0)
	sm.Draw(nil)

	if !mockScene.updateCalled || mockScene.deltaTime != 1.0/60.0 {
		t.Error("Scene's Update method was not called with deltaTime")
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerWithoutScene(t *testing.T) {
	sm := NewSceneManager()
	// 没有活动场景时不应 panic
	sm.Update(1.0 / 60.0)
	sm.Draw(nil)
}

func TestSceneManagerShow(t *testing.T) {
	sm := NewSceneManager()
	scenes := map[SceneID]*MockScene{
		SceneMainMenu: {},
		SceneOptions:  {},
	}
	var requested []SceneID
	sm.SetSceneFactory(func(id SceneID) Scene {
		requested = append(requested, id)
		if s, ok := scenes[id]; ok {
			return s
		}
		return nil
	})

	sm.Show(SceneOptions)
	if sm.GetCurrentScene() != scenes[SceneOptions] {
		t.Fatal("Show 应切换到工厂创建的场景")
	}

	// 工厂返回 nil 时保持当前场景
	sm.Show(SceneGame)
	if sm.GetCurrentScene() != scenes[SceneOptions] {
		t.Error("工厂返回 nil 时不应切换场景")
	}
	if len(requested) != 2 {
		t.Errorf("工厂调用次数 = %d, want 2", len(requested))
	}
}

func TestSceneManagerShowWithoutFactory(t *testing.T) {
	sm := NewSceneManager()
	sm.Show(SceneMainMenu)
	if sm.GetCurrentScene() != nil {
		t.Error("没有工厂时 Show 不应设置场景")
	}
}

func TestSceneManagerRequestQuit(t *testing.T) {
	sm := NewSceneManager()
	sm.RequestQuit()
	if !sm.QuitRequested() {
		t.Error("RequestQuit 后 QuitRequested 应为 true")
	}
}
