package game

import "fmt"

// StatusLine 状态栏文字，两个前端共用
func (s Snapshot) StatusLine() string {
	remaining := 0
	for _, d := range s.Defenses {
		if !d.Destroyed {
			remaining++
		}
	}

	attack := "ready"
	if !s.Player.AttackReady {
		attack = "cooldown"
	}

	return fmt.Sprintf("Level %d/%d   HP %d/%d   Defenses %d/%d   Attack %s",
		s.Level, s.FinalLevel,
		s.Player.Health, s.Player.MaxHealth,
		remaining, len(s.Defenses),
		attack)
}

// Banner 非游戏状态下的居中提示，第一行为标题
// 游戏中返回 nil
func (s Snapshot) Banner() []string {
	switch s.State {
	case StateLevelComplete:
		return []string{
			fmt.Sprintf("Level %d Complete!", s.Level),
			fmt.Sprintf("Defenses destroyed: %d", s.Stats.DefensesDestroyed),
			"Press Enter to continue",
		}
	case StateGameOver:
		return []string{
			"Game Over",
			fmt.Sprintf("Reached level %d, destroyed %d defenses", s.Level, s.Stats.DefensesDestroyed),
			"Press Enter to restart",
		}
	case StateVictory:
		return []string{
			"Victory!",
			fmt.Sprintf("All %d levels cleared", s.FinalLevel),
			fmt.Sprintf("Hits landed %d, damage taken %d", s.Stats.AttacksLanded, s.Stats.DamageTaken),
			"Press Enter to play again",
		}
	default:
		return nil
	}
}

// HealthRatio 当前生命值比例 [0, 1]
func (v EntityView) HealthRatio() float64 {
	if v.MaxHealth <= 0 || v.Health <= 0 {
		return 0
	}
	return float64(v.Health) / float64(v.MaxHealth)
}
