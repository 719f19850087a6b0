package scenes

import (
	"fmt"
	"log"

	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/entities"
	"github.com/decker502/flagfield/pkg/game"
	"github.com/decker502/flagfield/pkg/systems"
	"github.com/decker502/flagfield/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
)

// FieldScene 对局场景
//
// 每帧的处理顺序：
//  1. DragSystem 把指针输入转换为拖拽，拖动后同步执行交互扫描
//  2. TweenSystem 推进回城动画
//  3. Scheduler 推进游戏时间并执行到期任务
//
// 场地尺寸通过 Resize 传入，第一次 Resize 之前不布局也不绘制实体。
type FieldScene struct {
	world    *game.World
	settings *game.SettingsManager

	counterSystem     *systems.FlagCounterSystem
	layoutSystem      *systems.LayoutSystem
	interactionSystem *systems.InteractionSystem
	dragSystem        *systems.DragSystem
	tweenSystem       *systems.TweenSystem
	auditSystem       *systems.FlagAuditSystem
	renderSystem      *systems.RenderSystem
}

// NewFieldScene 创建对局场景并创建全部实体
//
// 参数:
//   - rules: 规则配置，为 nil 时使用内置默认规则
//   - settings: 界面偏好，可为 nil
//   - dragManager: 指针输入来源，为 nil 时场景不读取输入
func NewFieldScene(rules *config.RulesConfig, settings *game.SettingsManager, dragManager *utils.DragManager) (*FieldScene, error) {
	world := game.NewWorld(rules)
	if err := entities.PopulateField(world); err != nil {
		return nil, fmt.Errorf("populate field: %w", err)
	}

	counters := systems.NewFlagCounterSystem(world)
	interaction := systems.NewInteractionSystem(world, counters)

	s := &FieldScene{
		world:             world,
		settings:          settings,
		counterSystem:     counters,
		layoutSystem:      systems.NewLayoutSystem(world, counters),
		interactionSystem: interaction,
		dragSystem:        systems.NewDragSystem(world, interaction, dragManager),
		tweenSystem:       systems.NewTweenSystem(world.EntityManager),
		auditSystem:       systems.NewFlagAuditSystem(world),
		renderSystem:      systems.NewRenderSystem(world),
	}
	s.auditSystem.Start()

	log.Printf("[FieldScene] 场景创建完成")
	return s, nil
}

// World 返回场景持有的游戏世界
func (s *FieldScene) World() *game.World {
	return s.world
}

// Resize 实现 game.Resizable
func (s *FieldScene) Resize(width, height int) {
	s.layoutSystem.Resize(float64(width), float64(height))
}

// Update 推进一帧
func (s *FieldScene) Update(deltaTime float64) {
	if s.world.FieldWidth <= 0 {
		return
	}
	s.dragSystem.Update()
	s.tweenSystem.Update(deltaTime)
	s.world.Scheduler.Update(deltaTime)
}

// Draw 绘制场地
func (s *FieldScene) Draw(screen *ebiten.Image) {
	if s.world.FieldWidth <= 0 {
		return
	}
	if s.settings != nil {
		prefs := s.settings.GetSettings()
		s.renderSystem.ShowDebug = prefs.ShowDebugOverlay
		s.renderSystem.ShowCenterArea = prefs.ShowCenterArea
	}
	s.renderSystem.Draw(screen)
}
