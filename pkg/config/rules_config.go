package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/flagfield/pkg/types"
	"gopkg.in/yaml.v3"
)

// RulesConfig 对局规则配置
//
// 包含每队旗帜数、实体尺寸、各类延时以及基地布局百分比。
// 默认配置嵌入在 data/rules.yaml 中，也可以通过 --rules 指定外部文件。
type RulesConfig struct {
	// FlagsPerTeam 每队初始旗帜数
	FlagsPerTeam int `yaml:"flagsPerTeam"`

	// PlayerSize 玩家方块边长（像素）
	PlayerSize float64 `yaml:"playerSize"`

	// FlagSize 旗帜边长（像素）
	FlagSize float64 `yaml:"flagSize"`

	// Timing 延时配置
	Timing TimingConfig `yaml:"timing"`

	// Layout 基地布局
	Layout BaseLayoutConfig `yaml:"layout"`

	// Teams 各队颜色与布局槽位
	Teams []TeamConfig `yaml:"teams"`
}

// TimingConfig 延时配置（单位：秒）
type TimingConfig struct {
	// ScoringDelay 跑者进入本方基地后提交得分的等待时间
	ScoringDelay float64 `yaml:"scoringDelay"`

	// TagIndicator 被追捕者抓到后"被抓"标记的显示时长
	TagIndicator float64 `yaml:"tagIndicator"`

	// ReturnStage 回城动画每个阶段的时长（共两段）
	ReturnStage float64 `yaml:"returnStage"`

	// CounterRefresh 丢旗后刷新基地旗帜计数的延时
	CounterRefresh float64 `yaml:"counterRefresh"`

	// AuditInterval 旗帜总数一致性检查的周期
	AuditInterval float64 `yaml:"auditInterval"`
}

// BaseLayoutConfig 基地布局（全部为场地尺寸的比例）
type BaseLayoutConfig struct {
	// BaseWidth 基地宽度占场地宽度的比例
	BaseWidth float64 `yaml:"baseWidth"`

	// BaseHeight 基地高度占场地高度的比例
	BaseHeight float64 `yaml:"baseHeight"`

	// Columns 每一列基地左边缘的横向比例
	Columns []float64 `yaml:"columns"`

	// Rows 每一行基地上边缘的纵向比例
	Rows []float64 `yaml:"rows"`
}

// TeamConfig 单支队伍的配置
type TeamConfig struct {
	// Name 队伍
	Name types.Team `yaml:"name"`

	// Color 显示颜色，形如 "#e74c3c"
	Color string `yaml:"color"`

	// Column 基地所在列索引
	Column int `yaml:"column"`

	// Row 基地所在行索引
	Row int `yaml:"row"`
}

// DefaultRulesConfig 返回内置默认规则
// 与 data/rules.yaml 内容一致，用于嵌入资源不可用时的降级
func DefaultRulesConfig() *RulesConfig {
	return &RulesConfig{
		FlagsPerTeam: 3,
		PlayerSize:   40,
		FlagSize:     30,
		Timing: TimingConfig{
			ScoringDelay:   0.3,
			TagIndicator:   0.8,
			ReturnStage:    0.5,
			CounterRefresh: 0.05,
			AuditInterval:  3.0,
		},
		Layout: BaseLayoutConfig{
			BaseWidth:  0.18,
			BaseHeight: 0.26,
			Columns:    []float64{0.02, 0.80},
			Rows:       []float64{0.04, 0.37, 0.70},
		},
		Teams: []TeamConfig{
			{Name: types.TeamRed, Color: "#e74c3c", Column: 0, Row: 0},
			{Name: types.TeamBlue, Color: "#3498db", Column: 1, Row: 0},
			{Name: types.TeamGreen, Color: "#2ecc71", Column: 0, Row: 1},
			{Name: types.TeamYellow, Color: "#f1c40f", Column: 1, Row: 1},
			{Name: types.TeamPurple, Color: "#9b59b6", Column: 0, Row: 2},
			{Name: types.TeamOrange, Color: "#e67e22", Column: 1, Row: 2},
		},
	}
}

// LoadRulesConfig 从文件加载规则配置
//
// 参数:
//   - path: 配置文件路径（如 "data/rules.yaml"）
//
// 返回:
//   - *RulesConfig: 加载成功后的配置结构
//   - error: 读取、解析或校验失败时返回错误
func LoadRulesConfig(path string) (*RulesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules config: %w", err)
	}
	return ParseRulesConfig(data)
}

// ParseRulesConfig 从 YAML 数据解析规则配置并校验
func ParseRulesConfig(data []byte) (*RulesConfig, error) {
	var cfg RulesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse rules config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid rules config: %w", err)
	}

	return &cfg, nil
}

// Marshal 将配置序列化为 YAML（用于 --dump-rules）
func (c *RulesConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate 验证配置有效性
//
// 检查内容：
//   - 每队旗帜数、尺寸、延时均为正数
//   - 基地比例在 (0, 1] 内，列/行起点加上尺寸不超出场地
//   - 6 支队伍各出现一次，颜色可解析，槽位索引合法且互不重复
func (c *RulesConfig) Validate() error {
	if c.FlagsPerTeam <= 0 {
		return fmt.Errorf("flagsPerTeam must be positive, got %d", c.FlagsPerTeam)
	}
	if c.PlayerSize <= 0 {
		return fmt.Errorf("playerSize must be positive, got %.1f", c.PlayerSize)
	}
	if c.FlagSize <= 0 {
		return fmt.Errorf("flagSize must be positive, got %.1f", c.FlagSize)
	}

	timings := []struct {
		name  string
		value float64
	}{
		{"timing.scoringDelay", c.Timing.ScoringDelay},
		{"timing.tagIndicator", c.Timing.TagIndicator},
		{"timing.returnStage", c.Timing.ReturnStage},
		{"timing.counterRefresh", c.Timing.CounterRefresh},
		{"timing.auditInterval", c.Timing.AuditInterval},
	}
	for _, tm := range timings {
		if tm.value <= 0 {
			return fmt.Errorf("%s must be positive, got %.3f", tm.name, tm.value)
		}
	}

	if err := c.Layout.validate(); err != nil {
		return err
	}

	if len(c.Teams) != types.TeamCount {
		return fmt.Errorf("expected %d teams, got %d", types.TeamCount, len(c.Teams))
	}

	seenTeams := make(map[types.Team]bool)
	seenSlots := make(map[[2]int]types.Team)
	for i, tc := range c.Teams {
		if !tc.Name.IsValid() {
			return fmt.Errorf("teams[%d]: invalid team", i)
		}
		if seenTeams[tc.Name] {
			return fmt.Errorf("teams[%d]: duplicate team %s", i, tc.Name)
		}
		seenTeams[tc.Name] = true

		if _, err := ParseHexColor(tc.Color); err != nil {
			return fmt.Errorf("teams[%d] (%s): %w", i, tc.Name, err)
		}
		if tc.Column < 0 || tc.Column >= len(c.Layout.Columns) {
			return fmt.Errorf("teams[%d] (%s): column %d out of range", i, tc.Name, tc.Column)
		}
		if tc.Row < 0 || tc.Row >= len(c.Layout.Rows) {
			return fmt.Errorf("teams[%d] (%s): row %d out of range", i, tc.Name, tc.Row)
		}
		slot := [2]int{tc.Column, tc.Row}
		if other, taken := seenSlots[slot]; taken {
			return fmt.Errorf("teams[%d] (%s): slot (%d, %d) already used by %s", i, tc.Name, tc.Column, tc.Row, other)
		}
		seenSlots[slot] = tc.Name
	}

	return nil
}

// validate 校验基地布局比例
func (l *BaseLayoutConfig) validate() error {
	if l.BaseWidth <= 0 || l.BaseWidth > 1 {
		return fmt.Errorf("layout.baseWidth must be in (0, 1], got %.3f", l.BaseWidth)
	}
	if l.BaseHeight <= 0 || l.BaseHeight > 1 {
		return fmt.Errorf("layout.baseHeight must be in (0, 1], got %.3f", l.BaseHeight)
	}
	if len(l.Columns) == 0 || len(l.Rows) == 0 {
		return fmt.Errorf("layout needs at least one column and one row")
	}
	for i, x := range l.Columns {
		if x < 0 || x+l.BaseWidth > 1 {
			return fmt.Errorf("layout.columns[%d]=%.3f puts the base outside the field", i, x)
		}
	}
	for i, y := range l.Rows {
		if y < 0 || y+l.BaseHeight > 1 {
			return fmt.Errorf("layout.rows[%d]=%.3f puts the base outside the field", i, y)
		}
	}
	return nil
}

// TotalFlags 返回场上应有的旗帜总数（队伍数 × 每队旗帜数）
func (c *RulesConfig) TotalFlags() int {
	return len(c.Teams) * c.FlagsPerTeam
}

// Team 返回指定队伍的配置
func (c *RulesConfig) Team(team types.Team) (TeamConfig, bool) {
	for _, tc := range c.Teams {
		if tc.Name == team {
			return tc, true
		}
	}
	return TeamConfig{}, false
}

// TeamColor 返回队伍颜色，未配置或颜色非法时返回灰色
func (c *RulesConfig) TeamColor(team types.Team) color.RGBA {
	tc, ok := c.Team(team)
	if !ok {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	clr, err := ParseHexColor(tc.Color)
	if err != nil {
		return color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}
	}
	return clr
}

// IsLeftColumn 判断队伍基地是否在场地左半边
// 追捕者的初始位置放在基地朝向场地中央的一侧
func (c *RulesConfig) IsLeftColumn(team types.Team) bool {
	tc, ok := c.Team(team)
	if !ok {
		return true
	}
	return c.Layout.Columns[tc.Column]+c.Layout.BaseWidth/2 < 0.5
}

// ParseHexColor 解析 "#rrggbb" 格式颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 || !strings.HasPrefix(s, "#") {
		return color.RGBA{}, fmt.Errorf("invalid color %q, expected #rrggbb", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
