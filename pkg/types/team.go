// Package types 定义共享的基础类型
// 这个包不依赖任何其他业务包，用于解决循环引用问题
package types

import "fmt"

// Team 定义队伍（固定 6 支）
type Team int

const (
	// TeamUnknown 未知队伍，仅用于解析失败
	TeamUnknown Team = iota
	// TeamRed 红队
	TeamRed
	// TeamBlue 蓝队
	TeamBlue
	// TeamGreen 绿队
	TeamGreen
	// TeamYellow 黄队
	TeamYellow
	// TeamPurple 紫队
	TeamPurple
	// TeamOrange 橙队
	TeamOrange
)

// AllTeams 返回全部队伍，顺序即创建实体和布局时使用的顺序
func AllTeams() []Team {
	return []Team{TeamRed, TeamBlue, TeamGreen, TeamYellow, TeamPurple, TeamOrange}
}

// TeamCount 队伍总数
const TeamCount = 6

// String 返回队伍的字符串表示（同时用作配置文件中的队伍名）
func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	case TeamGreen:
		return "green"
	case TeamYellow:
		return "yellow"
	case TeamPurple:
		return "purple"
	case TeamOrange:
		return "orange"
	default:
		return "unknown"
	}
}

// IsValid 判断是否为 6 支正式队伍之一
func (t Team) IsValid() bool {
	return t >= TeamRed && t <= TeamOrange
}

// ParseTeam 将队伍名解析为 Team
//
// 参数:
//   - name: 队伍名，如 "red"
//
// 返回:
//   - Team: 解析结果
//   - error: 未知队伍名时返回错误
func ParseTeam(name string) (Team, error) {
	for _, t := range AllTeams() {
		if t.String() == name {
			return t, nil
		}
	}
	return TeamUnknown, fmt.Errorf("unknown team: %q", name)
}

// UnmarshalText 实现 encoding.TextUnmarshaler，供 YAML 解析使用
func (t *Team) UnmarshalText(text []byte) error {
	parsed, err := ParseTeam(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalText 实现 encoding.TextMarshaler
func (t Team) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
