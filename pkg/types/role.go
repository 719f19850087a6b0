package types

// Role 定义玩家角色
type Role int

const (
	// RoleGuardian 守卫：只能在本队基地内移动，在基地内抓捕携旗者
	RoleGuardian Role = iota
	// RoleTagger 追捕者：不能进入任何基地，在空地上抓捕携旗者
	RoleTagger
	// RoleRunner 跑者：可以拾取敌方旗帜并带回本队基地得分
	RoleRunner
)

// AllRoles 返回每支队伍的角色创建顺序
func AllRoles() []Role {
	return []Role{RoleGuardian, RoleTagger, RoleRunner}
}

// String 返回角色的字符串表示
func (r Role) String() string {
	switch r {
	case RoleGuardian:
		return "guardian"
	case RoleTagger:
		return "tagger"
	case RoleRunner:
		return "runner"
	default:
		return "unknown"
	}
}

// Letter 返回玩家方块上显示的角色字母
func (r Role) Letter() string {
	switch r {
	case RoleGuardian:
		return "G"
	case RoleTagger:
		return "T"
	case RoleRunner:
		return "R"
	default:
		return "?"
	}
}

// CanTag 判断该角色是否可以抓捕携旗者
func (r Role) CanTag() bool {
	return r == RoleGuardian || r == RoleTagger
}

// IsValid 判断是否为已定义的角色
func (r Role) IsValid() bool {
	return r >= RoleGuardian && r <= RoleRunner
}
