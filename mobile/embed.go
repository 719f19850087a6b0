//go:build mobile

// embed.go - 移动端资源嵌入声明
//
// 此文件仅在使用 -tags mobile 构建时编译。
// mobile/data/rules.yaml 是 data/rules.yaml 的副本，修改规则后需要同步：
//
//	cp data/rules.yaml mobile/data/
package mobile

import "embed"

//go:embed data/rules.yaml
var dataFS embed.FS
