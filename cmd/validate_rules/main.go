// validate_rules 校验规则文件并打印参考尺寸下的基地布局
//
// 用法:
//
//	go run ./cmd/validate_rules data/rules.yaml
//	go run ./cmd/validate_rules --width 1280 --height 720 custom.yaml
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/systems"
	"github.com/decker502/flagfield/pkg/types"
)

type CLI struct {
	Files  []string `arg:"" help:"Rules YAML files to validate." type:"existingfile"`
	Width  float64  `help:"Reference field width for the layout summary." default:"1000"`
	Height float64  `help:"Reference field height for the layout summary." default:"600"`
}

func main() {
	var cli CLI
	kong.Parse(&cli,
		kong.Name("validate_rules"),
		kong.Description("Validate flag field rules files."),
	)

	failed := 0
	for _, path := range cli.Files {
		if err := validateFile(os.Stdout, path, cli.Width, cli.Height); err != nil {
			fmt.Printf("❌ %s: %v\n", path, err)
			failed++
		}
	}
	if failed > 0 {
		fmt.Printf("❌ %d 个文件校验失败\n", failed)
		os.Exit(1)
	}
}

// validateFile 加载并校验单个规则文件，成功时输出基地布局摘要
func validateFile(w io.Writer, path string, width, height float64) error {
	rules, err := config.LoadRulesConfig(path)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "✅ %s\n", path)
	fmt.Fprintf(w, "   队伍数: %d, 每队旗帜: %d, 旗帜总数: %d\n",
		len(rules.Teams), rules.FlagsPerTeam, rules.TotalFlags())
	fmt.Fprintf(w, "   得分延时: %.2fs, 被抓标记: %.2fs, 回城单段: %.2fs, 巡检周期: %.2fs\n",
		rules.Timing.ScoringDelay, rules.Timing.TagIndicator,
		rules.Timing.ReturnStage, rules.Timing.AuditInterval)

	for _, team := range types.AllTeams() {
		rect, ok := systems.ComputeBaseRect(rules, team, width, height)
		if !ok {
			return fmt.Errorf("team %s has no base at %.0fx%.0f", team, width, height)
		}
		fmt.Fprintf(w, "   %-7s (%6.1f, %6.1f) %6.1f x %6.1f\n",
			team, rect.Left, rect.Top, rect.Width, rect.Height)
	}
	return nil
}
