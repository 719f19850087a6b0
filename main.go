package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/flagfield/pkg/app"
	"github.com/decker502/flagfield/pkg/config"
	"github.com/decker502/flagfield/pkg/embedded"
)

// CLI 命令行参数
var CLI struct {
	Verbose    bool   `help:"Enable verbose logging." short:"v"`
	Rules      string `help:"Load game rules from a YAML file instead of the embedded defaults." type:"existingfile"`
	Width      int    `help:"Initial window width." default:"1024"`
	Height     int    `help:"Initial window height." default:"640"`
	NoSettings bool   `help:"Do not read or write UI preferences."`
	DumpRules  bool   `help:"Print the effective rules as YAML and exit."`
}

func main() {
	kong.Parse(&CLI,
		kong.Name("flagfield"),
		kong.Description("Drag-and-drop capture the flag."),
	)

	// 初始化嵌入资源（必须在任何资源加载之前）
	embedded.Init(dataFS)

	if CLI.DumpRules {
		rules, err := app.LoadRules(CLI.Rules)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		data, err := rules.Marshal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Stdout.Write(data)
		return
	}

	gameApp, err := app.NewApp(app.Config{
		Verbose:    CLI.Verbose,
		RulesPath:  CLI.Rules,
		NoSettings: CLI.NoSettings,
	})
	if err != nil {
		log.SetOutput(os.Stderr)
		log.Fatalf("游戏初始化失败: %v", err)
	}

	width, height := app.FieldSize(CLI.Width, CLI.Height)
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(gameApp.Settings().GetSettings().Fullscreen)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.SetOutput(os.Stderr)
		log.Fatal(err)
	}
}
