// internal/buildinfo/buildinfo.go

// Package buildinfo 提供所有示範程式共用的版本資訊與日誌初始化。
// 版本欄位可於建置時以 -ldflags "-X records/internal/buildinfo.Version=..." 覆寫。
package buildinfo

import (
	"io"
	"log/slog"

	goversion "github.com/caarlos0/go-version"
)

// 應用程式資訊，顯示於版本資訊中。
const (
	Application = "records"                                        // 應用程式名稱
	Description = "Employee record and language feature demos"     // 一行說明
	WebSite     = "https://github.com/jiaozhegeba/My-Cpp-Journey" // 專案網址
)

// 建置資訊；空字串代表沿用 runtime/debug 讀到的值。
var (
	Version   = "0.1.0" // 版本號
	Commit    = ""      // Git commit
	TreeState = ""      // Git 工作樹狀態（clean / dirty）
	Date      = ""      // 建置時間
	BuiltBy   = ""      // 建置者
)

// Info 組合版本資訊；空字串欄位沿用 go-version 由 runtime/debug 讀到的值。
func Info() goversion.Info {
	return goversion.GetVersionInfo(
		goversion.WithAppDetails(Application, Description, WebSite),
		func(i *goversion.Info) {
			if Version != "" {
				i.GitVersion = Version
			}
			if Commit != "" {
				i.GitCommit = Commit
			}
			if TreeState != "" {
				i.GitTreeState = TreeState
			}
			if Date != "" {
				i.BuildDate = Date
			}
			if BuiltBy != "" {
				i.BuiltBy = BuiltBy
			}
		},
	)
}

// SetupLogger 將預設 slog logger 指向 w（文字格式）。
// 預設等級為 Warn，debug 為 true 時降為 Debug。
func SetupLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// Start 初始化日誌並記錄程式啟動與版本。
func Start(w io.Writer, program string, debug bool) *slog.Logger {
	logger := SetupLogger(w, debug).With("program", program)
	info := Info()
	logger.Debug("starting", "app", info.Name, "version", info.GitVersion, "commit", info.GitCommit)
	return logger
}
