package tui

import (
	"fmt"

	"github.com/akyairhashvil/tomato/internal/models"
)

// Labels holds the user-facing strings for one language.
type Labels struct {
	AppName         string
	Title           string // takes the completed focus count
	Focus           string
	ShortBreak      string
	LongBreak       string
	Running         string // takes the mode label
	Paused          string // takes the mode label
	PhaseDone       string // takes the finished and the next mode label
	SettingsTitle   string
	TaskField       string
	FocusField      string
	ShortField      string
	LongField       string
	TaskPlaceholder string
	SettingsHint    string
	ReportSaved     string
	ReportFailed    string
}

var labelSets = map[string]Labels{
	"en": {
		AppName:         "Pomodoro",
		Title:           "Pomodoro · today %d",
		Focus:           "Focus",
		ShortBreak:      "Short break",
		LongBreak:       "Long break",
		Running:         "%s in progress (click the time to pause)",
		Paused:          "%s (click the time to start)",
		PhaseDone:       "%s finished, next up: %s",
		SettingsTitle:   "Pomodoro settings",
		TaskField:       "Current task",
		FocusField:      "Focus (minutes)",
		ShortField:      "Short break (minutes)",
		LongField:       "Long break (minutes)",
		TaskPlaceholder: "e.g. OS homework / crypto paper / reading…",
		SettingsHint:    "enter save · esc cancel · tab next field",
		ReportSaved:     "Report saved to %s",
		ReportFailed:    "Report failed: %v",
	},
	"zh": {
		AppName:         "番茄时钟",
		Title:           "番茄时钟 · 今日 %d 个",
		Focus:           "专注",
		ShortBreak:      "短休息",
		LongBreak:       "长休息",
		Running:         "状态：%s中（点击时间暂停）",
		Paused:          "状态：%s（点击时间开始）",
		PhaseDone:       "%s结束，接下来：%s",
		SettingsTitle:   "番茄钟设置",
		TaskField:       "当前任务：",
		FocusField:      "专注时长（分钟）：",
		ShortField:      "短休息时长（分钟）：",
		LongField:       "长休息时长（分钟）：",
		TaskPlaceholder: "例如：操作系统作业 / 密码学论文 / 阅读…",
		SettingsHint:    "enter 保存 · esc 取消 · tab 下一项",
		ReportSaved:     "报告已保存：%s",
		ReportFailed:    "报告导出失败：%v",
	},
}

// ResolveLabels returns the labels for lang, falling back to English.
func ResolveLabels(lang string) Labels {
	if l, ok := labelSets[lang]; ok {
		return l
	}
	return labelSets["en"]
}

func (l Labels) ModeLabel(mode models.Mode) string {
	switch mode {
	case models.ModeShortBreak:
		return l.ShortBreak
	case models.ModeLongBreak:
		return l.LongBreak
	default:
		return l.Focus
	}
}

func (l Labels) TitleFor(completed int) string {
	return fmt.Sprintf(l.Title, completed)
}

func (l Labels) StateLine(s models.SessionState) string {
	if s.Running {
		return fmt.Sprintf(l.Running, l.ModeLabel(s.Mode))
	}
	return fmt.Sprintf(l.Paused, l.ModeLabel(s.Mode))
}
