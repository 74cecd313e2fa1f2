package stubserver

import (
	"io"

	"github.com/labstack/gommon/log"

	applog "github.com/darkkaiser/clockify-client/pkg/log"
)

// echoLogger Echo 내부 로그를 애플리케이션 로거(logrus)로 전달하는 gommon log.Logger 어댑터입니다.
type echoLogger struct {
	*applog.Logger
}

func (l echoLogger) Output() io.Writer {
	return l.Logger.Out
}

func (l echoLogger) SetOutput(w io.Writer) {
	l.Logger.SetOutput(w)
}

func (l echoLogger) Prefix() string {
	return component
}

// SetPrefix 접두사는 component 필드로 대신하므로 무시합니다.
func (l echoLogger) SetPrefix(string) {}

// SetHeader 로그 형식은 applog 설정을 따르므로 무시합니다.
func (l echoLogger) SetHeader(string) {}

// Level logrus 레벨을 gommon 레벨로 변환합니다. 대응하는 레벨이 없으면 OFF입니다.
func (l echoLogger) Level() log.Lvl {
	switch l.Logger.GetLevel() {
	case applog.TraceLevel, applog.DebugLevel:
		return log.DEBUG
	case applog.InfoLevel:
		return log.INFO
	case applog.WarnLevel:
		return log.WARN
	case applog.ErrorLevel:
		return log.ERROR
	}
	return log.OFF
}

// SetLevel Echo가 요청한 레벨을 logrus 레벨로 변환하여 설정합니다. OFF는 무시합니다.
func (l echoLogger) SetLevel(lvl log.Lvl) {
	switch lvl {
	case log.DEBUG:
		l.Logger.SetLevel(applog.DebugLevel)
	case log.INFO:
		l.Logger.SetLevel(applog.InfoLevel)
	case log.WARN:
		l.Logger.SetLevel(applog.WarnLevel)
	case log.ERROR:
		l.Logger.SetLevel(applog.ErrorLevel)
	}
}

func (l echoLogger) entry() *applog.Entry {
	return l.Logger.WithField("component", component)
}

func (l echoLogger) entryj(j log.JSON) *applog.Entry {
	return l.entry().WithFields(applog.Fields(j))
}

func (l echoLogger) Print(i ...any)                 { l.entry().Print(i...) }
func (l echoLogger) Printf(format string, a ...any) { l.entry().Printf(format, a...) }
func (l echoLogger) Printj(j log.JSON)              { l.entryj(j).Print() }
func (l echoLogger) Debug(i ...any)                 { l.entry().Debug(i...) }
func (l echoLogger) Debugf(format string, a ...any) { l.entry().Debugf(format, a...) }
func (l echoLogger) Debugj(j log.JSON)              { l.entryj(j).Debug() }
func (l echoLogger) Info(i ...any)                  { l.entry().Info(i...) }
func (l echoLogger) Infof(format string, a ...any)  { l.entry().Infof(format, a...) }
func (l echoLogger) Infoj(j log.JSON)               { l.entryj(j).Info() }
func (l echoLogger) Warn(i ...any)                  { l.entry().Warn(i...) }
func (l echoLogger) Warnf(format string, a ...any)  { l.entry().Warnf(format, a...) }
func (l echoLogger) Warnj(j log.JSON)               { l.entryj(j).Warn() }
func (l echoLogger) Error(i ...any)                 { l.entry().Error(i...) }
func (l echoLogger) Errorf(format string, a ...any) { l.entry().Errorf(format, a...) }
func (l echoLogger) Errorj(j log.JSON)              { l.entryj(j).Error() }
func (l echoLogger) Fatal(i ...any)                 { l.entry().Fatal(i...) }
func (l echoLogger) Fatalf(format string, a ...any) { l.entry().Fatalf(format, a...) }
func (l echoLogger) Fatalj(j log.JSON)              { l.entryj(j).Fatal() }
func (l echoLogger) Panic(i ...any)                 { l.entry().Panic(i...) }
func (l echoLogger) Panicf(format string, a ...any) { l.entry().Panicf(format, a...) }
func (l echoLogger) Panicj(j log.JSON)              { l.entryj(j).Panic() }
