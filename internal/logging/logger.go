package logging

import (
	"io"
	"os"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/2beens/gymlog/pkg"
)

type LoggerSetupParams struct {
	LogFileName      string
	LogToStdout      bool
	LogLevel         string
	LogFormatJSON    bool
	Environment      string
	SentryEnabled    bool
	SentryDSN        string
	SentryServerName string
}

func Setup(params LoggerSetupParams) {
	if params.LogFormatJSON {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}

	if params.SentryEnabled {
		err := sentry.Init(sentry.ClientOptions{
			Environment:      params.Environment,
			Dsn:              params.SentryDSN,
			TracesSampleRate: 1.0,
			ServerName:       params.SentryServerName,
		})
		if err != nil {
			logrus.Errorf("sentry.Init: %s", err)
		} else {
			logrus.AddHook(NewSentryHook(sentry.CurrentHub(), []logrus.Level{
				logrus.PanicLevel,
				logrus.FatalLevel,
				logrus.ErrorLevel,
			}))
			logrus.Infoln("sentry set up successfully")
		}
	}

	logrus.SetLevel(GetLevel(params.LogLevel))
	logrus.SetOutput(output(params))
}

func output(params LoggerSetupParams) io.Writer {
	if params.LogFileName == "" {
		logrus.Println("writing logs only to STDOUT")
		return os.Stdout
	}

	if !strings.HasSuffix(params.LogFileName, ".log") {
		params.LogFileName += ".log"
	}

	lumberJackLogger := &lumberjack.Logger{
		Filename:   params.LogFileName,
		MaxSize:    50, // megabytes
		MaxBackups: 30,
		MaxAge:     90, // days
		LocalTime:  false,
		Compress:   true,
	}

	if params.LogToStdout {
		logrus.Println("writing logs to file and STDOUT")
		return pkg.NewCombinedWriter(os.Stdout, lumberJackLogger)
	}
	return lumberJackLogger
}

func GetLevel(level string) logrus.Level {
	switch strings.ToLower(level) {
	case "debug":
		return logrus.DebugLevel
	case "error":
		return logrus.ErrorLevel
	case "fatal":
		return logrus.FatalLevel
	case "info":
		return logrus.InfoLevel
	case "trace":
		return logrus.TraceLevel
	case "warn", "warning":
		return logrus.WarnLevel
	default:
		return logrus.TraceLevel
	}
}
