package main

import (
	"log/syslog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	logrusys "github.com/sirupsen/logrus/hooks/syslog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "folio",
	Short:         "Portfolio page backend",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).Warnln("Could not load .env file.")
		}
		setupLogger(os.Getenv("DEBUG") == "true")
	},
}

func setupLogger(verbose bool) {
	logrus.SetFormatter(&logrus.TextFormatter{
		TimestampFormat: time.Stamp,
		FullTimestamp:   true,
	})
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	syslogHook, err := logrusys.NewSyslogHook("", "", syslog.LOG_USER, "folio_backend")
	if err != nil {
		logrus.WithError(err).Warnln("Could not create syslog hook.")
		return
	}
	logrus.AddHook(syslogHook)
}

func awaitInterruption() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}

func main() {
	rootCmd.AddCommand(serveCmd, schemaCmd)
	if err := rootCmd.Execute(); err != nil {
		logrus.WithError(err).Errorln("Command failed.")
		os.Exit(1)
	}
}
