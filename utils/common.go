package utils

import (
	"time"

	log "github.com/sirupsen/logrus"
)

func TimeTrack(start time.Time, name string) {
	log.Debugf("%s took %s", name, time.Since(start))
}

func VerbosePrint(format string, a ...interface{}) {
	if Opts().Verbose() {
		log.Debugf(format, a...)
	}
}
