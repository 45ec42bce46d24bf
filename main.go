package main

import (
	"os"
	"time"

	"github.com/cs-au-dk/incdom/utils"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var (
	opts = utils.Opts()
	task = opts.Task()
)

func main() {
	utils.ParseArgs()
	defer utils.TimeTrack(time.Now(), "incdom")

	files := utils.InputFiles()
	pipelines := make([]*pipeline, len(files))
	for i, path := range files {
		pipelines[i] = newPipeline(path)
	}

	// Every file is attempted even when another one fails.
	var g errgroup.Group
	g.SetLimit(opts.Jobs())
	errs := make([]error, len(pipelines))
	for i, pl := range pipelines {
		i, pl := i, pl
		g.Go(func() error {
			errs[i] = pl.run()
			return nil
		})
	}
	_ = g.Wait()

	var m metrics
	failed := false
	for i, pl := range pipelines {
		if errs[i] != nil {
			log.Error(errs[i])
			log.Debugf("%+v", errs[i])
			failed = true
			continue
		}
		if _, err := pl.out.WriteTo(os.Stdout); err != nil {
			log.Fatal(err)
		}
		if pl.stats != nil {
			m.add(*pl.stats)
		}
	}

	if task.IsStats() && len(files) > 1 {
		if err := m.write(os.Stdout); err != nil {
			log.Fatal(err)
		}
	}

	if failed {
		os.Exit(1)
	}
}
