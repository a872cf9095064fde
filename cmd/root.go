package cmd

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/wagoodman/go-partybus"
	"github.com/wagoodman/go-progress"

	"github.com/pkgtools/depmatch/depmatch/event"
	"github.com/pkgtools/depmatch/depmatch/matcher"
	"github.com/pkgtools/depmatch/depmatch/presenter"
	"github.com/pkgtools/depmatch/internal"
	"github.com/pkgtools/depmatch/internal/file"
	"github.com/pkgtools/depmatch/internal/log"
)

var rootCmd = &cobra.Command{
	Use:   fmt.Sprintf("%s [flags] PATTERNS-FILE PACKAGES-FILE", internal.ApplicationName),
	Short: "Match pkgsrc dependency patterns against package names",
	Long: fmt.Sprintf(`Evaluate every dependency pattern in PATTERNS-FILE against every package
identifier in PACKAGES-FILE and report each (pattern, package) pair that
matches.

Both files are line-oriented: one pattern or one "name-version" package
identifier per line, blank lines and lines starting with "#" ignored.

Patterns follow the pkgsrc dialect:
    foo>=1.2          dewey range (also >, <, <=, and == for exact versions)
    foo>=1.2<2.0      bounded dewey range
    foo-[0-9]*        shell glob over the whole "name-version" string
    {mysql,mariadb}-[0-9]*   csh-style alternates
    foo<1.0|foo>=2.0  alternation; the pattern matches if any branch does
    foo-1.2.3         exact match

Patterns that fail to parse are skipped and reported on stderr; they never
count as a silent non-match. Run '%s version' for build information.`, internal.ApplicationName),
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		os.Exit(runDefaultCmd(cmd, args))
	},
}

func init() {
	setRootFlags(rootCmd.Flags())
}

func setRootFlags(flags *pflag.FlagSet) {
	flag := "output"
	flags.StringP(
		flag, "o", presenter.PlainPresenter.String(),
		fmt.Sprintf("report output formatter, options=%v", presenter.Options),
	)
	if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}

	flag = "workers"
	flags.Int(
		flag, 0,
		"number of concurrent matching workers (0 = one per CPU)",
	)
	if err := viper.BindPFlag(flag, flags.Lookup(flag)); err != nil {
		fmt.Printf("unable to bind flag '%s': %+v", flag, err)
		os.Exit(1)
	}
}

func runDefaultCmd(_ *cobra.Command, args []string) int {
	patternsPath, packagesPath := args[0], args[1]
	fs := afero.NewOsFs()

	patterns, err := file.ReadLines(fs, patternsPath)
	if err != nil {
		log.Errorf("could not read patterns: %+v", err)
		return 1
	}

	pkgs, err := file.ReadLines(fs, packagesPath)
	if err != nil {
		log.Errorf("could not read packages: %+v", err)
		return 1
	}

	log.Infof("loaded %s patterns and %s packages",
		humanize.Comma(int64(len(patterns))), humanize.Comma(int64(len(pkgs))))

	m, err := matcher.New(patterns, appConfig.Workers)
	if err != nil {
		// bad patterns are skipped, never treated as "matched false"
		var errs *multierror.Error
		if errors.As(err, &errs) {
			for _, e := range errs.Errors {
				log.Warnf("skipping %v", e)
			}
		} else {
			log.Warnf("skipping %v", err)
		}
	}
	if m.Patterns() == 0 {
		log.Error("no valid patterns to match")
		return 1
	}

	done := startEventLoop(eventSubscription)
	results := m.Results(pkgs)
	<-done

	presenterType := presenter.ParseOption(appConfig.Output)
	if presenterType == presenter.UnknownPresenter {
		log.Errorf("cannot find an output presenter for option: %s", appConfig.Output)
		return 1
	}

	if err := presenter.GetPresenter(presenterType).Present(os.Stdout, results); err != nil {
		log.Errorf("could not format results: %+v", err)
		return 1
	}

	log.Infof("reported %s matches", humanize.Comma(int64(len(results))))

	return 0
}

// startEventLoop consumes matching lifecycle events off the bus, logging
// periodic progress until the matching-finished event arrives.
func startEventLoop(sub *partybus.Subscription) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		var prog progress.Progressable
		ticker := time.NewTicker(500 * time.Millisecond)
		defer ticker.Stop()
		events := sub.Events()
		for {
			select {
			case e, ok := <-events:
				if !ok {
					return
				}
				switch e.Type {
				case event.MatchingStarted:
					prog, _ = e.Value.(progress.Progressable)
				case event.MatchingFinished:
					return
				}
			case <-ticker.C:
				if prog != nil {
					log.Debugf("matching progress: %d/%d packages", prog.Current(), prog.Size())
				}
			}
		}
	}()
	return done
}
