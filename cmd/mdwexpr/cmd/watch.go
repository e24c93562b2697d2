package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/mdwexpr/core/error"
	mdwlog "github.com/msto63/mdwexpr/core/log"
	"github.com/msto63/mdwexpr/expr"
)

var watchFlags outputFlags

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-parse a file whenever it changes",
	Long: `Parse the expression stored in a file and parse it again every time
the file is written. Stops on Ctrl+C or SIGTERM.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchFlags.register(watchCmd)

	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := filepath.Clean(args[0])

	engine, err := newEngine(watchFlags.partial)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return mdwerror.Wrap(err, "failed to create file watcher").
			WithCode(mdwerror.CodeInternal).
			WithOperation("cmd.watch")
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are noticed
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return mdwerror.Wrap(err, "failed to watch directory").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("cmd.watch").
			WithDetail("path", path)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out, errOut := cmd.OutOrStdout(), cmd.ErrOrStderr()
	reparse := func() { parseFile(out, errOut, engine, path, watchFlags) }

	logger.Info("Watching file", mdwlog.Fields{"path": path})
	reparse()

	return watchFile(ctx, watcher, path, reparse)
}

// watchFile calls onChange for every write to path until ctx is done or
// the watcher closes
func watchFile(ctx context.Context, watcher *fsnotify.Watcher, path string, onChange func()) error {
	target := filepath.Clean(path)

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Watch stopped", mdwlog.Fields{"path": target})
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			switch {
			case event.Op&(fsnotify.Write|fsnotify.Create) != 0:
				onChange()
			case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
				logger.Warn("Watched file removed", mdwlog.Fields{"path": target})
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.ErrorWithErr("File watcher error", err, mdwlog.Fields{"path": target})
		}
	}
}

// parseFile parses the file content and prints the tree or a diagnostic
func parseFile(out, errOut io.Writer, engine *expr.Engine, path string, flags outputFlags) {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.WarnWithErr("Failed to read watched file", err, mdwlog.Fields{"path": path})
		return
	}

	source := string(data)
	fmt.Fprintln(out, locationStyle.Render("== "+path))

	result, err := engine.Parse(source)
	if err != nil {
		fmt.Fprint(errOut, renderDiagnostic(source, err))
		return
	}
	fmt.Fprint(out, renderResult(result, flags))
}
