package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/go-drift/bind/pkg/manifest"
)

func init() {
	RegisterCommand(&Command{
		Name:  "watch",
		Short: "Re-validate a manifest on every change",
		Long: `Re-validate a manifest on every change.

Watches the manifest file and runs the same validation as "check" each time
it is written. Useful while hand-editing bindings. Stop with Ctrl-C.`,
		Usage: "bindcheck watch <manifest.yaml>",
		Run:   runWatch,
	})
}

func runWatch(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("watch requires exactly one manifest path")
	}
	path := args[0]

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory, not the file: editors replace files on save,
	// which silently drops a watch held on the file itself.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	reportCheck(path)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			// Small delay so rapid sequential writes settle first.
			time.Sleep(50 * time.Millisecond)
			reportCheck(path)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
		case <-interrupt:
			return nil
		}
	}
}

func reportCheck(path string) {
	stamp := time.Now().Format("15:04:05")
	m, err := manifest.Load(path)
	if err == nil {
		err = m.Validate()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "[%s] %v\n", stamp, err)
		return
	}
	fmt.Printf("[%s] %s: ok\n", stamp, path)
}
