package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"cdr.dev/slog"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/pflag"
	"oss.terrastruct.com/xdefer"

	"github.com/skizlabs/skiz/lib/log"
	"github.com/skizlabs/skiz/skizlib"
)

func main() {
	output := pflag.StringP("out", "o", "-", "output path for the rendered SVG, - for stdout")
	watch := pflag.BoolP("watch", "w", false, "re-render whenever the input file changes")
	detect := pflag.Bool("detect", false, "print the detected input kind instead of rendering")
	pflag.Parse()

	ctx := log.Stderr(context.Background())
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt)
	defer cancel()

	if err := run(ctx, pflag.Args(), *output, *watch, *detect); err != nil {
		log.Error(ctx, "skiz failed", slog.F("err", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, output string, watch, detect bool) error {
	input := "-"
	if len(args) > 0 {
		input = args[0]
	}

	if detect {
		code, err := read(input)
		if err != nil {
			return err
		}
		fmt.Println(skizlib.Detect(code))
		return nil
	}

	if !watch {
		return render(ctx, input, output)
	}
	if input == "-" {
		return fmt.Errorf("--watch needs a file to watch, not stdin")
	}
	return watchLoop(ctx, input, output)
}

func render(ctx context.Context, input, output string) (err error) {
	defer xdefer.Errorf(&err, "failed to render %v", input)

	code, err := read(input)
	if err != nil {
		return err
	}
	out := skizlib.Render(ctx, code)
	if output == "-" {
		_, err = io.WriteString(os.Stdout, out+"\n")
		return err
	}
	return os.WriteFile(output, []byte(out), 0644)
}

func watchLoop(ctx context.Context, input, output string) error {
	if output == "-" {
		return fmt.Errorf("--watch needs an output file, not stdout")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(input); err != nil {
		return err
	}
	if err := render(ctx, input, output); err != nil {
		return err
	}
	log.Info(ctx, "watching", slog.F("input", input), slog.F("output", output))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// Editors often replace the file on save, which drops the watch.
			if ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename) {
				if err := watcher.Add(input); err != nil {
					return err
				}
			}
			if err := render(ctx, input, output); err != nil {
				log.Warn(ctx, "render skipped", slog.F("err", err))
				continue
			}
			log.Info(ctx, "rendered", slog.F("input", input))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn(ctx, "watch error", slog.F("err", err))
		}
	}
}

func read(input string) (string, error) {
	if input == "-" {
		b, err := io.ReadAll(os.Stdin)
		return string(b), err
	}
	b, err := os.ReadFile(input)
	return string(b), err
}
