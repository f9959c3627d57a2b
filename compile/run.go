// Package compile implements compile and check subcommands: finds sources,
// compiles them and writes results.
package compile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"chtlc/common"
	"chtlc/dispatch"
	"chtlc/shell"
	"chtlc/state"
)

// Run is action of compile subcommand. Last argument is destination
// directory when more than one argument is given.
func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("compile")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("no input source has been specified")
	}

	var dst string
	if len(args) > 1 {
		dst, args = args[len(args)-1], args[:len(args)-1]
	} else {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
		dst = wd
	}
	dst, err := filepath.Abs(dst)
	if err != nil {
		return err
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")
	if err := setEncoding(env, cmd.String("encoding"), log); err != nil {
		return err
	}

	log.Info("Processing starting", zap.Strings("sources", args), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, args, log, func(src Source) error {
		return compileSource(ctx, src, dst, log)
	})
}

// Check is action of check subcommand: sources are compiled with validation
// enabled, nothing is written.
func Check(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("check")

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("no input source has been specified")
	}
	if err := setEncoding(env, cmd.String("encoding"), log); err != nil {
		return err
	}

	env.Cfg.Compiler.Validate = true
	if err := env.Setup(); err != nil {
		return err
	}

	var failed int
	err := process(ctx, args, log, func(src Source) error {
		res, err := compileText(ctx, src, log)
		if err != nil {
			return err
		}
		if n := dispatch.Count(res.Diagnostics, common.SeverityError); n > 0 {
			failed++
			return fmt.Errorf("%d error(s) found", n)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed > 0 {
		return fmt.Errorf("check failed for %d source(s)", failed)
	}
	return nil
}

func setEncoding(env *state.LocalEnv, name string, log *zap.Logger) error {
	if err := env.SetCodePage(name); err != nil {
		return err
	}
	if env.CodePage != nil {
		n, _ := ianaindex.IANA.Name(env.CodePage)
		log.Debug("Converting sources and non UTF-8 archive names", zap.String("charset", n))
	}
	return nil
}

// process discovers sources for every argument and calls fn for each of
// them. Failure of single source is logged and does not stop processing.
func process(ctx context.Context, args []string, log *zap.Logger, fn func(Source) error) error {
	var total, failed int
	for _, arg := range args {
		sources, err := Discover(ctx, arg, log)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("unable to process %s: %w", arg, err)
		}
		for _, src := range sources {
			if err := ctx.Err(); err != nil {
				return err
			}
			total++
			if err := fn(src); err != nil {
				failed++
				log.Error("Unable to process source", zap.String("source", src.Origin), zap.Error(err))
			}
		}
	}
	if total == 0 {
		return errors.New("no sources found")
	}
	if failed == total {
		return fmt.Errorf("all %d source(s) failed", total)
	}
	return nil
}

// compileText reads and compiles source logging every diagnostic and
// recording compilation state in the report.
func compileText(ctx context.Context, src Source, log *zap.Logger) (res *dispatch.Result, rerr error) {
	env := state.EnvFromContext(ctx)

	defer func(start time.Time) {
		if r := recover(); r != nil {
			log.Error("Compilation ended with panic",
				zap.Any("panic", r), zap.String("source", src.Origin), zap.ByteString("stack", debug.Stack()))
			res, rerr = nil, fmt.Errorf("compilation panic: %v", r)
			return
		}
		log.Debug("Compilation completed", zap.String("source", src.Origin), zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	text, err := src.Read(env)
	if err != nil {
		return nil, fmt.Errorf("unable to read source: %w", err)
	}

	res, err = env.Dispatcher.Compile(ctx, text)
	if res != nil {
		report(env, src, text, res)
		for _, d := range res.Diagnostics {
			fields := []zap.Field{zap.String("source", src.Origin), zap.Int("fragment", d.Fragment), zap.String("message", d.Message)}
			switch d.Severity {
			case common.SeverityError:
				log.Error("Compilation error", fields...)
			case common.SeverityWarning:
				log.Warn("Compilation warning", fields...)
			default:
				log.Info("Compilation note", fields...)
			}
		}
	}
	if err != nil {
		return nil, err
	}
	return res, nil
}

func report(env *state.LocalEnv, src Source, text string, res *dispatch.Result) {
	if env.Rpt == nil {
		return
	}
	dir := filepath.ToSlash(src.Name)
	env.Rpt.StoreText(dir+"/source.chtl", text)
	env.Rpt.StoreText(dir+"/fragments.txt", res.Dump())
	env.Rpt.StoreText(dir+"/registry.txt", res.Registry.String())
	var docs strings.Builder
	for i, doc := range res.Documents {
		if doc != nil {
			fmt.Fprintf(&docs, "fragment %d\n%s\n", i, doc)
		}
	}
	env.Rpt.StoreText(dir+"/ast.txt", docs.String())
}

func compileSource(ctx context.Context, src Source, dst string, log *zap.Logger) error {
	env := state.EnvFromContext(ctx)

	log.Info("Compilation starting", zap.String("from", src.Origin))

	res, err := compileText(ctx, src, log)
	if err != nil {
		return err
	}

	out := buildOutputPath(src.Name, dst, env)
	if err := prepareOutput(out, env, log); err != nil {
		return err
	}

	files := map[string]string{}
	if env.Shell != nil {
		page, err := wrap(env, src, res)
		if err != nil {
			return err
		}
		files[out] = page
	} else {
		files[out] = res.Body
		if strings.TrimSpace(res.GlobalCSS) != "" {
			files[sidePath(out, ".css")] = res.GlobalCSS
		}
		if strings.TrimSpace(res.GlobalJS) != "" {
			files[sidePath(out, ".js")] = res.GlobalJS
		}
	}
	for name, content := range files {
		if name != out {
			if err := prepareOutput(name, env, log); err != nil {
				return err
			}
		}
		if err := os.WriteFile(name, []byte(content), 0644); err != nil {
			return fmt.Errorf("unable to write output: %w", err)
		}
		if err := env.Rpt.StoreCopy("result/"+filepath.ToSlash(src.Name)+"/"+filepath.Base(name), name); err != nil {
			log.Debug("Unable to store result in report", zap.Error(err))
		}
	}

	log.Info("Compilation completed", zap.String("to", out),
		zap.Int("warnings", dispatch.Count(res.Diagnostics, common.SeverityWarning)),
		zap.Int("errors", dispatch.Count(res.Diagnostics, common.SeverityError)))
	return nil
}

func wrap(env *state.LocalEnv, src Source, res *dispatch.Result) (string, error) {
	title, err := pageTitle(src.Name, env.Cfg.Output.Shell.Title)
	if err != nil {
		env.Log.Warn("Unable to prepare page title", zap.Error(err))
	}
	return env.Shell.Wrap(shell.Page{
		Title: title,
		Lang:  env.Cfg.Output.Shell.Lang,
		Body:  res.Body,
		CSS:   res.GlobalCSS,
		JS:    res.GlobalJS,
	})
}

// prepareOutput makes sure output can be written: existing file is removed
// when overwriting is allowed, missing directories are created.
func prepareOutput(name string, env *state.LocalEnv, log *zap.Logger) error {
	if _, err := os.Stat(name); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", name)
		}
		log.Warn("Overwriting existing file", zap.String("file", name))
		return os.Remove(name)
	} else if !os.IsNotExist(err) {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(name), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}
	return nil
}
