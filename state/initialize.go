package state

import (
	"errors"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/ianaindex"

	"chtlc/dispatch"
	"chtlc/shell"
)

func newLocalEnv() *LocalEnv {
	return &LocalEnv{start: time.Now()}
}

// Setup builds dispatcher and page shell from loaded configuration.
func (e *LocalEnv) Setup() error {
	if e.Cfg == nil {
		return errors.New("configuration is not loaded")
	}
	if e.Log == nil {
		e.Log = zap.NewNop()
	}

	opts, err := e.Cfg.Compiler.DispatchOptions()
	if err != nil {
		return err
	}
	if opts.Library != nil && e.Cfg.Compiler.Library != "" {
		e.Rpt.Store("library.jsonc", e.Cfg.Compiler.Library)
	}
	e.Dispatcher = dispatch.New(opts, e.Log)

	e.Shell = nil
	if sc := e.Cfg.Output.Shell; sc.Enable {
		if sc.TemplatePath == "" {
			e.Shell = shell.Default()
			return nil
		}
		data, err := os.ReadFile(sc.TemplatePath)
		if err != nil {
			return fmt.Errorf("unable to read page template from %q: %w", sc.TemplatePath, err)
		}
		if e.Shell, err = shell.New(string(data)); err != nil {
			return err
		}
	}
	return nil
}

// SetCodePage selects character set of input sources. Empty name means
// UTF-8.
func (e *LocalEnv) SetCodePage(name string) error {
	e.CodePage = nil
	if name == "" {
		return nil
	}
	cp, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return fmt.Errorf("unknown character set '%s': %w", name, err)
	}
	if cp == nil {
		return fmt.Errorf("character set '%s' is not supported", name)
	}
	e.CodePage = cp
	return nil
}

// Decode converts source read from disk or archive into UTF-8 using
// selected code page.
func (e *LocalEnv) Decode(data []byte) (string, error) {
	if e.CodePage == nil {
		return string(data), nil
	}
	out, err := e.CodePage.NewDecoder().Bytes(data)
	if err != nil {
		n, _ := ianaindex.IANA.Name(e.CodePage)
		return "", fmt.Errorf("unable to decode source from %s: %w", n, err)
	}
	return string(out), nil
}
