package printing

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

// ErrFileNotFound means the document to print does not exist. It is the only
// dispatch failure that reaches the caller; everything past the existence
// check is best effort.
var ErrFileNotFound = errors.New("file not found for printing")

const dispatchTimeout = 30 * time.Second

// Backend is one way of handing a file to the host print subsystem.
type Backend interface {
	Name() string
	Print(ctx context.Context, path string) error
}

// ProbeBackends picks the primary and fallback print mechanisms for this host
// once at startup. On Windows the file-type association handles the document;
// elsewhere CUPS lp is used when present, otherwise printing is a logged no-op.
func ProbeBackends() (primary, fallback Backend) {
	if runtime.GOOS == "windows" {
		return shellPrintBackend{}, explicitPrinterBackend{}
	}
	if bin, err := exec.LookPath("lp"); err == nil {
		return lpBackend{binary: bin}, nil
	}
	return unsupportedBackend{}, nil
}

// shellPrintBackend asks Windows to print via the file-type association.
type shellPrintBackend struct{}

func (shellPrintBackend) Name() string { return "native-association" }

func (shellPrintBackend) Print(ctx context.Context, path string) error {
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command",
		fmt.Sprintf("Start-Process -FilePath %q -Verb Print -WindowStyle Hidden", path))
	return runPrintCommand(cmd)
}

// explicitPrinterBackend resolves the system default printer and prints
// against it directly.
type explicitPrinterBackend struct{}

func (explicitPrinterBackend) Name() string { return "explicit-printer" }

func (explicitPrinterBackend) Print(ctx context.Context, path string) error {
	script := fmt.Sprintf(
		`$printer = (Get-CimInstance -ClassName Win32_Printer -Filter "Default=TRUE").Name; `+
			`if (-not $printer) { throw "no default printer" }; `+
			`Start-Process -FilePath %q -Verb PrintTo -ArgumentList $printer -Wait`, path)
	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", script)
	return runPrintCommand(cmd)
}

// lpBackend submits the file to the default CUPS destination.
type lpBackend struct {
	binary string
}

func (b lpBackend) Name() string { return "cups-lp" }

func (b lpBackend) Print(ctx context.Context, path string) error {
	return runPrintCommand(exec.CommandContext(ctx, b.binary, "--", path))
}

// unsupportedBackend reports that this host cannot print and succeeds anyway.
type unsupportedBackend struct{}

func (unsupportedBackend) Name() string { return "unsupported" }

func (unsupportedBackend) Print(ctx context.Context, path string) error {
	log.Printf("Printing is not supported on %s; skipping %s", runtime.GOOS, path)
	return nil
}

func runPrintCommand(cmd *exec.Cmd) error {
	out, err := cmd.CombinedOutput()
	if err != nil {
		if msg := strings.TrimSpace(string(out)); msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// FailureHook receives print failures that Dispatch swallows, so operators can
// still observe them.
type FailureHook func(path string, err error)

// Dispatcher sends rendered documents to the printer, fire-and-forget: once
// the file is known to exist the caller always sees success, and any backend
// failure is logged and reported through the hook instead.
type Dispatcher struct {
	primary   Backend
	fallback  Backend
	timeout   time.Duration
	onFailure FailureHook
}

func NewDispatcher(primary, fallback Backend, onFailure FailureHook) *Dispatcher {
	return &Dispatcher{
		primary:   primary,
		fallback:  fallback,
		timeout:   dispatchTimeout,
		onFailure: onFailure,
	}
}

func (d *Dispatcher) Dispatch(ctx context.Context, path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	err := d.primary.Print(ctx, path)
	if err == nil {
		return nil
	}
	log.Printf("Warning: %s print failed for %s: %v", d.primary.Name(), path, err)

	if d.fallback != nil {
		fbErr := d.fallback.Print(ctx, path)
		if fbErr == nil {
			return nil
		}
		log.Printf("Warning: %s print failed for %s: %v", d.fallback.Name(), path, fbErr)
		err = fbErr
	}

	if d.onFailure != nil {
		d.onFailure(path, err)
	}
	return nil
}
