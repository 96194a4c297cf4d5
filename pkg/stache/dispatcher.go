package stache

import (
	"context"
	"fmt"

	"github.com/computerscienceiscool/stache-search/internal/errors"
	"github.com/computerscienceiscool/stache-search/pkg/config"
)

// Dispatcher runs commands by name, reports their outcome and, when an
// auditor is set, records it.
type Dispatcher struct {
	registry *Registry
	reporter Reporter
	auditor  Auditor
}

// NewDispatcher creates a dispatcher. auditor may be nil.
func NewDispatcher(registry *Registry, reporter Reporter, auditor Auditor) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		reporter: reporter,
		auditor:  auditor,
	}
}

// RunCommand looks up name and runs it. Unknown names are reported and
// nothing else happens. The returned error has already been reported; the
// caller decides whether it is fatal.
func (d *Dispatcher) RunCommand(ctx context.Context, name string, req *Request) (Result, error) {
	h, ok := d.registry.Lookup(name)
	if !ok {
		err := errors.New(errors.ErrUnknownCommand, name, "", fmt.Sprintf(config.MsgUnknownCommandFmt, name))
		d.reporter.Warn(err.Error())
		return Result{Command: name, Action: ActionSkipped}, err
	}

	result, err := h(ctx, requestOrEmpty(req))

	for _, w := range result.Warnings {
		d.reporter.Warn(w)
	}
	if err != nil {
		d.reporter.Error(err)
	} else if result.Message != "" {
		d.reporter.Info(result.Message)
	}

	d.audit(name, result, err)
	return result, err
}

func (d *Dispatcher) audit(name string, result Result, err error) {
	if d.auditor == nil {
		return
	}
	errMsg := ""
	if err != nil {
		errMsg = err.Error()
	}
	if auditErr := d.auditor.LogAuditEvent(name, string(result.Action), result.Path, err == nil, errMsg); auditErr != nil {
		d.reporter.Warn(fmt.Sprintf("failed to record audit event: %v", auditErr))
	}
}
