// Package dispatch maps tool identifiers onto their handlers and enforces
// the governance order: validate first, run second, format last. No raw
// fault crosses this boundary; every failure is one of the typed errors in
// internal/shared/errors.
package dispatch

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/khanhnv2901/iotscan/internal/assess"
	"github.com/khanhnv2901/iotscan/internal/report"
	secerrors "github.com/khanhnv2901/iotscan/internal/shared/errors"
	"github.com/khanhnv2901/iotscan/internal/validate"
)

// ToolID identifies one exposed assessment tool. The enumeration is closed;
// Dispatch rejects anything outside it.
type ToolID string

const (
	ToolComprehensiveScan    ToolID = "comprehensive_scan"
	ToolCameraAssessment     ToolID = "camera_assessment"
	ToolStreamAnalysis       ToolID = "stream_analysis"
	ToolCredentialTest       ToolID = "credential_test"
	ToolFirmwareAnalysis     ToolID = "firmware_analysis"
	ToolNetworkExposureCheck ToolID = "network_exposure_check"
	ToolProtocolTest         ToolID = "protocol_test"
	ToolHealthCheck          ToolID = "health_check"
)

// AllTools returns the enumeration in its catalog order.
func AllTools() []ToolID {
	return []ToolID{
		ToolComprehensiveScan,
		ToolCameraAssessment,
		ToolStreamAnalysis,
		ToolCredentialTest,
		ToolFirmwareAnalysis,
		ToolNetworkExposureCheck,
		ToolProtocolTest,
		ToolHealthCheck,
	}
}

// Handler produces the ordered report sections for one tool run.
type Handler func(ctx context.Context, target string, opts assess.Options) ([]report.Section, error)

// Request is one decoded tool invocation.
type Request struct {
	Tool    ToolID
	Target  string
	Options assess.Options
}

type Dispatcher struct {
	validator *validate.Validator
	handlers  map[ToolID]Handler
	notice    string
	logger    *zap.SugaredLogger
}

func New(validator *validate.Validator, assessor *assess.Assessor, notice string, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		validator: validator,
		handlers: map[ToolID]Handler{
			ToolComprehensiveScan:    assessor.ComprehensiveScan,
			ToolCameraAssessment:     assessor.CameraAssessment,
			ToolStreamAnalysis:       assessor.StreamAnalysis,
			ToolCredentialTest:       assessor.CredentialTest,
			ToolFirmwareAnalysis:     assessor.FirmwareAnalysis,
			ToolNetworkExposureCheck: assessor.NetworkExposureCheck,
			ToolProtocolTest:         assessor.ProtocolTest,
			ToolHealthCheck:          assessor.HealthCheck,
		},
		notice: notice,
		logger: logger,
	}
}

// Dispatch validates the request, runs the tool, and returns the formatted
// report with the disclosure notice prepended exactly once. Failure modes:
// *UnknownToolError, *RejectionError, *ToolExecutionError — nothing else.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) (text string, err error) {
	handler, ok := d.handlers[req.Tool]
	if !ok {
		return "", &secerrors.UnknownToolError{Tool: string(req.Tool)}
	}

	// Validation short-circuits before any external process runs; on
	// acceptance it has already appended the ledger entry.
	if err := d.validator.Screen(string(req.Tool), req.Target); err != nil {
		return "", err
	}

	// The protocol boundary must never see a raw fault from a handler.
	defer func() {
		if r := recover(); r != nil {
			d.logger.Errorw("tool handler panicked", "tool", req.Tool, "panic", r)
			text = ""
			err = &secerrors.ToolExecutionError{Tool: string(req.Tool), Cause: fmt.Errorf("panic: %v", r)}
		}
	}()

	sections, err := handler(ctx, req.Target, req.Options)
	if err != nil {
		d.logger.Errorw("tool failed", "tool", req.Tool, "target", req.Target, "error", err)
		return "", &secerrors.ToolExecutionError{Tool: string(req.Tool), Cause: err}
	}

	d.logger.Infow("tool completed", "tool", req.Tool, "target", req.Target, "sections", len(sections))
	return report.Format(d.notice, sections), nil
}
