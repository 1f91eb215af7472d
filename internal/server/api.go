package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"

	"go.uber.org/zap"

	"github.com/iwvelando/accounting-tutor/internal/formula"
	"github.com/iwvelando/accounting-tutor/internal/navigation"
	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/output"
)

type moduleDescriptor struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Icon        string              `json:"icon"`
	Description string              `json:"description"`
	SubModes    []subModeDescriptor `json:"subModes"`
}

type subModeDescriptor struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Fields      []topic.Field `json:"fields"`
}

type moduleDetail struct {
	moduleDescriptor
	Reference topic.Reference `json:"reference"`
}

type evaluateRequest struct {
	Inputs map[string]any `json:"inputs"`
}

type exportResponse struct {
	ResultYAML string `json:"resultYaml"`
}

func describe(m topic.Module) moduleDescriptor {
	d := moduleDescriptor{ID: m.ID, Name: m.Name, Icon: m.Icon, Description: m.Description}
	for _, s := range m.SubModes {
		d.SubModes = append(d.SubModes, subModeDescriptor{ID: s.ID, Name: s.Name, Description: s.Description, Fields: s.Fields})
	}
	return d
}

func (h *handler) handleModules(w http.ResponseWriter, r *http.Request) {
	modules := h.catalog.Modules()
	list := make([]moduleDescriptor, 0, len(modules))
	for _, m := range modules {
		list = append(list, describe(m))
	}
	h.writeJSON(w, http.StatusOK, list)
}

func (h *handler) handleModule(w http.ResponseWriter, r *http.Request) {
	m, ok := h.catalog.Module(r.PathValue("module"))
	if !ok {
		h.respondErrorWithOp(w, r, http.StatusNotFound,
			fmt.Sprintf("%v: %q", navigation.ErrUnknownModule, r.PathValue("module")), "server.handleModule")
		return
	}
	h.writeJSON(w, http.StatusOK, moduleDetail{moduleDescriptor: describe(m), Reference: m.Reference})
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleEvaluate"
	report, ok := h.evaluate(w, r, op)
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, report)
}

func (h *handler) handleExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleExport"
	report, ok := h.evaluate(w, r, op)
	if !ok {
		return
	}

	doc, err := output.YAMLFormat(report)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusInternalServerError, err.Error(), op)
		return
	}
	h.writeJSON(w, http.StatusOK, exportResponse{ResultYAML: doc})
}

// evaluate resolves the addressed sub-mode, runs it against the request body
// and builds the report. It writes the error response itself and returns false
// when the request cannot be served.
func (h *handler) evaluate(w http.ResponseWriter, r *http.Request, op string) (output.Report, bool) {
	state, err := h.selector.Resolve(r.PathValue("module"), r.PathValue("mode"), string(navigation.ViewSimulator))
	if err != nil {
		h.respondErrorWithOp(w, r, statusForNavigation(err), err.Error(), op)
		return output.Report{}, false
	}
	m, sub, err := h.selector.Module(state)
	if err != nil {
		h.respondErrorWithOp(w, r, statusForNavigation(err), err.Error(), op)
		return output.Report{}, false
	}

	var req evaluateRequest
	if status, err := h.decodeBody(w, r, &req); err != nil {
		h.respondErrorWithOp(w, r, status, err.Error(), op)
		return output.Report{}, false
	}
	in, err := rawInputs(req.Inputs)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return output.Report{}, false
	}

	report := output.Evaluate(m, sub, in)
	nonFinite := report.NonFinite()
	h.metrics.RecordEvaluation(m.ID, sub.ID, nonFinite)
	h.logger.Debug("calculator evaluated",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.String("module", m.ID),
		zap.String("mode", sub.ID),
		zap.Int("non_finite", nonFinite),
	)
	return report, true
}

// rawInputs converts decoded JSON values to the raw text a form field would
// hold. Numbers keep their literal spelling and null reads as empty.
func rawInputs(values map[string]any) (formula.Inputs, error) {
	in := make(formula.Inputs, len(values))
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		switch v := values[name].(type) {
		case nil:
			in[name] = ""
		case string:
			in[name] = v
		case json.Number:
			in[name] = v.String()
		default:
			return nil, fmt.Errorf("input %q must be a string or a number", name)
		}
	}
	return in, nil
}

func statusForNavigation(err error) int {
	switch {
	case errors.Is(err, navigation.ErrUnknownModule), errors.Is(err, navigation.ErrUnknownSubMode):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}
