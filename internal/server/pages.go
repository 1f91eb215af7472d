package server

import (
	"bytes"
	"html/template"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/iwvelando/accounting-tutor/internal/formula"
	"github.com/iwvelando/accounting-tutor/internal/navigation"
	"github.com/iwvelando/accounting-tutor/internal/topic"
	"github.com/iwvelando/accounting-tutor/pkg/format"
	"github.com/iwvelando/accounting-tutor/pkg/output"
)

var templateFuncs = template.FuncMap{
	"amount": func(o output.Output) string {
		if o.Money && o.Value != nil {
			return format.Currency(*o.Value)
		}
		return o.Display
	},
	"moduleURL": func(module, mode string, view navigation.View) string {
		q := url.Values{}
		if mode != "" {
			q.Set("mode", mode)
		}
		if view != "" {
			q.Set("view", string(view))
		}
		u := "/modules/" + url.PathEscape(module)
		if len(q) > 0 {
			u += "?" + q.Encode()
		}
		return u
	},
}

type pageData struct {
	Version string
	Modules []topic.Module
	State   navigation.State
	Module  topic.Module
	SubMode topic.SubMode
	Inputs  formula.Inputs
	Report  *output.Report
}

func (h *handler) handleLanding(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "landing.html", pageData{
		Version: h.version,
		Modules: h.catalog.Modules(),
		State:   h.selector.Initial(),
	}, "server.handleLanding")
}

// handleModulePage renders a module in the view and sub-mode named by the
// query string. In the simulator view, any submitted field values are
// evaluated and shown with the form.
func (h *handler) handleModulePage(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleModulePage"
	query := r.URL.Query()

	state, err := h.selector.Resolve(r.PathValue("module"), query.Get("mode"), query.Get("view"))
	if err != nil {
		http.Error(w, err.Error(), statusForNavigation(err))
		return
	}
	m, sub, err := h.selector.Module(state)
	if err != nil {
		http.Error(w, err.Error(), statusForNavigation(err))
		return
	}

	data := pageData{
		Version: h.version,
		Modules: h.catalog.Modules(),
		State:   state,
		Module:  m,
		SubMode: sub,
		Inputs:  formula.Inputs{},
	}

	if state.View == navigation.ViewSimulator {
		submitted := false
		for _, f := range sub.Fields {
			if values, ok := query[f.Name]; ok && len(values) > 0 {
				data.Inputs[f.Name] = values[0]
				submitted = true
			}
		}
		if submitted {
			report := output.Evaluate(m, sub, data.Inputs)
			h.metrics.RecordEvaluation(m.ID, sub.ID, report.NonFinite())
			data.Report = &report
		}
	}

	h.render(w, r, "module.html", data, op)
}

func (h *handler) render(w http.ResponseWriter, r *http.Request, name string, data pageData, op string) {
	var buf bytes.Buffer
	if err := h.templates.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("failed to render page",
			zap.String("op", op),
			zap.String("request_id", requestID(r)),
			zap.String("template", name),
			zap.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
