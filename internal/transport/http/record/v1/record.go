package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/you-humble/parts-inventory/internal/converter"
	"github.com/you-humble/parts-inventory/internal/entity"
	"github.com/you-humble/parts-inventory/internal/store"
)

type RecordService interface {
	List(ctx context.Context, kind entity.Kind) ([]store.Document, error)
	Get(ctx context.Context, kind entity.Kind, id string) (store.Document, error)
	Create(ctx context.Context, kind entity.Kind, values map[string]any) (string, error)
	Update(ctx context.Context, kind entity.Kind, id string, values map[string]any) (string, error)
	Delete(ctx context.Context, kind entity.Kind, id string) error
}

type handler struct {
	svc   RecordService
	kinds map[string]entity.Kind
}

// NewRecordHandler serves kinds under their lower-cased name, e.g. /mountingstyle.
func NewRecordHandler(service RecordService, kinds []entity.Kind) *handler {
	h := &handler{svc: service, kinds: make(map[string]entity.Kind, len(kinds))}
	for _, k := range kinds {
		h.kinds[strings.ToLower(string(k))] = k
	}
	return h
}

func (h *handler) Routes(r chi.Router) {
	r.Route("/{kind}", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Patch("/", methodNotAllowed("PATCH not allowed on indexes", allowIndex))
		r.Delete("/", methodNotAllowed("DELETE not allowed on indexes", allowIndex))

		r.Get("/{id}", h.get)
		r.Patch("/{id}", h.update)
		r.Delete("/{id}", h.delete)
		r.Post("/{id}", methodNotAllowed("POST not allowed on existing objects", allowItem))
	})
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	docs, err := h.svc.List(r.Context(), kind)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, r, http.StatusOK, docs)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	doc, err := h.svc.Get(r.Context(), kind, id)
	if err != nil {
		writeError(w, r, err, id)
		return
	}
	writeJSON(w, r, http.StatusOK, doc)
}

func (h *handler) create(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}

	values, err := converter.ValuesFromJSON(r.Body)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorBody(msgNotDict))
		return
	}

	id, err := h.svc.Create(r.Context(), kind, values)
	if err != nil {
		writeError(w, r, err, "")
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"created": id})
}

func (h *handler) update(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	values, err := converter.ValuesFromJSON(r.Body)
	if err != nil {
		writeJSON(w, r, http.StatusBadRequest, errorBody(msgNotDict))
		return
	}

	if _, err := h.svc.Update(r.Context(), kind, id, values); err != nil {
		writeError(w, r, err, id)
		return
	}
	writeJSON(w, r, http.StatusCreated, map[string]string{"updated": id})
}

func (h *handler) delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := h.kind(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")

	if err := h.svc.Delete(r.Context(), kind, id); err != nil {
		writeError(w, r, err, id)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handler) kind(w http.ResponseWriter, r *http.Request) (entity.Kind, bool) {
	name := chi.URLParam(r, "kind")
	kind, ok := h.kinds[strings.ToLower(name)]
	if !ok {
		writeJSON(w, r, http.StatusNotFound, errorBody("unknown kind "+name))
		return "", false
	}
	return kind, true
}
