package http

import (
	"log/slog"
	"net/http"

	"github.com/pantrystack/pantry-tracker/internal/service"
	"github.com/pantrystack/pantry-tracker/pkg/validator"
)

type createContainerRequest struct {
	ProductID int64    `json:"product_id" validate:"required,gte=1"`
	Quantity  int      `json:"quantity" validate:"required,gte=1"`
	Opened    *bool    `json:"opened"`
	Remaining *float64 `json:"remaining" validate:"omitempty,gte=0"`
}

type updateContainerRequest struct {
	ProductID *int64   `json:"product_id" validate:"omitempty,gte=1"`
	Quantity  *int     `json:"quantity" validate:"omitempty,gte=1"`
	Opened    *bool    `json:"opened"`
	Remaining *float64 `json:"remaining" validate:"omitempty,gte=0"`
}

type containerHandler struct {
	logger       *slog.Logger
	validate     validator.Validator
	containerSvc service.ContainerService
	codeSvc      service.CodeService
}

func newContainerHandler(
	logger *slog.Logger,
	validate validator.Validator,
	containerSvc service.ContainerService,
	codeSvc service.CodeService,
) *containerHandler {
	return &containerHandler{
		logger:       logger,
		validate:     validate,
		containerSvc: containerSvc,
		codeSvc:      codeSvc,
	}
}

func (h *containerHandler) list(w http.ResponseWriter, r *http.Request) {
	containers, err := h.containerSvc.ListContainers(r.Context())
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, containers)
}

func (h *containerHandler) create(w http.ResponseWriter, r *http.Request) {
	var req createContainerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	container, err := h.containerSvc.CreateContainer(r.Context(), service.CreateContainerParams{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Opened:    req.Opened,
		Remaining: req.Remaining,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusCreated, container)
}

func (h *containerHandler) get(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	container, err := h.containerSvc.GetContainer(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, container)
}

func (h *containerHandler) update(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	var req updateContainerRequest
	if err := decodeBody(r, &req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}
	if err := h.validate.Validate(req); err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	container, err := h.containerSvc.UpdateContainer(r.Context(), id, service.UpdateContainerParams{
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		Opened:    req.Opened,
		Remaining: req.Remaining,
	})
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, container)
}

func (h *containerHandler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	container, err := h.containerSvc.DeleteContainer(r.Context(), id)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	respondJSON(h.logger, w, r, http.StatusOK, container)
}

// qrcode streams the container's QR code PNG. The code service reads the
// container before encoding, so a missing container errors out before any
// body bytes are written.
func (h *containerHandler) qrcode(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(h.logger, w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := h.codeSvc.RenderContainerCode(r.Context(), id, w); err != nil {
		w.Header().Del("Content-Type")
		respondError(h.logger, w, r, err)
		return
	}
}
