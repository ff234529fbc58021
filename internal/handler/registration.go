package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/agroferia/agroferia-backend/internal/model"
	"github.com/agroferia/agroferia-backend/internal/normalize"
	"github.com/agroferia/agroferia-backend/internal/queue"
	"github.com/agroferia/agroferia-backend/internal/repository"
	queue_publisher "github.com/agroferia/agroferia-backend/internal/service"
	"github.com/agroferia/agroferia-backend/internal/validate"
)

// RegistrationHandler serves the registration endpoints, including the
// coordinator-side approval flow.
type RegistrationHandler struct {
	Registrations *repository.RegistrationRepo
}

func NewRegistrationHandler(r *repository.RegistrationRepo) *RegistrationHandler {
	return &RegistrationHandler{Registrations: r}
}

var registrationRules = []validate.Rule{
	{Field: "fair_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
	{Field: "producer_id", Required: true, Kind: validate.Number, HasRange: true, Min: 1, Max: 1e12},
	{Field: "products_to_sell", Required: true, Kind: validate.List, MaxLen: 50},
	{Field: "estimated_quantity", Kind: validate.Number, HasRange: true, Min: 0, Max: 1e9},
}

// List handles GET /v1/registrations with optional ?fair_id= and
// ?producer_id= filters.
func (h *RegistrationHandler) List(c echo.Context) error {
	fairID, err := queryID(c, "fair_id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "fair_id inválido")
	}
	producerID, err := queryID(c, "producer_id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "producer_id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	items, err := h.Registrations.List(ctx, fairID, producerID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "error al consultar inscripciones")
	}
	return respond(c, http.StatusOK, "inscripciones", items)
}

// Get handles GET /v1/registrations/:id.
func (h *RegistrationHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	reg, err := h.Registrations.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "inscripción no encontrada")
		}
		return fail(c, http.StatusInternalServerError, "error al consultar la inscripción")
	}
	return respond(c, http.StatusOK, "inscripción", reg)
}

// Create handles POST /v1/registrations.  A second registration for the
// same (producer, fair) pair is rejected through the unique constraint.
func (h *RegistrationHandler) Create(c echo.Context) error {
	raw, err := bindPayload(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}
	p := normalize.Apply(normalize.RegistrationFields, raw)
	if errs := validate.Check(registrationRules, p); len(errs) > 0 {
		return failValidation(c, errs)
	}

	reg := model.Registration{
		FairID:            normalize.Uint(p, "fair_id"),
		ProducerID:        normalize.Uint(p, "producer_id"),
		ProductsToSell:    normalize.List(p, "products_to_sell"),
		EstimatedQuantity: normalize.Float(p, "estimated_quantity"),
		Status:            normalize.Str(p, "status"),
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	if err := h.Registrations.Create(ctx, &reg); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return fail(c, http.StatusBadRequest, "el productor ya está inscrito en esta feria")
		}
		return fail(c, http.StatusInternalServerError, "no se pudo crear la inscripción")
	}
	return respond(c, http.StatusCreated, "inscripción creada", reg)
}

// UpdateStatus handles PUT /v1/registrations/:id/status (admin or
// coordinator).  Approval assigns the spot, bumps the fair's capacity
// counter inside one transaction and publishes a registration.approved
// event; rejection just flips the status.
func (h *RegistrationHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "id inválido")
	}
	var body struct {
		Status       string `json:"status"`
		AssignedSpot string `json:"assignedSpot"`
	}
	if err := c.Bind(&body); err != nil {
		return fail(c, http.StatusBadRequest, "cuerpo de solicitud inválido")
	}

	ctx, cancel := dbCtx(c)
	defer cancel()

	switch strings.ToLower(strings.TrimSpace(body.Status)) {
	case model.RegistrationApproved:
		spot := strings.TrimSpace(body.AssignedSpot)
		if spot == "" {
			return failValidation(c, map[string]string{"assignedSpot": "es obligatorio"})
		}
		info, err := h.Registrations.Approve(ctx, id, spot)
		if err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return fail(c, http.StatusNotFound, "inscripción no encontrada")
			case errors.Is(err, repository.ErrAlreadyDecided):
				return fail(c, http.StatusBadRequest, "la inscripción ya fue procesada")
			case errors.Is(err, repository.ErrFairFull):
				return fail(c, http.StatusBadRequest, "la feria no tiene cupos disponibles")
			}
			return fail(c, http.StatusInternalServerError, "no se pudo aprobar la inscripción")
		}

		// The approval already committed; a broker outage must not fail
		// the request.
		_ = queue_publisher.PublishRegistrationApproved(c.Request().Context(), queue.RegistrationApprovedEvent{
			RegistrationID: info.Registration.ID,
			FairID:         info.Registration.FairID,
			FairName:       info.FairName,
			ProducerID:     info.Registration.ProducerID,
			ProducerName:   info.ProducerName,
			AssignedSpot:   spot,
			Products:       info.Registration.ProductsToSell,
			ApprovedAt:     time.Now().UTC().Format(time.RFC3339),
		})
		return respond(c, http.StatusOK, "inscripción aprobada", info.Registration)

	case model.RegistrationRejected:
		if err := h.Registrations.Reject(ctx, id); err != nil {
			switch {
			case errors.Is(err, repository.ErrNotFound):
				return fail(c, http.StatusNotFound, "inscripción no encontrada")
			case errors.Is(err, repository.ErrAlreadyDecided):
				return fail(c, http.StatusBadRequest, "la inscripción ya fue procesada")
			}
			return fail(c, http.StatusInternalServerError, "no se pudo rechazar la inscripción")
		}
		return respond(c, http.StatusOK, "inscripción rechazada", echo.Map{"id": id, "status": model.RegistrationRejected})

	default:
		return failValidation(c, map[string]string{"status": "valor no permitido"})
	}
}

// queryID parses an optional numeric query parameter; empty means 0.
func queryID(c echo.Context, name string) (uint64, error) {
	q := strings.TrimSpace(c.QueryParam(name))
	if q == "" {
		return 0, nil
	}
	return strconv.ParseUint(q, 10, 64)
}
