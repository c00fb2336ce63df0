package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/simpro-reconcile/internal/application/dto"
	"github.com/jhoicas/simpro-reconcile/internal/application/reconcile"
	"github.com/jhoicas/simpro-reconcile/internal/domain"
	"github.com/jhoicas/simpro-reconcile/pkg/logger"
)

// ReviewHandler expone el resultado conciliado en modo solo lectura.
type ReviewHandler struct {
	uc  *reconcile.QueryUseCase
	log *logger.Logger
}

// NewReviewHandler construye el handler. log nil descarta los registros de acceso.
func NewReviewHandler(uc *reconcile.QueryUseCase, log *logger.Logger) *ReviewHandler {
	if log == nil {
		log = logger.Nop()
	}
	return &ReviewHandler{uc: uc, log: log}
}

// Summary GET /api/summary
func (h *ReviewHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// ListCustomers GET /api/customers?tier=GUARDIAN&with_contracts=true&limit=20&offset=0
func (h *ReviewHandler) ListCustomers(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	f := dto.CustomerFilter{Tier: c.Query("tier"), PageRequest: page}
	if raw := c.Query("with_contracts"); raw != "" {
		f.WithContracts, err = strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "with_contracts debe ser true o false")
		}
	}
	list, err := h.uc.ListCustomers(f)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(list)
}

// GetCustomer GET /api/customers/:id
func (h *ReviewHandler) GetCustomer(c *fiber.Ctx) error {
	id := c.Params("id")
	customer, err := h.uc.GetCustomer(id)
	if err != nil {
		return writeError(c, err)
	}
	// Sin autenticación el subject queda vacío.
	h.log.Info().
		Str("revisor", GetSubject(c)).
		Str("rol", GetRole(c)).
		Str("cliente", id).
		Msg("detalle de cliente consultado")
	return c.JSON(customer)
}

// ListContracts GET /api/contracts?matched=false&limit=20&offset=0
func (h *ReviewHandler) ListContracts(c *fiber.Ctx) error {
	page, err := pageFromQuery(c)
	if err != nil {
		return badRequest(c, err.Error())
	}
	f := dto.ContractFilter{PageRequest: page}
	if raw := c.Query("matched"); raw != "" {
		matched, err := strconv.ParseBool(raw)
		if err != nil {
			return badRequest(c, "matched debe ser true o false")
		}
		f.Matched = &matched
	}
	return c.JSON(h.uc.ListContracts(f))
}

func pageFromQuery(c *fiber.Ctx) (dto.PageRequest, error) {
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil {
		return dto.PageRequest{}, errors.New("limit debe ser numérico")
	}
	offset, err := strconv.Atoi(c.Query("offset", "0"))
	if err != nil {
		return dto.PageRequest{}, errors.New("offset debe ser numérico")
	}
	return dto.PageRequest{Limit: limit, Offset: offset}, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: msg})
}

// writeError traduce errores de dominio a respuestas HTTP.
func writeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return badRequest(c, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
}
