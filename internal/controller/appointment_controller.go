package controller

import (
	"askmedix-be/internal/dto"
	"askmedix-be/internal/pkg/serverutils"
	"askmedix-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAppointmentController interface {
	RegisterRoutes(r fiber.Router)
	Schedule(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
}

type appointmentController struct {
	appointmentService service.IAppointmentService
}

func NewAppointmentController(appointmentService service.IAppointmentService) IAppointmentController {
	return &appointmentController{
		appointmentService: appointmentService,
	}
}

func (c *appointmentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/appointment/v1")
	h.Post("", c.Schedule)
	h.Get("", c.List)
}

func (c *appointmentController) Schedule(ctx *fiber.Ctx) error {
	var req dto.ScheduleAppointmentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid request body"))
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	res, err := c.appointmentService.Schedule(ctx.UserContext(), &req)
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, err.Error()))
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Appointment scheduled", res))
}

func (c *appointmentController) List(ctx *fiber.Ctx) error {
	appointments, err := c.appointmentService.List(ctx.UserContext())
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(serverutils.ErrorResponse(500, err.Error()))
	}
	return ctx.JSON(serverutils.SuccessResponse("Appointments", appointments))
}
