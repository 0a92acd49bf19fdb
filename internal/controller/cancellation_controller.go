package controller

import (
	"askmedix-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

const cancelledPage = `<h2>Appointment Cancelled</h2>
<p>Your appointment has been successfully cancelled.</p>`

const alreadyCancelledPage = `<h2>Appointment Already Cancelled</h2>
<p>This appointment was cancelled earlier. No further action is needed.</p>`

const invalidTokenPage = `<h2>Invalid Cancellation Link</h2>
<p>Sorry, we couldn't find your appointment.</p>`

type ICancellationController interface {
	RegisterRoutes(r fiber.Router)
	Cancel(ctx *fiber.Ctx) error
}

type cancellationController struct {
	cancellationService service.ICancellationService
}

func NewCancellationController(cancellationService service.ICancellationService) ICancellationController {
	return &cancellationController{
		cancellationService: cancellationService,
	}
}

func (c *cancellationController) RegisterRoutes(r fiber.Router) {
	r.Get("/cancel/:token", c.Cancel)
}

func (c *cancellationController) Cancel(ctx *fiber.Ctx) error {
	token := ctx.Params("token")

	result, err := c.cancellationService.Cancel(ctx.UserContext(), token)
	if err != nil {
		return err
	}

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	switch result {
	case service.ResultCancelled:
		return ctx.SendString(cancelledPage)
	case service.ResultAlreadyCancelled:
		return ctx.SendString(alreadyCancelledPage)
	default:
		return ctx.Status(fiber.StatusNotFound).SendString(invalidTokenPage)
	}
}
