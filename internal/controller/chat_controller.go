package controller

import (
	"askmedix-be/internal/dto"
	"askmedix-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// chatPage is a minimal inline chat client. The /get endpoint it posts to
// returns plain text, so there is nothing to template here.
const chatPage = `<!DOCTYPE html>
<html>
<head><title>AskMediX - Your AI Medical Assistant</title></head>
<body>
	<h1>AskMediX - Your AI Medical Assistant</h1>
	<form id="chat">
		<input type="text" name="msg" placeholder="Ask your medical question..." size="60" required>
		<button type="submit">Ask</button>
	</form>
	<pre id="answer"></pre>
	<script>
		document.getElementById("chat").addEventListener("submit", async (e) => {
			e.preventDefault();
			const body = new URLSearchParams(new FormData(e.target));
			const res = await fetch("/get", { method: "POST", body });
			document.getElementById("answer").textContent = await res.text();
		});
	</script>
</body>
</html>`

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Home(ctx *fiber.Ctx) error
	Ask(ctx *fiber.Ctx) error
}

type chatController struct {
	assistantService service.IAssistantService
}

func NewChatController(assistantService service.IAssistantService) IChatController {
	return &chatController{
		assistantService: assistantService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	r.Get("/", c.Home)
	r.Post("/get", c.Ask)
}

func (c *chatController) Home(ctx *fiber.Ctx) error {
	ctx.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return ctx.SendString(chatPage)
}

// Ask always answers 200 with a plain-text body. Pipeline failures are
// already mapped to the fallback string by the service.
func (c *chatController) Ask(ctx *fiber.Ctx) error {
	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		req.Msg = ""
	}

	answer := c.assistantService.Answer(ctx.UserContext(), req.Msg)

	ctx.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return ctx.SendString(answer)
}
