package ws

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	wsclient "police-hr-backend/lib/ws/client"
	connectionhub "police-hr-backend/lib/ws/hub/connection-hub"
	"police-hr-backend/middleware"
)

func InitWs(app *fiber.App) {
	app.Use("", func(ctx *fiber.Ctx) error {
		ctx.Locals("userID", middleware.GetUserID(ctx))
		ctx.Locals("tenantID", middleware.GetTenantID(ctx))
		return ctx.Next()
	})
	app.Get("/", websocket.New(eventsHandler))
}

// @Summary События по дисциплинарным делам
// @Tags Websocket События
// @Description События по дисциплинарным делам подразделения
// @Param   Authorization		header		string		true		"Authorization token"
// @Success 200 {object} wsmodels.ServerMessage
// @Failure 400
// @Failure 403
// @Failure 500
// @router /ws [get]
func eventsHandler(c *websocket.Conn) {
	userID := c.Locals("userID").(string)
	tenantID := c.Locals("tenantID").(string)
	client := wsclient.NewClient(userID, c)
	connectionhub.Instance.AddClient(userID, tenantID, c)
	defer func() {
		connectionhub.Instance.DeleteClient(userID)
	}()
	client.Dispatch()
}
