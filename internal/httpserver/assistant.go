package httpserver

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/vape_shop/internal/assistant"
	"github.com/Skotchmaster/vape_shop/internal/transport"
	"github.com/Skotchmaster/vape_shop/pkg/logging"
)

type AssistantHTTP struct {
	Responder assistant.Responder
}

func (h *AssistantHTTP) Chat(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "assistant.chat")

	var req transport.ChatRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("chat_error", "status", 400, "reason", "invalid body", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	reply, err := h.Responder.Respond(ctx, req.Message)
	if err != nil {
		if errors.Is(err, assistant.ErrEmptyMessage) {
			l.Warn("chat_error", "status", 400, "reason", "empty message")
			return echo.NewHTTPError(http.StatusBadRequest, "message is required")
		}
		l.Error("chat_error", "status", 500, "reason", "responder failed", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, assistant.FailureReply)
	}

	return c.JSON(http.StatusOK, transport.ChatResponse{Response: reply})
}
