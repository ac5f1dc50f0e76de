// Package httpapi exposes the wearable transport over HTTP. Device events
// (transcripts, button presses, location fixes) arrive as POSTs; the display
// frames emitted while handling an event are collected and returned in the
// response body, in order.
package httpapi

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/revampedplant756/weather-glasses-app/internal/display"
	"github.com/revampedplant756/weather-glasses-app/internal/session"
)

var validate = validator.New()

// transcriptRequest is one speech-to-text result for a session.
type transcriptRequest struct {
	Text    string `json:"text" validate:"required"`
	IsFinal bool   `json:"isFinal"`
}

// buttonRequest is one hardware button event. Unknown button names are a
// no-op in the state machine, so only presence is validated here.
type buttonRequest struct {
	Name   string `json:"name" validate:"required"`
	Action string `json:"action" validate:"required"`
}

// locationRequest is one fix from the device's location feed.
type locationRequest struct {
	Lat *float64 `json:"lat" validate:"required,min=-90,max=90"`
	Lng *float64 `json:"lng" validate:"required,min=-180,max=180"`
}

// RegisterRoutes wires the HTTP handlers into the Fiber app.
func RegisterRoutes(app *fiber.App, registry *session.Registry, machine *session.Machine, log *zap.SugaredLogger) {
	v1 := app.Group("/api/v1")

	v1.Post("/sessions", func(c *fiber.Ctx) error {
		s := registry.Create()
		log.Infow("session started", "session", s.ID)
		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"sessionId": s.ID,
			"frames":    []string{display.Welcome()},
		})
	})

	v1.Delete("/sessions/:id", func(c *fiber.Ctx) error {
		registry.Remove(c.Params("id"))
		log.Infow("session ended", "session", c.Params("id"))
		return c.SendStatus(fiber.StatusNoContent)
	})

	v1.Post("/sessions/:id/transcript", func(c *fiber.Ctx) error {
		s, err := lookupSession(registry, c)
		if err != nil {
			return err
		}

		var req transcriptRequest
		if err := bind(c, &req); err != nil {
			return err
		}

		var frames []string
		machine.HandleTranscript(c.UserContext(), s, req.Text, req.IsFinal, collect(&frames))
		return c.JSON(fiber.Map{"frames": frames})
	})

	v1.Post("/sessions/:id/button", func(c *fiber.Ctx) error {
		s, err := lookupSession(registry, c)
		if err != nil {
			return err
		}

		var req buttonRequest
		if err := bind(c, &req); err != nil {
			return err
		}

		var frames []string
		machine.HandleButton(c.UserContext(), s, req.Name, req.Action, collect(&frames))
		return c.JSON(fiber.Map{"frames": frames})
	})

	v1.Post("/sessions/:id/location", func(c *fiber.Ctx) error {
		s, err := lookupSession(registry, c)
		if err != nil {
			return err
		}

		var req locationRequest
		if err := bind(c, &req); err != nil {
			return err
		}

		machine.HandleLocationFix(c.UserContext(), s, *req.Lat, *req.Lng)
		return c.SendStatus(fiber.StatusNoContent)
	})
}

func lookupSession(registry *session.Registry, c *fiber.Ctx) (*session.Session, error) {
	s, err := registry.Get(c.Params("id"))
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "unknown session")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "session lookup failed")
	}
	return s, nil
}

func bind(c *fiber.Ctx, req any) error {
	if err := c.BodyParser(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return nil
}

// collect accumulates display frames emitted during one event.
func collect(frames *[]string) session.DisplayFunc {
	return func(text string) {
		*frames = append(*frames, text)
	}
}
