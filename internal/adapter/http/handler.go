package http

import (
	"bytes"
	"errors"
	"strconv"

	"resume-builder/internal/model"
	"resume-builder/internal/rendering"
	"resume-builder/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Handler struct {
	editor *usecase.Editor
	pages  *rendering.Renderer
	log    *zap.Logger
}

func NewHandler(e *usecase.Editor, pages *rendering.Renderer, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{editor: e, pages: pages, log: log}
}

type valueReq struct {
	Value *string `json:"value"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Index starts a new session and sends the browser to its editor.
func (h *Handler) Index(c *fiber.Ctx) error {
	snap := h.editor.Open(c.UserContext())
	return c.Redirect("/sessions/"+snap.SessionID.String(), fiber.StatusSeeOther)
}

// EditorPage renders the form next to the live preview.
func (h *Handler) EditorPage(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	snap, err := h.editor.Get(c.UserContext(), id)
	if errors.Is(err, usecase.ErrSessionNotFound) {
		// expired or closed: start over
		return c.Redirect("/", fiber.StatusSeeOther)
	}
	if err != nil {
		return h.fail(c, err)
	}
	var buf bytes.Buffer
	if err := h.pages.Page(&buf, h.pages.NewPageData(id.String(), snap.Document, snap.View)); err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (h *Handler) CreateSession(c *fiber.Ctx) error {
	snap := h.editor.Open(c.UserContext())
	return c.Status(fiber.StatusCreated).JSON(snap)
}

func (h *Handler) GetSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	snap, err := h.editor.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}

func (h *Handler) DeleteSession(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	if err := h.editor.Close(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ApplyCommand accepts a JSON edit command such as
// {"op":"update_item","list":"skills","index":0,"value":"Go"}.
func (h *Handler) ApplyCommand(c *fiber.Ctx) error {
	cmd, err := model.DecodeCommand(c.Body())
	if err != nil {
		return h.fail(c, err)
	}
	return h.apply(c, cmd)
}

func (h *Handler) SetField(c *fiber.Ctx) error {
	f, err := model.ParseField(c.Params("field"))
	if err != nil {
		return h.fail(c, err)
	}
	value, err := bodyValue(c)
	if err != nil {
		return h.fail(c, err)
	}
	return h.apply(c, model.SetField(f, value))
}

func (h *Handler) AddItem(c *fiber.Ctx) error {
	l, err := model.ParseList(c.Params("list"))
	if err != nil {
		return h.fail(c, err)
	}
	return h.apply(c, model.AddItem(l))
}

func (h *Handler) UpdateItem(c *fiber.Ctx) error {
	l, idx, err := listIndex(c)
	if err != nil {
		return h.fail(c, err)
	}
	value, err := bodyValue(c)
	if err != nil {
		return h.fail(c, err)
	}
	return h.apply(c, model.UpdateItem(l, idx, value))
}

// RemoveItem answers 200 with "changed": false when the removal is refused.
func (h *Handler) RemoveItem(c *fiber.Ctx) error {
	l, idx, err := listIndex(c)
	if err != nil {
		return h.fail(c, err)
	}
	return h.apply(c, model.RemoveItem(l, idx))
}

func (h *Handler) Preview(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	v, err := h.editor.Preview(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(v)
}

// PreviewHTML renders only the preview panel, for in-place refresh.
func (h *Handler) PreviewHTML(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	v, err := h.editor.Preview(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	var buf bytes.Buffer
	if err := h.pages.Preview(&buf, v); err != nil {
		return h.fail(c, err)
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (h *Handler) ExportPDF(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	pdf, err := h.editor.ExportPDF(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="resume.pdf"`)
	c.Type("pdf")
	return c.Send(pdf)
}

func (h *Handler) ExportCount(c *fiber.Ctx) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	n, err := h.editor.ExportCount(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"session_id": id.String(), "exports": n})
}

func (h *Handler) apply(c *fiber.Ctx, cmd model.Command) error {
	id, err := sessionID(c)
	if err != nil {
		return h.fail(c, err)
	}
	snap, err := h.editor.Apply(c.UserContext(), id, cmd)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(snap)
}

var (
	errBadSessionID = errors.New("invalid session id")
	errBadIndex     = errors.New("invalid index")
	errBadPayload   = errors.New("invalid payload")
)

func sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return uuid.Nil, errBadSessionID
	}
	return id, nil
}

func listIndex(c *fiber.Ctx) (model.List, int, error) {
	l, err := model.ParseList(c.Params("list"))
	if err != nil {
		return 0, 0, err
	}
	idx, err := strconv.Atoi(c.Params("index"))
	if err != nil {
		return 0, 0, errBadIndex
	}
	return l, idx, nil
}

func bodyValue(c *fiber.Ctx) (string, error) {
	var req valueReq
	if err := c.BodyParser(&req); err != nil || req.Value == nil {
		return "", errBadPayload
	}
	return *req.Value, nil
}

// fail maps an error to its status code and JSON body.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		status = fiber.StatusNotFound
	case errors.Is(err, model.ErrInvalidCommand),
		errors.Is(err, model.ErrUnknownField),
		errors.Is(err, model.ErrUnknownList),
		errors.Is(err, errBadSessionID),
		errors.Is(err, errBadIndex),
		errors.Is(err, errBadPayload):
		status = fiber.StatusBadRequest
	}
	if status == fiber.StatusInternalServerError {
		h.log.Error("request failed", zap.String("path", c.Path()), zap.Error(err))
	}
	return c.Status(status).JSON(errorResponse{Error: err.Error()})
}
