package http

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"bursary-portal/internal/adapter/middleware"
	domain "bursary-portal/internal/domain/application"
	"bursary-portal/internal/domain/document"
	"bursary-portal/internal/usecase/application"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

const defaultMaxUpload = 10 << 20

type ApplicationHandler struct {
	uc        *application.Usecase
	maxUpload int64
	log       *zap.Logger
}

// NewApplicationHandler caps whole submission bodies at maxUpload bytes; zero means 10 MiB.
func NewApplicationHandler(uc *application.Usecase, maxUpload int64, log *zap.Logger) *ApplicationHandler {
	if maxUpload <= 0 {
		maxUpload = defaultMaxUpload
	}
	return &ApplicationHandler{uc: uc, maxUpload: maxUpload, log: orNop(log)}
}

type applicationReq struct {
	ApplicationID string `param:"application_id" validate:"required,hex32"`
}

// Submit accepts a multipart form: text inputs as values, documents as file parts
// named after their field.
func (h *ApplicationHandler) Submit(c echo.Context) error {
	req := c.Request()
	if req.ContentLength > h.maxUpload {
		return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "submission too large"})
	}
	req.Body = http.MaxBytesReader(c.Response(), req.Body, h.maxUpload)

	sub, err := h.readSubmission(req)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "submission too large"})
		}
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid multipart form"})
	}

	dto, err := h.uc.Submit(req.Context(), middleware.PrincipalFrom(c), sub)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *ApplicationHandler) readSubmission(req *http.Request) (application.Submission, error) {
	sub := application.Submission{Fields: map[string]string{}, Files: map[string]document.File{}}
	if err := req.ParseMultipartForm(h.maxUpload); err != nil {
		return sub, err
	}
	for k, v := range req.MultipartForm.Value {
		if len(v) > 0 {
			sub.Fields[k] = v[0]
		}
	}
	for _, field := range domain.DocumentFields {
		headers := req.MultipartForm.File[field]
		if len(headers) == 0 {
			continue
		}
		f, err := readPart(headers[0])
		if err != nil {
			return sub, err
		}
		sub.Files[field] = f
	}
	return sub, nil
}

func readPart(fh *multipart.FileHeader) (document.File, error) {
	src, err := fh.Open()
	if err != nil {
		return document.File{}, err
	}
	defer src.Close()
	data, err := io.ReadAll(src)
	if err != nil {
		return document.File{}, err
	}
	ct := fh.Header.Get(echo.HeaderContentType)
	if ct == "" {
		ct = http.DetectContentType(data)
	}
	return document.File{Filename: fh.Filename, ContentType: ct, Data: data}, nil
}

// List is the student dashboard and the reviewer queue: same route, scoped by role.
func (h *ApplicationHandler) List(c echo.Context) error {
	out, err := h.uc.List(c.Request().Context(), middleware.PrincipalFrom(c))
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ApplicationHandler) Get(c echo.Context) error {
	var req applicationReq
	if ok, err := decode(c, &req); !ok {
		return err
	}
	app, err := h.uc.Get(c.Request().Context(), middleware.PrincipalFrom(c), req.ApplicationID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(http.StatusOK, app)
}

// Fieldset reports which conditional inputs are live for a family status and disability answer.
func (h *ApplicationHandler) Fieldset(c echo.Context) error {
	fs := h.uc.Fieldset(strings.TrimSpace(c.QueryParam("family_status")), c.QueryParam("disability"))
	return c.JSON(http.StatusOK, fs)
}
