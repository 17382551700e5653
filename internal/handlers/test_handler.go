package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/learnspace/content-service/internal/services"
	"github.com/learnspace/content-service/internal/utils"
	"github.com/learnspace/content-service/internal/validator"
)

type TestHandler struct {
	BaseHandler
	tests        *services.TestService
	importExport *services.ImportExportService
}

func NewTestHandler(tests *services.TestService, importExport *services.ImportExportService, logger utils.Logger) *TestHandler {
	return &TestHandler{
		BaseHandler:  NewBaseHandler(logger),
		tests:        tests,
		importExport: importExport,
	}
}

// CreateFull godoc
// @Summary Create a test with questions and options
// @Description Persists the whole aggregate atomically; either everything lands or nothing does
// @Accept json
// @Produce json
// @Success 201 {object} services.TestFullResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /tests/full [post]
func (h *TestHandler) CreateFull(c *gin.Context) {
	var req validator.TestFullCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	resp, err := h.tests.CreateFull(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.LogRequest(c, "Test aggregate created", "test_id", resp.ID, "questions", len(resp.Questions))
	c.JSON(http.StatusCreated, resp)
}

// GetFull godoc
// @Summary Read a test with questions and options
// @Produce json
// @Success 200 {object} services.TestFullResponse
// @Failure 404 {object} ErrorResponse
// @Router /tests/full/{test_id} [get]
func (h *TestHandler) GetFull(c *gin.Context) {
	id, ok := h.parseIDParam(c, "test_id")
	if !ok {
		return
	}

	resp, err := h.tests.GetFull(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrTestNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: fmt.Sprintf("test %d not found", id)})
			return
		}
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *TestHandler) Create(c *gin.Context) {
	var req validator.TestCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	test, err := h.tests.CreateTest(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, test)
}

func (h *TestHandler) Get(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	test, err := h.tests.GetTest(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) List(c *gin.Context) {
	tests, err := h.tests.ListTests(c.Request.Context())
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) ListByCategory(c *gin.Context) {
	id, ok := h.parseIDParam(c, "category_id")
	if !ok {
		return
	}

	tests, err := h.tests.ListTestsByCategory(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tests)
}

func (h *TestHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.TestUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	test, err := h.tests.UpdateTest(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, test)
}

func (h *TestHandler) Delete(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tests.DeleteTest(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ===== QUESTIONS / OPTIONS =====

func (h *TestHandler) CreateQuestion(c *gin.Context) {
	var req validator.QuestionCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	question, err := h.tests.CreateQuestion(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, question)
}

func (h *TestHandler) UpdateQuestion(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	var req validator.QuestionUpdateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	question, err := h.tests.UpdateQuestion(c.Request.Context(), id, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, question)
}

func (h *TestHandler) DeleteQuestion(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tests.DeleteQuestion(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TestHandler) CreateOption(c *gin.Context) {
	var req validator.OptionCreateRequest
	if !h.bindJSON(c, &req) {
		return
	}

	option, err := h.tests.CreateOption(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, option)
}

func (h *TestHandler) DeleteOption(c *gin.Context) {
	id, ok := h.parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tests.DeleteOption(c.Request.Context(), id); err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ===== IMPORT / EXPORT =====

// Export streams every test of a category; format=xlsx switches from JSON to
// a spreadsheet.
func (h *TestHandler) Export(c *gin.Context) {
	id, ok := h.parseIDParam(c, "category_id")
	if !ok {
		return
	}

	if c.Query("format") == "xlsx" {
		buf, err := h.importExport.ExportCategoryTestsXLSX(c.Request.Context(), id)
		if err != nil {
			h.handleServiceError(c, err)
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="tests-category-%d.xlsx"`, id))
		c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
		return
	}

	data, err := h.importExport.ExportCategoryTestsJSON(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/json", data)
}

func (h *TestHandler) Import(c *gin.Context) {
	payload, err := c.GetRawData()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "failed to read request body"})
		return
	}

	imported, err := h.importExport.ImportTests(c.Request.Context(), payload)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, imported)
}
