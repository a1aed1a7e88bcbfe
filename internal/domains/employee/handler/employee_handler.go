package handler

import (
	"net/http"
	"sort"
	"strconv"
	"strings"

	"employees-backend/internal/domains/employee"
	"employees-backend/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const (
	flashCookie     = "flash"
	flashTypeCookie = "flash_type"
)

// EmployeeHandler handles HTTP requests for the employee domain.
// The four legacy form routes (GET /, POST /store, POST /update/:id,
// POST /delete/:id) follow a mutate-then-redirect contract: a redirect to /
// means the caller should refresh its view of the list. The JSON endpoint
// under /api/v1 serves that refresh for front ends that fetch instead.
type EmployeeHandler struct {
	service employee.Service
	vocab   employee.SkillVocabulary
}

// NewEmployeeHandler creates a new employee handler instance
// Dependency injection pattern - receives service and vocabulary from container
func NewEmployeeHandler(service employee.Service, vocab employee.SkillVocabulary) *EmployeeHandler {
	return &EmployeeHandler{
		service: service,
		vocab:   vocab,
	}
}

// Index handles GET / - renders the employee table and the create/edit form
func (h *EmployeeHandler) Index(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		// Store unavailability is fatal for this request - nothing to render
		c.String(http.StatusInternalServerError, "employee store unavailable")
		return
	}

	flash, flashType := consumeFlash(c)

	c.HTML(http.StatusOK, "index.html", gin.H{
		"Employees": employees,
		"Skills":    h.vocab,
		"Flash":     flash,
		"FlashType": flashType,
	})
}

// Store handles POST /store - creates a new employee
func (h *EmployeeHandler) Store(c *gin.Context) {
	var req employee.EmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.redirectWithError(c, "Invalid request payload")
		return
	}

	if _, err := h.service.CreateEmployee(c.Request.Context(), &req); err != nil {
		h.redirectWithError(c, flashMessage(err))
		return
	}

	h.redirectWithSuccess(c, "Employee created successfully!")
}

// Update handles POST /update/:id - overwrites an existing employee's fields
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.redirectWithError(c, flashMessage(err))
		return
	}

	var req employee.EmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		h.redirectWithError(c, "Invalid request payload")
		return
	}

	if _, err := h.service.UpdateEmployee(c.Request.Context(), id, &req); err != nil {
		h.redirectWithError(c, flashMessage(err))
		return
	}

	h.redirectWithSuccess(c, "Employee updated successfully!")
}

// Delete handles POST /delete/:id - soft-deletes an employee
func (h *EmployeeHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.redirectWithError(c, flashMessage(err))
		return
	}

	if err := h.service.SoftDeleteEmployee(c.Request.Context(), id); err != nil {
		h.redirectWithError(c, flashMessage(err))
		return
	}

	h.redirectWithSuccess(c, "Employee deleted successfully!")
}

// ListEmployees handles GET /api/v1/employees - the JSON view of the active
// list, used by front ends to re-fetch after a successful mutation
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	employees, err := h.service.ListEmployees(c.Request.Context())
	if err != nil {
		statusCode, message, code := employee.GetErrorResponse(err)
		response.ErrorResponse(c, statusCode, code, message)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"employees": employees,
		"skills":    h.vocab,
	})
}

// parseID reads the :id path parameter
func parseID(c *gin.Context) (int64, error) {
	raw := c.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, employee.NewInvalidEmployeeID(raw)
	}
	return id, nil
}

// flashMessage renders a domain error as a single flash line. Validation
// errors get their field messages appended in a stable order
func flashMessage(err error) string {
	_, message, _ := employee.GetErrorResponse(err)

	fields := employee.GetErrorFields(err)
	if len(fields) == 0 {
		return message
	}

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(fields))
	for _, name := range names {
		parts = append(parts, fields[name])
	}
	return message + ": " + strings.Join(parts, "; ")
}

func (h *EmployeeHandler) redirectWithSuccess(c *gin.Context, message string) {
	setFlash(c, message, "success")
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *EmployeeHandler) redirectWithError(c *gin.Context, message string) {
	setFlash(c, message, "error")
	c.Redirect(http.StatusSeeOther, "/")
}

// setFlash stores a one-shot message for the next page render
func setFlash(c *gin.Context, message, flashType string) {
	c.SetCookie(flashCookie, message, 60, "/", "", false, true)
	c.SetCookie(flashTypeCookie, flashType, 60, "/", "", false, true)
}

// consumeFlash reads and clears the flash cookies
func consumeFlash(c *gin.Context) (message, flashType string) {
	message, err := c.Cookie(flashCookie)
	if err != nil {
		return "", ""
	}
	flashType, _ = c.Cookie(flashTypeCookie)

	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	c.SetCookie(flashTypeCookie, "", -1, "/", "", false, true)
	return message, flashType
}
