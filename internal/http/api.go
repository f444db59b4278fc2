package http

import (
	"embed"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"users-service/internal/domain"
	"users-service/internal/service"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// Handler wires HTTP routes to the user service.
type Handler struct {
	users  service.UserService
	logger *logrus.Logger
}

func NewHandler(users service.UserService, logger *logrus.Logger) *Handler {
	return &Handler{
		users:  users,
		logger: logger,
	}
}

func (h *Handler) RegisterRoutes(router *gin.Engine) {
	router.SetHTMLTemplate(template.Must(template.ParseFS(templatesFS, "templates/*.html")))

	router.Use(RequestID())
	router.Use(RequestLogger(h.logger))

	router.GET("/ping", h.ping)
	router.POST("/users", h.createUser)
	router.GET("/users", h.listUsers)
	router.GET("/users/:id", h.getUser)
	router.GET("/", h.index)
	router.POST("/", h.index)
}

func (h *Handler) ping(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  statusSuccess,
		"message": "pong!",
	})
}

func (h *Handler) createUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "Invalid payload.")
		return
	}
	if err := validateCreateUser(req); err != nil {
		h.logger.WithField("error", err).Warn("rejected invalid user payload")
		respondFail(c, http.StatusBadRequest, "Invalid payload.")
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Username, req.Email)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"status":  statusSuccess,
			"message": fmt.Sprintf("%s was added!", user.Email),
		})
	case errors.Is(err, service.ErrEmailTaken):
		respondFail(c, http.StatusBadRequest, "Sorry. That email already exists.")
	default:
		h.logger.WithField("error", err).Error("create user failed")
		respondFail(c, http.StatusBadRequest, fmt.Sprintf("Invalid payload. %v", err))
	}
}

func (h *Handler) getUser(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondFail(c, http.StatusBadRequest, "Param id error")
		return
	}

	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		respondFail(c, http.StatusNotFound, "User does not exist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": statusSuccess,
		"data": gin.H{
			"username":   user.Username,
			"email":      user.Email,
			"created_at": user.CreatedAt,
		},
	})
}

// listUsers keeps the service's historical wire contract: 201 for a successful
// read, a fail envelope for an empty table and 401 on a store error.
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.users.List(c.Request.Context())
	if err != nil {
		h.logger.WithField("error", err).Error("list users failed")
		respondFail(c, http.StatusUnauthorized, fmt.Sprintf("requset params error %v", err))
		return
	}
	if len(users) == 0 {
		respondFail(c, http.StatusNotFound, "Invalid payload.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": statusSuccess,
		"data":   gin.H{"users": users},
	})
}

// index renders the HTML listing. A POST inserts the submitted form fields
// first; unlike the JSON endpoint it performs no duplicate pre-check, so a
// repeated email is swallowed by the unique constraint and only logged.
func (h *Handler) index(c *gin.Context) {
	if c.Request.Method == http.MethodPost {
		username := c.PostForm("username")
		email := c.PostForm("email")
		if _, err := h.users.CreateUnchecked(c.Request.Context(), username, email); err != nil {
			h.logger.WithFields(logrus.Fields{
				"email": email,
				"error": err,
			}).Warn("form insert failed")
		}
	}

	users, err := h.users.ListNewestFirst(c.Request.Context())
	if err != nil {
		h.logger.WithField("error", err).Error("render index failed")
		users = []domain.User{}
	}

	c.HTML(http.StatusOK, "index.html", gin.H{"users": users})
}

func respondFail(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"status":  statusFail,
		"message": message,
	})
}
