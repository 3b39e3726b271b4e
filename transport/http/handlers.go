package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	actioncodes "github.com/actioncodesorg/actioncodes"
	"github.com/actioncodesorg/actioncodes/core"
	"github.com/actioncodesorg/actioncodes/service"
)

// Handlers exposes the protocol surface over HTTP. This is reference host
// wiring: relayer deployments typically put their own API in front of the
// library instead.
type Handlers struct {
	protocol *actioncodes.Protocol
}

// NewHandlers creates handlers over a protocol instance.
func NewHandlers(protocol *actioncodes.Protocol) *Handlers {
	return &Handlers{protocol: protocol}
}

// Generate handles code generation requests.
func (h *Handlers) Generate(c *gin.Context) {
	var req struct {
		Pubkey string     `json:"pubkey" binding:"required"`
		Chain  core.Chain `json:"chain" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if !req.Chain.Supported() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported chain"})
		return
	}

	code := h.protocol.GenerateCode(req.Pubkey, req.Chain)
	c.JSON(http.StatusOK, code)
}

// Resolve handles resolution requests.
func (h *Handlers) Resolve(c *gin.Context) {
	var req service.ResolveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	updated, err := h.protocol.Resolve(c.Request.Context(), req)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error(), "code": updated})
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Status reports the effective status of a presented code.
func (h *Handlers) Status(c *gin.Context) {
	var code core.ActionCode
	if err := c.ShouldBindJSON(&code); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": h.protocol.Status(&code)})
}

// statusFor maps protocol errors to HTTP statuses.
func statusFor(err error) int {
	switch {
	case errors.Is(err, core.ErrCodeExpired):
		return http.StatusGone
	case errors.Is(err, core.ErrSignatureInvalid),
		errors.Is(err, core.ErrCertificateInvalid),
		errors.Is(err, core.ErrCertificateExpired):
		return http.StatusUnauthorized
	case errors.Is(err, core.ErrScopeViolation):
		return http.StatusForbidden
	case errors.Is(err, core.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, core.ErrUnknownMode),
		errors.Is(err, core.ErrMissingProof),
		errors.Is(err, core.ErrMessageMismatch),
		errors.Is(err, core.ErrInvalidCode),
		errors.Is(err, core.ErrUnsupportedChain):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
