package http_api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sfy-labs/easychain/internal/models"
	"github.com/sfy-labs/easychain/pkg/validation"
)

// ManageCompanyRequest represents the JSON body for company state actions.
// Credits is unsigned on purpose: a negative value is rejected at binding
// time and can never reach the contract call.
type ManageCompanyRequest struct {
	Action        string `json:"action" binding:"required,oneof=activate deactivate reactivate setCredits"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	Credits       uint64 `json:"credits"`
	CompanyName   string `json:"companyName"`
}

// DeleteCompanyRequest represents the JSON body for removing a mirror record
type DeleteCompanyRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
	Status        string `json:"status"`
}

// RegisterCompanyRequest represents the JSON body for a registration request
type RegisterCompanyRequest struct {
	CompanyName   string `json:"companyName" binding:"required"`
	WalletAddress string `json:"walletAddress" binding:"required"`
	ContactEmail  string `json:"contactEmail" binding:"omitempty,email"`
}

// CreateBatchRequest represents the JSON body for a new inscription
type CreateBatchRequest struct {
	WalletAddress  string `json:"walletAddress" binding:"required"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Date           string `json:"date"`
	Location       string `json:"location"`
	AttachmentHash string `json:"attachmentHash"`
}

// ResetSessionRequest represents the JSON body for dropping a wallet session
type ResetSessionRequest struct {
	WalletAddress string `json:"walletAddress" binding:"required"`
}

// AccessResponse reports the admin gate decision. Connected distinguishes
// "no wallet" from "authenticated but denied".
type AccessResponse struct {
	Connected bool   `json:"connected"`
	Allowed   bool   `json:"allowed"`
	Error     string `json:"error,omitempty"`
}

// PendingCompaniesResponse is the combined directory payload
type PendingCompaniesResponse struct {
	Pending []*models.Company `json:"pending"`
	Active  []*models.Company `json:"active"`
}

// BatchListResponse carries the batch view and its loading flag
type BatchListResponse struct {
	Batches []*models.Batch `json:"batches"`
	Loading bool            `json:"loading"`
}

// adminAccess is a handler for the /api/v1/admin/access endpoint.
// Fails closed: any chain read error denies access.
func (s *HTTPServer) adminAccess(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusOK, AccessResponse{Connected: false, Allowed: false})
		return
	}

	allowed, err := s.dashboard.CheckAdminAccess(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusOK, AccessResponse{Connected: true, Allowed: false, Error: "failed to verify permissions"})
		return
	}

	c.JSON(http.StatusOK, AccessResponse{Connected: true, Allowed: allowed})
}

// getPendingCompanies is a handler for the /api/get-pending-companies endpoint.
func (s *HTTPServer) getPendingCompanies(c *gin.Context) {
	pending, active, err := s.dashboard.ListCompanies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load companies"})
		return
	}

	if pending == nil {
		pending = []*models.Company{}
	}
	if active == nil {
		active = []*models.Company{}
	}
	c.JSON(http.StatusOK, PendingCompaniesResponse{Pending: pending, Active: active})
}

// companies is a handler for the /api/v1/companies endpoint. It returns the
// merged directory filtered by status and name substring.
func (s *HTTPServer) companies(c *gin.Context) {
	pending, active, err := s.dashboard.ListCompanies(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load companies"})
		return
	}

	merged := models.MergeCompanies(pending, active)
	filtered := models.FilterCompanies(merged, c.Query("search"), c.DefaultQuery("status", models.FilterAll))

	c.JSON(http.StatusOK, gin.H{"companies": filtered})
}

// registerCompany is a handler for the /api/register-company endpoint.
func (s *HTTPServer) registerCompany(c *gin.Context) {
	var req RegisterCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	company, err := s.dashboard.RegisterCompany(c.Request.Context(), req.CompanyName, req.WalletAddress, req.ContactEmail)
	if err != nil {
		s.logger.Error("Failed to register company", "error", err, "wallet", req.WalletAddress)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"company": company,
	})
}

// activateCompany is a handler for the /api/activate-company endpoint.
// It dispatches the status-gated admin actions; each one performs the
// on-chain call first and mirrors the result only after confirmation.
func (s *HTTPServer) activateCompany(c *gin.Context) {
	var req ManageCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := validation.ValidateAddress(req.WalletAddress); err != nil {
		s.logger.Debug("Invalid wallet address", "error", err, "address", req.WalletAddress)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid wallet address: " + err.Error(),
		})
		return
	}

	ctx := c.Request.Context()
	var err error
	switch req.Action {
	case "activate":
		err = s.dashboard.ActivateCompany(ctx, req.WalletAddress)
	case "deactivate":
		err = s.dashboard.DeactivateCompany(ctx, req.WalletAddress)
	case "reactivate":
		err = s.dashboard.ReactivateCompany(ctx, req.WalletAddress)
	case "setCredits":
		err = s.dashboard.SetCompanyCredits(ctx, req.WalletAddress, req.Credits)
	}

	if err != nil {
		s.logger.Error("Failed to manage company", "action", req.Action, "error", err, "wallet", req.WalletAddress)
		status := http.StatusInternalServerError
		if strings.Contains(err.Error(), "record not found") {
			status = http.StatusNotFound
		}
		c.JSON(status, gin.H{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	s.logger.Info("Company action completed", "action", req.Action, "wallet", req.WalletAddress)
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Action " + req.Action + " completed",
	})
}

// deleteCompany is a handler for the /api/delete-company endpoint.
// Off-chain only: it removes the mirror record and touches nothing on-chain.
func (s *HTTPServer) deleteCompany(c *gin.Context) {
	var req DeleteCompanyRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	if err := s.dashboard.DeleteCompany(c.Request.Context(), req.WalletAddress); err != nil {
		s.logger.Error("Failed to delete company", "error", err, "wallet", req.WalletAddress)
		if strings.Contains(err.Error(), "record not found") {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Company not found",
			})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{
				"success": false,
				"error":   err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Company removed from the list",
	})
}

// contributor is a handler for the /api/v1/contributor endpoint.
func (s *HTTPServer) contributor(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	info, err := s.dashboard.GetContributor(c.Request.Context(), address)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get contributor info"})
		return
	}

	c.JSON(http.StatusOK, info)
}

// batches is a handler for the /api/v1/batches endpoint. By default it
// refreshes the view from the chain; with refresh=false it serves the
// current view and its loading flag.
func (s *HTTPServer) batches(c *gin.Context) {
	address := c.Query("address")
	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "address is required"})
		return
	}

	if c.DefaultQuery("refresh", "true") == "true" {
		if _, err := s.dashboard.SyncBatches(c.Request.Context(), address); err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}
	}

	view, loading := s.dashboard.Batches(address)
	filtered := models.FilterBatches(view,
		c.Query("name"),
		c.Query("location"),
		c.DefaultQuery("status", models.FilterAll),
	)
	if filtered == nil {
		filtered = []*models.Batch{}
	}

	c.JSON(http.StatusOK, BatchListResponse{Batches: filtered, Loading: loading})
}

// createBatch is a handler for the /api/v1/batches endpoint.
func (s *HTTPServer) createBatch(c *gin.Context) {
	var req CreateBatchRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		s.logger.Debug("Invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	form := models.BatchForm{
		Name:           req.Name,
		Description:    req.Description,
		Date:           req.Date,
		Location:       req.Location,
		AttachmentHash: req.AttachmentHash,
	}

	err := s.dashboard.CreateBatch(c.Request.Context(), req.WalletAddress, form)

	var refreshErr *models.RefreshError
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Inscription created on the blockchain",
		})
	case errors.Is(err, models.ErrNameRequired):
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	case errors.As(err, &refreshErr):
		// The write is confirmed; only the local view is stale.
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"warning": refreshErr.Error(),
		})
	default:
		s.logger.Error("Failed to create batch", "error", err, "wallet", req.WalletAddress)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   err.Error(),
		})
	}
}

// resetSession is a handler for the /api/v1/session/reset endpoint.
func (s *HTTPServer) resetSession(c *gin.Context) {
	var req ResetSessionRequest

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"error":   "Invalid request body: " + err.Error(),
		})
		return
	}

	s.dashboard.ResetSession(req.WalletAddress)
	c.JSON(http.StatusOK, gin.H{"success": true})
}
