package controllers

import (
	"strconv"

	"grillpos/pkg/resp"
	"grillpos/services"
	"grillpos/ws"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	Svc *services.TransactionService
	Hub *ws.KitchenHub // nil in tests; guarded on every push
}

func NewTransactionController(s *services.TransactionService, hub *ws.KitchenHub) *TransactionController {
	return &TransactionController{Svc: s, Hub: hub}
}

type CreateTransactionReq struct {
	Lines []services.LineIn `json:"lines" binding:"required,min=1"`
}

type ReconcileReq struct {
	OldLines []services.LineIn `json:"oldLines" binding:"required"`
	NewLines []services.LineIn `json:"newLines"`
}

// POST /transactions/new
func (tc *TransactionController) Create(c *gin.Context) {
	var req CreateTransactionReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := tc.Svc.Submit(req.Lines)
	if err != nil {
		writeErr(c, err)
		return
	}

	tc.notifyKitchen()
	resp.Created(c, out)
}

// GET /transactions/:id
func (tc *TransactionController) Detail(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid transaction id")
		return
	}

	out, err := tc.Svc.Detail(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// GET /transactions/in-progress
func (tc *TransactionController) ListInProgress(c *gin.Context) {
	out, err := tc.Svc.ListInProgress()
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, out)
}

// PATCH /transactions/:id/fulfill
func (tc *TransactionController) Fulfill(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid transaction id")
		return
	}

	if err := tc.Svc.Fulfill(uint(id)); err != nil {
		writeErr(c, err)
		return
	}

	tc.notifyKitchen()
	resp.OK(c, gin.H{"id": id, "status": "fulfilled"})
}

// PATCH /transactions/:id
func (tc *TransactionController) Reconcile(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid transaction id")
		return
	}

	var req ReconcileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	charge, err := tc.Svc.Reconcile(uint(id), req.OldLines, req.NewLines)
	if err != nil {
		writeErr(c, err)
		return
	}

	tc.notifyKitchen()
	out := gin.H{"charge": charge}
	if charge < 0 {
		out = gin.H{"charge": charge, "refund": -charge}
	}
	resp.OK(c, out)
}

func (tc *TransactionController) notifyKitchen() {
	if tc.Hub != nil {
		go tc.Hub.Notify()
	}
}
