package controllers

import (
	"strconv"

	"grillpos/pkg/resp"
	"grillpos/services"

	"github.com/gin-gonic/gin"
)

type InventoryController struct{ Svc *services.InventoryService }

func NewInventoryController(s *services.InventoryService) *InventoryController {
	return &InventoryController{Svc: s}
}

// GET /inventory/restock
func (ic *InventoryController) Restock(c *gin.Context) {
	items, err := ic.Svc.RestockReport()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /inventory/:id/count
func (ic *InventoryController) Count(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid ingredient id")
		return
	}

	count, err := ic.Svc.CurrentCount(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	below, err := ic.Svc.IsBelowMinimum(uint(id))
	if err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "units": count, "belowMinimum": below})
}

// POST /inventory/:id/receive
func (ic *InventoryController) Receive(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid ingredient id")
		return
	}

	var body struct {
		Amount int `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	if err := ic.Svc.ReceiveDelivery(uint(id), body.Amount); err != nil {
		writeErr(c, err)
		return
	}
	resp.OK(c, gin.H{"id": id, "received": body.Amount})
}
