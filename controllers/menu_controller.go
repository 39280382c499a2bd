package controllers

import (
	"strconv"
	"time"

	"grillpos/pkg/resp"
	"grillpos/repository"

	"github.com/gin-gonic/gin"
)

type MenuController struct{ Repo *repository.MenuRepository }

func NewMenuController(r *repository.MenuRepository) *MenuController {
	return &MenuController{Repo: r}
}

// GET /menuitems serves the POS grid; seasonal items outside their window are
// hidden.
func (mc *MenuController) List(c *gin.Context) {
	items, err := mc.Repo.ListAvailable(time.Now())
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// GET /menuitems/:id/ingredients serves recipe rows for the customize modal.
func (mc *MenuController) Ingredients(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		resp.BadRequest(c, "invalid menu item id")
		return
	}

	if _, err := mc.Repo.GetMenuBasics(uint(id)); err != nil {
		writeErr(c, err)
		return
	}

	rows, err := mc.Repo.GetRecipeRows(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, rows)
}
