package controllers

import (
	"grillpos/pkg/resp"
	"grillpos/services"
	"grillpos/utils"

	"github.com/gin-gonic/gin"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController {
	return &AuthController{Svc: s}
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	token, emp, err := a.Svc.Login(req.Email, req.Password)
	if err != nil {
		resp.Unauthorized(c, err.Error())
		return
	}

	resp.OK(c, gin.H{
		"token": token,
		"employee": gin.H{
			"id": emp.ID, "email": emp.Email,
			"firstName": emp.FirstName, "lastName": emp.LastName,
			"role": emp.Role,
		},
	})
}

// GET /auth/me
func (a *AuthController) Me(c *gin.Context) {
	emp, err := a.Svc.GetProfile(utils.CurrentEmployeeID(c))
	if err != nil {
		resp.NotFound(c, "employee not found")
		return
	}
	resp.OK(c, emp)
}
