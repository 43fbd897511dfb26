package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/yeremiapane/pos-engine/models"
	"github.com/yeremiapane/pos-engine/utils"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login -> cashier code + PIN, returns a session token
func (ac *AuthController) Login(c *gin.Context) {
	type ReqBody struct {
		Code string `json:"code" binding:"required"`
		PIN  string `json:"pin" binding:"required"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var cashier models.Cashier
	if err := ac.DB.Where("code = ?", body.Code).First(&cashier).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid cashier code or PIN"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cashier.PINHash), []byte(body.PIN)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("invalid cashier code or PIN"))
		return
	}

	token, err := utils.GenerateToken(cashier.ID, cashier.Code, cashier.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"token":   token,
		"cashier": cashier,
	})
}

// Register -> create a cashier; supervisor only
func (ac *AuthController) Register(c *gin.Context) {
	type ReqBody struct {
		Code string `json:"code" binding:"required"`
		Name string `json:"name" binding:"required"`
		PIN  string `json:"pin" binding:"required"`
		Role string `json:"role"`
	}

	var body ReqBody
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.PIN), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	role := body.Role
	if role == "" {
		role = models.RoleCashier
	}

	cashier := models.Cashier{
		Code:      body.Code,
		Name:      body.Name,
		PINHash:   string(hash),
		Role:      role,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	if err := ac.DB.Create(&cashier).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Cashier created", cashier)
}
