package controllers

import (
	"errors"
	"net/http"

	"github.com/freshpress/freshpress/app/services"
	"github.com/freshpress/freshpress/pkg/bind"
	"github.com/freshpress/freshpress/pkg/logger"
	"github.com/freshpress/freshpress/pkg/response"
)

type AuthController struct {
	service *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{service: services.NewAuthService()}
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.service.Login(req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			response.Error(w, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		logger.WithCtx(r.Context()).Error("login failed", "error", err)
		response.Error(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}

	response.OK(w, res)
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	errs, err := bind.JSON(r, &req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	if errs.Has() {
		response.ValidationError(w, errs)
		return
	}

	res, err := c.service.Register(req)
	if err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	logger.WithCtx(r.Context()).Info("user registered", "email", res.Email)
	response.OK(w, res)
}
