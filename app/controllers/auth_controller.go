package controllers

import (
	"net/http"
	"worksuite/app/dto"
	jwtutil "worksuite/app/jwt"
	"worksuite/app/services"
)

type AuthController struct {
	Users  *services.UserService
	Signer *jwtutil.Signer
}

func NewAuthController(users *services.UserService, signer *jwtutil.Signer) *AuthController {
	return &AuthController{Users: users, Signer: signer}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	u, err := c.Users.Register(req.Email, req.Password, req.DisplayName)
	if err != nil {
		fail(w, err)
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Email)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: dto.UserView{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decode(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "missing credentials")
		return
	}
	u, err := c.Users.ValidateCredentials(req.Email, req.Password)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid credentials")
		return
	}
	token, err := c.Signer.Sign(u.ID, u.Email)
	if err != nil {
		fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.AuthResponse{Token: token, User: dto.UserView{ID: u.ID, Email: u.Email, DisplayName: u.DisplayName}})
}
