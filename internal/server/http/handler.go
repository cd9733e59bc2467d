package http

import (
	"errors"
	"net/http"

	"github.com/cmartinr/reservasalas/internal/common"
	"github.com/gin-gonic/gin"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type reservationRequest struct {
	Fecha string `json:"fecha"`
	Hora  string `json:"hora"`
	Sala  string `json:"sala"`
}

func (s *Server) handleRegister(c *gin.Context) {

	s.logger.Info(c.Request.Context(), "Registration request")

	// Fields are optional by contract; absent ones behave as empty strings.
	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)

	err := s.users.Register(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUserExists) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Ya existe el usuario"})
			return
		}
		s.logger.Error(c.Request.Context(), "registration failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	s.logger.Info(c.Request.Context(), "Registered", "email", req.Email)
	c.JSON(http.StatusCreated, gin.H{"msg": "Usuario creado"})
}

func (s *Server) handleLogin(c *gin.Context) {

	var req credentialsRequest
	_ = c.ShouldBindJSON(&req)

	token, err := s.users.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Credenciales inválidas"})
			return
		}
		s.logger.Error(c.Request.Context(), "login failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}

func (s *Server) handleCrearReserva(c *gin.Context) {

	var req reservationRequest
	_ = c.ShouldBindJSON(&req)

	_, err := s.reservations.Create(c.Request.Context(), UserID(c), req.Fecha, req.Hora, req.Sala)
	if err != nil {
		s.logger.Error(c.Request.Context(), "reservation failed", "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Reserva creada"})
}
