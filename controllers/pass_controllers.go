package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/services"
	"github.com/muthulakshmimuthu313-dot/smart-buspass-application/utils"
)

type PassController struct {
	Sessions *services.SessionStore
	Passes   *services.PassService
}

func NewPassController(sessions *services.SessionStore, passes *services.PassService) *PassController {
	return &PassController{Sessions: sessions, Passes: passes}
}

// ApplyPass membuat pass baru setelah pembayaran tersimulasi.
// Foto dari form hanya untuk preview di UI dan tidak disimpan.
func (pc *PassController) ApplyPass(c *gin.Context) {
	var req struct {
		RouteFrom string `json:"routeFrom" binding:"required"`
		RouteTo   string `json:"routeTo" binding:"required"`
		Duration  int    `json:"duration" binding:"required,oneof=1 3 6 12"`
		Photo     string `json:"photo"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pass, payment, err := pc.Passes.Issue(req.RouteFrom, req.RouteTo, req.Duration)
	if err != nil {
		pc.respondPassError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Pass issued", gin.H{
		"pass":        pass,
		"payment":     payment,
		"redirect_to": "/pass",
	})
}

// RenewPass memperpanjang pass yang ada. Tanpa pass, caller diarahkan ke
// halaman pengajuan; itu satu-satunya guard eksplisit di sistem ini.
func (pc *PassController) RenewPass(c *gin.Context) {
	var req struct {
		Duration int `json:"duration" binding:"required,oneof=1 3"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	pass, payment, err := pc.Passes.Renew(req.Duration)
	if err != nil {
		pc.respondPassError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pass renewed", gin.H{
		"pass":        pass,
		"payment":     payment,
		"redirect_to": "/pass",
	})
}

// GetPass mengembalikan pass aktif di sesi.
func (pc *PassController) GetPass(c *gin.Context) {
	pass := pc.Sessions.Pass()
	if pass == nil {
		utils.RespondJSON(c, http.StatusNotFound, "No pass found", gin.H{
			"redirect_to": "/apply",
		})
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Pass detail", pass)
}

// DownloadPassPDF mengekspor kartu pass digital sebagai PDF.
func (pc *PassController) DownloadPassPDF(c *gin.Context) {
	user := pc.Sessions.User()
	pass := pc.Sessions.Pass()
	if user == nil || pass == nil {
		utils.RespondError(c, http.StatusNotFound, errors.New("no pass to export"))
		return
	}

	pdfBytes, filename, err := services.BuildPassPDF(user, pass)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func (pc *PassController) respondPassError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrNotLoggedIn):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrNoActivePass):
		utils.RespondJSON(c, http.StatusNotFound, err.Error(), gin.H{
			"redirect_to": "/apply",
		})
	case errors.Is(err, services.ErrSubmissionInProgress):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.RespondError(c, http.StatusInternalServerError, err)
	}
}
