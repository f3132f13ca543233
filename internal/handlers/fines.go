package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/catchers-sc/teamapp/internal/fines"
)

type fineView struct {
	fines.Fine
	AmountFormatted string `json:"amountFormatted"`
}

// FinesHandler returns the fine catalogue with display-formatted amounts.
func FinesHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		catalogue := fines.Catalogue()
		views := make([]fineView, 0, len(catalogue))
		for _, f := range catalogue {
			views = append(views, fineView{Fine: f, AmountFormatted: fines.FormatAmount(f)})
		}
		c.JSON(http.StatusOK, views)
	}
}
