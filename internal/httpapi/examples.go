package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Example is a canned demo message clients can offer as a one-click starter.
type Example struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

var demoExamples = []Example{
	{Label: "Cancellation", Text: "I want to cancel my subscription. I'm user123."},
	{Label: "Billing Issue", Text: "This is RIDICULOUS! I've been overcharged AGAIN!"},
	{Label: "Account Access", Text: "My account is locked and I can't login."},
	{Label: "Technical Problem", Text: "The app keeps crashing when I upload files."},
	{Label: "Upgrade Request", Text: "I'd like to upgrade to premium. user789 here."},
	{Label: "Shipping Query", Text: "My package hasn't arrived yet. Order #12345."},
}

// Examples lists the canned demo messages.
func (a *API) Examples(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"examples": demoExamples})
}
