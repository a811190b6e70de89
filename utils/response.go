package utils

import "github.com/gin-gonic/gin"

// RespondWithError writes the standard error envelope. Internal detail never
// goes to the client; handlers log it and pass a generic message here.
func RespondWithError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}
